package record

// Distance classifies how a profile relates to the viewing member. The
// token set is closed on the wire; unknown tokens pass through but
// carry no degree.
type Distance string

// Known distance tokens.
const (
	DistanceSelf Distance = "SELF"
	Distance1    Distance = "DISTANCE_1"
	Distance2    Distance = "DISTANCE_2"
	Distance3    Distance = "DISTANCE_3"
	OutOfNetwork Distance = "OUT_OF_NETWORK"
)

var degreeByDistance = map[Distance]int{
	Distance1: 1,
	Distance2: 2,
	Distance3: 3,
}

// Degree returns the integer connection degree for the distance token,
// or nil when the token carries no degree (self, out of network,
// unknown).
func (d Distance) Degree() *int {
	if n, ok := degreeByDistance[d]; ok {
		return &n
	}
	return nil
}
