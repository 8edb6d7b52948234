package record

import "github.com/fastboardai/linkgraph/value"

// DateFromRaw converts a raw {"year": ..., "month": ...} object into a
// Date. Absent input yields nil; present components pass through as
// given with no validation.
func DateFromRaw(raw any) *Date {
	m := value.Map(raw)
	if m == nil {
		return nil
	}
	return &Date{
		Year:  value.IntPtr(m["year"]),
		Month: value.IntPtr(m["month"]),
	}
}

// DateRangeFromRaw converts a raw {"start": ..., "end": ...} object
// into a DateRange, normalizing each endpoint independently.
func DateRangeFromRaw(raw any) *DateRange {
	m := value.Map(raw)
	if m == nil {
		return nil
	}
	return &DateRange{
		Start: DateFromRaw(m["start"]),
		End:   DateFromRaw(m["end"]),
	}
}
