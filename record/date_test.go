package record

import "testing"

func TestDateFromRaw(t *testing.T) {
	if d := DateFromRaw(nil); d != nil {
		t.Fatalf("DateFromRaw(nil) = %v, want nil", d)
	}
	if d := DateFromRaw("2020"); d != nil {
		t.Fatalf("DateFromRaw on non-object = %v, want nil", d)
	}

	d := DateFromRaw(map[string]any{"year": 2020.0, "month": 3.0})
	if d == nil {
		t.Fatal("expected a date")
	}
	if d.Year == nil || *d.Year != 2020 {
		t.Fatalf("year = %v, want 2020", d.Year)
	}
	if d.Month == nil || *d.Month != 3 {
		t.Fatalf("month = %v, want 3", d.Month)
	}

	// Either component may be absent independently.
	d = DateFromRaw(map[string]any{"year": 1999.0})
	if d.Year == nil || *d.Year != 1999 || d.Month != nil {
		t.Fatalf("partial date = %+v, want year only", d)
	}
}

func TestDateRangeFromRaw(t *testing.T) {
	if r := DateRangeFromRaw(nil); r != nil {
		t.Fatalf("DateRangeFromRaw(nil) = %v, want nil", r)
	}

	// An absent end means ongoing, not an error.
	r := DateRangeFromRaw(map[string]any{
		"start": map[string]any{"year": 2021.0, "month": 6.0},
	})
	if r == nil || r.Start == nil {
		t.Fatalf("range = %+v, want start set", r)
	}
	if r.End != nil {
		t.Fatalf("end = %+v, want nil (ongoing)", r.End)
	}
	if *r.Start.Year != 2021 || *r.Start.Month != 6 {
		t.Fatalf("start = %+v", r.Start)
	}

	// Present but empty range object still yields a range.
	r = DateRangeFromRaw(map[string]any{})
	if r == nil || r.Start != nil || r.End != nil {
		t.Fatalf("empty range = %+v, want non-nil with absent endpoints", r)
	}
}

func TestDistanceDegree(t *testing.T) {
	tests := []struct {
		distance Distance
		want     int
		absent   bool
	}{
		{distance: Distance1, want: 1},
		{distance: Distance2, want: 2},
		{distance: Distance3, want: 3},
		{distance: OutOfNetwork, absent: true},
		{distance: DistanceSelf, absent: true},
		{distance: Distance("SOMETHING_NEW"), absent: true},
		{distance: Distance(""), absent: true},
	}

	for _, tt := range tests {
		got := tt.distance.Degree()
		if tt.absent {
			if got != nil {
				t.Fatalf("Degree(%q) = %d, want nil", tt.distance, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Fatalf("Degree(%q) = %v, want %d", tt.distance, got, tt.want)
		}
	}
}
