package geom

// Interval is a scalar range bounding admissible ray parameters.
type Interval struct {
	Min, Max float64
}

func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Surrounds reports min < x < max.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// WithMax returns a copy of i with its upper bound replaced.
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
