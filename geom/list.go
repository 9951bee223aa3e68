package geom

// List is an ordered aggregate of surfaces that reports the nearest hit.
type List struct {
	Objects []Hittable
}

func NewList(objects ...Hittable) *List {
	return &List{Objects: objects}
}

func (l *List) Add(obj Hittable) {
	l.Objects = append(l.Objects, obj)
}

func (l *List) Clear() {
	l.Objects = nil
}

func (l *List) Len() int {
	return len(l.Objects)
}

// Hit scans every child, shrinking the upper bound to the closest t found so
// far. Equal t values never replace an earlier winner.
func (l *List) Hit(r Ray, rayT Interval) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, rayT.WithMax(closestSoFar)); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}
