package vectors

// Source yields uniform floats in [0, 1). *math/rand.Rand satisfies it, so
// callers can swap in a seeded generator for reproducible renders.
type Source interface {
	Float64() float64
}

// RandomRange returns a uniform float in [min, max).
func RandomRange(rng Source, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// Random returns a vector with components uniform in [0, 1).
func Random(rng Source) Vec3 {
	return Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
}

// RandomIn returns a vector with components uniform in [min, max).
func RandomIn(rng Source, min, max float64) Vec3 {
	return Vec3{
		RandomRange(rng, min, max),
		RandomRange(rng, min, max),
		RandomRange(rng, min, max),
	}
}

// RandomInUnitDisk draws points in [-1,1]² (z = 0) until one lands strictly
// inside the unit circle. The loop is uncapped.
func RandomInUnitDisk(rng Source) Vec3 {
	for {
		p := Vec3{RandomRange(rng, -1, 1), RandomRange(rng, -1, 1), 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitSphere draws points in [-1,1]³ until one lands strictly inside
// the unit sphere.
func RandomInUnitSphere(rng Source) Vec3 {
	for {
		p := RandomIn(rng, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a direction uniformly distributed on the unit
// sphere.
func RandomUnitVector(rng Source) Vec3 {
	for {
		p := RandomInUnitSphere(rng)
		// the exact origin has no direction
		if p.LengthSquared() > 0 {
			return p.Unit()
		}
	}
}
