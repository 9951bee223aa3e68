package vectors

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chiSquared returns the statistic for observed counts against a uniform
// expectation.
func chiSquared(counts []int, total int) float64 {
	expected := float64(total) / float64(len(counts))
	stat := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		stat += d * d / expected
	}
	return stat
}

func TestRandomRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		x := RandomRange(rng, -0.5, 0.5)
		assert.GreaterOrEqual(t, x, -0.5)
		assert.Less(t, x, 0.5)
	}
}

func TestRandomInUnitDisk_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		p := RandomInUnitDisk(rng)
		assert.Less(t, p.LengthSquared(), 1.0)
		assert.Equal(t, 0.0, p.Z)
	}
}

func TestRandomInUnitDisk_Uniform(t *testing.T) {
	const n = 80000
	rng := rand.New(rand.NewSource(42))

	sectors := make([]int, 8)
	// equal-area annuli: r² in [k/4, (k+1)/4)
	rings := make([]int, 4)
	for i := 0; i < n; i++ {
		p := RandomInUnitDisk(rng)
		angle := math.Atan2(p.Y, p.X) + math.Pi
		sectors[int(angle/(2*math.Pi)*8)%8]++
		rings[int(p.LengthSquared()*4)]++
	}

	// 0.1% critical values: 7 dof = 24.32, 3 dof = 16.27
	assert.Less(t, chiSquared(sectors, n), 24.32, "sectors %v", sectors)
	assert.Less(t, chiSquared(rings, n), 16.27, "rings %v", rings)
}

func TestRandomUnitVector_Uniform(t *testing.T) {
	const n = 80000
	rng := rand.New(rand.NewSource(99))

	octants := make([]int, 8)
	// equal-area bands on the sphere: z uniform in [-1, 1]
	bands := make([]int, 4)
	for i := 0; i < n; i++ {
		v := RandomUnitVector(rng)
		assert.InDelta(t, 1.0, v.Length(), 1e-12)

		idx := 0
		if v.X > 0 {
			idx |= 1
		}
		if v.Y > 0 {
			idx |= 2
		}
		if v.Z > 0 {
			idx |= 4
		}
		octants[idx]++

		b := int((v.Z + 1) / 2 * 4)
		if b == 4 {
			b = 3
		}
		bands[b]++
	}

	assert.Less(t, chiSquared(octants, n), 24.32, "octants %v", octants)
	assert.Less(t, chiSquared(bands, n), 16.27, "bands %v", bands)
}

func TestRandomInUnitSphere_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		assert.Less(t, RandomInUnitSphere(rng).LengthSquared(), 1.0)
	}
}
