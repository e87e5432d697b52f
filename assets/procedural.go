package assets

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/render"
)

// AsteroidVariants is the number of distinct asteroid outlines
const AsteroidVariants = 8

// AsteroidMeshName names an asteroid outline variant
func AsteroidMeshName(variant int) string {
	return fmt.Sprintf("asteroid/%d", variant)
}

// JaggedOutline builds a closed rough circle of the given radius
// Each vertex radius varies by up to roughness times the radius
func JaggedOutline(rng *rand.Rand, name string, radius, roughness float32, points int) *render.Mesh {
	pts := make([]mgl32.Vec2, points)
	step := 2 * math.Pi / float64(points)
	for i := range pts {
		r := radius * (1 - roughness + 2*roughness*rng.Float32())
		a := float64(i) * step
		pts[i] = mgl32.Vec2{r * float32(math.Cos(a)), r * float32(math.Sin(a))}
	}
	return render.NewLineLoop(name, pts)
}

// registerAsteroids adds lazy loaders for every asteroid variant
// Variant outlines are deterministic per seed
func (c *Catalog) registerAsteroids(seed uint64) error {
	for v := range AsteroidVariants {
		name := AsteroidMeshName(v)
		err := c.RegisterLoader(name, meshKind, func() (any, error) {
			rng := rand.New(rand.NewPCG(seed, uint64(v)))
			return JaggedOutline(rng, name, 0.5, 0.3, 9+v%4), nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
