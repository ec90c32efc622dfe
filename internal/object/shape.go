package object

import (
	"math"
	"math/rand/v2"

	"github.com/tomz197/vectoroids/internal/physics"
)

const (
	shapeMinPoints = 8
	shapeMaxPoints = 14
	shapeDentRate  = 0.2
)

// AsteroidShape returns the outline of an asteroid as unit-scale points
// (multiply by AsteroidSize.Radius). The outline depends only on seed, so
// the same asteroid renders identically every frame. Points are appended
// to buf[:0].
func AsteroidShape(seed uint64, buf []physics.Vec2) []physics.Vec2 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	n := shapeMinPoints + rng.IntN(shapeMaxPoints-shapeMinPoints+1)
	points := buf[:0]
	for i := range n {
		radius := 0.3 + 0.2*rng.Float64()
		if rng.Float64() < shapeDentRate {
			radius -= 0.2
		}
		angle := float64(i)*(2*math.Pi/float64(n)) + math.Pi*0.125*rng.Float64()
		points = append(points, physics.FromAngle(angle).Scale(radius))
	}
	return points
}
