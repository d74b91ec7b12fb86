package graph

import (
	"math"
	"math/rand"
)

const (
	layoutRadiusMin = 4.0
	layoutRadiusMax = 6.0
	layoutHeightMin = -1.5
	layoutHeightMax = 1.5
)

// Assign places N entities on a circle: entity i sits at angle 2π·i/N with
// a per-node randomized radius in [4,6) and height in [-1.5,1.5). No
// collision avoidance and no force simulation. The caller owns the rng, so
// a seeded source makes the layout fully deterministic.
func Assign(entities []Entity, rng *rand.Rand) []Node {
	nodes := make([]Node, 0, len(entities))
	n := len(entities)
	for i, e := range entities {
		angle := 2 * math.Pi * float64(i) / float64(n)
		radius := layoutRadiusMin + rng.Float64()*(layoutRadiusMax-layoutRadiusMin)
		height := layoutHeightMin + rng.Float64()*(layoutHeightMax-layoutHeightMin)

		nodes = append(nodes, Node{
			Entity: e,
			Position: Position{
				X: math.Cos(angle) * radius,
				Y: height,
				Z: math.Sin(angle) * radius,
			},
		})
	}
	return nodes
}
