package graph

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func entitiesN(n int) []Entity {
	out := make([]Entity, n)
	for i := range out {
		out[i] = Entity{ID: string(rune('a' + i)), Name: "E", Type: TypeConcept}
	}
	return out
}

func TestAssignCountAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	nodes := Assign(entitiesN(8), rng)

	assert.Len(t, nodes, 8)
	for _, n := range nodes {
		radius := math.Hypot(n.Position.X, n.Position.Z)
		assert.GreaterOrEqual(t, radius, 4.0-1e-9)
		assert.Less(t, radius, 6.0)
		assert.GreaterOrEqual(t, n.Position.Y, -1.5)
		assert.Less(t, n.Position.Y, 1.5)
	}
}

func TestAssignAnglesEvenlySpaced(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	nodes := Assign(entitiesN(4), rng)

	for i, n := range nodes {
		want := 2 * math.Pi * float64(i) / 4
		got := math.Atan2(n.Position.Z, n.Position.X)
		if got < 0 {
			got += 2 * math.Pi
		}
		assert.InDelta(t, want, got, 1e-9)
	}
}

func TestAssignDeterministicWithSeed(t *testing.T) {
	a := Assign(entitiesN(6), rand.New(rand.NewSource(99)))
	b := Assign(entitiesN(6), rand.New(rand.NewSource(99)))

	assert.Equal(t, a, b)
}

func TestAssignEmpty(t *testing.T) {
	nodes := Assign(nil, rand.New(rand.NewSource(1)))

	assert.Empty(t, nodes)
	assert.NotNil(t, nodes)
}
