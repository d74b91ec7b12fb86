// Package scene turns the current graph into the declarative description
// the browser viewer renders: positioned, colored nodes, resolved edge
// segments, and the animation and camera constants. No rendering happens
// here; the viewer is a thin three.js client of this spec.
package scene

import (
	"github.com/graphweave/graphweave/internal/graph"
)

// Palette keyed by entity type. Unknown types get DefaultColor.
var Palette = map[string]string{
	graph.TypePerson:       "#ff6b6b",
	graph.TypePlace:        "#4ecdc4",
	graph.TypeConcept:      "#ffe66d",
	graph.TypeOrganization: "#a78bfa",
	graph.TypeEvent:        "#fb923c",
	graph.TypeTechnology:   "#38bdf8",
	graph.TypeOther:        "#94a3b8",
}

const DefaultColor = "#94a3b8"

const (
	baseRadius       = 0.35
	selectedScale    = 1.3
	baseEmissive     = 0.4
	selectedEmissive = 0.9

	bobAmplitude  = 0.15
	bobSpeed      = 1.5
	nodeSpinSpeed = 0.4
	groupSpin     = 0.05
)

type NodeSpec struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Description string         `json:"description,omitempty"`
	Position    graph.Position `json:"position"`
	Color       string         `json:"color"`
	Radius      float64        `json:"radius"`
	Emissive    float64        `json:"emissive"`
	Selected    bool           `json:"selected"`
	// BobPhase desynchronizes the vertical bobbing across nodes; the
	// node's own X coordinate is the phase offset.
	BobPhase float64 `json:"bob_phase"`
}

type EdgeSpec struct {
	From     graph.Position `json:"from"`
	To       graph.Position `json:"to"`
	Midpoint graph.Position `json:"midpoint"`
	Label    string         `json:"label"`
}

type Camera struct {
	Position    graph.Position `json:"position"`
	MinDistance float64        `json:"min_distance"`
	MaxDistance float64        `json:"max_distance"`
}

type Animation struct {
	BobAmplitude  float64 `json:"bob_amplitude"`
	BobSpeed      float64 `json:"bob_speed"`
	NodeSpinSpeed float64 `json:"node_spin_speed"`
	GroupSpin     float64 `json:"group_spin"`
}

type Spec struct {
	Nodes     []NodeSpec `json:"nodes"`
	Edges     []EdgeSpec `json:"edges"`
	Camera    Camera     `json:"camera"`
	Animation Animation  `json:"animation"`
	// DroppedEdges counts edges whose endpoints could not be resolved
	// against the node set. They are omitted, not errors; the count is
	// surfaced so extraction quality is observable.
	DroppedEdges int `json:"dropped_edges"`
}

// Build composes the scene for the given graph and selection. Selection
// affects node radius and emissive intensity only, never edges.
func Build(nodes []graph.Node, edges []graph.Edge, selectedID string) Spec {
	byID := make(map[string]graph.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	nodeSpecs := make([]NodeSpec, 0, len(nodes))
	for _, n := range nodes {
		color, ok := Palette[n.Type]
		if !ok {
			color = DefaultColor
		}

		selected := n.ID == selectedID
		radius := baseRadius
		emissive := baseEmissive
		if selected {
			radius *= selectedScale
			emissive = selectedEmissive
		}

		nodeSpecs = append(nodeSpecs, NodeSpec{
			ID:          n.ID,
			Name:        n.Name,
			Type:        n.Type,
			Description: n.Description,
			Position:    n.Position,
			Color:       color,
			Radius:      radius,
			Emissive:    emissive,
			Selected:    selected,
			BobPhase:    n.Position.X,
		})
	}

	edgeSpecs := make([]EdgeSpec, 0, len(edges))
	dropped := 0
	for _, e := range edges {
		src, okSrc := byID[e.Source]
		dst, okDst := byID[e.Target]
		if !okSrc || !okDst {
			dropped++
			continue
		}
		edgeSpecs = append(edgeSpecs, EdgeSpec{
			From: src.Position,
			To:   dst.Position,
			Midpoint: graph.Position{
				X: (src.Position.X + dst.Position.X) / 2,
				Y: (src.Position.Y + dst.Position.Y) / 2,
				Z: (src.Position.Z + dst.Position.Z) / 2,
			},
			Label: e.Label,
		})
	}

	return Spec{
		Nodes: nodeSpecs,
		Edges: edgeSpecs,
		Camera: Camera{
			Position:    graph.Position{X: 0, Y: 2, Z: 12},
			MinDistance: 5,
			MaxDistance: 30,
		},
		Animation: Animation{
			BobAmplitude:  bobAmplitude,
			BobSpeed:      bobSpeed,
			NodeSpinSpeed: nodeSpinSpeed,
			GroupSpin:     groupSpin,
		},
		DroppedEdges: dropped,
	}
}
