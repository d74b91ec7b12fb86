package graph

import "github.com/google/uuid"

// Entity type vocabulary. Unknown types pass through unchanged; the scene
// palette falls back to a default color for them.
const (
	TypePerson       = "person"
	TypePlace        = "place"
	TypeConcept      = "concept"
	TypeOrganization = "organization"
	TypeEvent        = "event"
	TypeTechnology   = "technology"
	TypeOther        = "other"
)

type Entity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type Relationship struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Label    string  `json:"label"`
	Strength float64 `json:"strength"`
}

// Extraction is the shape the extraction call is prompted to emit.
type Extraction struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

// Normalize makes a structurally usable extraction out of whatever the
// model returned: nil slices become empty, entities without an id get one,
// and strength is clamped into [0,1]. Semantic quality is not checked.
func (e *Extraction) Normalize() {
	if e.Entities == nil {
		e.Entities = []Entity{}
	}
	if e.Relationships == nil {
		e.Relationships = []Relationship{}
	}
	for i := range e.Entities {
		if e.Entities[i].ID == "" {
			e.Entities[i].ID = uuid.New().String()
		}
	}
	for i := range e.Relationships {
		if e.Relationships[i].Strength < 0 {
			e.Relationships[i].Strength = 0
		}
		if e.Relationships[i].Strength > 1 {
			e.Relationships[i].Strength = 1
		}
	}
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Node is the view model: an entity plus a position assigned once at
// creation. Nodes are only ever replaced wholesale, never moved.
type Node struct {
	Entity
	Position Position `json:"position"`
}

type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Edges projects relationships into view-model edges. Dangling references
// survive here; they are dropped at scene-build time, not at state-update
// time.
func Edges(rels []Relationship) []Edge {
	edges := make([]Edge, 0, len(rels))
	for _, r := range rels {
		edges = append(edges, Edge{Source: r.Source, Target: r.Target, Label: r.Label})
	}
	return edges
}

// TypeCounts tallies nodes per entity type for the summary legend.
// Recomputed on demand; the node list is small.
func TypeCounts(nodes []Node) map[string]int {
	counts := make(map[string]int)
	for _, n := range nodes {
		counts[n.Type]++
	}
	return counts
}
