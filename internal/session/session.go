// Package session owns the one mutable piece of state in the system: the
// current question, answer, graph and selection. The full node/edge set is
// replaced atomically per generation and cleared on reset; there is no
// merging and no persistence.
package session

import (
	"math/rand"
	"sync"

	"github.com/graphweave/graphweave/internal/graph"
	"github.com/graphweave/graphweave/internal/pipeline"
)

// RelationView is one row of the inspection panel: the edge label plus the
// other endpoint's display name. An unresolvable endpoint renders with an
// empty name rather than failing.
type RelationView struct {
	Label     string `json:"label"`
	OtherID   string `json:"other_id"`
	OtherName string `json:"other_name"`
}

type SelectionView struct {
	Selected string         `json:"selected"`
	Incoming []RelationView `json:"incoming"`
	Outgoing []RelationView `json:"outgoing"`
}

type Snapshot struct {
	Question string       `json:"question"`
	Answer   string       `json:"answer"`
	Nodes    []graph.Node `json:"nodes"`
	Edges    []graph.Edge `json:"edges"`
	Selected string       `json:"selected"`
}

type Stats struct {
	NodeCount int            `json:"node_count"`
	EdgeCount int            `json:"edge_count"`
	ByType    map[string]int `json:"by_type"`
}

// Session is safe for concurrent handlers. There is deliberately no guard
// against a generation that resolves after a reset: the late result is
// applied as-is (last writer wins).
type Session struct {
	mu sync.Mutex

	question string
	answer   string
	nodes    []graph.Node
	edges    []graph.Edge
	selected string

	rng *rand.Rand
}

// New creates an empty session. The rng seeds the radial layout; pass a
// seeded source in tests for deterministic positions.
func New(rng *rand.Rand) *Session {
	return &Session{
		nodes: []graph.Node{},
		edges: []graph.Edge{},
		rng:   rng,
	}
}

// ApplyResult replaces the whole graph with the outcome of a generation.
// Selection is cleared; positions are assigned here, once.
func (s *Session) ApplyResult(res *pipeline.Result) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.question = res.Question
	s.answer = res.Answer
	s.nodes = graph.Assign(res.Extraction.Entities, s.rng)
	s.edges = graph.Edges(res.Extraction.Relationships)
	s.selected = ""

	return s.statsLocked()
}

// Reset clears everything back to the initial state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.question = ""
	s.answer = ""
	s.nodes = []graph.Node{}
	s.edges = []graph.Edge{}
	s.selected = ""
}

// Toggle applies a click on a node and returns the resulting inspection
// view. Clicking the selected node deselects; clicking another selects it.
func (s *Session) Toggle(id string) SelectionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = graph.Reduce(s.selected, id)
	return s.selectionLocked()
}

// Selection returns the current inspection view without changing state.
func (s *Session) Selection() SelectionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectionLocked()
}

func (s *Session) selectionLocked() SelectionView {
	view := SelectionView{
		Selected: s.selected,
		Incoming: []RelationView{},
		Outgoing: []RelationView{},
	}
	if s.selected == "" {
		return view
	}

	names := make(map[string]string, len(s.nodes))
	for _, n := range s.nodes {
		names[n.ID] = n.Name
	}

	incoming, outgoing := graph.Partition(s.edges, s.selected)
	for _, e := range incoming {
		view.Incoming = append(view.Incoming, RelationView{
			Label:     e.Label,
			OtherID:   e.Source,
			OtherName: names[e.Source],
		})
	}
	for _, e := range outgoing {
		view.Outgoing = append(view.Outgoing, RelationView{
			Label:     e.Label,
			OtherID:   e.Target,
			OtherName: names[e.Target],
		})
	}
	return view
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	nodes := make([]graph.Node, len(s.nodes))
	copy(nodes, s.nodes)
	edges := make([]graph.Edge, len(s.edges))
	copy(edges, s.edges)

	return Snapshot{
		Question: s.question,
		Answer:   s.answer,
		Nodes:    nodes,
		Edges:    edges,
		Selected: s.selected,
	}
}

// Stats recomputes the summary counts from the current node list.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Session) statsLocked() Stats {
	return Stats{
		NodeCount: len(s.nodes),
		EdgeCount: len(s.edges),
		ByType:    graph.TypeCounts(s.nodes),
	}
}
