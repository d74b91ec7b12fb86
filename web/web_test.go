package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsEmbedded(t *testing.T) {
	for _, name := range []string{"index.html", "app.js"} {
		data, err := Assets.ReadFile(name)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
}

// The viewer must stay wired to the scene contract: node overlays built
// from name/type/description, edge label billboards placed at the
// midpoint, and the detail panel showing display names rather than ids.
func TestViewerConsumesSceneLabels(t *testing.T) {
	data, err := Assets.ReadFile("app.js")
	require.NoError(t, err)
	js := string(data)

	assert.Contains(t, js, "nodeLabel(n)")
	assert.Contains(t, js, "n.description")
	assert.Contains(t, js, "edgeLabel(e)")
	assert.Contains(t, js, "e.midpoint.x")
	assert.Contains(t, js, "nodeNames[view.selected]")
}

// Generate must be disabled both while a request is in flight and while
// the input is empty or whitespace-only.
func TestViewerTracksGenerateDisabledState(t *testing.T) {
	data, err := Assets.ReadFile("app.js")
	require.NoError(t, err)
	js := string(data)

	assert.Contains(t, js, "inFlight || !questionEl.value.trim()")
	assert.Contains(t, js, "addEventListener('input', syncGenerateDisabled)")
}
