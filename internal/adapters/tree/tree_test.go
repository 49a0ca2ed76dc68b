package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cadence/internal/adapters/tree"
	"go.trai.ch/cadence/internal/core/domain"
)

func listSpec() *domain.ComponentSpec {
	return &domain.ComponentSpec{
		ID:   "root",
		Type: "Container",
		Children: []*domain.ComponentSpec{
			{ID: "btn1", Type: "TouchWrapper", Focusable: true, Properties: map[string]any{"opacity": 1}},
			{
				ID:   "list",
				Type: "Sequence",
				Children: []*domain.ComponentSpec{
					{ID: "row1", Type: "Text", Properties: map[string]any{"text": "a"}},
					{ID: "row2", Type: "Text"},
				},
			},
		},
	}
}

func TestNew(t *testing.T) {
	spec := listSpec()
	tr, err := tree.New(spec)
	require.NoError(t, err)
	assert.Equal(t, 5, tr.Len())
	assert.Equal(t, "root", tr.Root().ID())

	btn, ok := tr.Find("btn1")
	require.True(t, ok)
	assert.Equal(t, "TouchWrapper", btn.Type())
	assert.True(t, btn.Focusable())

	v, ok := btn.Property("opacity")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	require.NoError(t, btn.SetProperty("opacity", 0.5))
	assert.Equal(t, 1, spec.Children[0].Properties["opacity"], "component specs are copied")

	list, ok := tr.Lookup("list")
	require.True(t, ok)
	assert.Equal(t, []string{"row1", "row2"}, list.Children())

	_, ok = tr.Find("ghost")
	assert.False(t, ok)
}

func TestNew_Errors(t *testing.T) {
	_, err := tree.New(nil)
	assert.True(t, errors.Is(err, domain.ErrMissingComponentID))

	_, err = tree.New(&domain.ComponentSpec{ID: "root", Children: []*domain.ComponentSpec{{ID: "root"}}})
	assert.True(t, errors.Is(err, domain.ErrDuplicateComponentID))

	_, err = tree.New(&domain.ComponentSpec{ID: "root", Children: []*domain.ComponentSpec{{Type: "Text"}}})
	assert.True(t, errors.Is(err, domain.ErrMissingComponentID))
}

func TestRemove(t *testing.T) {
	tr, err := tree.New(listSpec())
	require.NoError(t, err)

	var removed []string
	tr.OnRemove(func(id string) { removed = append(removed, id) })

	row1, _ := tr.Find("row1")
	require.NoError(t, tr.Remove("list"))

	assert.Equal(t, []string{"list", "row1", "row2"}, removed)
	assert.Equal(t, 2, tr.Len())
	_, ok := tr.Find("row1")
	assert.False(t, ok)
	assert.Equal(t, []string{"btn1"}, tr.Root().Children())

	err = row1.SetProperty("text", "b")
	assert.True(t, errors.Is(err, domain.ErrComponentDestroyed))
	v, _ := row1.Property("text")
	assert.Equal(t, "a", v)

	err = tr.Remove("list")
	assert.True(t, errors.Is(err, domain.ErrComponentNotFound))
}

func TestRemove_Root(t *testing.T) {
	tr, err := tree.New(listSpec())
	require.NoError(t, err)

	require.NoError(t, tr.Remove("root"))
	assert.Nil(t, tr.Root())
	assert.Zero(t, tr.Len())
	assert.Empty(t, tr.Snapshot())
}

func TestSnapshot(t *testing.T) {
	tr, err := tree.New(listSpec())
	require.NoError(t, err)

	btn, _ := tr.Lookup("btn1")
	btn.FocusChanged(true)

	states := tr.Snapshot()
	require.Len(t, states, 5)

	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"root", "btn1", "list", "row1", "row2"}, ids)
	assert.True(t, states[1].Focused)
	assert.Equal(t, 2, states[3].Depth)

	states[3].Properties["text"] = "mutated"
	row1, _ := tr.Find("row1")
	v, _ := row1.Property("text")
	assert.Equal(t, "a", v, "snapshots are copies")
}

func TestFocusChanged_IgnoredAfterRemoval(t *testing.T) {
	tr, err := tree.New(listSpec())
	require.NoError(t, err)

	btn, _ := tr.Lookup("btn1")
	require.NoError(t, tr.Remove("btn1"))
	btn.FocusChanged(true)
	assert.False(t, btn.Focused())
}

func TestSetFocused(t *testing.T) {
	tr, err := tree.New(listSpec())
	require.NoError(t, err)

	btn, _ := tr.Lookup("btn1")
	btn.SetFocused(true)
	assert.True(t, btn.Focused())
	assert.Zero(t, btn.Notifications(), "setting the flag is not a notification")

	btn.FocusChanged(false)
	assert.False(t, btn.Focused())
	assert.Equal(t, 1, btn.Notifications())

	require.NoError(t, tr.Remove("btn1"))
	btn.SetFocused(true)
	assert.False(t, btn.Focused())
}
