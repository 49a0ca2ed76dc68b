package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cadence/internal/adapters/config"
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeDocument(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DocumentFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const focusDocument = `
version: "1"
mainTemplate:
  id: root
  type: Container
  items:
    - id: btn1
      type: TouchWrapper
      focusable: true
      properties: {opacity: 1}
    - id: list
      type: Sequence
      items:
        - id: row1
          type: Text
          properties:
            text: hello
handlers:
  onMount:
    - type: SetFocus
      componentId: btn1
    - type: Sequential
      commands:
        - type: Idle
          delay: 100
        - type: SetValue
          componentId: row1
          property: text
          value: bye
`

func TestLoader_Load(t *testing.T) {
	loader := config.NewLoader(nil)
	path := writeDocument(t, t.TempDir(), focusDocument)

	doc, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1", doc.Version)
	require.NotNil(t, doc.Root)
	assert.Equal(t, "root", doc.Root.ID)
	assert.Empty(t, doc.Root.Properties)

	var ids []string
	for c := range doc.Root.Walk() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"root", "btn1", "list", "row1"}, ids)

	btn := doc.Root.Children[0]
	assert.True(t, btn.Focusable)
	assert.Equal(t, 1, btn.Properties["opacity"])

	onMount, ok := doc.Handler("onMount")
	require.True(t, ok)
	require.Len(t, onMount, 2)
	assert.Equal(t, "SetFocus", onMount[0].Type)
	assert.Equal(t, domain.Properties{"componentId": "btn1"}, onMount[0].Properties)

	nested, ok := onMount[1].Properties["commands"].([]any)
	require.True(t, ok)
	require.Len(t, nested, 2)
	assert.Equal(t, map[string]any{"type": "Idle", "delay": 100}, nested[0])

	_, ok = doc.Handler("onPress")
	assert.False(t, ok)
}

func TestLoader_LoadDirectory(t *testing.T) {
	root := t.TempDir()
	writeDocument(t, root, focusDocument)
	nested := filepath.Join(root, "screens", "home")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	doc, err := config.NewLoader(nil).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "root", doc.Root.ID)
}

func TestLoader_UnknownVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("unknown document version", gomock.Any())

	path := writeDocument(t, t.TempDir(), `
version: "7"
mainTemplate: {id: root}
`)
	doc, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Handlers)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		sentinel error
		meta     map[string]any
	}{
		{
			name:     "malformed yaml",
			content:  "mainTemplate: [unclosed",
			sentinel: domain.ErrDocumentParseFailed,
		},
		{
			name:     "no main template",
			content:  `version: "1"`,
			sentinel: domain.ErrMissingComponentID,
		},
		{
			name: "component without id",
			content: `
version: "1"
mainTemplate:
  id: root
  items:
    - type: Text
`,
			sentinel: domain.ErrMissingComponentID,
			meta:     map[string]any{"component_path": "mainTemplate.items[0]"},
		},
		{
			name: "malformed id",
			content: `
version: "1"
mainTemplate:
  id: "9lives"
`,
			sentinel: domain.ErrInvalidID,
			meta:     map[string]any{"id": "9lives"},
		},
		{
			name: "duplicate id",
			content: `
version: "1"
mainTemplate:
  id: root
  items:
    - id: a
    - id: b
      items:
        - id: a
`,
			sentinel: domain.ErrDuplicateComponentID,
			meta: map[string]any{
				"id":             "a",
				"component_path": "mainTemplate.items[1].items[0]",
				"first_declared": "mainTemplate.items[0]",
			},
		},
		{
			name: "command without type",
			content: `
version: "1"
mainTemplate: {id: root}
handlers:
  onMount:
    - type: SetFocus
      componentId: root
    - componentId: root
`,
			sentinel: domain.ErrMissingCommandType,
			meta:     map[string]any{"handler": "onMount", "index": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDocument(t, t.TempDir(), tt.content)

			_, err := config.NewLoader(nil).Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, path, zErr.Metadata()["path"])
			for k, v := range tt.meta {
				assert.Equal(t, v, zErr.Metadata()[k], k)
			}
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader(nil).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDocumentReadFailed))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_DirectoryWithoutDocument(t *testing.T) {
	_, err := config.NewLoader(nil).Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDocumentReadFailed))
}
