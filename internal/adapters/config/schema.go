package config

// DocumentFileName is the file looked up when a directory is played.
const DocumentFileName = "cadence.yaml"

// SupportedVersion is the document format version this loader understands.
const SupportedVersion = "1"

// DocumentFile represents the structure of a cadence document.
type DocumentFile struct {
	Version      string                      `yaml:"version"`
	MainTemplate *ComponentDTO               `yaml:"mainTemplate"`
	Handlers     map[string][]map[string]any `yaml:"handlers"`
}

// ComponentDTO represents one component of the document tree.
type ComponentDTO struct {
	ID         string         `yaml:"id"`
	Type       string         `yaml:"type"`
	Focusable  bool           `yaml:"focusable"`
	Properties map[string]any `yaml:"properties"`
	Items      []ComponentDTO `yaml:"items"`
}
