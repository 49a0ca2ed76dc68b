// Package config provides the document loader for cadence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.DocumentLoader = (*Loader)(nil)

// Loader implements ports.DocumentLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the document at path. When path is a directory, the nearest
// cadence.yaml in it or one of its parents is used.
func (l *Loader) Load(path string) (*domain.Document, error) {
	file, err := l.findDocument(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrDocumentReadFailed, err), "path", file)
	}

	var dto DocumentFile
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrDocumentParseFailed, err), "path", file)
	}

	doc, err := l.toDomain(&dto)
	if err != nil {
		return nil, zerr.With(err, "path", file)
	}
	return doc, nil
}

func (l *Loader) findDocument(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrDocumentReadFailed, err), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	dir, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrDocumentReadFailed, err), "path", path)
	}
	for {
		candidate := filepath.Join(dir, DocumentFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(zerr.Wrap(domain.ErrDocumentReadFailed, "no "+DocumentFileName+" found"), "path", path)
		}
		dir = parent
	}
}

func (l *Loader) toDomain(dto *DocumentFile) (*domain.Document, error) {
	if dto.Version != SupportedVersion && l.Logger != nil {
		l.Logger.Warn("unknown document version", "version", dto.Version, "supported", SupportedVersion)
	}

	if dto.MainTemplate == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingComponentID, "document has no mainTemplate"), "component_path", "mainTemplate")
	}

	seen := make(map[string]string)
	root, err := convertComponent(dto.MainTemplate, "mainTemplate", seen)
	if err != nil {
		return nil, err
	}

	handlers := make(map[string][]domain.CommandDeclaration, len(dto.Handlers))
	for name, commands := range dto.Handlers {
		decls := make([]domain.CommandDeclaration, 0, len(commands))
		for i, raw := range commands {
			decl, err := convertCommand(raw)
			if err != nil {
				return nil, zerr.With(zerr.With(err, "handler", name), "index", i)
			}
			decls = append(decls, decl)
		}
		handlers[name] = decls
	}

	return &domain.Document{
		Version:  dto.Version,
		Root:     root,
		Handlers: handlers,
	}, nil
}

// convertComponent maps a component and its items, checking that ids are present,
// well formed and unique. seen maps every id to the path it was declared at.
func convertComponent(dto *ComponentDTO, path string, seen map[string]string) (*domain.ComponentSpec, error) {
	if dto.ID == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingComponentID, "invalid component"), "component_path", path)
	}
	if _, err := domain.AsID(dto.ID); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "invalid component"), "component_path", path), "id", dto.ID)
	}
	if first, exists := seen[dto.ID]; exists {
		err := zerr.With(zerr.Wrap(domain.ErrDuplicateComponentID, "invalid component"), "id", dto.ID)
		return nil, zerr.With(zerr.With(err, "component_path", path), "first_declared", first)
	}
	seen[dto.ID] = path

	spec := &domain.ComponentSpec{
		ID:         dto.ID,
		Type:       dto.Type,
		Focusable:  dto.Focusable,
		Properties: dto.Properties,
	}
	if spec.Properties == nil {
		spec.Properties = map[string]any{}
	}

	for i := range dto.Items {
		child, err := convertComponent(&dto.Items[i], path+".items["+strconv.Itoa(i)+"]", seen)
		if err != nil {
			return nil, err
		}
		spec.Children = append(spec.Children, child)
	}
	return spec, nil
}

func convertCommand(raw map[string]any) (domain.CommandDeclaration, error) {
	name, _ := raw["type"].(string)
	if name == "" {
		return domain.CommandDeclaration{}, zerr.Wrap(domain.ErrMissingCommandType, "invalid handler")
	}

	props := make(domain.Properties, len(raw))
	for k, v := range raw {
		if k != "type" {
			props[k] = v
		}
	}
	return domain.CommandDeclaration{Type: name, Properties: props}, nil
}
