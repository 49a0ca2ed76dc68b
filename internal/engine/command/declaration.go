package command

import (
	"fmt"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/zerr"
)

// Declaration converts a nested command value, as found in the "commands" property of
// Sequential or Parallel, into a declaration. Maps carry the type under "type" and every
// other key as a raw property.
func Declaration(raw any) (domain.CommandDeclaration, error) {
	switch v := raw.(type) {
	case domain.CommandDeclaration:
		return v, nil
	case *domain.CommandDeclaration:
		if v == nil {
			return domain.CommandDeclaration{}, domain.ErrMissingCommandType
		}
		return *v, nil
	case map[string]any:
		return declarationFromMap(v)
	case domain.Properties:
		return declarationFromMap(v)
	default:
		return domain.CommandDeclaration{}, zerr.With(
			zerr.Wrap(domain.ErrWrongType, "invalid command declaration"), "value", fmt.Sprintf("%T", raw))
	}
}

func declarationFromMap(m map[string]any) (domain.CommandDeclaration, error) {
	name, _ := m["type"].(string)
	if name == "" {
		return domain.CommandDeclaration{}, domain.ErrMissingCommandType
	}

	props := make(domain.Properties, len(m))
	for k, v := range m {
		if k == "type" {
			continue
		}
		props[k] = v
	}
	return domain.CommandDeclaration{Type: name, Properties: props}, nil
}

// spawn creates and resolves a nested command. Commands that cannot be created or whose
// properties do not resolve are logged and skipped.
func (b *Base) spawn(raw any) Command {
	decl, err := Declaration(raw)
	if err != nil {
		b.warn("skipping nested command", "parent", b.kind, "error", err)
		return nil
	}

	registry := b.env.Registry
	if registry == nil {
		b.warn("skipping nested command", "parent", b.kind, "type", decl.Type, "error", "no command registry")
		return nil
	}

	cmd, err := registry.Create(decl, b.env)
	if err != nil {
		b.warn("skipping nested command", "parent", b.kind, "type", decl.Type, "error", err)
		return nil
	}
	if !cmd.CalculateProperties() {
		b.warn("skipping nested command", "parent", b.kind, "type", decl.Type, "error", cmd.Err())
		return nil
	}
	return cmd
}
