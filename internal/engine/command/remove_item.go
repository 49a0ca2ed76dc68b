package command

import (
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

// TypeRemoveItem detaches a component from the tree.
const TypeRemoveItem = "RemoveItem"

var removeItemSchema = domain.LazySet(func() *domain.PropertyDefinitionSet {
	return domain.MustExtend(CommonProperties(),
		domain.NewProperty(PropComponentID, nil, domain.AsID, domain.FlagRequired),
	)
})

// RemoveItem removes the target and its descendants. Actions still running against
// them are terminated by whoever observes the tree.
type RemoveItem struct {
	Base
}

// NewRemoveItem creates a RemoveItem invocation.
func NewRemoveItem(source domain.PropertySource, env Env) Command {
	return &RemoveItem{Base: NewBase(TypeRemoveItem, removeItemSchema(), source, env)}
}

func (c *RemoveItem) removesTarget() {}

// Execute implements Command.
func (c *RemoveItem) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	return c.Run(timers, fastMode, func(bool) *domain.Action {
		if _, ok := c.component(); !ok {
			return nil
		}
		if err := c.env.Tree.Remove(c.Target()); err != nil {
			c.Fail(zerr.With(err, "component", c.Target()))
		}
		return nil
	})
}
