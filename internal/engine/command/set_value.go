package command

import (
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

// TypeSetValue assigns a component property.
const TypeSetValue = "SetValue"

// Properties of SetValue.
const (
	PropProperty = "property"
	PropValue    = "value"
)

var setValueSchema = domain.LazySet(func() *domain.PropertyDefinitionSet {
	return domain.MustExtend(CommonProperties(),
		domain.NewProperty(PropComponentID, nil, domain.AsID, domain.FlagRequired),
		domain.NewProperty(PropProperty, nil, domain.AsID, domain.FlagRequired),
		domain.NewProperty(PropValue, nil, domain.AsAny, domain.FlagRequired),
	)
})

// SetValue assigns one property of the target component.
type SetValue struct {
	Base
}

// NewSetValue creates a SetValue invocation.
func NewSetValue(source domain.PropertySource, env Env) Command {
	return &SetValue{Base: NewBase(TypeSetValue, setValueSchema(), source, env)}
}

// Execute implements Command.
func (c *SetValue) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	return c.Run(timers, fastMode, func(bool) *domain.Action {
		target, ok := c.component()
		if !ok {
			return nil
		}
		value, _ := c.bag.Get(PropValue)
		if err := target.SetProperty(c.bag.String(PropProperty), value); err != nil {
			c.Fail(zerr.With(err, "component", target.ID()))
		}
		return nil
	})
}

// component looks the resolved target up in the tree and records a failure when it is gone.
func (b *Base) component() (ports.Component, bool) {
	id := b.Target()
	if b.env.Tree == nil {
		b.Fail(zerr.With(zerr.Wrap(domain.ErrComponentNotFound, "no component tree"), "component", id))
		return nil, false
	}
	target, ok := b.env.Tree.Find(id)
	if !ok {
		b.Fail(zerr.With(zerr.Wrap(domain.ErrComponentNotFound, "target lookup failed"), "component", id))
		return nil, false
	}
	return target, true
}
