package command

import (
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
)

const (
	// TypeSetFocus moves focus to a component.
	TypeSetFocus = "SetFocus"
	// TypeClearFocus drops the focus.
	TypeClearFocus = "ClearFocus"
)

var setFocusSchema = domain.LazySet(func() *domain.PropertyDefinitionSet {
	return domain.MustExtend(CommonProperties(),
		domain.NewProperty(PropComponentID, nil, domain.AsID, domain.FlagRequired),
	)
})

// SetFocus moves focus to the component named by componentId.
type SetFocus struct {
	Base
}

// NewSetFocus creates a SetFocus invocation.
func NewSetFocus(source domain.PropertySource, env Env) Command {
	return &SetFocus{Base: NewBase(TypeSetFocus, setFocusSchema(), source, env)}
}

// Execute implements Command. Focus changes always notify the previous and new holder.
// A target the focus manager cannot locate leaves the focus unchanged.
func (c *SetFocus) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	return c.Run(timers, fastMode, func(bool) *domain.Action {
		if c.env.Focus == nil {
			return nil
		}
		if err := c.env.Focus.SetFocus(c.Target(), true); err != nil {
			c.Fail(err)
		}
		return nil
	})
}

var clearFocusSchema = CommonProperties

// ClearFocus drops the focus from whichever component holds it.
type ClearFocus struct {
	Base
}

// NewClearFocus creates a ClearFocus invocation.
func NewClearFocus(source domain.PropertySource, env Env) Command {
	return &ClearFocus{Base: NewBase(TypeClearFocus, clearFocusSchema(), source, env)}
}

// Execute implements Command.
func (c *ClearFocus) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	return c.Run(timers, fastMode, func(bool) *domain.Action {
		if c.env.Focus != nil {
			c.env.Focus.ClearFocus(true)
		}
		return nil
	})
}
