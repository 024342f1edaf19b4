package param

import "github.com/justyntemme/clapgo/pkg/clap"

// Builder is a fluent constructor for parameters.
type Builder struct {
	param *Parameter
}

// New starts a parameter with a [0, 1] range and automation enabled.
func New(id clap.ID, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:    id,
			Name:  name,
			Min:   0,
			Max:   1,
			Flags: clap.ParamIsAutomatable,
		},
	}
}

// Module places the parameter in a module path like "oscillator/1".
func (b *Builder) Module(module string) *Builder {
	b.param.Module = module
	return b
}

// Range sets the plain value range.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Default sets the default plain value.
func (b *Builder) Default(value float64) *Builder {
	b.param.Default = value
	return b
}

// Unit sets the display unit.
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Stepped marks the parameter as taking discrete values.
func (b *Builder) Stepped() *Builder {
	b.param.Flags |= clap.ParamIsStepped
	return b
}

// Toggle makes the parameter a boolean switch.
func (b *Builder) Toggle() *Builder {
	b.param.Min = 0
	b.param.Max = 1
	b.param.Default = 0
	b.param.Flags |= clap.ParamIsStepped
	return b
}

// ReadOnly forbids host writes and automation.
func (b *Builder) ReadOnly() *Builder {
	b.param.Flags |= clap.ParamIsReadonly
	b.param.Flags &^= clap.ParamIsAutomatable
	return b
}

// Hidden keeps the parameter out of the host's generic UI.
func (b *Builder) Hidden() *Builder {
	b.param.Flags |= clap.ParamIsHidden
	return b
}

// Bypass marks this as the plugin's bypass parameter.
func (b *Builder) Bypass() *Builder {
	b.param.Flags |= clap.ParamIsBypass
	return b
}

// Periodic marks the range as wrapping around, like a phase control.
func (b *Builder) Periodic() *Builder {
	b.param.Flags |= clap.ParamIsPeriodic
	return b
}

// Formatter installs custom display formatting and parsing.
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.SetFormatter(format, parse)
	return b
}

// Build returns the parameter, initialized to its default.
func (b *Builder) Build() *Parameter {
	b.param.Reset()
	return b.param
}
