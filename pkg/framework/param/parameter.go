// Package param manages plugin parameters: declaration, lock-free value
// storage for the audio thread, and the raw table that exposes them
// through the parameters extension.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/justyntemme/clapgo/pkg/clap"
)

// Parameter is one automatable value. Values are plain (in [Min, Max]),
// never normalized; hosts and plugins exchange them as-is.
type Parameter struct {
	ID      clap.ID
	Name    string
	Module  string
	Unit    string
	Min     float64
	Max     float64
	Default float64
	Flags   clap.ParamInfoFlags

	// Atomic bit patterns for lock-free audio-thread access.
	value      uint64
	modulation uint64

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Value returns the current plain value.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(atomic.LoadUint64(&p.value))
}

// SetValue stores a plain value, clamped to the parameter's range.
// Safe from any thread.
func (p *Parameter) SetValue(value float64) {
	atomic.StoreUint64(&p.value, math.Float64bits(p.Clamp(value)))
}

// Modulation returns the current modulation offset.
func (p *Parameter) Modulation() float64 {
	return math.Float64frombits(atomic.LoadUint64(&p.modulation))
}

// SetModulation stores a modulation offset. The offset rides on top of the
// value without changing it; clearing modulation restores the plain value.
func (p *Parameter) SetModulation(amount float64) {
	atomic.StoreUint64(&p.modulation, math.Float64bits(amount))
}

// ModulatedValue returns the effective value: plain value plus modulation,
// clamped to the range.
func (p *Parameter) ModulatedValue() float64 {
	return p.Clamp(p.Value() + p.Modulation())
}

// Reset restores the default value and clears modulation.
func (p *Parameter) Reset() {
	p.SetValue(p.Default)
	p.SetModulation(0)
}

// Clamp bounds a plain value to [Min, Max].
func (p *Parameter) Clamp(value float64) float64 {
	if value < p.Min {
		return p.Min
	}
	if value > p.Max {
		return p.Max
	}
	return value
}

// Stepped reports whether the parameter takes discrete values.
func (p *Parameter) Stepped() bool {
	return p.Flags&clap.ParamIsStepped != 0
}

// SetFormatter installs custom display formatting and parsing.
func (p *Parameter) SetFormatter(format func(float64) string, parse func(string) (float64, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// FormatValue renders a plain value for display.
func (p *Parameter) FormatValue(value float64) string {
	if p.formatFunc != nil {
		return p.formatFunc(value)
	}
	if p.Stepped() {
		return fmt.Sprintf("%.0f", value)
	}
	if p.Unit != "" {
		return fmt.Sprintf("%.2f %s", value, p.Unit)
	}
	return fmt.Sprintf("%.2f", value)
}

// ParseValue reads a plain value from display text.
func (p *Parameter) ParseValue(str string) (float64, error) {
	if p.parseFunc != nil {
		return p.parseFunc(str)
	}
	return strconv.ParseFloat(str, 64)
}

// Info fills one host-facing description record. Name and Module are
// truncated when they overflow their fixed buffers.
func (p *Parameter) Info(rec *clap.ParamInfoRecord) {
	*rec = clap.ParamInfoRecord{
		ID:           p.ID,
		Flags:        p.Flags,
		MinValue:     p.Min,
		MaxValue:     p.Max,
		DefaultValue: p.Default,
	}
	copyTruncated(rec.Name[:], p.Name)
	copyTruncated(rec.Module[:], p.Module)
}

// copyTruncated writes s into a fixed buffer, always leaving room for the
// terminator.
func copyTruncated(dst []byte, s string) {
	n := copy(dst[:len(dst)-1], s)
	dst[n] = 0
}
