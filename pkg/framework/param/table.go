package param

import (
	"github.com/justyntemme/clapgo/pkg/clap"
	"github.com/justyntemme/clapgo/pkg/event"
)

// Table builds the raw parameters extension over this registry. The
// returned table is immutable; register it through the plugin's extension
// builder.
func (r *Registry) Table() *clap.PluginParamsTable {
	return &clap.PluginParamsTable{
		Count: func(_ *clap.Plugin) uint32 {
			return r.Count()
		},

		GetInfo: func(_ *clap.Plugin, index uint32, info *clap.ParamInfoRecord) bool {
			p := r.GetByIndex(index)
			if p == nil || info == nil {
				return false
			}
			p.Info(info)
			return true
		},

		GetValue: func(_ *clap.Plugin, id clap.ID, out *float64) bool {
			p := r.Get(id)
			if p == nil || out == nil {
				return false
			}
			*out = p.Value()
			return true
		},

		Flush: func(_ *clap.Plugin, in *clap.InputEvents, out *clap.OutputEvents) {
			r.ApplyEvents(event.NewInput(in))
		},
	}
}

// ApplyEvents applies every parameter value and modulation event in the
// list. Events for unknown parameters and non-parameter events are skipped.
func (r *Registry) ApplyEvents(in event.Input) {
	in.Each(func(u event.Unknown) {
		switch u.Type() {
		case clap.EventParamValue:
			ev, err := u.AsParamValue()
			if err != nil {
				return
			}
			if p := r.Get(ev.ParamID()); p != nil {
				p.SetValue(ev.Value())
			}
		case clap.EventParamMod:
			ev, err := u.AsParamMod()
			if err != nil {
				return
			}
			if p := r.Get(ev.ParamID()); p != nil {
				p.SetModulation(ev.Amount())
			}
		}
	})
}
