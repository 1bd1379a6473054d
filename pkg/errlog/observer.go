package errlog

import (
	"github.com/trellis-ui/trellis/pkg/component"
)

// TreeObserver returns an observer that records orphaned attachments. Wire
// it into a tree with component.WithObserver.
func TreeObserver(log *Log) component.Observer {
	return component.ObserverFuncs{
		OnAttached: func(child, parent component.Instance, placed bool) {
			if placed {
				return
			}
			log.Recordf("attach", "orphaned %s under %s",
				describe(child), describe(parent))
		},
	}
}

// describe names an instance for log entries by the most specific
// identifier its definition carries.
func describe(inst component.Instance) string {
	if inst == nil {
		return "<nil>"
	}
	def := inst.Definition()
	if def == nil {
		return "<anonymous>"
	}
	switch {
	case def.Name != "":
		return def.Name
	case def.Type != "":
		return "type:" + def.Type
	case def.Tag != "":
		return "<" + def.Tag + ">"
	default:
		return "<anonymous>"
	}
}
