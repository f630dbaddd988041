package rope

import (
	"strconv"

	"knot-chain/internal/core"
)

// Parameters reports the configuration and live counters of the world.
func (w *World) Parameters() core.ParameterSnapshot {
	streamSource := "random"
	if w.fixed != nil {
		streamSource = "fixed"
	}
	groups := []core.ParameterGroup{
		{
			Name: "Viewport",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
			},
		},
		{
			Name: "Chain",
			Params: []core.Parameter{
				intParam("knots", "Knots", w.cfg.Knots),
			},
		},
		{
			Name: "Stream",
			Params: []core.Parameter{
				{Key: "source", Label: "Source", Type: core.ParamTypeString, Value: streamSource},
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("commands", "Commands", len(w.cmds)),
				intParam("max_step", "Max step", w.cfg.MaxStep),
				boolParam("done", "Done", w.Done()),
			},
		},
		{
			Name: "Counters",
			Params: []core.Parameter{
				intParam("steps", "Elementary steps", w.sim.Steps()),
				intParam("early_exits", "Early exits", w.sim.EarlyExits()),
				{
					Key:         "visited",
					Label:       "Tail cells visited",
					Type:        core.ParamTypeInt,
					Value:       strconv.Itoa(w.sim.Visited().Len()),
					Description: "distinct cells the tail has occupied, origin included",
				},
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
