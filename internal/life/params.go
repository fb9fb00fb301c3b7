package life

import (
	"strconv"

	"lifepaint/internal/core"
)

// Parameters reports the current settings for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	size := s.grid.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				textParam("border", "Border", s.topo.Border().String()),
				boolParam("grid", "Grid lines", s.cfg.GridLines),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				textParam("rules", "Rules", s.cfg.Rules.String()),
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				intParam("speed", "Speed (ms)", s.Speed()),
				boolParam("running", "Running", s.Running()),
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.Population()),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed (ms)", Step: 10, Min: 0, Max: MaxSpeedMS},
		{Key: "w", Label: "Width", Step: 10, Min: core.MinDim, Max: core.MaxDim},
		{Key: "h", Label: "Height", Step: 10, Min: core.MinDim, Max: core.MaxDim},
	}
}

// SetIntParameter applies a HUD adjustment. Resizing clears the grid.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	size := s.grid.Size()
	switch key {
	case "speed":
		s.SetSpeed(value)
	case "w":
		s.Resize(value, size.H)
	case "h":
		s.Resize(size.W, value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
