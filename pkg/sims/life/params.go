package life

import (
	"strconv"

	"colorlife/internal/core"
)

// Parameters reports the field dimensions, replay state and statistics.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	edits := 0
	for _, list := range s.edits {
		edits += len(list)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", s.field.Width()),
				intParam("h", "Height", s.field.Height()),
			},
		},
		{
			Name: "Replay",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.generation),
				intParam("anchor", "Starting cells", len(s.anchor)),
				intParam("edits", "Manual edits", edits),
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				intParam("living", "Living cells", s.field.Living()),
				floatParam("coverage", "Coverage %", s.field.Coverage()),
			},
		},
	}}
}

// ParameterControls exposes the generation as a HUD control.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "generation", Label: "Generation", Step: 1, Min: 1, HasMin: true},
		{Key: "generation", Label: "Generation x10", Step: 10, Min: 1, HasMin: true},
	}
}

// SetIntParameter handles HUD adjustments. Setting "generation" travels to
// that generation.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "generation":
		if value <= 0 {
			return false
		}
		s.GoToGeneration(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 1, 64),
	}
}
