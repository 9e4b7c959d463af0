package engine

import (
	"strconv"

	"pixel-art/internal/algorithm"
	"pixel-art/internal/core"
	"pixel-art/internal/palette"
)

// Parameters returns the current settings grouped for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	cfg := e.cfg
	pp, ap := cfg.Palettes, cfg.Algorithms
	groups := []core.ParameterGroup{
		{
			Name: "Image",
			Params: []core.Parameter{
				intParam("w", "Width", cfg.Width),
				intParam("h", "Height", cfg.Height),
				intParam("pixel_size", "Pixel size", cfg.PixelSize),
			},
		},
		{
			Name: "Selection",
			Params: []core.Parameter{
				choiceParam("palette", "Palette", cfg.Palette.String(), palette.Names()),
				choiceParam("algorithm", "Algorithm", cfg.Algorithm.String(), algorithm.Names()),
				boolParam("advanced_stats", "Advanced stats", cfg.AdvancedStats),
				intParam("top_colors", "Top colors", cfg.TopColors),
			},
		},
		{
			Name: "Palettes",
			Params: []core.Parameter{
				floatParam("matrix_prob", "Matrix chance", pp.MatrixProb),
				intParam("murica_variance", "'Murica variance", pp.MuricaVariance),
				intParam("google_variance", "Google variance", pp.GoogleVariance),
			},
		},
		{
			Name: "Algorithms",
			Params: []core.Parameter{
				floatParam("sparse_prob", "Sparse keep chance", ap.SparseProb),
				floatParam("smear_prob", "Smear keep chance", ap.SmearProb),
				floatParam("smear_prob_adjust", "Smear pixel adjust", ap.SmearProbAdjust),
				floatParam("line_prob", "Line keep chance", ap.LineProb),
				floatParam("cascade_prob", "Cascade copy chance", ap.CascadeProb),
				floatParam("cascade_prob_adjust", "Cascade pixel adjust", ap.CascadeProbAdjust),
				floatParam("plaid_prob", "Plaid band chance", ap.PlaidProb),
				intParam("plaid_min_thick", "Plaid min thickness", ap.PlaidMinThick),
				intParam("plaid_max_thick", "Plaid max thickness", ap.PlaidMaxThick),
				intParam("plaid_min_gap", "Plaid gap", ap.PlaidMinGap),
				floatParam("plaid_opacity", "Plaid opacity", ap.PlaidOpacity),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the settings adjustable from the HUD. Palette and
// algorithm are stepped by index.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "palette", Label: "Palette", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(len(palette.All()) - 1), HasMin: true, HasMax: true},
		{Key: "algorithm", Label: "Algorithm", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(len(algorithm.All()) - 1), HasMin: true, HasMax: true},
		{Key: "pixel_size", Label: "Pixel size", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 16, Min: 1, HasMin: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 16, Min: 1, HasMin: true},
		{Key: "sparse_prob", Label: "Sparse keep chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "smear_prob", Label: "Smear keep chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "line_prob", Label: "Line keep chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "cascade_prob", Label: "Cascade copy chance", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "plaid_prob", Label: "Plaid band chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "plaid_opacity", Label: "Plaid opacity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting by key. Palette and algorithm
// take an index into Palettes and Algorithms.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "w":
		e.SetWidth(value)
	case "h":
		e.SetHeight(value)
	case "pixel_size":
		e.SetPixelSize(value)
	case "palette":
		if value < 0 || value >= len(palette.All()) {
			return false
		}
		e.cfg.Palette = palette.ID(value)
	case "algorithm":
		if value < 0 || value >= len(algorithm.All()) {
			return false
		}
		e.cfg.Algorithm = algorithm.ID(value)
	default:
		if !e.cfg.setInt(key, value) {
			return false
		}
		e.cfg = e.cfg.normalized()
	}
	return true
}

// SetFloatParameter updates a probability or opacity by key.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	return e.cfg.setFloat(key, value)
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
		Value: strconv.FormatFloat(value, 'f', -1, 64),
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

func choiceParam(key, label, value string, choices []string) core.Parameter {
	return core.Parameter{
		Key:     key,
		Label:   label,
		Type:    core.ParamTypeChoice,
		Value:   value,
		Choices: choices,
	}
}
