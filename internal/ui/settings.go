package ui

import (
	"math"
	"slices"
	"strconv"

	"pixel-art/internal/core"
)

// Settings is the state the settings panel reads and edits.
type Settings interface {
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// setting is one row of the settings panel.
type setting struct {
	core.ParameterControl
	value float64
	text  string
	known bool
}

func newSettings(s Settings) []setting {
	controls := s.ParameterControls()
	rows := make([]setting, len(controls))
	for i, ctrl := range controls {
		rows[i] = setting{ParameterControl: ctrl, text: "--"}
	}
	return rows
}

func syncSettings(rows []setting, snap core.ParameterSnapshot) {
	for i := range rows {
		rows[i].read(snap)
	}
}

// read loads the current value from snap. Choice parameters resolve to their
// index so they step like integers.
func (r *setting) read(snap core.ParameterSnapshot) {
	r.known, r.text = false, "--"
	p, ok := snap.Find(r.Key)
	if !ok {
		return
	}
	if p.Type == core.ParamTypeChoice {
		idx := slices.Index(p.Choices, p.Value)
		if idx < 0 {
			return
		}
		r.value, r.text, r.known = float64(idx), p.Value, true
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	r.value, r.text, r.known = v, r.format(v), true
}

func (r setting) step() float64 {
	switch {
	case r.Type == core.ParamTypeInt:
		return max(math.Round(r.Step), 1)
	case r.Step > 0:
		return r.Step
	}
	return 0.05
}

// next returns the value one step in direction dir, clamped to the control's
// bounds, and whether that differs from the current value.
func (r setting) next(dir int) (float64, bool) {
	if !r.known || dir == 0 {
		return r.value, false
	}
	v := r.value + float64(dir)*r.step()
	if r.HasMin {
		v = max(v, r.Min)
	}
	if r.HasMax {
		v = min(v, r.Max)
	}
	return v, math.Abs(v-r.value) > 1e-9
}

// adjust moves the setting one step on s and reports whether s accepted it.
func (r *setting) adjust(s Settings, dir int) bool {
	v, ok := r.next(dir)
	if !ok {
		return false
	}
	switch r.Type {
	case core.ParamTypeInt:
		ok = s.SetIntParameter(r.Key, int(math.Round(v)))
	case core.ParamTypeFloat:
		ok = s.SetFloatParameter(r.Key, v)
	default:
		ok = false
	}
	if ok {
		r.value, r.text = v, r.format(v)
	}
	return ok
}

func (r setting) format(v float64) string {
	if r.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch step := r.step(); {
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
