// Package ui draws the parameter panel beside the simulation view.
package ui

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"unicode"

	"sand-ca/internal/core"
)

// Control describes an integer parameter the HUD can step with +/- buttons.
type Control struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

type controlState struct {
	control  Control
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	textLine       = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

func newControlStates(controls []Control, width int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// refresh copies current values from snap into the control states.
func refresh(states []controlState, snap core.ParameterSnapshot) {
	values := map[string]string{}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			values[p.Key] = p.Value
		}
	}
	for i := range states {
		s := &states[i]
		v, err := strconv.Atoi(values[s.control.Key])
		s.hasValue = err == nil
		s.value = v
	}
}

// target returns the value a button press in direction would produce, and
// whether it differs from the current one.
func (s *controlState) target(direction int) (int, bool) {
	if !s.hasValue || direction == 0 {
		return s.value, false
	}
	step := s.control.Step
	if step <= 0 {
		step = 1
	}
	v := s.value + direction*step
	if v < s.control.Min {
		v = s.control.Min
	}
	if s.control.Max > s.control.Min && v > s.control.Max {
		v = s.control.Max
	}
	return v, v != s.value
}

// hit returns the control and direction under (x, y), in panel coordinates.
func hit(states []controlState, x, y int) (int, int, bool) {
	for i := range states {
		if pointInRect(x, y, states[i].minusRect) {
			return i, -1, true
		}
		if pointInRect(x, y, states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// infoLines flattens the snapshot into "Label: value" lines with group
// headings, skipping keys already shown as controls.
func infoLines(snap core.ParameterSnapshot, skip []controlState) []string {
	hidden := map[string]bool{}
	for _, s := range skip {
		hidden[s.control.Key] = true
	}
	var lines []string
	for _, group := range snap.Groups {
		var params []string
		for _, p := range group.Params {
			if hidden[p.Key] {
				continue
			}
			params = append(params, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
		if len(params) == 0 {
			continue
		}
		lines = append(lines, group.Name)
		lines = append(lines, params...)
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := []rune(sim.Name())
	name[0] = unicode.ToUpper(name[0])
	return strings.TrimSpace(string(name)) + " Controls"
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
