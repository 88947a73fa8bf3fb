package willowui

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Steps  int    `json:"steps,omitempty"`
	Key    string `json:"key,omitempty"`
	Text   string `json:"text,omitempty"`
	Window string `json:"window,omitempty"`
	Label  string `json:"label,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// InputScript replays scripted input across frames for automated UI tests
// and demos. Call Step once per frame before Context.Tick.
//
//	{"steps": [
//	  {"action": "open", "window": "MAIN_MENU"},
//	  {"action": "click", "x": 100, "y": 40},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "menu"},
//	  {"action": "key", "key": "escape"}
//	]}
type InputScript struct {
	// OnScreenshot is called by "screenshot" steps. Hosts that can capture
	// the frame set it; without it the step only advances the script.
	OnScreenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*InputScript, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "down", "up", "click", "drag", "wheel", "text", "wait", "open", "close", "screenshot":
		case "key":
			if _, err := ParseKey(st.Key); err != nil {
				return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// Done reports whether every step has run and its input was dispatched.
func (s *InputScript) Done() bool { return s.done }

// Err returns the first error raised by an "open" step.
func (s *InputScript) Err() error { return s.err }

// Step advances the script by one frame.
func (s *InputScript) Step(ui *Context) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if ui.PendingInjected() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	p := Point{st.X, st.Y}

	switch st.Action {
	case "move":
		ui.InjectMove(p)
	case "down":
		ui.InjectPress(p)
	case "up":
		ui.InjectRelease(p)
	case "click":
		ui.InjectClick(p)
	case "drag":
		ui.InjectDrag(p, Point{st.ToX, st.ToY}, st.Frames)
	case "wheel":
		steps := st.Steps
		if steps == 0 {
			steps = 1
		}
		ui.InjectWheel(p, steps)
	case "key":
		k, _ := ParseKey(st.Key)
		ui.InjectKey(k, 0)
	case "text":
		ui.InjectText(st.Text)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "open":
		if _, err := ui.OpenWindow(st.Window, nil); err != nil && s.err == nil {
			s.err = err
		}
	case "close":
		ui.CloseWindow()
	case "screenshot":
		if s.OnScreenshot != nil {
			s.OnScreenshot(st.Label)
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && ui.PendingInjected() == 0 {
		s.done = true
	}
}

// RunScript steps s and ticks ui until the script is done or maxFrames
// frames have run. It returns the number of frames run.
func RunScript(ui *Context, s *InputScript, maxFrames int) int {
	frames := 0
	for !s.Done() && frames < maxFrames {
		s.Step(ui)
		ui.Tick()
		frames++
	}
	return frames
}
