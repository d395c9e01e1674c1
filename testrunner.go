package slides

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Node   string  `json:"node,omitempty"`
	Index  int     `json:"index,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// validActions are the actions a script step may name.
var validActions = map[string]bool{
	"click":      true,
	"wait":       true,
	"settle":     true,
	"next":       true,
	"prev":       true,
	"goto":       true,
	"start":      true,
	"stop":       true,
	"screenshot": true,
}

// TestRunner sequences injected input, navigation and screenshots across
// frames for automated visual testing. Attach to a Widget via SetTestRunner.
//
//	{"steps": [
//	  {"action": "settle"},
//	  {"action": "screenshot", "label": "first"},
//	  {"action": "click", "node": "next"},
//	  {"action": "settle"},
//	  {"action": "goto", "index": 3},
//	  {"action": "wait", "frames": 30}
//	]}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Widget via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the widget. The runner steps once
// per frame, before input is processed.
func (w *Widget) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(w *Widget) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling {
		if w.Transitioning() {
			return
		}
		r.settling = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		// Capture a settled slide, never a frame mid-transition.
		if w.Transitioning() {
			r.cursor--
			r.settling = true
			return
		}
		w.Screenshot(st.Label)
	case "click":
		if st.Node != "" {
			if n := w.root.Find(st.Node); n != nil {
				w.InjectClickNode(n)
			} else {
				w.logf("test script: no node %q", st.Node)
			}
		} else {
			w.InjectClick(st.X, st.Y)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = w.Transitioning()
	case "next":
		w.Next()
	case "prev":
		w.Prev()
	case "goto":
		w.GoTo(st.Index)
	case "start":
		w.Start()
	case "stop":
		w.Stop()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && len(w.injectQueue) == 0 {
		r.done = true
	}
}
