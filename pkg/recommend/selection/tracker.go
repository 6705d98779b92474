package selection

import (
	"fmt"
	"sync"

	"conevibes-be/pkg/recommend/resolver"
)

// Slot types accepted by ApplySelection.
const (
	SlotWeather  = "weather"
	SlotActivity = "activity"
)

// InputState tracks who last wrote the chat input field.
type InputState string

const (
	InputEmpty       InputState = "EMPTY"
	InputSynthesized InputState = "SYNTHESIZED"
	InputEdited      InputState = "EDITED"
)

// WeatherTags is the fixed weather vocabulary.
var WeatherTags = []string{"sunny", "rainy", "snowy", "cloudy", "thunder", "stormy"}

// ActivityTags is the fixed activity vocabulary.
var ActivityTags = []string{
	"working", "exercising", "running", "commuting", "socializing",
	"cooking", "reading", "shopping", "gaming", "sleeping", "cleaning",
}

// Tracker owns the two independent selection slots for one session and the
// write-once synthesis of the chat input. It is a pure state machine: it
// never reads ambient UI state, all transitions arrive as explicit events.
//
// Slots replace, never accumulate; re-selecting the current value is a no-op
// state-wise but still yields a change result. While the input is
// machine-written (EMPTY or SYNTHESIZED), a selection change rewrites the
// synthesized text; once the user has edited the field the tracker stops
// touching it until the field is cleared again.
//
// One tracker is shared by every request for its session, so ApplySelection
// and SetInput serialize on an internal lock and return the state as it was
// at the end of the call. Callers should read the ChangeResult rather than
// the fields when other requests may be in flight.
type Tracker struct {
	mu         sync.Mutex
	Weather    string     `json:"weather"`
	Activity   string     `json:"activity"`
	Input      string     `json:"input"`
	InputState InputState `json:"input_state"`
}

// ChangeResult is the change notification fired by every selection event.
type ChangeResult struct {
	Weather     string
	Activity    string
	Input       string
	State       InputState
	Synthesized bool // the input was (re)written by this event
}

func NewTracker() *Tracker {
	return &Tracker{InputState: InputEmpty}
}

// ApplySelection sets slot slotType to value unconditionally and synthesizes
// the input when the field is not user-edited.
func (t *Tracker) ApplySelection(slotType, value string) (ChangeResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch slotType {
	case SlotWeather:
		if !contains(WeatherTags, value) {
			return ChangeResult{}, fmt.Errorf("unknown weather tag: %q", value)
		}
		t.Weather = value
	case SlotActivity:
		if !contains(ActivityTags, value) {
			return ChangeResult{}, fmt.Errorf("unknown activity tag: %q", value)
		}
		t.Activity = value
	default:
		return ChangeResult{}, fmt.Errorf("unknown selection type: %q", slotType)
	}

	result := ChangeResult{Weather: t.Weather, Activity: t.Activity, Input: t.Input, State: t.InputState}

	if t.InputState == InputEdited {
		return result, nil
	}

	fragment := resolver.Fragment(t.Weather, t.Activity)
	if fragment == "" {
		return result, nil
	}

	t.Input = fragment
	t.InputState = InputSynthesized
	result.Input = fragment
	result.State = InputSynthesized
	result.Synthesized = true
	return result, nil
}

// SetInput reports the UI's input field content back to the tracker. Clearing
// the field resets the machine so a later selection can synthesize again; any
// other text that the tracker did not write itself marks the field as edited.
func (t *Tracker) SetInput(text string) ChangeResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case text == "":
		t.Input = ""
		t.InputState = InputEmpty
	case t.InputState == InputSynthesized && text == t.Input:
		// UI echoing back the synthesized value, nothing changed
	default:
		t.Input = text
		t.InputState = InputEdited
	}

	return ChangeResult{Weather: t.Weather, Activity: t.Activity, Input: t.Input, State: t.InputState}
}

func contains(tags []string, value string) bool {
	for _, tag := range tags {
		if tag == value {
			return true
		}
	}
	return false
}
