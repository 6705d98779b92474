package dto

import "github.com/google/uuid"

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

// ApplySelectionRequest is the onSelectionChange hook: the UI reports a tap
// on a weather or activity button.
type ApplySelectionRequest struct {
	Type  string `json:"type" validate:"required,oneof=weather activity"`
	Value string `json:"value" validate:"required"`
}

// SelectionResponse reflects the tracker state after a change event.
// Synthesized is true when this event wrote the input field.
type SelectionResponse struct {
	Weather     string `json:"weather,omitempty"`
	Activity    string `json:"activity,omitempty"`
	Input       string `json:"input"`
	InputState  string `json:"input_state"`
	Synthesized bool   `json:"synthesized"`
}

// UpdateInputRequest reports the current content of the input field back to
// the tracker (typing or clearing).
type UpdateInputRequest struct {
	Input string `json:"input"`
}
