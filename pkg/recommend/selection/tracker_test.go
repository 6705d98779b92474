package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySelectionSynthesizesInput(t *testing.T) {
	tracker := NewTracker()

	result, err := tracker.ApplySelection(SlotWeather, "sunny")
	assert.NoError(t, err)
	assert.True(t, result.Synthesized)
	assert.Equal(t, "Weather: sunny", result.Input)
	assert.Equal(t, InputSynthesized, tracker.InputState)

	result, err = tracker.ApplySelection(SlotActivity, "running")
	assert.NoError(t, err)
	assert.True(t, result.Synthesized)
	assert.Equal(t, "Weather: sunny Activity: running", result.Input)
}

func TestApplySelectionReplacesSlot(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.ApplySelection(SlotWeather, "sunny")
	assert.NoError(t, err)
	result, err := tracker.ApplySelection(SlotWeather, "rainy")
	assert.NoError(t, err)

	// Slots replace, they never accumulate
	assert.Equal(t, "rainy", tracker.Weather)
	assert.Equal(t, "Weather: rainy", result.Input)
}

func TestApplySelectionStopsAfterUserEdit(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.ApplySelection(SlotWeather, "sunny")
	assert.NoError(t, err)

	tracker.SetInput("my own words about today")
	assert.Equal(t, InputEdited, tracker.InputState)

	result, err := tracker.ApplySelection(SlotActivity, "reading")
	assert.NoError(t, err)
	assert.False(t, result.Synthesized)
	// The slot updated, the user's text survived
	assert.Equal(t, "reading", tracker.Activity)
	assert.Equal(t, "my own words about today", tracker.Input)
}

func TestClearInputResetsSynthesis(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.ApplySelection(SlotWeather, "snowy")
	assert.NoError(t, err)
	tracker.SetInput("typed over it")
	tracker.SetInput("")
	assert.Equal(t, InputEmpty, tracker.InputState)

	result, err := tracker.ApplySelection(SlotActivity, "cooking")
	assert.NoError(t, err)
	assert.True(t, result.Synthesized)
	assert.Equal(t, "Weather: snowy Activity: cooking", result.Input)
}

func TestSetInputEchoOfSynthesizedIsNoop(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.ApplySelection(SlotWeather, "cloudy")
	assert.NoError(t, err)

	tracker.SetInput("Weather: cloudy")
	assert.Equal(t, InputSynthesized, tracker.InputState)

	// A later selection still rewrites the field
	result, err := tracker.ApplySelection(SlotActivity, "gaming")
	assert.NoError(t, err)
	assert.True(t, result.Synthesized)
	assert.Equal(t, "Weather: cloudy Activity: gaming", result.Input)
}

func TestApplySelectionRejectsUnknownTags(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.ApplySelection(SlotWeather, "hailing")
	assert.Error(t, err)
	_, err = tracker.ApplySelection(SlotActivity, "skydiving")
	assert.Error(t, err)
	_, err = tracker.ApplySelection("mood", "happy")
	assert.Error(t, err)

	// A rejected event leaves the tracker untouched
	assert.Equal(t, "", tracker.Weather)
	assert.Equal(t, "", tracker.Activity)
	assert.Equal(t, InputEmpty, tracker.InputState)
}

func TestRepeatSelectionIsIdempotent(t *testing.T) {
	tracker := NewTracker()

	first, err := tracker.ApplySelection(SlotWeather, "sunny")
	assert.NoError(t, err)
	second, err := tracker.ApplySelection(SlotWeather, "sunny")
	assert.NoError(t, err)

	assert.Equal(t, first.Input, second.Input)
	assert.Equal(t, "Weather: sunny", tracker.Input)
}
