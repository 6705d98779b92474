package catalog

import (
	"encoding/json"
	"fmt"

	"conevibes-be/internal/entity"
)

// Projection is the field-masked view of a song containing only the
// attributes the model needs to pick a match. Key names and order are fixed;
// the prompt serialization must stay diff-able across requests.
type Projection struct {
	Artist          string   `json:"artist"`
	SongTitle       string   `json:"songTitle"`
	Mood            []string `json:"mood"`
	TimeOfDay       []string `json:"timeOfDay"`
	Weather         []string `json:"weather"`
	Season          []string `json:"season"`
	Activity        []string `json:"activity"`
	Energy          string   `json:"energy"`
	Occasions       []string `json:"occasions"`
	EmotionalImpact string   `json:"emotionalImpact"`
}

// IntegrityError reports a malformed catalog record. It is fatal at load
// time and never surfaced per-request.
type IntegrityError struct {
	Index int
	Id    string
	Field string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("catalog record %d (%q): missing required field %s", e.Index, e.Id, e.Field)
}

// Project masks every song down to its matching attributes. Output order and
// cardinality match the input exactly; a malformed record aborts the whole
// projection rather than producing a partial one.
func Project(songs []entity.Song) ([]Projection, error) {
	projections := make([]Projection, 0, len(songs))
	for i, song := range songs {
		switch {
		case song.Artist == "":
			return nil, &IntegrityError{Index: i, Id: song.Id, Field: "artist"}
		case song.SongTitle == "":
			return nil, &IntegrityError{Index: i, Id: song.Id, Field: "songTitle"}
		case len(song.Mood) == 0:
			return nil, &IntegrityError{Index: i, Id: song.Id, Field: "mood"}
		}

		projections = append(projections, Projection{
			Artist:          song.Artist,
			SongTitle:       song.SongTitle,
			Mood:            song.Mood,
			TimeOfDay:       song.TimeOfDay,
			Weather:         song.Weather,
			Season:          song.Season,
			Activity:        song.Activity,
			Energy:          song.Energy,
			Occasions:       song.Occasions,
			EmotionalImpact: song.EmotionalImpact,
		})
	}
	return projections, nil
}

// Serialize renders the projection as indented JSON. Field order follows the
// struct declaration, so the output is byte-identical for identical input.
func Serialize(projections []Projection) (string, error) {
	raw, err := json.MarshalIndent(projections, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize catalog projection: %w", err)
	}
	return string(raw), nil
}
