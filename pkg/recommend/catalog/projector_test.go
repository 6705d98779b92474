package catalog

import (
	"encoding/json"
	"strings"
	"testing"

	"conevibes-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func sampleSongs() []entity.Song {
	return []entity.Song{
		{
			Id:              "song-a",
			Artist:          "Artist A",
			SongTitle:       "Title A",
			Album:           "Hidden Album",
			Year:            1999,
			CoverURL:        "https://example.com/a.jpg",
			Mood:            []string{"happy"},
			TimeOfDay:       []string{"morning"},
			Weather:         []string{"sunny"},
			Season:          []string{"summer"},
			Activity:        []string{"running"},
			Energy:          "high",
			Occasions:       []string{"workout"},
			EmotionalImpact: "Gets you moving",
		},
		{
			Id:        "song-b",
			Artist:    "Artist B",
			SongTitle: "Title B",
			Mood:      []string{"calm"},
			Energy:    "low",
		},
	}
}

func TestProjectMasksPresentationFields(t *testing.T) {
	projections, err := Project(sampleSongs())
	assert.NoError(t, err)
	assert.Len(t, projections, 2)

	out, err := Serialize(projections)
	assert.NoError(t, err)

	// Matching attributes survive, presentation fields never reach the output
	assert.Contains(t, out, `"songTitle": "Title A"`)
	assert.Contains(t, out, `"emotionalImpact": "Gets you moving"`)
	assert.NotContains(t, out, "Hidden Album")
	assert.NotContains(t, out, "1999")
	assert.NotContains(t, out, "example.com")
	assert.NotContains(t, out, "song-a")
}

func TestProjectPreservesOrder(t *testing.T) {
	projections, err := Project(sampleSongs())
	assert.NoError(t, err)

	assert.Equal(t, "Title A", projections[0].SongTitle)
	assert.Equal(t, "Title B", projections[1].SongTitle)
}

func TestProjectMalformedRecordAborts(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*entity.Song)
		wantField string
	}{
		{"missing artist", func(s *entity.Song) { s.Artist = "" }, "artist"},
		{"missing title", func(s *entity.Song) { s.SongTitle = "" }, "songTitle"},
		{"missing mood", func(s *entity.Song) { s.Mood = nil }, "mood"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			songs := sampleSongs()
			tt.mutate(&songs[1])

			projections, err := Project(songs)
			assert.Nil(t, projections)

			var integrityErr *IntegrityError
			assert.ErrorAs(t, err, &integrityErr)
			assert.Equal(t, 1, integrityErr.Index)
			assert.Equal(t, tt.wantField, integrityErr.Field)
		})
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	projections, err := Project(sampleSongs())
	assert.NoError(t, err)

	first, err := Serialize(projections)
	assert.NoError(t, err)
	second, err := Serialize(projections)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSerializeKeyNames(t *testing.T) {
	projections, err := Project(sampleSongs())
	assert.NoError(t, err)
	out, err := Serialize(projections)
	assert.NoError(t, err)

	var decoded []map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))

	wantKeys := []string{
		"artist", "songTitle", "mood", "timeOfDay", "weather",
		"season", "activity", "energy", "occasions", "emotionalImpact",
	}
	for _, key := range wantKeys {
		if !strings.Contains(out, `"`+key+`"`) {
			t.Errorf("serialized output missing key %q", key)
		}
	}
	assert.Len(t, decoded[0], len(wantKeys))
}
