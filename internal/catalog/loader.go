package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"conevibes-be/internal/entity"
	recommend "conevibes-be/pkg/recommend/catalog"
)

// Load reads the song catalog from a JSON file, normalizes its tag
// vocabulary, and validates every record. A malformed record is fatal: the
// catalog is loaded once at startup and never partially accepted.
func Load(path string) ([]entity.Song, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var songs []entity.Song
	if err := json.Unmarshal(raw, &songs); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(songs) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no songs", path)
	}

	for i := range songs {
		normalize(&songs[i])
		if err := validate(i, &songs[i]); err != nil {
			return nil, err
		}
	}
	return songs, nil
}

// normalize lower-cases and trims every tag so exact-match filtering and
// serialization stay deterministic.
func normalize(song *entity.Song) {
	song.Mood = normalizeTags(song.Mood)
	song.TimeOfDay = normalizeTags(song.TimeOfDay)
	song.Weather = normalizeTags(song.Weather)
	song.Season = normalizeTags(song.Season)
	song.Activity = normalizeTags(song.Activity)
	song.Occasions = normalizeTags(song.Occasions)
	song.Energy = strings.ToLower(strings.TrimSpace(song.Energy))
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			normalized = append(normalized, tag)
		}
	}
	return normalized
}

func validate(index int, song *entity.Song) error {
	switch {
	case song.Id == "":
		return &recommend.IntegrityError{Index: index, Id: song.Id, Field: "id"}
	case song.Artist == "":
		return &recommend.IntegrityError{Index: index, Id: song.Id, Field: "artist"}
	case song.SongTitle == "":
		return &recommend.IntegrityError{Index: index, Id: song.Id, Field: "songTitle"}
	case len(song.Mood) == 0:
		return &recommend.IntegrityError{Index: index, Id: song.Id, Field: "mood"}
	}
	return nil
}
