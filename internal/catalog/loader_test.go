package catalog

import (
	"os"
	"path/filepath"
	"testing"

	recommend "conevibes-be/pkg/recommend/catalog"

	"github.com/stretchr/testify/assert"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.json")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadNormalizesTags(t *testing.T) {
	path := writeCatalog(t, `[
		{
			"id": "s1",
			"artist": "Artist",
			"songTitle": "Title",
			"mood": [" Happy ", "CALM", ""],
			"weather": ["Sunny"],
			"energy": " High "
		}
	]`)

	songs, err := Load(path)
	assert.NoError(t, err)
	assert.Len(t, songs, 1)
	assert.Equal(t, []string{"happy", "calm"}, songs[0].Mood)
	assert.Equal(t, []string{"sunny"}, songs[0].Weather)
	assert.Equal(t, "high", songs[0].Energy)
}

func TestLoadRejectsMalformedRecord(t *testing.T) {
	path := writeCatalog(t, `[
		{"id": "ok", "artist": "A", "songTitle": "T", "mood": ["happy"]},
		{"id": "bad", "artist": "", "songTitle": "T2", "mood": ["sad"]}
	]`)

	songs, err := Load(path)
	assert.Nil(t, songs)

	var integrityErr *recommend.IntegrityError
	assert.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, 1, integrityErr.Index)
	assert.Equal(t, "artist", integrityErr.Field)
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := writeCatalog(t, `[]`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeCatalog(t, `{not json`)
	_, err := Load(path)
	assert.Error(t, err)
}
