package prompt

import (
	"strings"
	"testing"

	"conevibes-be/internal/entity"
	"conevibes-be/pkg/recommend/catalog"

	"github.com/stretchr/testify/assert"
)

func testComposer(t *testing.T) *Composer {
	t.Helper()
	projections, err := catalog.Project([]entity.Song{
		{Id: "a", Artist: "Artist A", SongTitle: "Title A", Mood: []string{"happy"}},
		{Id: "b", Artist: "Artist B", SongTitle: "Title B", Mood: []string{"calm"}},
	})
	assert.NoError(t, err)
	composer, err := NewComposer(projections)
	assert.NoError(t, err)
	return composer
}

func TestComposeStructure(t *testing.T) {
	composer := testComposer(t)

	msg := composer.Compose("Weather: rainy Activity: reading")
	assert.Equal(t, "system", msg.Role)

	// All sections present, in order
	persona := strings.Index(msg.Content, "You are an AI music assistant")
	instructions := strings.Index(msg.Content, "### SONG RECOMMENDATION INSTRUCTIONS")
	songs := strings.Index(msg.Content, "### AVAILABLE SONGS")
	contextBlock := strings.Index(msg.Content, "### CONTEXT FROM USER QUERY")
	reminder := strings.Index(msg.Content, "Remember to only recommend songs")

	assert.True(t, persona >= 0 && persona < instructions)
	assert.True(t, instructions < songs)
	assert.True(t, songs < contextBlock)
	assert.True(t, contextBlock < reminder)

	assert.Contains(t, msg.Content, "Weather: rainy Activity: reading")
}

func TestComposeGroundsOnCatalog(t *testing.T) {
	composer := testComposer(t)

	msg := composer.Compose("")
	assert.Contains(t, msg.Content, `"songTitle": "Title A"`)
	assert.Contains(t, msg.Content, `"songTitle": "Title B"`)
	assert.Contains(t, msg.Content, "select ONE most appropriate song")
}

func TestComposeEmptyContextOmitsSection(t *testing.T) {
	composer := testComposer(t)

	msg := composer.Compose("")
	assert.NotContains(t, msg.Content, "### CONTEXT FROM USER QUERY")
	// The reminder still closes the prompt
	assert.Contains(t, msg.Content, "Remember to only recommend songs")
}

func TestComposeCatalogGrounding(t *testing.T) {
	projections, err := catalog.Project([]entity.Song{
		{Id: "h", Artist: "Happy Artist", SongTitle: "Happy Song", Mood: []string{"happy"}},
		{Id: "s", Artist: "Sad Artist", SongTitle: "Sad Song", Mood: []string{"sad"}},
		{Id: "e", Artist: "Energetic Artist", SongTitle: "Energetic Song", Mood: []string{"energetic"}},
	})
	assert.NoError(t, err)
	composer, err := NewComposer(projections)
	assert.NoError(t, err)

	msg := composer.Compose("feeling very energetic today")

	// Every catalog song appears in the prompt regardless of the query
	for _, pair := range [][2]string{
		{"Happy Artist", "Happy Song"},
		{"Sad Artist", "Sad Song"},
		{"Energetic Artist", "Energetic Song"},
	} {
		assert.Contains(t, msg.Content, `"artist": "`+pair[0]+`"`)
		assert.Contains(t, msg.Content, `"songTitle": "`+pair[1]+`"`)
	}
	// And exactly those three: one artist key per catalog entry
	assert.Equal(t, 3, strings.Count(msg.Content, `"artist":`))
}

func TestComposeIsDeterministic(t *testing.T) {
	composer := testComposer(t)

	first := composer.Compose("same context")
	second := composer.Compose("same context")
	assert.Equal(t, first.Content, second.Content)

	// Only the context section may differ between requests
	third := composer.Compose("other context")
	assert.NotEqual(t, first.Content, third.Content)
}
