package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"conevibes-be/internal/catalog"
	"conevibes-be/internal/config"
	"conevibes-be/internal/entity"
	"conevibes-be/internal/repository/implementation"
	"conevibes-be/pkg/database"
	"conevibes-be/pkg/embedding"
	recCatalog "conevibes-be/pkg/recommend/catalog"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Seeds the retrieval index with one context document per catalog song, so
// mood queries have something to match before any external docs are ingested.
func main() {
	color.Cyan("🚀 ConeVibes Catalog Seeder\n")

	cfg := config.Load()

	// 1. Load and validate the catalog
	color.Yellow("\n[1] Loading song catalog from %s", cfg.Catalog.Path)
	songs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		color.Red("Failed to load catalog: %v", err)
		os.Exit(1)
	}
	projections, err := recCatalog.Project(songs)
	if err != nil {
		color.Red("Catalog failed integrity check: %v", err)
		os.Exit(1)
	}
	color.Green("Catalog OK: %d songs, %d projections", len(songs), len(projections))

	// 2. Connect to the database
	color.Yellow("\n[2] Connecting to database")
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("Failed to connect: %v", err)
		os.Exit(1)
	}
	docRepo := implementation.NewContextDocumentRepository(db)

	// 3. Embedding provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
	}

	// 4. Replace the previous catalog documents, then embed and store
	ctx := context.Background()
	const source = "catalog:songs"

	color.Yellow("\n[3] Clearing previous catalog documents")
	if err := docRepo.DeleteBySource(ctx, source); err != nil {
		color.Red("Failed to clear old documents: %v", err)
		os.Exit(1)
	}

	color.Yellow("\n[4] Embedding %d songs", len(songs))
	for i, song := range songs {
		content := describeSong(song)

		res, err := embeddingProvider.Generate(ctx, content, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("Embedding failed for %q: %v", song.SongTitle, err)
			os.Exit(1)
		}

		doc := &entity.ContextDocument{
			Id:         uuid.New(),
			Source:     source,
			Title:      fmt.Sprintf("%s - %s", song.Artist, song.SongTitle),
			Content:    content,
			ChunkIndex: i,
			Embedding:  res.Embedding.Values,
			Metadata:   map[string]interface{}{"song_id": song.Id},
		}
		if err := docRepo.Create(ctx, doc); err != nil {
			color.Red("Failed to store document for %q: %v", song.SongTitle, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ %s - %s\n", song.Artist, song.SongTitle)
	}

	count, err := docRepo.Count(ctx)
	if err == nil {
		color.Green("\n✅ Seeding complete. Index now holds %d documents.", count)
	} else {
		color.Green("\n✅ Seeding complete.")
	}
}

// describeSong flattens a song's matching attributes into retrieval-friendly
// prose. The text mirrors the vocabulary the user context fragments use.
func describeSong(song entity.Song) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q by %s", song.SongTitle, song.Artist)
	if song.Album != "" {
		fmt.Fprintf(&b, " from the album %q", song.Album)
	}
	b.WriteString(".")

	writeTags := func(label string, tags []string) {
		if len(tags) > 0 {
			fmt.Fprintf(&b, " %s: %s.", label, strings.Join(tags, ", "))
		}
	}
	writeTags("Mood", song.Mood)
	writeTags("Time of day", song.TimeOfDay)
	writeTags("Weather", song.Weather)
	writeTags("Season", song.Season)
	writeTags("Activity", song.Activity)
	writeTags("Occasions", song.Occasions)

	if song.Energy != "" {
		fmt.Fprintf(&b, " Energy: %s.", song.Energy)
	}
	if song.EmotionalImpact != "" {
		fmt.Fprintf(&b, " Emotional impact: %s.", song.EmotionalImpact)
	}
	return b.String()
}
