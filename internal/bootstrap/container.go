package bootstrap

import (
	stdlog "log"
	"os"

	"conevibes-be/internal/catalog"
	"conevibes-be/internal/config"
	"conevibes-be/internal/controller"
	"conevibes-be/internal/pkg/logger"
	"conevibes-be/internal/repository/implementation"
	"conevibes-be/internal/repository/memory"
	"conevibes-be/internal/service"
	"conevibes-be/pkg/embedding"
	"conevibes-be/pkg/llm/factory"
	recCatalog "conevibes-be/pkg/recommend/catalog"
	"conevibes-be/pkg/recommend/completion"
	"conevibes-be/pkg/recommend/prompt"
	"conevibes-be/pkg/recommend/resolver"
	"conevibes-be/pkg/retrieval"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	ContextController controller.IContextController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	docRepo := implementation.NewContextDocumentRepository(db)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		stdlog.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GoogleGeminiKey)
		stdlog.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
		cfg.Ai.OpenAIBaseURL,
	)
	if err != nil {
		stdlog.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	stdlog.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Song Catalog
	// The catalog is loaded and projected once at startup; a malformed record
	// refuses to boot rather than serving the model a partial catalog.
	songs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		stdlog.Fatalf("[FATAL] Failed to load song catalog from %s: %v", cfg.Catalog.Path, err)
	}
	projections, err := recCatalog.Project(songs)
	if err != nil {
		stdlog.Fatalf("[FATAL] Song catalog failed integrity check: %v", err)
	}
	stdlog.Printf("[INFO] Song catalog loaded: %d songs", len(projections))

	composer, err := prompt.NewComposer(projections)
	if err != nil {
		stdlog.Fatalf("[FATAL] Failed to build prompt composer: %v", err)
	}

	// 5. Recommendation Pipeline
	pipelineLogger := stdlog.New(os.Stdout, "[PIPELINE] ", stdlog.LstdFlags)
	vectorStore := retrieval.NewVectorStore(
		docRepo,
		embeddingProvider,
		retrieval.Config{
			TopK:      cfg.Retrieval.TopK,
			Threshold: cfg.Retrieval.Threshold,
		},
		pipelineLogger,
	)
	contextResolver := resolver.NewResolver(vectorStore, cfg.Retrieval.Timeout, pipelineLogger)
	invoker := completion.NewInvoker(llmProvider, pipelineLogger)

	// 6. Services
	sessionRepo := memory.NewSessionRepository()

	recommendService := service.NewRecommendService(contextResolver, composer, invoker)
	sessionService := service.NewSessionService(sessionRepo)
	ingestService := service.NewIngestService(
		pubSub,
		cfg.Ingest.TopicName,
		docRepo,
		cfg.Ingest.ChunkSize,
		cfg.Ingest.ChunkOverlap,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ingest.TopicName,
		docRepo,
		embeddingProvider,
	)

	// 7. Controllers
	return &Container{
		ChatController:    controller.NewChatController(recommendService, sessionService),
		ContextController: controller.NewContextController(ingestService),
		AdminController:   controller.NewAdminController(sysLogger),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
