package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "github.com/AlexanderModestov/thoughtreader/cmd/api"
	"github.com/AlexanderModestov/thoughtreader/internal/bot"
	"github.com/AlexanderModestov/thoughtreader/internal/extract"
	meetingdomain "github.com/AlexanderModestov/thoughtreader/internal/meeting/domain"
	meetingRepo "github.com/AlexanderModestov/thoughtreader/internal/meeting/repository"
	meetingUsecase "github.com/AlexanderModestov/thoughtreader/internal/meeting/usecase"
	notedomain "github.com/AlexanderModestov/thoughtreader/internal/note/domain"
	noteRepo "github.com/AlexanderModestov/thoughtreader/internal/note/repository"
	noteUsecase "github.com/AlexanderModestov/thoughtreader/internal/note/usecase"
	projectdomain "github.com/AlexanderModestov/thoughtreader/internal/project/domain"
	projectRepo "github.com/AlexanderModestov/thoughtreader/internal/project/repository"
	projectUsecase "github.com/AlexanderModestov/thoughtreader/internal/project/usecase"
	"github.com/AlexanderModestov/thoughtreader/internal/resolver"
	"github.com/AlexanderModestov/thoughtreader/internal/search"
	"github.com/AlexanderModestov/thoughtreader/internal/session"
	taskdomain "github.com/AlexanderModestov/thoughtreader/internal/task/domain"
	taskRepo "github.com/AlexanderModestov/thoughtreader/internal/task/repository"
	taskUsecase "github.com/AlexanderModestov/thoughtreader/internal/task/usecase"
	userdomain "github.com/AlexanderModestov/thoughtreader/internal/user/domain"
	userRepo "github.com/AlexanderModestov/thoughtreader/internal/user/repository"
	userUsecase "github.com/AlexanderModestov/thoughtreader/internal/user/usecase"
	"github.com/AlexanderModestov/thoughtreader/pkg/ai"
	"github.com/AlexanderModestov/thoughtreader/pkg/config"
	"github.com/AlexanderModestov/thoughtreader/pkg/database"
	"github.com/AlexanderModestov/thoughtreader/pkg/telegram"
	"github.com/AlexanderModestov/thoughtreader/pkg/transcribe"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&userdomain.User{}, &projectdomain.Project{}, &taskdomain.Task{}, &notedomain.Note{}, &meetingdomain.Meeting{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewGormUserRepository(db)
	projectRepository := projectRepo.NewGormProjectRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	noteRepository := noteRepo.NewGormNoteRepository(db)
	meetingRepository := meetingRepo.NewGormMeetingRepository(db)

	// Initialize use cases
	userUC := userUsecase.NewUserUsecase(db, userRepository, projectRepository)
	projectUC := projectUsecase.NewProjectUsecase(projectRepository, taskRepository)
	taskUC := taskUsecase.NewTaskUsecase(taskRepository)
	noteUC := noteUsecase.NewNoteUsecase(noteRepository)
	meetingUC := meetingUsecase.NewMeetingUsecase(meetingRepository)
	searchSvc := search.NewService(taskRepository, noteRepository, meetingRepository)

	// Initialize AI provider
	model, err := ai.NewLanguageModel(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIModel:   cfg.OpenAIModel,
		GeminiAPIKey:  cfg.GeminiAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
		MaxTokens:     cfg.MaxTokens,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI provider:", err)
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required for voice transcription")
	}
	transcriber := transcribe.NewWhisperTranscriber(cfg.OpenAIAPIKey, cfg.WhisperModel, cfg.WhisperLanguage)

	// Initialize the message pipeline
	extractor := extract.New(model)
	batches := session.NewMemoryBatchStore()
	res := resolver.New(db, extractor, batches,
		userRepository, projectRepository, taskRepository, noteRepository, meetingRepository,
		cfg.CompactAnswers)

	// Initialize Telegram delivery
	tgClient := telegram.NewClient(cfg.TelegramBotToken)
	tgBot := bot.New(tgClient, transcriber, res, userUC, projectUC, taskUC, noteUC, meetingUC, searchSvc, cfg.PollTimeout)

	// Initialize HTTP handler
	handler := api.NewHandler(userUC, projectUC, taskUC, noteUC, meetingUC, searchSvc)
	router := gin.Default()
	api.SetupRoutes(router, handler, cfg.APIToken)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server
	go func() {
		log.Printf("API server starting on port %s", cfg.APIPort)
		if err := router.Run(":" + cfg.APIPort); err != nil {
			log.Fatal("Failed to start API server:", err)
		}
	}()

	// Start the bot (blocks until shutdown)
	if err := tgBot.Run(ctx); err != nil {
		log.Fatal("Bot stopped:", err)
	}
	log.Printf("Shutdown complete")
}
