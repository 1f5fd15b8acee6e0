package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/taskpilot/backend/internal/config"
	"github.com/taskpilot/backend/internal/core/services"
	"github.com/taskpilot/backend/internal/infrastructure/db"
	"github.com/taskpilot/backend/internal/infrastructure/eventlog"
	"github.com/taskpilot/backend/internal/infrastructure/logger"
	"github.com/taskpilot/backend/internal/infrastructure/openai"
	"github.com/taskpilot/backend/internal/transport/http/handlers"
	httpmw "github.com/taskpilot/backend/internal/transport/http/middleware"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB     *gorm.DB
	Logger *logger.Logger
	Config *config.Config
}

// SetupRoutes wires repositories, services, and handlers onto the app and
// returns the model client so the caller can check its configuration.
func SetupRoutes(app *fiber.App, cfg RouterConfig) *openai.Client {
	taskRepo := db.NewTaskRepository(cfg.DB, cfg.Logger)
	eventLog := eventlog.New(cfg.Config.Analytics.LogPath, cfg.Logger)
	aiClient := openai.NewClient(cfg.Config.OpenAI, cfg.Logger)

	taskService := services.NewTaskService(services.TaskServiceConfig{
		Repository: taskRepo,
		EventLog:   eventLog,
		Logger:     cfg.Logger,
	})
	suggestionService := services.NewSuggestionService(aiClient, cfg.Logger)
	reportService := services.NewReportService(aiClient, eventLog, cfg.Logger)
	chatService := services.NewChatService(aiClient, taskRepo, eventLog, cfg.Logger)

	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)
	logsHandler := handlers.NewLogsHandler(eventLog, reportService, cfg.Logger)
	aiHandler := handlers.NewAIHandler(suggestionService, chatService, cfg.Logger)

	auth := httpmw.AdminAuth(cfg.Config)

	// Task routes
	tasks := app.Group("/tasks", auth)
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.GetTasks)
	tasks.Get("/:id", taskHandler.GetTask)
	tasks.Patch("/:id", taskHandler.UpdateTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)

	// Calendar projection
	app.Get("/events", auth, taskHandler.GetCalendarEvents)

	// Analytics log routes
	app.Get("/raw-logs", auth, logsHandler.GetRawLogs)
	app.Get("/analyze-logs", auth, logsHandler.AnalyzeLogs)

	// AI routes
	app.Post("/suggest-task", auth, aiHandler.SuggestTask)
	app.Post("/chat-query", auth, aiHandler.ChatQuery)

	// Static web UI
	app.Static("/", "./web")

	return aiClient
}
