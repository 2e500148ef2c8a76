package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	frontendURL string,
	shiftHandler ShiftHandler,
	employeeHandler EmployeeHandler,
	taskCategoryHandler TaskCategoryHandler,
	statsHandler StatsHandler,
	backupHandler BackupHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftboard"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", shiftHandler.List)
			r.Post("/", shiftHandler.Commit)
			r.Post("/validate", shiftHandler.Validate)

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", shiftHandler.Delete)
				r.Post("/duplicate", shiftHandler.Duplicate)
				r.Post("/tasks/move", shiftHandler.MoveTask)
				r.Post("/tasks/{taskID}/toggle", shiftHandler.ToggleTask)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})

		r.Route("/task-categories", func(r chi.Router) {
			r.Get("/", taskCategoryHandler.List)
			r.Post("/", taskCategoryHandler.Create)
			r.Put("/{id}", taskCategoryHandler.Update)
			r.Delete("/{id}", taskCategoryHandler.Delete)
			r.Post("/{id}/instantiate", taskCategoryHandler.Instantiate)
		})

		r.Get("/stats/monthly", statsHandler.Monthly)

		r.Get("/backup", backupHandler.Export)
		r.Post("/restore", backupHandler.Restore)
	})

	return r
}
