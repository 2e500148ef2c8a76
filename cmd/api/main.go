package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/campcrew/shiftboard-backend-go/internal/config"
	"github.com/campcrew/shiftboard-backend-go/internal/domain/snapshot"
	appHTTP "github.com/campcrew/shiftboard-backend-go/internal/handler/http"
	"github.com/campcrew/shiftboard-backend-go/internal/pkg/database"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/memory"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/postgresql"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/session"
	"github.com/campcrew/shiftboard-backend-go/internal/repository/sqlite"
	backupService "github.com/campcrew/shiftboard-backend-go/internal/service/backup"
	employeeService "github.com/campcrew/shiftboard-backend-go/internal/service/employee"
	shiftService "github.com/campcrew/shiftboard-backend-go/internal/service/shift"
	statsService "github.com/campcrew/shiftboard-backend-go/internal/service/stats"
	taskCategoryService "github.com/campcrew/shiftboard-backend-go/internal/service/taskcategory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "shiftboard"),
		slog.String("env", cfg.App.Env),
	)

	ctx := context.Background()

	var backend snapshot.Store
	switch cfg.Store.Type {
	case "memory":
		backend = memory.NewStore()
	case "sqlite":
		sqliteStore, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			log.Fatal("Failed to open sqlite snapshot store:", err)
		}
		defer sqliteStore.Close()
		backend = sqliteStore
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()
		backend, err = postgresql.NewStore(ctx, db)
		if err != nil {
			log.Fatal("Failed to initialize postgres snapshot store:", err)
		}
	default:
		log.Fatal("Unsupported store type: ", cfg.Store.Type)
	}

	store, err := session.Open(ctx, backend, logger)
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}
	defer store.Flush()

	shiftSvc := shiftService.NewShiftService(store)
	employeeSvc := employeeService.NewEmployeeService(store)
	taskCategorySvc := taskCategoryService.NewTaskCategoryService(store)
	statsSvc := statsService.NewStatsService(store)
	backupSvc := backupService.NewBackupService(store)

	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	taskCategoryHandler := appHTTP.NewTaskCategoryHandler(taskCategorySvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc)
	backupHandler := appHTTP.NewBackupHandler(backupSvc)

	router := appHTTP.NewRouter(
		cfg.App.FrontendURL,
		shiftHandler,
		employeeHandler,
		taskCategoryHandler,
		statsHandler,
		backupHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
