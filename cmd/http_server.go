package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/shift-scheduling/internal"
	"github.com/frahmantamala/shift-scheduling/internal/auth"
	"github.com/frahmantamala/shift-scheduling/internal/bulksync"
	"github.com/frahmantamala/shift-scheduling/internal/employee"
	employeeStorage "github.com/frahmantamala/shift-scheduling/internal/employee/storage"
	"github.com/frahmantamala/shift-scheduling/internal/schedule"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
	shiftStorage "github.com/frahmantamala/shift-scheduling/internal/shift/storage"
	"github.com/frahmantamala/shift-scheduling/internal/shifttype"
	shiftTypeStorage "github.com/frahmantamala/shift-scheduling/internal/shifttype/storage"
	"github.com/frahmantamala/shift-scheduling/internal/transport/rest"
	"github.com/frahmantamala/shift-scheduling/internal/user"
	userStorage "github.com/frahmantamala/shift-scheduling/internal/user/storage"
	"github.com/frahmantamala/shift-scheduling/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				deps.Logger.Error("database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) error {
	employeeRepo := employeeStorage.NewEmployeeRepository(deps.DB)
	userRepo := userStorage.NewRepository(deps.DB)
	shiftRepo := shiftStorage.NewShiftRepository(deps.DB)
	shiftTypeRepo := shiftTypeStorage.NewShiftTypeRepository(deps.DB)

	employeeService := employee.NewService(employeeRepo, deps.Logger)
	userService := user.NewService(userRepo, employeeRepo, deps.Logger)
	shiftTypeService := shifttype.NewService(shiftTypeRepo, deps.Logger)
	shiftService := shift.NewService(shiftRepo, shiftTypeRepo, deps.Logger)
	scheduleService := schedule.NewService(employeeRepo, shiftRepo, deps.Logger)
	bulkSyncService := bulksync.NewService(employeeService, userService, shiftRepo, deps.Logger)

	tokenGen := auth.NewJWTTokenGenerator(
		deps.Config.Security.SessionSecret,
		deps.Config.Security.AccessTokenDuration,
		deps.Config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(userService, tokenGen, deps.Logger)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(authService),
		User:      user.NewHandler(userService),
		Employee:  employee.NewHandler(employeeService),
		Shift:     shift.NewHandler(shiftService),
		ShiftType: shifttype.NewHandler(shiftTypeService),
		Schedule:  schedule.NewHandler(scheduleService),
		BulkSync:  bulksync.NewHandler(bulkSyncService),
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql db: %w", err)
	}

	rest.RegisterAllRoutes(deps.Router, sqlDB, handlers, deps.Config.Server.AllowedOrigins, deps.Logger)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the database connection. Postgres DSNs get the postgres
// driver; anything else is treated as a sqlite file path.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		dialector = postgres.Open(cfg.Source)
	} else {
		dialector = sqlite.Open(cfg.Source)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql db: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
