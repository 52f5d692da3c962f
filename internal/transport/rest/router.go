package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/shift-scheduling/internal/auth"
	"github.com/frahmantamala/shift-scheduling/internal/bulksync"
	"github.com/frahmantamala/shift-scheduling/internal/employee"
	"github.com/frahmantamala/shift-scheduling/internal/schedule"
	"github.com/frahmantamala/shift-scheduling/internal/shift"
	"github.com/frahmantamala/shift-scheduling/internal/shifttype"
	"github.com/frahmantamala/shift-scheduling/internal/transport/middleware"
	"github.com/frahmantamala/shift-scheduling/internal/transport/swagger"
	"github.com/frahmantamala/shift-scheduling/internal/user"
)

type Handlers struct {
	Auth      *auth.Handler
	User      *user.Handler
	Employee  *employee.Handler
	Shift     *shift.Handler
	ShiftType *shifttype.Handler
	Schedule  *schedule.Handler
	BulkSync  *bulksync.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.Recovery)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/register", h.Auth.Register)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		// Public routes backing the login and registration screens
		r.Get("/users-with-codes", h.User.ListUsersWithCodes)
		r.Get("/employees/lookup/{code}", h.User.LookupEmployee)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/schedule", h.Schedule.GetGrid)
			pr.Get("/schedule/period", h.Schedule.GetCurrentPeriod)

			pr.Get("/shifts", h.Shift.ListShifts)
			pr.Get("/shifts/week", h.Shift.GetWeek)
			pr.Get("/shifts/export", h.BulkSync.Export)

			pr.Get("/shift-types", h.ShiftType.GetShiftTypes)

			pr.Get("/employees", h.Employee.ListEmployees)
			pr.Get("/employees/{id}", h.Employee.GetEmployee)

			// Admin routes
			pr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.RequireAdmin)

				ar.Post("/shifts", h.Shift.SaveShifts)
				ar.Post("/shift-types", h.ShiftType.SetShiftTypes)

				ar.Post("/employees", h.Employee.CreateEmployee)
				ar.Put("/employees/{id}", h.Employee.UpdateEmployee)

				ar.Route("/users", func(ur chi.Router) {
					ur.Get("/", h.User.ListUsers)
					ur.Post("/", h.User.CreateUser)
					ur.Post("/bulk", h.User.BulkUpsertUsers)
					ur.Put("/{id}", h.User.UpdateUser)
					ur.Delete("/{id}", h.User.DeleteUser)
				})

				ar.Route("/imports", func(ir chi.Router) {
					ir.Post("/preview", h.BulkSync.Preview)
					ir.Post("/apply", h.BulkSync.Apply)
					ir.Get("/template", h.BulkSync.Template)
				})
			})
		})
	})
}
