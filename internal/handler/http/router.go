package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/config"
	"github.com/brewhub-app/brewhub-backend-go/internal/handler/http/middleware"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler WorkScheduleHandler,
	shiftHandler ShiftHandler,
	assignmentHandler AssignmentHandler,
	timesheetHandler TimesheetHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "brewhub-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/with-position", employeeHandler.ListWithPosition)
				r.Get("/statistics", employeeHandler.Statistics)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/work-schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", scheduleHandler.Create)
					r.Put("/{id}", scheduleHandler.Update)
					r.Delete("/{id}", scheduleHandler.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Get("/roster", shiftHandler.Roster)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", shiftHandler.Create)
					r.Put("/update-employees", shiftHandler.UpdateEmployees)
					r.Delete("/work-schedule", shiftHandler.DeleteByWorkSchedule)
					r.Delete("/{id}", shiftHandler.Delete)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", assignmentHandler.List)
				r.Post("/", assignmentHandler.Create)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/{id}/approve", assignmentHandler.Approve)
					r.Delete("/{id}", assignmentHandler.Cancel)
				})
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Post("/", timesheetHandler.CheckIn)
				r.Put("/{id}", timesheetHandler.CheckOut)
				r.Get("/employee/{id}", timesheetHandler.ListByEmployee)
				r.Get("/salary", payrollHandler.PeriodSalaries)
				r.Get("/salary/{employeeId}", payrollHandler.EmployeeSalary)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", timesheetHandler.List)
					r.Put("/{id}/adjust", timesheetHandler.Adjust)
					r.Delete("/{id}", timesheetHandler.Delete)
				})
			})

			// Manager or admin
			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", payrollHandler.PeriodSummary)
				r.Post("/", payrollHandler.Generate)
				r.Get("/export", payrollHandler.Export)
				r.Get("/employee/{employeeId}", payrollHandler.EmployeePayrolls)
				r.Delete("/{id}", payrollHandler.Delete)
			})
		})
	})
	return r
}
