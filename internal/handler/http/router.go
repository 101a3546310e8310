package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/config"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Worker     WorkerHandler
	Attendance AttendanceHandler
	Wage       WageHandler
	Payroll    PayrollHandler
	Master     MasterHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/me", h.Worker.GetMe)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Worker.List)
					r.Post("/", h.Worker.Create)
					r.Get("/{workerID}", h.Worker.Get)
					r.Put("/{workerID}", h.Worker.Update)
					r.Delete("/{workerID}", h.Worker.Delete)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/break-start", h.Attendance.BreakStart)
				r.Post("/break-end", h.Attendance.BreakEnd)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/my", h.Attendance.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/workers/{workerID}", h.Attendance.ManualUpsert)
				})
			})

			r.Route("/wages", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/windows", h.Wage.CreateWindow)
				r.Get("/windows/workers/{workerID}", h.Wage.ListWindows)
				r.Post("/defaults", h.Wage.CreateDefault)
				r.Get("/defaults", h.Wage.ListDefaults)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/my", h.Payroll.ListMine)
				r.Get("/my/weekly", h.Payroll.ListMyWeekly)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Payroll.ListAll)
					r.Get("/workers/{workerID}", h.Payroll.GetMonthly)
					r.Post("/workers/{workerID}/recompute", h.Payroll.Recompute)
					r.Post("/recalculate", h.Payroll.RecalculateAll)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/holidays", h.Master.ListHolidays)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/holidays", h.Master.CreateHoliday)
					r.Put("/holidays/{holidayID}", h.Master.UpdateHoliday)
					r.Delete("/holidays/{holidayID}", h.Master.DeleteHoliday)
					r.Post("/insurance-rates", h.Master.SetInsuranceRate)
					r.Get("/insurance-rates", h.Master.ListInsuranceRates)
				})
			})
		})
	})
	return r
}
