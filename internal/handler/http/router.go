package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/Chris-debuggs/AttendenceSystem/internal/config"
	"github.com/Chris-debuggs/AttendenceSystem/internal/handler/http/middleware"
	"github.com/Chris-debuggs/AttendenceSystem/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Kiosk      KioskHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Calendar   CalendarHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	Settings   SettingsHandler
	Auth       AuthHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-system"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api", func(r chi.Router) {

		// Kiosk terminal endpoints; the terminal authenticates by being
		// on the office network, not by token.
		r.Route("/kiosk", func(r chi.Router) {
			r.Post("/attendance", h.Kiosk.MarkAttendance)
			r.Post("/attendance/punch-out", h.Kiosk.PunchOut)
			r.Get("/landing-stats", h.Kiosk.LandingStats)
		})

		r.Post("/auth/login", h.Auth.Login)

		// Admin console; requires a valid access token.
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Put("/credentials", h.Auth.UpdateCredentials)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Calendar.ListHolidays)
				r.Post("/", h.Calendar.CreateHoliday)
				r.Delete("/{id}", h.Calendar.DeleteHoliday)
			})

			r.Route("/working-days", func(r chi.Router) {
				r.Get("/", h.Calendar.ListWorkingDays)
				r.Post("/", h.Calendar.CreateWorkingDay)
				r.Delete("/{id}", h.Calendar.DeleteWorkingDay)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Create)
				r.Delete("/{id}", h.Leave.Delete)
			})

			r.Get("/attendance", h.Attendance.MonthlyMatrix)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", h.Payroll.Monthly)
				r.Get("/{id}", h.Payroll.Employee)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/office-hours", h.Settings.GetOfficeHours)
				r.Put("/office-hours", h.Settings.UpdateOfficeHours)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
