package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/vemre-aremu/hrpay-backend-go/internal/handler/http/middleware"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Employee   EmployeeHandler
	Master     MasterHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	KPI        KPIHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrpay-vemre-aremu"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.Dashboard.GetStats)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/audit-logs", h.Dashboard.ListAuditLogs)
				})
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", h.Master.ListBranches)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/", h.Master.CreateBranch)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/", h.Master.CreateDepartment)
				})
			})

			r.Route("/job-roles", func(r chi.Router) {
				r.Get("/", h.Master.ListJobRoles)
				r.Get("/{id}", h.Master.GetJobRole)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/", h.Master.CreateJobRole)
					r.Put("/{id}/salary-structure", h.Master.UpsertSalaryStructure)
				})
				r.Get("/{id}/salary-structure", h.Master.GetSalaryStructure)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Post("/import", h.Employee.ImportCSV)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/uploads", h.Attendance.ListUploads)
				r.Get("/summaries/{employeeID}", h.Attendance.GetMonthlySummary)
				r.Get("/disciplinary-actions/{employeeID}", h.Attendance.ListDisciplinaryActions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/uploads", h.Attendance.Upload)
					r.Delete("/uploads/{id}", h.Attendance.DeleteUpload)
					r.Post("/logs", h.Attendance.ManualEntry)
					r.Post("/process-monthly", h.Attendance.ProcessMonthly)
					r.Post("/query-letters", h.Attendance.QueryLetter)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/runs", h.Payroll.ListRuns)
				r.Get("/runs/{id}", h.Payroll.GetRun)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/runs", h.Payroll.ProcessMonth)
				})

				// Status transitions and exports sit with finance
				r.Group(func(r chi.Router) {
					r.Use(middleware.FinanceAccess)
					r.Patch("/runs/{id}/status", h.Payroll.UpdateStatus)
					r.Get("/runs/{id}/export", h.Payroll.ExportCSV)
				})
			})

			r.Route("/kpi", func(r chi.Router) {
				r.Get("/templates", h.KPI.ListTemplates)
				r.Get("/templates/{id}", h.KPI.GetTemplate)
				r.Get("/reviews/{id}", h.KPI.GetReview)
				r.Get("/employees/{employeeID}/reviews", h.KPI.ListReviewsByEmployee)
				r.Get("/employees/{employeeID}/summary", h.KPI.GetSummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOrHR)
					r.Post("/templates", h.KPI.CreateTemplate)
					r.Delete("/templates/{id}", h.KPI.DeactivateTemplate)
					r.Post("/reviews", h.KPI.SubmitReview)
					r.Post("/employees/{employeeID}/summary/recalculate", h.KPI.RecalculateSummary)
				})
			})
		})
	})

	return r
}
