package http

import (
	"log/slog"
	"os"

	"github.com/brgysanroque/payroll-backend-go/internal/handler/http/middleware"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	deductionHandler DeductionHandler,
	loanHandler LoanHandler,
	overloadHandler OverloadPayHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "brgy-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Personnel can view their own released payslips
			r.Get("/payroll/{id}/payslip", payrollHandler.GetPayslip)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/deduction-types", func(r chi.Router) {
					r.Get("/", deductionHandler.ListTypes)
					r.Post("/", deductionHandler.CreateType)
					r.Get("/{id}", deductionHandler.GetType)
					r.Put("/{id}", deductionHandler.UpdateType)
					r.Delete("/{id}", deductionHandler.DeleteType)
				})

				r.Route("/deductions", func(r chi.Router) {
					r.Post("/apply", deductionHandler.Apply)
					r.Get("/check/{personnelId}", deductionHandler.CheckObligation)
					r.Get("/personnel/{personnelId}", deductionHandler.GetPersonnelDeductions)
					r.Post("/{id}/archive", deductionHandler.ArchiveInstance)
				})

				r.Route("/loans", func(r chi.Router) {
					r.Get("/", loanHandler.List)
					r.Post("/", loanHandler.Create)
					r.Get("/{id}", loanHandler.Get)
					r.Post("/{id}/payments", loanHandler.PostPayment)
					r.Post("/{id}/cancel", loanHandler.Cancel)
					r.Post("/{id}/archive", loanHandler.Archive)
				})

				r.Route("/overload-pay", func(r chi.Router) {
					r.Post("/", overloadHandler.Create)
					r.Get("/personnel/{personnelId}", overloadHandler.GetPersonnelOverloadPay)
					r.Post("/{id}/archive", overloadHandler.Archive)
				})

				r.Route("/attendance-deductions", func(r chi.Router) {
					r.Post("/", attendanceHandler.ManualEntry)
					r.Get("/personnel/{personnelId}", attendanceHandler.GetForPeriod)
					r.Delete("/{id}", attendanceHandler.Delete)
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", payrollHandler.ListEntries)
					r.Post("/generate", payrollHandler.Generate)
					r.Post("/release", payrollHandler.Release)
					r.Post("/bulk-delete", payrollHandler.BulkDelete)
					r.Get("/summary", payrollHandler.GetSummary)
					r.Get("/{id}", payrollHandler.GetEntry)
					r.Post("/{id}/archive", payrollHandler.Archive)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})
		})
	})
	return r
}
