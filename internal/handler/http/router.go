package http

import (
	"log/slog"
	"os"

	"github.com/bayanihr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

		// Everything requires authentication; token issuance is external.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Deactivate)

					r.Route("/allowances", func(r chi.Router) {
						r.Get("/", payrollHandler.ListAllowances)
						r.Post("/", payrollHandler.CreateAllowance)
					})
					r.Route("/deductions", func(r chi.Router) {
						r.Get("/", payrollHandler.ListDeductions)
						r.Post("/", payrollHandler.CreateDeduction)
					})
				})
			})

			r.Route("/allowances/{id}", func(r chi.Router) {
				r.Put("/", payrollHandler.UpdateAllowance)
				r.Delete("/", payrollHandler.DeactivateAllowance)
			})
			r.Route("/deductions/{id}", func(r chi.Router) {
				r.Put("/", payrollHandler.UpdateDeduction)
				r.Delete("/", payrollHandler.DeactivateDeduction)
			})

			r.Route("/attendance/events", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListEvents)
				r.Post("/", attendanceHandler.RecordEvent)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Create)
				r.Put("/{id}/approve", leaveHandler.Approve)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPayslips)
				r.Post("/generate", payrollHandler.GeneratePayslips)
				r.Get("/stats", payrollHandler.GetStats)
				r.Get("/register.xlsx", payrollHandler.DownloadRegisterXLSX)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetPayslip)
					r.Put("/", payrollHandler.UpdatePayslip)
					r.Delete("/", payrollHandler.DeletePayslip)
					r.Get("/pdf", payrollHandler.DownloadPayslipPDF)
				})
			})
		})
	})

	return r
}
