package main

import (
	"fmt"
	"net/http"

	"github.com/bayanihr/payroll-backend-go/internal/config"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/bayanihr/payroll-backend-go/internal/handler/http"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/jwt"
	"github.com/bayanihr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bayanihr/payroll-backend-go/internal/service/attendance"
	documentService "github.com/bayanihr/payroll-backend-go/internal/service/document"
	employeeService "github.com/bayanihr/payroll-backend-go/internal/service/employee"
	leaveService "github.com/bayanihr/payroll-backend-go/internal/service/leave"
	payrollService "github.com/bayanihr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	loc := cfg.Location()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, leaveRepo, loc, payroll.DefaultTaxTable)
	documentSvc := documentService.NewDocumentService(payrollRepo, loc)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, documentSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
