package main

import (
	"fmt"
	"net/http"

	"github.com/brgysanroque/payroll-backend-go/internal/config"
	appHTTP "github.com/brgysanroque/payroll-backend-go/internal/handler/http"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/database"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/jwt"
	"github.com/brgysanroque/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/brgysanroque/payroll-backend-go/internal/service/attendance"
	authService "github.com/brgysanroque/payroll-backend-go/internal/service/auth"
	deductionService "github.com/brgysanroque/payroll-backend-go/internal/service/deduction"
	loanService "github.com/brgysanroque/payroll-backend-go/internal/service/loan"
	overloadService "github.com/brgysanroque/payroll-backend-go/internal/service/overload"
	payrollService "github.com/brgysanroque/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	personnelRepo := postgresql.NewPersonnelRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	overloadRepo := postgresql.NewOverloadPayRepository(db)
	attendanceRepo := postgresql.NewAttendanceDeductionRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	deductionSvc := deductionService.NewDeductionService(db, deductionRepo, loanRepo, personnelRepo)
	loanSvc := loanService.NewLoanService(db, loanRepo, personnelRepo, deductionSvc)
	overloadSvc := overloadService.NewOverloadPayService(overloadRepo, personnelRepo)
	penaltyCalculator := attendanceService.NewPenaltyCalculator()
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, personnelRepo, penaltyCalculator, cfg.Payroll)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		personnelRepo,
		overloadRepo,
		attendanceRepo,
		deductionRepo,
		loanRepo,
		cfg.Payroll,
	)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	deductionHandler := appHTTP.NewDeductionHandler(deductionSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)
	overloadHandler := appHTTP.NewOverloadPayHandler(overloadSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		deductionHandler,
		loanHandler,
		overloadHandler,
		attendanceHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
