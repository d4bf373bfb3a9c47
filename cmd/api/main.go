package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/vemre-aremu/hrpay-backend-go/internal/config"
	appHTTP "github.com/vemre-aremu/hrpay-backend-go/internal/handler/http"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/database"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/jwt"
	"github.com/vemre-aremu/hrpay-backend-go/internal/pkg/storage"
	"github.com/vemre-aremu/hrpay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/vemre-aremu/hrpay-backend-go/internal/service/attendance"
	auditService "github.com/vemre-aremu/hrpay-backend-go/internal/service/audit"
	authService "github.com/vemre-aremu/hrpay-backend-go/internal/service/auth"
	dashboardService "github.com/vemre-aremu/hrpay-backend-go/internal/service/dashboard"
	employeeService "github.com/vemre-aremu/hrpay-backend-go/internal/service/employee"
	kpiService "github.com/vemre-aremu/hrpay-backend-go/internal/service/kpi"
	masterService "github.com/vemre-aremu/hrpay-backend-go/internal/service/master"
	payrollService "github.com/vemre-aremu/hrpay-backend-go/internal/service/payroll"
	userService "github.com/vemre-aremu/hrpay-backend-go/internal/service/user"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	jobRoleRepo := postgresql.NewJobRoleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	kpiRepo := postgresql.NewKPIRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	auditSvc := auditService.NewAuditService(auditRepo, logger)
	authSvc := authService.NewAuthService(userRepo, jwtService, auditSvc)
	userSvc := userService.NewUserService(userRepo, auditSvc)
	masterSvc := masterService.NewMasterService(branchRepo, departmentRepo, jobRoleRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo, jobRoleRepo, auditSvc)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		branchRepo,
		jobRoleRepo,
		fileStorage,
		auditSvc,
		cfg.App.CompanyName,
		logger,
	)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		employeeRepo,
		jobRoleRepo,
		attendanceRepo,
		auditSvc,
		logger,
	)
	kpiSvc := kpiService.NewKPIService(kpiRepo, employeeRepo, auditSvc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		KPI:        appHTTP.NewKPIHandler(kpiSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc, auditSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
