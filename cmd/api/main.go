package main

import (
	"fmt"
	"net/http"

	"github.com/brewhub-app/brewhub-backend-go/internal/config"
	appHTTP "github.com/brewhub-app/brewhub-backend-go/internal/handler/http"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/database"
	"github.com/brewhub-app/brewhub-backend-go/internal/pkg/jwt"
	"github.com/brewhub-app/brewhub-backend-go/internal/repository/postgresql"
	assignmentService "github.com/brewhub-app/brewhub-backend-go/internal/service/assignment"
	authService "github.com/brewhub-app/brewhub-backend-go/internal/service/auth"
	employeeService "github.com/brewhub-app/brewhub-backend-go/internal/service/employee"
	payrollService "github.com/brewhub-app/brewhub-backend-go/internal/service/payroll"
	scheduleService "github.com/brewhub-app/brewhub-backend-go/internal/service/schedule"
	shiftService "github.com/brewhub-app/brewhub-backend-go/internal/service/shift"
	timesheetService "github.com/brewhub-app/brewhub-backend-go/internal/service/timesheet"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewWorkScheduleService(workScheduleRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, workScheduleRepo)
	assignmentSvc := assignmentService.NewAssignmentService(db, assignmentRepo, shiftRepo, employeeRepo, workScheduleRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, shiftRepo)
	payrollSvc := payrollService.NewPayrollService(db, cfg.Export.Dir, payrollRepo, timesheetRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewWorkScheduleHandler(scheduleSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	assignmentHandler := appHTTP.NewAssignmentHandler(assignmentSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		employeeHandler,
		scheduleHandler,
		shiftHandler,
		assignmentHandler,
		timesheetHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
