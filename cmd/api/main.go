package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workline-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/workline-hq/attendance-backend-go/internal/handler/http"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/cron"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/database"
	"github.com/workline-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/workline-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workline-hq/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/workline-hq/attendance-backend-go/internal/service/employee"
	holidayService "github.com/workline-hq/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/workline-hq/attendance-backend-go/internal/service/leave"
	payrollService "github.com/workline-hq/attendance-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Organization.Location()
	if err != nil {
		log.Fatal("Failed to load organization time zone:", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Organization, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, loc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, attendanceRepo, leaveRequestRepo, holidayRepo, loc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		leaveHandler,
		holidayHandler,
		employeeHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
