package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/config"
	appHTTP "github.com/clockwork-hr/timeclock-backend-go/internal/handler/http"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/cron"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/jwt"
	"github.com/clockwork-hr/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/clockwork-hr/timeclock-backend-go/internal/service/attendance"
	authService "github.com/clockwork-hr/timeclock-backend-go/internal/service/auth"
	"github.com/clockwork-hr/timeclock-backend-go/internal/service/master"
	payrollService "github.com/clockwork-hr/timeclock-backend-go/internal/service/payroll"
	wageService "github.com/clockwork-hr/timeclock-backend-go/internal/service/wage"
	workerService "github.com/clockwork-hr/timeclock-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	wageRepo := postgresql.NewWageRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	insuranceRepo := postgresql.NewInsuranceRateRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	systemClock := clock.System()

	wageSvc := wageService.NewWageService(wageRepo, workerRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, attendanceRepo, workerRepo, wageSvc, systemClock)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, workerRepo, payrollSvc, systemClock)
	workerSvc := workerService.NewWorkerService(workerRepo)
	authSvc := authService.NewAuthService(workerRepo, refreshTokenRepo, jwtService)
	masterSvc := master.NewMasterService(holidayRepo, insuranceRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Wage:       appHTTP.NewWageHandler(wageSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
	})

	if cfg.Sweep.Enabled {
		interval, err := time.ParseDuration(cfg.Sweep.Interval)
		if err != nil {
			log.Fatal("Invalid PAYROLL_SWEEP_INTERVAL: ", err)
		}
		scheduler := cron.NewScheduler()
		cron.NewPayrollJobs(payrollSvc, interval).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
