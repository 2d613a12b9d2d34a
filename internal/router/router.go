package router

import (
	"timeclock/backend/foundation/web"
	"timeclock/backend/internal/auth"
	"timeclock/backend/internal/middleware"
	"timeclock/backend/internal/pkg/repository/postgresql"

	"timeclock/backend/internal/repository/postgres/notification"
	"timeclock/backend/internal/repository/postgres/report"
	"timeclock/backend/internal/repository/postgres/shift"
	"timeclock/backend/internal/repository/postgres/shiftchange"
	"timeclock/backend/internal/repository/postgres/timeentry"
	"timeclock/backend/internal/repository/postgres/timeoff"
	"timeclock/backend/internal/repository/postgres/user"

	auth_controller "timeclock/backend/internal/controller/http/v1/auth"
	clock_controller "timeclock/backend/internal/controller/http/v1/clock"
	notification_controller "timeclock/backend/internal/controller/http/v1/notification"
	report_controller "timeclock/backend/internal/controller/http/v1/report"
	shift_controller "timeclock/backend/internal/controller/http/v1/shift"
	shiftchange_controller "timeclock/backend/internal/controller/http/v1/shiftchange"
	timeoff_controller "timeclock/backend/internal/controller/http/v1/timeoff"
	user_controller "timeclock/backend/internal/controller/http/v1/user"

	"github.com/redis/go-redis/v9"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	jwtKey     string
	baseURL    string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	jwtKey string,
	baseURL string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		jwtKey,
		baseURL,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	shiftPostgres := shift.NewRepository(r.postgresDB)
	timeEntryPostgres := timeentry.NewRepository(r.postgresDB)
	timeOffPostgres := timeoff.NewRepository(r.postgresDB)
	shiftChangePostgres := shiftchange.NewRepository(r.postgresDB)
	notificationPostgres := notification.NewRepository(r.postgresDB)
	reportPostgres := report.NewRepository(r.postgresDB)

	// controller
	authController := auth_controller.NewController(userPostgres, r.jwtKey)
	userController := user_controller.NewController(userPostgres)
	clockController := clock_controller.NewController(timeEntryPostgres, r.baseURL)
	shiftController := shift_controller.NewController(shiftPostgres)
	timeOffController := timeoff_controller.NewController(timeOffPostgres)
	shiftChangeController := shiftchange_controller.NewController(shiftChangePostgres)
	notificationController := notification_controller.NewController(notificationPostgres)
	reportController := report_controller.NewController(reportPostgres, r.redisDB)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #user
	r.Get("/api/v1/user/list", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/user/me", userController.GetMe, middleware.Authenticate(r.auth))
	r.Post("/api/v1/user/create", userController.CreateUser, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Patch("/api/v1/user/pin", userController.UpdateMyPin, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/user/:id", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Delete("/api/v1/user/:id", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #clock
	// Kiosk endpoints identify the employee by PIN, not by token.
	r.Post("/api/v1/clock/in", clockController.ClockIn)
	r.Post("/api/v1/clock/out", clockController.ClockOut)
	r.Get("/api/v1/clock/kiosk-qr", clockController.GetKioskQR, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/clock/live", clockController.GetLiveClockedIn, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Post("/api/v1/clock/manual", clockController.CreateManualEntry, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/clock/my-week", clockController.GetMyWeek, middleware.Authenticate(r.auth))
	r.Get("/api/v1/clock/my-pay-period", clockController.GetMyPayPeriod, middleware.Authenticate(r.auth))

	// #shift
	r.Get("/api/v1/shift/list", shiftController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/shift/upcoming", shiftController.GetUpcoming, middleware.Authenticate(r.auth))
	r.Post("/api/v1/shift/create", shiftController.Create, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Post("/api/v1/shift/bulk", shiftController.BulkCreate, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Patch("/api/v1/shift/:id", shiftController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Delete("/api/v1/shift/:id", shiftController.Delete, middleware.Authenticate(r.auth, auth.RoleManager))

	// #time-off
	r.Post("/api/v1/time-off/create", timeOffController.Create, middleware.Authenticate(r.auth))
	r.Get("/api/v1/time-off/mine", timeOffController.GetMine, middleware.Authenticate(r.auth))
	r.Get("/api/v1/time-off/pending", timeOffController.GetPending, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Patch("/api/v1/time-off/:id/approve", timeOffController.Approve, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Patch("/api/v1/time-off/:id/deny", timeOffController.Deny, middleware.Authenticate(r.auth, auth.RoleManager))

	// #shift-change
	r.Post("/api/v1/shift-change/create", shiftChangeController.Create, middleware.Authenticate(r.auth))
	r.Get("/api/v1/shift-change/mine", shiftChangeController.GetMine, middleware.Authenticate(r.auth))
	r.Get("/api/v1/shift-change/pending", shiftChangeController.GetPending, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Patch("/api/v1/shift-change/:id/approve", shiftChangeController.Approve, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Patch("/api/v1/shift-change/:id/deny", shiftChangeController.Deny, middleware.Authenticate(r.auth, auth.RoleManager))

	// #notification
	r.Get("/api/v1/notification/mine", notificationController.GetMine, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/notification/read-all", notificationController.MarkAllRead, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/notification/:id/read", notificationController.MarkRead, middleware.Authenticate(r.auth))

	// #report
	r.Get("/api/v1/report/weekly-hours", reportController.GetWeeklyHours, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/report/labor-cost", reportController.GetLaborCost, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/report/labor-cost/export", reportController.ExportLaborCost, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/report/employee/:id", reportController.GetEmployeeHistory, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/report/employee/:id/timesheet", reportController.ExportTimesheet, middleware.Authenticate(r.auth, auth.RoleManager))
	r.Get("/api/v1/report/dashboard", reportController.GetDashboardStats, middleware.Authenticate(r.auth, auth.RoleManager))

	return r.Run(r.port)
}
