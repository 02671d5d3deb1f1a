package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"workshop/cmd"
	workshophttp "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/postgres/auditrepo"
	"workshop/internal/adapters/out/postgres/locationrepo"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/worklogrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := app.CreateJobManager(reminderWindow(configs))
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        os.Getenv("DB_SSLMODE"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		ReminderSchedule: os.Getenv("REMINDER_SCHEDULE"),
		ReminderWindow:   os.Getenv("REMINDER_WINDOW_HOURS"),
	}
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&locationrepo.LocationDTO{},
		&worklogrepo.WorkLogDTO{},
		&auditrepo.AuditEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func reminderWindow(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.ReminderWindow)
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := workshophttp.NewServer(workshophttp.Handlers{
		CreateOrder:            app.CreateCreateOrderCommandHandler(),
		EditOrder:              app.CreateEditOrderCommandHandler(),
		ShipOrder:              app.CreateShipOrderCommandHandler(),
		EnqueueAtLocation:      app.CreateEnqueueAtLocationCommandHandler(),
		StartAtLocation:        app.CreateStartAtLocationCommandHandler(),
		PauseAtLocation:        app.CreatePauseAtLocationCommandHandler(),
		FinishAtLocation:       app.CreateFinishAtLocationCommandHandler(),
		UpdateQuantity:         app.CreateUpdateQuantityAtLocationCommandHandler(),
		RequestHelp:            app.CreateRequestHelpCommandHandler(),
		SetGlobalQueuePosition: app.CreateSetGlobalQueuePositionCommandHandler(),
		RemoveFromAllQueues:    app.CreateRemoveFromAllQueuesCommandHandler(),

		GetOrderBoard:    app.CreateGetOrderBoardQueryHandler(),
		GetLocationQueue: app.CreateGetLocationQueueQueryHandler(),
		GetNeededOrders:  app.CreateGetNeededOrdersQueryHandler(),
		GetAuditTrail:    app.CreateGetAuditTrailQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "Healthy")
	})
	server.RegisterRoutes(e, workshophttp.AuthMiddleware([]byte(configs.JWTSecret)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
