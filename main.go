package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medagenda/config"
	"medagenda/cron"
	"medagenda/database"
	appointmentRepo "medagenda/database/repository/appointment"
	availabilityRepo "medagenda/database/repository/availability"
	doctorRepo "medagenda/database/repository/doctor"
	"medagenda/handlers"
	"medagenda/middleware"
	"medagenda/routes"
	"medagenda/services/notification"
	"medagenda/services/scheduling"
	"medagenda/services/search"
	"medagenda/services/tasks"
	"medagenda/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(docRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	schedulingService := &scheduling.DefaultSchedulingService{
		Availability: availRepo,
		Appointments: apptRepo,
		Doctors:      docRepo,
		Notifier:     notificationService,
		Reminders:    tasks.NewAsynqReminderScheduler(),
	}

	searchService := &search.DefaultSearchService{
		Doctors:     docRepo,
		CacheClient: utils.GetCacheClient(),
	}

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetWorkSettingsHandler:    schedulingHandler.GetWorkSettingsHandler,
		SaveWorkSettingsHandler:   schedulingHandler.SaveWorkSettingsHandler,
		NormalizeBlocksHandler:    schedulingHandler.NormalizeBlocksHandler,
		SaveDateOverrideHandler:   schedulingHandler.SaveDateOverrideHandler,
		GetMasterTemplateHandler:  schedulingHandler.GetMasterTemplateHandler,
		GetBookableSlotsHandler:   schedulingHandler.GetBookableSlotsHandler,
		ListAvailableDatesHandler: schedulingHandler.ListAvailableDatesHandler,
		MonthSlotCountsHandler:    schedulingHandler.MonthSlotCountsHandler,

		RequestAppointmentHandler:      schedulingHandler.RequestAppointmentHandler,
		UpdateAppointmentStatusHandler: schedulingHandler.UpdateAppointmentStatusHandler,
		ListAppointmentsHandler:        schedulingHandler.ListAppointmentsHandler,

		FindNearbyDoctorsHandler: searchHandler.FindNearbyDoctorsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
