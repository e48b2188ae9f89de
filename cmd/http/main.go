package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"patient-intake-service/internal/app/bootstrap"
	"patient-intake-service/internal/app/config"
	"patient-intake-service/internal/app/delivery/http/controllers"
	"patient-intake-service/internal/app/delivery/http/middlewares"
	"patient-intake-service/internal/app/delivery/http/routers"
	"patient-intake-service/internal/app/drivers/logger"
	"patient-intake-service/internal/app/services/core/forms"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	app := bootstrap.ConnectDrivers(driverConfig, internalConfig, log)
	bootstrapingTheApp(app)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = app.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(app *config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(app.Logger, app.InternalConfig)

	// Intake
	registry := bootstrap.NewRegistry(app, controllers.NewRedirectNavigator())
	intakeController := controllers.NewIntakeController(app.Logger, registry, forms.NewDefaultController, bootstrap.NewResourceLimiter(app), app.InternalConfig)

	routers.SetupRoutes(app.Router, app.InternalConfig, middlewares, intakeController)
}
