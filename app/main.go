package main

import (
	"kidfit/config"
	"kidfit/services/kidfit/delivery"
	"kidfit/services/kidfit/repository"
	"kidfit/services/kidfit/usecase"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

const useCaseTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	mailer, err := config.NewMailer()
	if err != nil {
		log.Fatalf("Failed to configure mailer: %v", err)
		return
	}

	geocoder := config.NewGeocoder()

	// Repositories
	authRepo := repository.NewAuthRepository(db, geocoder)
	parentRepo := repository.NewParentRepository(db)
	centerRepo := repository.NewCenterRepository(db, geocoder)
	teacherRepo := repository.NewTeacherRepository(db)
	publicRepo := repository.NewPublicRepository(db, geocoder)

	// Use cases
	authUC := usecase.NewAuthUseCase(authRepo, useCaseTimeout)
	parentUC := usecase.NewParentUseCase(parentRepo, useCaseTimeout)
	centerUC := usecase.NewCenterUseCase(centerRepo, useCaseTimeout)
	teacherUC := usecase.NewTeacherUseCase(teacherRepo, useCaseTimeout)
	publicUC := usecase.NewPublicUseCase(publicRepo, useCaseTimeout)

	// Delivery
	delivery.NewAuthHandlerDeploy(app, authUC)
	delivery.NewParentHandlerDeploy(app, parentUC, mailer)
	delivery.NewCenterHandlerDeploy(app, centerUC, mailer)
	delivery.NewTeacherHandlerDeploy(app, teacherUC)
	delivery.NewPublicHandlerDeploy(app, publicUC, geocoder)

	app.Static("/uploads", config.GetUploadRoot())

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
