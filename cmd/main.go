package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hireflow/hireflow/internal/auth"
	"github.com/hireflow/hireflow/internal/db"
	"github.com/hireflow/hireflow/internal/fleet"
	"github.com/hireflow/hireflow/internal/handlers"
	"github.com/hireflow/hireflow/internal/hire"
	"github.com/hireflow/hireflow/internal/middleware"
	"github.com/hireflow/hireflow/internal/notify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if os.Getenv("LOG_LEVEL") == "debug" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	client, err := db.ConnectMongo()
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	logrus.Info("Connected to MongoDB successfully")

	database := db.Database(client)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logrus.Warnf("Failed to create indexes: %v", err)
	}
	cancel()

	collections := db.NewCollections(database)

	authService, err := auth.NewService()
	if err != nil {
		logrus.Fatalf("Failed to initialize auth service: %v", err)
	}

	events := newPublisher()
	hireService := hire.NewService(collections.Hires, collections.Vehicles, collections.Counters, events)
	fleetService := fleet.NewService(collections.Vehicles, collections.Owners, collections.Drivers, collections.Hires)

	authHandler := handlers.NewAuthHandler(authService, collections.Users)
	authMW := middleware.NewAuthMiddleware(authService)
	router := handlers.NewRouter(authHandler, hireService, fleetService, authMW)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logrus.Infof("HTTP server listening on :%s", port)
	logrus.Fatal(server.ListenAndServe())
}

// newPublisher connects to the MQTT broker if one is configured, and
// otherwise falls back to a no-op publisher.
func newPublisher() notify.Publisher {
	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		return notify.NopPublisher{}
	}
	publisher, err := notify.NewMQTTPublisher(broker, "hireflow-api")
	if err != nil {
		logrus.Warnf("Failed to connect to MQTT broker %s: %v", broker, err)
		return notify.NopPublisher{}
	}
	logrus.Infof("Publishing hire events to MQTT broker %s", broker)
	return publisher
}
