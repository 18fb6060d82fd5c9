package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danupratama/portfolio-backend/api"
	"github.com/danupratama/portfolio-backend/database"
)

const (
	dbConnectAttempts = 5
	dbConnectBackoff  = 2 * time.Second
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		fmt.Println("DATABASE_URL must be set. Exiting...")
		os.Exit(1)
	}
	// Some hosts hand out postgres:// URLs; the driver wants postgresql://
	if strings.HasPrefix(connStr, "postgres://") {
		connStr = "postgresql://" + strings.TrimPrefix(connStr, "postgres://")
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := connectWithRetry(connStr, newLogger)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database: %v\n", err)
		os.Exit(1)
	}

	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")
	if err := database.Seed(db, adminPassword); err != nil {
		fmt.Printf("Error seeding database: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// connectWithRetry attempts the database connection a bounded number of times
// with a fixed backoff before giving up.
func connectWithRetry(connStr string, gormLogger logger.Interface) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			Logger:         gormLogger,
			TranslateError: true,
		})
		if err == nil {
			var result int
			if pingErr := db.Raw("SELECT 1").Scan(&result).Error; pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}

		fmt.Printf("Database connection attempt %d/%d failed: %v\n", attempt, dbConnectAttempts, err)
		if attempt < dbConnectAttempts {
			time.Sleep(dbConnectBackoff)
		}
	}

	return nil, err
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
