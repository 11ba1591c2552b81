package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahqjohn/portfolio-backend/api"
	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/localstore"
	"github.com/ahqjohn/portfolio-backend/models"
	"github.com/ahqjohn/portfolio-backend/services"
	"github.com/ahqjohn/portfolio-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	env := config.New()
	cfg := config.NewApp(env)

	dbType := os.Getenv("DB_TYPE")
	var db *gorm.DB
	var err error

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
	gormConfig := &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	}

	fmt.Printf("DB_TYPE: %s\n", dbType)
	switch dbType {
	case "supa":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			getEnv("SUPABASE_DB_HOST", ""),
			getEnv("SUPABASE_DB_USER", ""),
			getEnv("SUPABASE_DB_PASSWORD", ""),
			getEnv("SUPABASE_DB_NAME", ""),
			getEnv("SUPABASE_DB_PORT", "5432"),
		)
		fmt.Println("Connecting to Supabase database...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), gormConfig)
	case "sqlite", "":
		dbPath := getEnv("SQLITE_PATH", "portfolio.db")
		fmt.Printf("Connecting to SQLite database at %s...\n", dbPath)
		db, err = gorm.Open(sqlite.Open(dbPath), gormConfig)
	default:
		fmt.Println("Unsupported DB_TYPE. Exiting...")
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if dbType == "supa" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
			fmt.Printf("Error enabling uuid-ossp extension: %v\n", err)
			os.Exit(1)
		}
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Proposal{},
		&models.Meeting{},
		&models.Contact{},
		&models.SEOSettings{},
	); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	demoStore, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		fmt.Printf("Error opening local store: %v\n", err)
		os.Exit(1)
	}

	mediaStore, err := storage.NewS3MediaStore(context.Background(), cfg)
	if err != nil {
		fmt.Printf("Error initializing media store: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(env, api.Deps{
		Config:     cfg,
		Database:   currentDB,
		MediaStore: mediaStore,
		LocalStore: demoStore,
		Mailer:     services.NewMailer(cfg),
	})
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
