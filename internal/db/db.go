package db

import (
	"log"
	"os"
	"time"

	"github.com/insuredesk/insure-backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg config.DatabaseConfig) {
	if cfg.DSN == "" {
		log.Fatal("database DSN is empty (set database.dsn or DATABASE_URL)")
	}

	level := logger.Warn
	if cfg.LogMode {
		level = logger.Info
	}

	// Surface slow queries in host logs.
	lg := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             100 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	conn, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: lg,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB: ", err)
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	DB = conn
	log.Println("Connected to database")
}
