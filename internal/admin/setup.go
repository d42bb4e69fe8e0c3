package admin

import (
	"errors"
	"log"

	"github.com/insuredesk/insure-backend/internal/config"
	"github.com/insuredesk/insure-backend/internal/db"
	"gorm.io/gorm"
)

// Init migrates the credential table and seeds the singleton admin record.
// The seed is idempotent: an existing credential is never overwritten.
func Init(cfg config.AdminConfig) {
	if err := db.EnsureSchema(db.DB, "insure"); err != nil {
		log.Fatal("Failed to ensure schema insure: ", err)
	}

	if err := db.DB.AutoMigrate(&Credential{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	secret := cfg.Password
	if cfg.PasswordHash != "" {
		secret = cfg.PasswordHash
	}

	var existing Credential
	err := db.DB.First(&existing, "username = ?", cfg.Username).Error
	switch {
	case err == nil:
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		cred := Credential{Username: cfg.Username, Secret: secret}
		if err := db.DB.Create(&cred).Error; err != nil {
			log.Fatal("Failed to seed admin credential: ", err)
		}
		log.Println("Seeded admin credential for", cfg.Username)
	default:
		log.Fatal("Failed to check admin credential: ", err)
	}
}
