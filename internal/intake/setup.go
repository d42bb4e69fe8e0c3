package intake

import (
	"log"

	"github.com/insuredesk/insure-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "insure"); err != nil {
		log.Fatal("Failed to ensure schema insure: ", err)
	}

	if err := db.DB.AutoMigrate(&Application{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
