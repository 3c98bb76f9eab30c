package students

import (
	"log"

	"github.com/CampusCore/ERP-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "registrar"); err != nil {
		log.Fatal("Failed to ensure schema registrar: ", err)
	}

	if err := db.DB.AutoMigrate(&Student{}, &Subject{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
