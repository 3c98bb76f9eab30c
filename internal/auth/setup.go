package auth

import (
	"log"
	"time"

	"github.com/CampusCore/ERP-Backend/internal/db"
)

var sessions SessionStore

func Init(sessionTTL time.Duration) {
	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}, &Session{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	sessions = &GormSessionStore{TTL: sessionTTL}
}

// Sessions exposes the store to the router so other modules can gate
// routes on the same sessions.
func Sessions() SessionStore { return sessions }
