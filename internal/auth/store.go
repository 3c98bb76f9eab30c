package auth

import (
	"time"

	"github.com/CampusCore/ERP-Backend/internal/db"
	"github.com/CampusCore/ERP-Backend/internal/utils"
)

// SessionStore abstracts session persistence so the handlers and
// middleware never care whether sessions live in Postgres, a cache, or
// an in-memory map. FindSessionByID doubles as the middleware fetcher.
type SessionStore interface {
	Create(username, role string) (Session, error)
	FindSessionByID(id string) (utils.SessionData, error)
	Destroy(token string) error
}

// GormSessionStore keeps sessions in the app_auth.sessions table.
type GormSessionStore struct {
	TTL time.Duration
}

// Create issues a fresh token for the user. A user logging in again
// replaces their existing session row rather than accumulating rows.
func (s *GormSessionStore) Create(username, role string) (Session, error) {
	token := utils.GenerateUUID()
	expiry := time.Now().Add(s.TTL)

	var existing Session
	db.DB.Where("username = ?", username).First(&existing)
	if existing.Username != "" {
		err := db.DB.Model(&existing).Updates(Session{
			SessionID: token,
			Role:      role,
			ExpiresAt: expiry,
		}).Error
		if err != nil {
			return Session{}, err
		}
		existing.SessionID = token
		existing.Role = role
		existing.ExpiresAt = expiry
		return existing, nil
	}

	session := Session{
		SessionID: token,
		Username:  username,
		Role:      role,
		ExpiresAt: expiry,
	}
	if err := db.DB.Create(&session).Error; err != nil {
		return Session{}, err
	}
	return session, nil
}

func (s *GormSessionStore) FindSessionByID(id string) (utils.SessionData, error) {
	var session Session

	err := db.DB.First(&session, "session_id = ?", id).Error
	if err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		Username:  session.Username,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Destroy is idempotent: deleting a token that no longer exists is not
// an error.
func (s *GormSessionStore) Destroy(token string) error {
	return db.DB.Where("session_id = ?", token).Delete(&Session{}).Error
}
