package auth

import "time"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	Username  string    `gorm:"not null;index" json:"-"`
	Role      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null"`
}

type User struct {
	UserID         string `gorm:"primaryKey" json:"user_id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `json:"password" gorm:"-"`
	HashedPassword string `json:"-"`
	Role           string `gorm:"default:'student'" json:"role"`

	// Student profile, written once at registration and never
	// re-synced with the registrar record afterwards. Empty for admins.
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	DOB        string `json:"dob"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
	RollNumber string `json:"roll_number"`
}

func (Session) TableName() string { return "app_auth.sessions" }
func (User) TableName() string    { return "app_auth.users" }
