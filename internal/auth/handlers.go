package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/CampusCore/ERP-Backend/internal/db"
	"github.com/CampusCore/ERP-Backend/internal/students"
	"github.com/CampusCore/ERP-Backend/internal/utils"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, the race-safe half of the duplicate-email check.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// setSessionCookie hands the opaque token to the client. Secure is off
// outside production so cookies work over plain HTTP in local dev and
// httptest servers.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("APP_ENV") == "production",
	})
}

func RegisterAdminHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	// Check if email is taken
	var existing User
	err := db.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		fmt.Fprintln(w, "Admin already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	user := User{
		UserID:         utils.GenerateUUID(),
		Email:          email,
		HashedPassword: string(hashed),
		Role:           RoleAdmin,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			fmt.Fprintln(w, "Admin already exists")
			return
		}
		http.Error(w, "Failed to register admin", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login/admin", http.StatusSeeOther)
}

func RegisterStudentHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	var existing User
	err := db.DB.First(&existing, "email = ?", email).Error
	if err == nil {
		http.Redirect(w, r, "/register-student.html?error=exists", http.StatusSeeOther)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	user := User{
		UserID:         utils.GenerateUUID(),
		Email:          email,
		HashedPassword: string(hashed),
		Role:           RoleStudent,
		Name:           r.PostFormValue("name"),
		Surname:        r.PostFormValue("surname"),
		DOB:            r.PostFormValue("dob"),
		Department:     r.PostFormValue("department"),
		Semester:       r.PostFormValue("semester"),
		RollNumber:     r.PostFormValue("studentId"),
	}

	// Identity and registrar record are one logical unit; neither
	// survives without the other.
	record := students.New(email, user.Name, user.Surname, user.DOB,
		user.RollNumber, user.Department, user.Semester)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			http.Redirect(w, r, "/register-student.html?error=exists", http.StatusSeeOther)
			return
		}
		http.Error(w, "Error registering student", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login/student", http.StatusSeeOther)
}

func AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	// Missing identity and wrong password answer identically so the
	// response never leaks whether an account exists.
	var admin User
	err := db.DB.First(&admin, "email = ? AND role = ?", email, RoleAdmin).Error
	if err != nil {
		fmt.Fprintln(w, "Invalid admin credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(password)); err != nil {
		fmt.Fprintln(w, "Invalid admin credentials")
		return
	}

	session, err := sessions.Create(admin.Email, RoleAdmin)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, session.SessionID)

	http.Redirect(w, r, "/admin-home", http.StatusSeeOther)
}

func StudentLoginHandler(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	var user User
	err := db.DB.First(&user, "email = ? AND role = ?", email, RoleStudent).Error
	if err != nil {
		http.Redirect(w, r, "/login/student?error=invalid", http.StatusSeeOther)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		http.Redirect(w, r, "/login/student?error=invalid", http.StatusSeeOther)
		return
	}

	session, err := sessions.Create(user.Email, RoleStudent)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, session.SessionID)

	http.Redirect(w, r, "/dashboard-student", http.StatusSeeOther)
}

// LogoutHandler tears the session down no matter its state; logging out
// twice lands on the same redirect.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session_id"); err == nil {
		sessions.Destroy(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:   "session_id",
		Value:  "",
		MaxAge: -1,
		Path:   "/",
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func MeHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MeResponse{
		Username: session.Username,
		Role:     session.Role,
	})
}
