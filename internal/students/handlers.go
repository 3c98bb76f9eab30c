package students

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CampusCore/ERP-Backend/internal/db"
	"github.com/CampusCore/ERP-Backend/internal/utils"
	"gorm.io/gorm"
)

// orderedSubjects preloads a record's subjects in catalog order.
func orderedSubjects(gdb *gorm.DB) *gorm.DB {
	return gdb.Order("position")
}

func ListStudentsHandler(w http.ResponseWriter, r *http.Request) {
	var records []Student
	result := db.DB.Preload("Subjects", orderedSubjects).Find(&records)
	if result.Error != nil {
		http.Error(w, "DB error: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}

	summaries := make([]StudentSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, Summarize(record))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summaries); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// formValues reads a repeated form field, accepting both the bare name
// and the PHP-style "name[]" the dashboard form posts.
func formValues(r *http.Request, key string) []string {
	if vs, ok := r.PostForm[key]; ok {
		return vs
	}
	return r.PostForm[key+"[]"]
}

func UpdateMarksHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	updates, err := BuildBatch(
		formValues(r, "usernames"),
		formValues(r, "chemistry"),
		formValues(r, "maths"),
		formValues(r, "bee"),
		formValues(r, "uhv"),
	)
	if err != nil {
		http.Error(w, "Malformed batch", http.StatusBadRequest)
		return
	}

	if _, err := ApplyBatch(db.DB, updates); err != nil {
		http.Error(w, "Failed to update marks.", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard/admin", http.StatusSeeOther)
}

// DashboardHandler returns the logged-in student's own record; the page
// itself is rendered client-side from this payload.
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	var student Student
	err := db.DB.Preload("Subjects", orderedSubjects).
		First(&student, "email = ?", session.Username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Student record not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error loading student dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(student); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
