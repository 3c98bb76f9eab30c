package students

import (
	"errors"
	"strconv"
	"strings"

	"github.com/CampusCore/ERP-Backend/internal/utils"
	"gorm.io/gorm"
)

// ErrMalformedBatch means the positionally correlated form arrays
// disagree in length, so index i no longer describes one student.
var ErrMalformedBatch = errors.New("marks batch arrays differ in length")

// MarksUpdate is one student's worth of a batch, reshaped out of the
// five parallel arrays at the boundary.
type MarksUpdate struct {
	Username  string
	Chemistry int
	Maths     int
	BEE       int
	UHV       int
}

// BatchResult reports what a batch actually did. Skipped counts
// usernames with no registrar record; those are not failures.
type BatchResult struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

// BuildBatch validates and reshapes the parallel arrays into per-student
// updates. Length mismatch fails the whole batch before any write.
func BuildBatch(usernames, chemistry, maths, bee, uhv []string) ([]MarksUpdate, error) {
	n := len(usernames)
	if len(chemistry) != n || len(maths) != n || len(bee) != n || len(uhv) != n {
		return nil, ErrMalformedBatch
	}

	updates := make([]MarksUpdate, 0, n)
	for i := 0; i < n; i++ {
		updates = append(updates, MarksUpdate{
			Username:  usernames[i],
			Chemistry: coerceMarks(chemistry[i]),
			Maths:     coerceMarks(maths[i]),
			BEE:       coerceMarks(bee[i]),
			UHV:       coerceMarks(uhv[i]),
		})
	}
	return updates, nil
}

// coerceMarks turns form input into marks, zeroing anything that isn't
// a number. A bad mark never rejects the batch.
func coerceMarks(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// subjects expands one update into the full replacement list, fixed
// names in fixed order.
func (u MarksUpdate) subjects(studentID string) []Subject {
	marks := [4]int{u.Chemistry, u.Maths, u.BEE, u.UHV}
	out := make([]Subject, 0, len(SubjectNames))
	for i, name := range SubjectNames {
		out = append(out, Subject{
			ID:        utils.GenerateUUID(),
			StudentID: studentID,
			Name:      name,
			Marks:     marks[i],
			Position:  i,
		})
	}
	return out
}

// ApplyBatch replaces each named student's subject list wholesale.
// Updates are independent: an unknown username is skipped, a store
// fault stops the loop and leaves earlier updates in place.
func ApplyBatch(gdb *gorm.DB, updates []MarksUpdate) (BatchResult, error) {
	var result BatchResult

	for _, update := range updates {
		var student Student
		err := gdb.First(&student, "email = ?", update.Username).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.Skipped++
			continue
		}
		if err != nil {
			return result, err
		}

		replacement := update.subjects(student.ID)
		err = gdb.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("student_id = ?", student.ID).Delete(&Subject{}).Error; err != nil {
				return err
			}
			return tx.Create(&replacement).Error
		})
		if err != nil {
			return result, err
		}
		result.Applied++
	}

	return result, nil
}
