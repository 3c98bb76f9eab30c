package students

import (
	"strconv"
	"strings"
)

// StudentSummary is the read-only projection the admin dashboard lists.
// Marks values are strings because a missing subject row flattens to ""
// rather than a misleading zero.
type StudentSummary struct {
	RollNumber string            `json:"rollNumber"`
	FullName   string            `json:"fullName"`
	Username   string            `json:"username"`
	Marks      map[string]string `json:"marks"`
}

// summaryKeys maps catalog names to their JSON keys in the summary.
var summaryKeys = map[string]string{
	"Chemistry": "chemistry",
	"Maths":     "maths",
	"BEE":       "BEE",
	"UHV":       "UHV",
}

// Summarize flattens one record, tolerating missing profile parts and
// missing subject rows.
func Summarize(s Student) StudentSummary {
	roll := s.RollNumber
	if roll == "" {
		roll = "-"
	}

	marks := make(map[string]string, len(SubjectNames))
	for _, name := range SubjectNames {
		marks[summaryKeys[name]] = ""
	}
	for _, subject := range s.Subjects {
		key, ok := summaryKeys[subject.Name]
		if !ok {
			continue
		}
		marks[key] = strconv.Itoa(subject.Marks)
	}

	return StudentSummary{
		RollNumber: roll,
		FullName:   strings.TrimSpace(s.Name + " " + s.Surname),
		Username:   s.Email,
		Marks:      marks,
	}
}
