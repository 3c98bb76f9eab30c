package students

import "github.com/CampusCore/ERP-Backend/internal/utils"

// SubjectNames is the fixed catalog every record carries, in display
// order. Marks updates always replace all four.
var SubjectNames = [4]string{"Chemistry", "Maths", "BEE", "UHV"}

type Student struct {
	ID         string    `gorm:"primaryKey" json:"-"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	RollNumber string    `json:"rollNumber"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	DOB        string    `json:"dob"`
	Department string    `json:"department"`
	Semester   string    `json:"semester"`
	Attendance int       `gorm:"default:0" json:"attendance"`
	Subjects   []Subject `gorm:"foreignKey:StudentID" json:"subjects"`
}

type Subject struct {
	ID        string `gorm:"primaryKey" json:"-"`
	StudentID string `gorm:"index;not null" json:"-"`
	Name      string `json:"name"`
	Marks     int    `json:"marks"`
	Position  int    `json:"-"`
}

func (Student) TableName() string { return "registrar.students" }
func (Subject) TableName() string { return "registrar.subjects" }

// New builds a registrar record for a freshly registered student with
// the four fixed subjects at zero marks.
func New(email, name, surname, dob, rollNumber, department, semester string) *Student {
	s := &Student{
		ID:         utils.GenerateUUID(),
		Email:      email,
		RollNumber: rollNumber,
		Name:       name,
		Surname:    surname,
		DOB:        dob,
		Department: department,
		Semester:   semester,
		Attendance: 0,
	}
	for i, subject := range SubjectNames {
		s.Subjects = append(s.Subjects, Subject{
			ID:        utils.GenerateUUID(),
			StudentID: s.ID,
			Name:      subject,
			Marks:     0,
			Position:  i,
		})
	}
	return s
}
