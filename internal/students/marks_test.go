package students_test

import (
	"testing"

	"github.com/CampusCore/ERP-Backend/internal/students"
)

// TestBuildBatch_ReshapesParallelArrays verifies index i across the five arrays
// becomes one per-student update with coerced marks.
func TestBuildBatch_ReshapesParallelArrays(t *testing.T) {
	updates, err := students.BuildBatch(
		[]string{"s1@x.com", "s2@x.com"},
		[]string{"90", "45"},
		[]string{"80", "55"},
		[]string{"70", "65"},
		[]string{"60", "75"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(updates))
	}

	first := updates[0]
	if first.Username != "s1@x.com" {
		t.Errorf("expected username s1@x.com, got %q", first.Username)
	}
	if first.Chemistry != 90 || first.Maths != 80 || first.BEE != 70 || first.UHV != 60 {
		t.Errorf("wrong marks for first update: %+v", first)
	}

	second := updates[1]
	if second.Chemistry != 45 || second.Maths != 55 || second.BEE != 65 || second.UHV != 75 {
		t.Errorf("wrong marks for second update: %+v", second)
	}
}

// TestBuildBatch_LengthMismatchFailsWholeBatch verifies misaligned arrays are a
// caller contract violation, not something to truncate.
func TestBuildBatch_LengthMismatchFailsWholeBatch(t *testing.T) {
	cases := []struct {
		name                                 string
		usernames, chemistry, maths, bee, uhv []string
	}{
		{
			name:      "short chemistry",
			usernames: []string{"s1@x.com", "s2@x.com"},
			chemistry: []string{"90"},
			maths:     []string{"80", "80"},
			bee:       []string{"70", "70"},
			uhv:       []string{"60", "60"},
		},
		{
			name:      "long uhv",
			usernames: []string{"s1@x.com"},
			chemistry: []string{"90"},
			maths:     []string{"80"},
			bee:       []string{"70"},
			uhv:       []string{"60", "60"},
		},
		{
			name:      "no usernames",
			usernames: nil,
			chemistry: []string{"90"},
			maths:     []string{"80"},
			bee:       []string{"70"},
			uhv:       []string{"60"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := students.BuildBatch(tc.usernames, tc.chemistry, tc.maths, tc.bee, tc.uhv)
			if err != students.ErrMalformedBatch {
				t.Errorf("expected ErrMalformedBatch, got %v", err)
			}
		})
	}
}

// TestBuildBatch_NonNumericMarksBecomeZero verifies bad input degrades to 0
// instead of rejecting the batch.
func TestBuildBatch_NonNumericMarksBecomeZero(t *testing.T) {
	updates, err := students.BuildBatch(
		[]string{"s1@x.com"},
		[]string{"abc"},
		[]string{""},
		[]string{"  70 "},
		[]string{"7.9"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := updates[0]
	if u.Chemistry != 0 {
		t.Errorf("expected non-numeric chemistry to coerce to 0, got %d", u.Chemistry)
	}
	if u.Maths != 0 {
		t.Errorf("expected empty maths to coerce to 0, got %d", u.Maths)
	}
	if u.BEE != 70 {
		t.Errorf("expected padded BEE to parse as 70, got %d", u.BEE)
	}
	if u.UHV != 7 {
		t.Errorf("expected fractional UHV to truncate to 7, got %d", u.UHV)
	}
}

// TestNew_FixedSubjectCatalog verifies a fresh record carries exactly the four
// fixed subjects at zero marks, in order.
func TestNew_FixedSubjectCatalog(t *testing.T) {
	record := students.New("s1@x.com", "Asha", "Kumar", "2005-03-14", "ECE-14", "ECE", "3")

	if record.Email != "s1@x.com" {
		t.Errorf("expected email s1@x.com, got %q", record.Email)
	}
	if record.Attendance != 0 {
		t.Errorf("expected attendance 0, got %d", record.Attendance)
	}
	if len(record.Subjects) != 4 {
		t.Fatalf("expected 4 subjects, got %d", len(record.Subjects))
	}

	want := []string{"Chemistry", "Maths", "BEE", "UHV"}
	for i, subject := range record.Subjects {
		if subject.Name != want[i] {
			t.Errorf("subject %d: expected %q, got %q", i, want[i], subject.Name)
		}
		if subject.Marks != 0 {
			t.Errorf("subject %q: expected 0 marks, got %d", subject.Name, subject.Marks)
		}
		if subject.Position != i {
			t.Errorf("subject %q: expected position %d, got %d", subject.Name, i, subject.Position)
		}
		if subject.StudentID != record.ID {
			t.Errorf("subject %q: not linked to record", subject.Name)
		}
	}
}

// TestSummarize_FlattensRecord verifies the admin projection: placeholder roll
// number, trimmed full name, flattened marks.
func TestSummarize_FlattensRecord(t *testing.T) {
	record := students.New("s1@x.com", "Asha", "Kumar", "2005-03-14", "ECE-14", "ECE", "3")
	record.Subjects[0].Marks = 90
	record.Subjects[3].Marks = 61

	summary := students.Summarize(*record)

	if summary.Username != "s1@x.com" {
		t.Errorf("expected username s1@x.com, got %q", summary.Username)
	}
	if summary.FullName != "Asha Kumar" {
		t.Errorf("expected full name 'Asha Kumar', got %q", summary.FullName)
	}
	if summary.RollNumber != "ECE-14" {
		t.Errorf("expected roll number ECE-14, got %q", summary.RollNumber)
	}
	if summary.Marks["chemistry"] != "90" {
		t.Errorf("expected chemistry '90', got %q", summary.Marks["chemistry"])
	}
	if summary.Marks["UHV"] != "61" {
		t.Errorf("expected UHV '61', got %q", summary.Marks["UHV"])
	}
	if summary.Marks["maths"] != "0" {
		t.Errorf("expected maths '0', got %q", summary.Marks["maths"])
	}
}

// TestSummarize_TolerantOfMissingParts verifies placeholders for an incomplete
// record: no roll number, one-sided name, missing subject rows.
func TestSummarize_TolerantOfMissingParts(t *testing.T) {
	record := students.Student{
		Email:   "bare@x.com",
		Surname: "Mehta",
		Subjects: []students.Subject{
			{Name: "Maths", Marks: 42, Position: 1},
		},
	}

	summary := students.Summarize(record)

	if summary.RollNumber != "-" {
		t.Errorf("expected placeholder '-', got %q", summary.RollNumber)
	}
	if summary.FullName != "Mehta" {
		t.Errorf("expected trimmed 'Mehta', got %q", summary.FullName)
	}
	if summary.Marks["maths"] != "42" {
		t.Errorf("expected maths '42', got %q", summary.Marks["maths"])
	}
	for _, key := range []string{"chemistry", "BEE", "UHV"} {
		if summary.Marks[key] != "" {
			t.Errorf("expected empty %s for missing subject, got %q", key, summary.Marks[key])
		}
	}
}
