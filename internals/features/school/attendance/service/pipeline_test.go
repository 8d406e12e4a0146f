package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/attendance/model"
	classService "sekolahku_backend/internals/features/school/classes/service"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func makeStudents(n int) []classService.RosterStudent {
	out := make([]classService.RosterStudent, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, classService.RosterStudent{
			ID:   uuid.New(),
			NISN: uuid.NewString()[:10],
			Name: string(rune('A' + i)),
		})
	}
	return out
}

func TestReconcileDensity(t *testing.T) {
	students := makeStudents(4)
	dates := []time.Time{day(4), day(5), day(6), day(7), day(8), day(9)}

	// hanya sebagian record tersimpan
	records := []model.AttendanceModel{
		{AttendanceID: uuid.New(), AttendanceStudentID: students[0].ID, AttendanceDate: day(4), AttendanceStatus: model.StatusPresent},
		{AttendanceID: uuid.New(), AttendanceStudentID: students[2].ID, AttendanceDate: day(6), AttendanceStatus: model.StatusHoliday},
	}

	entries := reconcile(students, dates, indexRecords(records))
	if len(entries) != len(students)*len(dates) {
		t.Fatalf("expected %d entries, got %d", len(students)*len(dates), len(entries))
	}

	seen := map[string]bool{}
	for _, e := range entries {
		key := e.Student.ID.String() + "|" + e.Date.Format("2006-01-02")
		if seen[key] {
			t.Fatalf("duplicate (student, date) pair: %s", key)
		}
		seen[key] = true
	}
}

func TestReconcileKeepsStoredStatusAndDefaultsAbsent(t *testing.T) {
	students := makeStudents(1)
	dates := []time.Time{day(4), day(5)}
	records := []model.AttendanceModel{
		{AttendanceID: uuid.New(), AttendanceStudentID: students[0].ID, AttendanceDate: day(4), AttendanceStatus: model.StatusPresent},
	}

	entries := reconcile(students, dates, indexRecords(records))
	if entries[0].Status != model.StatusPresent {
		t.Errorf("stored status not kept: %s", entries[0].Status)
	}
	if entries[1].Status != model.StatusAbsent {
		t.Errorf("gap not defaulted to ABSENT: %s", entries[1].Status)
	}
}

func TestAggregate(t *testing.T) {
	st := makeStudents(1)[0]
	tests := []struct {
		name        string
		statuses    []model.AttendanceStatus
		wantPresent int
		wantValid   int
		wantPercent float64
	}{
		{
			name:        "holiday excluded from denominator",
			statuses:    []model.AttendanceStatus{model.StatusPresent, model.StatusHoliday, model.StatusAbsent},
			wantPresent: 1, wantValid: 2, wantPercent: 50.00,
		},
		{
			name:        "all holiday gives zero not NaN",
			statuses:    []model.AttendanceStatus{model.StatusHoliday, model.StatusHoliday},
			wantPresent: 0, wantValid: 0, wantPercent: 0,
		},
		{
			name:        "empty grid",
			statuses:    nil,
			wantPresent: 0, wantValid: 0, wantPercent: 0,
		},
		{
			name: "two thirds rounded to 2 decimals",
			statuses: []model.AttendanceStatus{
				model.StatusPresent, model.StatusPresent, model.StatusAbsent,
			},
			wantPresent: 2, wantValid: 3, wantPercent: 66.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]DenseEntry, 0, len(tt.statuses))
			for i, s := range tt.statuses {
				entries = append(entries, DenseEntry{Student: st, Date: day(i + 1), Status: s})
			}
			stat := aggregate(entries)
			if stat.PresentCount != tt.wantPresent {
				t.Errorf("presentCount = %d, want %d", stat.PresentCount, tt.wantPresent)
			}
			if stat.ValidDayCount != tt.wantValid {
				t.Errorf("validDayCount = %d, want %d", stat.ValidDayCount, tt.wantValid)
			}
			if stat.PercentagePresent != tt.wantPercent {
				t.Errorf("percentagePresent = %v, want %v", stat.PercentagePresent, tt.wantPercent)
			}
		})
	}
}
