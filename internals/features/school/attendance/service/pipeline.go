// Pipeline rekonsiliasi: record absensi yang tersimpan sparse
// direkonsiliasi terhadap roster × tanggal menjadi grid padat,
// lalu diagregasi jadi statistik kehadiran.
package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/attendance/model"
	classService "sekolahku_backend/internals/features/school/classes/service"
	"sekolahku_backend/internals/helpers/dateutil"
)

// DenseEntry: satu sel grid (siswa × tanggal), tanpa celah.
type DenseEntry struct {
	Student classService.RosterStudent
	Date    time.Time
	Status  model.AttendanceStatus
}

// PresenceStat: hasil agregasi grid untuk satu siswa atau satu grup.
type PresenceStat struct {
	PresentCount      int
	ValidDayCount     int
	PercentagePresent float64
}

type recordKey struct {
	StudentID uuid.UUID
	ISODate   string
}

// indexRecords membangun lookup (studentId, isoDate) → record, sekali per request.
func indexRecords(records []model.AttendanceModel) map[recordKey]model.AttendanceModel {
	idx := make(map[recordKey]model.AttendanceModel, len(records))
	for _, rec := range records {
		idx[recordKey{rec.AttendanceStudentID, dateutil.ISODate(rec.AttendanceDate)}] = rec
	}
	return idx
}

// reconcileStudent mengisi grid satu siswa untuk daftar tanggal:
// record tersimpan dipakai apa adanya, celah diisi default ABSENT.
// Output selalu len(dates) entri, tidak kurang tidak lebih.
func reconcileStudent(student classService.RosterStudent, dates []time.Time, idx map[recordKey]model.AttendanceModel) []DenseEntry {
	entries := make([]DenseEntry, 0, len(dates))
	for _, d := range dates {
		status := model.StatusAbsent
		if rec, ok := idx[recordKey{student.ID, dateutil.ISODate(d)}]; ok {
			status = rec.AttendanceStatus
		}
		entries = append(entries, DenseEntry{Student: student, Date: d, Status: status})
	}
	return entries
}

// reconcile: grid padat seluruh roster, iterasi student-major.
func reconcile(students []classService.RosterStudent, dates []time.Time, idx map[recordKey]model.AttendanceModel) []DenseEntry {
	entries := make([]DenseEntry, 0, len(students)*len(dates))
	for _, st := range students {
		entries = append(entries, reconcileStudent(st, dates, idx)...)
	}
	return entries
}

// aggregate menghitung statistik kehadiran dari grid padat.
// HOLIDAY dikeluarkan dari penyebut (bukan hadir, bukan absen).
// Tanpa hari valid → 0, bukan NaN.
func aggregate(entries []DenseEntry) PresenceStat {
	stat := PresenceStat{}
	for _, e := range entries {
		if e.Status == model.StatusHoliday {
			continue
		}
		stat.ValidDayCount++
		if e.Status == model.StatusPresent {
			stat.PresentCount++
		}
	}
	if stat.ValidDayCount > 0 {
		pct := float64(stat.PresentCount) / float64(stat.ValidDayCount) * 100
		stat.PercentagePresent = math.Round(pct*100) / 100
	}
	return stat
}
