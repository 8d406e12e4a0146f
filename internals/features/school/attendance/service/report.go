package service

import (
	"fmt"

	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
)

// Penyusun tabel untuk report sink (PDF). Engine hanya menyuplai
// kolom + baris terstruktur; layout jadi urusan renderer.
// Label kolom mengikuti locale laporan (Indonesia), persentase selalu
// di kolom paling belakang.

func statusLabel(status string) string {
	switch model.AttendanceStatus(status) {
	case model.StatusPresent:
		return "Hadir"
	case model.StatusAbsent:
		return "Absen"
	case model.StatusHoliday:
		return "Libur"
	}
	return status
}

func percentLabel(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// DailyTable: satu baris per siswa, baris terakhir rekap persentase kelas.
func DailyTable(resp *dto.DailyAttendanceResponse) (string, []string, [][]string) {
	title := fmt.Sprintf("Rekap Absensi Harian Kelas %s - %s", resp.Class, resp.Date)
	columns := []string{"No", "NISN", "Nama Siswa", "Tanggal", "Status"}

	rows := make([][]string, 0, len(resp.StudentAttendance)+1)
	for _, item := range resp.StudentAttendance {
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.NoStudent),
			item.Student.NISN,
			item.Student.Name,
			item.Date,
			statusLabel(item.Status),
		})
	}
	rows = append(rows, []string{"", "", "", "Persentase Hadir", percentLabel(resp.PercentagePresent)})
	return title, columns, rows
}

// WeeklyTable: satu baris per siswa, 6 kolom tanggal, persentase di belakang.
func WeeklyTable(resp *dto.WeeklyAttendanceResponse) (string, []string, [][]string) {
	title := fmt.Sprintf("Rekap Absensi Mingguan Kelas %s - Minggu ke-%d (%s)", resp.Class, resp.Week, resp.Range)

	columns := []string{"No", "NISN", "Nama Siswa"}
	if len(resp.Students) > 0 {
		for _, mark := range resp.Students[0].Attendance {
			columns = append(columns, mark.Date)
		}
	}
	columns = append(columns, "Persentase Hadir")

	rows := make([][]string, 0, len(resp.Students))
	for i, st := range resp.Students {
		row := []string{fmt.Sprintf("%d", i+1), st.NISN, st.Name}
		for _, mark := range st.Attendance {
			row = append(row, statusLabel(mark.Status))
		}
		row = append(row, percentLabel(st.PercentagePresent))
		rows = append(rows, row)
	}
	return title, columns, rows
}

// StudentMonthlyTable: satu baris per hari; persentase minggu diisi pada
// baris pertama minggunya.
func StudentMonthlyTable(resp *dto.StudentMonthlyAttendanceResponse) (string, []string, [][]string) {
	title := fmt.Sprintf("Rekap Absensi Bulanan %s (%s) - Kelas %s, Bulan %02d-%d",
		resp.Student.Name, resp.Student.NISN, resp.Class, resp.Month, resp.Year)
	columns := []string{"Minggu", "Tanggal", "Status", "Persentase Hadir"}

	var rows [][]string
	for _, wk := range resp.MonthlyAttendance {
		for i, mark := range wk.Attendance {
			week, pct := "", ""
			if i == 0 {
				week = fmt.Sprintf("Minggu ke-%d", wk.NumOfTheWeek)
				pct = percentLabel(wk.PercentagePresent)
			}
			rows = append(rows, []string{week, mark.Date, statusLabel(mark.Status), pct})
		}
	}
	return title, columns, rows
}
