// Package dateutil berisi kalkulasi kalender untuk rekap absensi.
// Semua perhitungan pakai UTC supaya string tanggal stabil lintas timezone.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Week adalah satu blok minggu Senin–Sabtu dalam sebuah bulan.
type Week struct {
	WeekNumber int
	Range      string // "DD-MM-YYYY - DD-MM-YYYY"
	Dates      []time.Time
}

const daysPerWeek = 6 // Senin..Sabtu

// firstMonday cari Senin pertama pada/atau setelah tanggal 1 bulan tsb.
func firstMonday(year, month int) time.Time {
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// GetWeekDates mengembalikan 6 tanggal (Senin..Sabtu) minggu ke-week pada (year, month).
// month dan week mulai dari 1. Minggu yang Seninnya jatuh di luar bulan → 400.
func GetWeekDates(year, month, week int) ([]time.Time, error) {
	if year <= 0 || month < 1 || month > 12 || week <= 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "year, month, and week must be positive!")
	}

	monday := firstMonday(year, month).AddDate(0, 0, (week-1)*7)
	if int(monday.Month()) != month {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("week %d is out of range for month %d", week, month))
	}

	dates := make([]time.Time, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		dates = append(dates, monday.AddDate(0, 0, i))
	}
	return dates, nil
}

// GetAllWeeksInMonth mengembalikan semua minggu (Senin..Sabtu) yang Seninnya
// masih berada di (year, month), bernomor 1..N sesuai urutan.
func GetAllWeeksInMonth(year, month int) ([]Week, error) {
	if year <= 0 || month < 1 || month > 12 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "year and month must be positive!")
	}

	weeks := []Week{}
	cursor := firstMonday(year, month)
	counter := 1

	for int(cursor.Month()) == month {
		dates := make([]time.Time, 0, daysPerWeek)
		day := cursor
		for i := 0; i < daysPerWeek; i++ {
			dates = append(dates, day)
			day = day.AddDate(0, 0, 1)
		}

		weeks = append(weeks, Week{
			WeekNumber: counter,
			Range:      fmt.Sprintf("%s - %s", FormatDate(dates[0]), FormatDate(dates[len(dates)-1])),
			Dates:      dates,
		})
		counter++

		cursor = cursor.AddDate(0, 0, 7)
		// jaga-jaga: pastikan cursor tetap jatuh di hari Senin
		for cursor.Weekday() != time.Monday {
			cursor = cursor.AddDate(0, 0, 1)
		}
	}

	return weeks, nil
}

// FormatDate memformat tanggal jadi "DD-MM-YYYY" (komponen UTC).
func FormatDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%02d-%02d-%04d", t.Day(), int(t.Month()), t.Year())
}

// ISODate memformat tanggal jadi "YYYY-MM-DD" (komponen UTC) untuk wire format.
func ISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDate mengubah "YYYY-MM-DD" menjadi time.Time tengah malam UTC.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date format")
	}

	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date format")
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
