package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	classService "sekolahku_backend/internals/features/school/classes/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/helpers/dateutil"
)

// AttendanceService: engine rekonsiliasi + agregasi absensi.
// Stateless; semua dependensi lewat Store.
type AttendanceService struct {
	store Store
}

func NewAttendanceService(store Store) *AttendanceService {
	return &AttendanceService{store: store}
}

/* ===================== READ: DETAILS (satu hari, grid kelas) ===================== */

func (s *AttendanceService) GetAttendanceDetails(ctx context.Context, req dto.GetAttendanceDetailsRequest) (*dto.AttendanceDetailsResponse, error) {
	if err := helper.CheckAllowedRole(constants.AdminTeacher, req.LoggedUserRole); err != nil {
		return nil, err
	}

	class, err := s.store.GetClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if req.Date == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "date not inputted!")
	}
	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendance(ctx, class.ID, date, date)
	if err != nil {
		return nil, err
	}
	idx := indexRecords(records)

	// satu sort stabil by (nama, id); sumber aslinya sort dua kali,
	// duplikatnya sengaja tidak direproduksi
	students := sortedByName(class.Students)

	items := make([]dto.StudentAttendanceItem, 0, len(students))
	for i, st := range students {
		entry := reconcileStudent(st, []time.Time{date}, idx)[0]
		items = append(items, dto.StudentAttendanceItem{
			NoStudent: i + 1,
			Status:    string(entry.Status),
			Date:      dateutil.ISODate(entry.Date),
			Student:   studentDTO(st),
		})
	}

	return &dto.AttendanceDetailsResponse{
		Date:              dateutil.ISODate(date),
		Teacher:           teacherDTO(class),
		Class:             class.Name,
		StudentAttendance: items,
	}, nil
}

/* ===================== READ: DAILY ===================== */

func (s *AttendanceService) GetDailyAttendance(ctx context.Context, req dto.GetDailyAttendanceRequest) (*dto.DailyAttendanceResponse, error) {
	if err := helper.CheckAllowedRole(constants.AdminTeacher, req.LoggedUserRole); err != nil {
		return nil, err
	}

	class, err := s.store.GetClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if req.Date == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "date not inputted!")
	}
	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendance(ctx, class.ID, date, date)
	if err != nil {
		return nil, err
	}
	idx := indexRecords(records)

	students := sortedByName(class.Students)
	entries := reconcile(students, []time.Time{date}, idx)
	stat := aggregate(entries)

	items := make([]dto.StudentAttendanceItem, 0, len(entries))
	for i, e := range entries {
		items = append(items, dto.StudentAttendanceItem{
			NoStudent: i + 1,
			Status:    string(e.Status),
			Date:      dateutil.ISODate(e.Date),
			Student:   studentDTO(e.Student),
		})
	}

	return &dto.DailyAttendanceResponse{
		Date:              dateutil.ISODate(date),
		Teacher:           teacherDTO(class),
		Class:             class.Name,
		PercentagePresent: stat.PercentagePresent,
		StudentAttendance: items,
	}, nil
}

/* ===================== READ: WEEKLY (roster × 6 hari) ===================== */

func (s *AttendanceService) GetWeeklyAttendance(ctx context.Context, req dto.GetWeeklyAttendanceRequest) (*dto.WeeklyAttendanceResponse, error) {
	if err := helper.CheckAllowedRole(constants.AdminTeacher, req.LoggedUserRole); err != nil {
		return nil, err
	}

	class, err := s.store.GetClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	dates, err := dateutil.GetWeekDates(req.Year, req.Month, req.Week)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendance(ctx, class.ID, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, err
	}
	idx := indexRecords(records)

	blocks := make([]dto.WeeklyStudentBlock, 0, len(class.Students))
	for _, st := range class.Students {
		entries := reconcileStudent(st, dates, idx)
		stat := aggregate(entries)
		blocks = append(blocks, dto.WeeklyStudentBlock{
			ID:                st.ID,
			NISN:              st.NISN,
			Name:              st.Name,
			Attendance:        marks(entries),
			PercentagePresent: stat.PercentagePresent,
		})
	}

	return &dto.WeeklyAttendanceResponse{
		Teacher:  teacherDTO(class),
		Class:    class.Name,
		Week:     req.Week,
		Range:    weekRange(dates),
		Students: blocks,
	}, nil
}

/* ===================== READ: STUDENT WEEKLY ===================== */

func (s *AttendanceService) GetStudentWeeklyAttendance(ctx context.Context, req dto.GetStudentWeeklyAttendanceRequest) (*dto.StudentWeeklyAttendanceResponse, error) {
	if err := helper.CheckAllowedRole(constants.AdminTeacher, req.LoggedUserRole); err != nil {
		return nil, err
	}

	class, err := s.store.GetClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	student, err := s.store.GetStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	dates, err := dateutil.GetWeekDates(req.Year, req.Month, req.Week)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendance(ctx, class.ID, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, err
	}

	entries := reconcileStudent(*student, dates, indexRecords(records))
	stat := aggregate(entries)

	return &dto.StudentWeeklyAttendanceResponse{
		Teacher:           teacherDTO(class),
		Class:             class.Name,
		Student:           studentDTO(*student),
		Week:              req.Week,
		Range:             weekRange(dates),
		Attendance:        marks(entries),
		PercentagePresent: stat.PercentagePresent,
	}, nil
}

/* ===================== READ: STUDENT MONTHLY ===================== */

// GetStudentMonthlyAttendance menyusun satu blok Student-Weekly per minggu
// dalam bulan. Fetch per minggu jalan paralel (range tanggalnya disjoint,
// read-only), hasil dirangkai ulang berdasar nomor minggu.
func (s *AttendanceService) GetStudentMonthlyAttendance(ctx context.Context, req dto.GetStudentMonthlyAttendanceRequest) (*dto.StudentMonthlyAttendanceResponse, error) {
	if err := helper.CheckAllowedRole(constants.AdminTeacher, req.LoggedUserRole); err != nil {
		return nil, err
	}

	class, err := s.store.GetClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	student, err := s.store.GetStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	weeks, err := dateutil.GetAllWeeksInMonth(req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	blocks := make([]dto.MonthlyWeekBlock, len(weeks))
	g, gctx := errgroup.WithContext(ctx)
	for i, wk := range weeks {
		i, wk := i, wk
		g.Go(func() error {
			records, err := s.store.ListAttendance(gctx, class.ID, wk.Dates[0], wk.Dates[len(wk.Dates)-1])
			if err != nil {
				return err
			}
			entries := reconcileStudent(*student, wk.Dates, indexRecords(records))
			stat := aggregate(entries)
			blocks[i] = dto.MonthlyWeekBlock{
				NumOfTheWeek:      wk.WeekNumber,
				Range:             wk.Range,
				Attendance:        marks(entries),
				PercentagePresent: stat.PercentagePresent,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.StudentMonthlyAttendanceResponse{
		Teacher:           teacherDTO(class),
		Class:             class.Name,
		Student:           studentDTO(*student),
		Month:             req.Month,
		Year:              req.Year,
		MonthlyAttendance: blocks,
	}, nil
}

/* ===================== WRITE: SINGLE ===================== */

func (s *AttendanceService) CreateOrUpdate(ctx context.Context, req dto.CreateOrUpdateRequest) (*dto.CreateOrUpdateResponse, error) {
	if err := helper.CheckAllowedRole(constants.AdminTeacher, req.LoggedUserRole); err != nil {
		return nil, err
	}

	if req.Date == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "date not inputted!")
	}
	if req.Status == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "absent status not inputted!")
	}
	status := model.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "attendance status must be PRESENT, ABSENT, or HOLIDAY!")
	}

	class, err := s.store.GetClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	student, err := s.store.GetStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendance(ctx, class.ID, date, date)
	if err != nil {
		return nil, err
	}

	var existing *model.AttendanceModel
	for i := range records {
		if records[i].AttendanceStudentID == student.ID {
			existing = &records[i]
			break
		}
	}

	if existing == nil {
		rec := &model.AttendanceModel{
			AttendanceClassID:   class.ID,
			AttendanceStudentID: student.ID,
			AttendanceDate:      date,
			AttendanceStatus:    status,
		}
		if err := s.store.CreateAttendance(ctx, rec); err != nil {
			return nil, err
		}
	} else if existing.AttendanceStatus != status {
		if err := s.store.UpdateAttendance(ctx, existing.AttendanceID, date, status); err != nil {
			return nil, err
		}
	}

	return &dto.CreateOrUpdateResponse{
		Date:    dateutil.ISODate(date),
		Status:  string(status),
		Student: studentDTO(*student),
	}, nil
}

/* ===================== WRITE: BATCH ===================== */

// CreateOrUpdateMany: diff daftar entri terhadap record existing untuk
// (kelas, tanggal). Status sama = no-op (idempotent), beda = update,
// belum ada = create. Validasi roster dilakukan sekali di depan — satu
// siswa di luar roster menggagalkan seluruh batch sebelum ada tulisan.
// Seluruh batch dibungkus satu transaksi; urutan eksekusi: update dulu,
// baru create.
func (s *AttendanceService) CreateOrUpdateMany(ctx context.Context, req dto.CreateOrUpdateManyRequest) (*dto.CreateOrUpdateManyResponse, error) {
	if err := helper.CheckAllowedRole(constants.AdminTeacher, req.LoggedUserRole); err != nil {
		return nil, err
	}

	if req.Date == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "date not inputted!")
	}
	if len(req.StudentAttendances) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "student attendances not inputted!")
	}

	class, err := s.store.GetClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	roster := make(map[uuid.UUID]struct{}, len(class.Students))
	for _, st := range class.Students {
		roster[st.ID] = struct{}{}
	}
	for _, entry := range req.StudentAttendances {
		if entry.StudentID == uuid.Nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Student Id not inputted!")
		}
		if !model.AttendanceStatus(entry.Status).Valid() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "attendance status must be PRESENT, ABSENT, or HOLIDAY!")
		}
		if _, ok := roster[entry.StudentID]; !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Student not found in the class")
		}
	}

	err = s.store.WithinTransaction(ctx, func(tx Store) error {
		records, err := tx.ListAttendance(ctx, class.ID, date, date)
		if err != nil {
			return err
		}
		existing := make(map[uuid.UUID]model.AttendanceModel, len(records))
		for _, rec := range records {
			existing[rec.AttendanceStudentID] = rec
		}

		var updates []model.AttendanceModel
		var creates []model.AttendanceModel
		for _, entry := range req.StudentAttendances {
			status := model.AttendanceStatus(entry.Status)
			rec, ok := existing[entry.StudentID]
			switch {
			case !ok:
				creates = append(creates, model.AttendanceModel{
					AttendanceClassID:   class.ID,
					AttendanceStudentID: entry.StudentID,
					AttendanceDate:      date,
					AttendanceStatus:    status,
				})
			case rec.AttendanceStatus != status:
				rec.AttendanceStatus = status
				updates = append(updates, rec)
			}
			// status tidak berubah → tidak ada tulisan
		}

		for _, rec := range updates {
			if err := tx.UpdateAttendance(ctx, rec.AttendanceID, date, rec.AttendanceStatus); err != nil {
				return err
			}
		}
		for i := range creates {
			if err := tx.CreateAttendance(ctx, &creates[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrUpdateManyResponse{
		Date:               dateutil.ISODate(date),
		Class:              class.Name,
		StudentAttendances: req.StudentAttendances,
	}, nil
}

/* ===================== HELPERS ===================== */

func sortedByName(students []classService.RosterStudent) []classService.RosterStudent {
	out := make([]classService.RosterStudent, len(students))
	copy(out, students)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func teacherDTO(class *classService.ClassContext) dto.AttendanceTeacher {
	if class.Teacher.ID == uuid.Nil {
		return dto.AttendanceTeacher{}
	}
	id, name := class.Teacher.ID, class.Teacher.Name
	return dto.AttendanceTeacher{ID: &id, Name: &name}
}

func studentDTO(st classService.RosterStudent) dto.AttendanceStudent {
	return dto.AttendanceStudent{ID: st.ID, NISN: st.NISN, Name: st.Name}
}

func marks(entries []DenseEntry) []dto.AttendanceMark {
	out := make([]dto.AttendanceMark, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AttendanceMark{Date: dateutil.ISODate(e.Date), Status: string(e.Status)})
	}
	return out
}

func weekRange(dates []time.Time) string {
	return dateutil.FormatDate(dates[0]) + " - " + dateutil.FormatDate(dates[len(dates)-1])
}
