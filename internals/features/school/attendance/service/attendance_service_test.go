package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/attendance/dto"
	"sekolahku_backend/internals/features/school/attendance/model"
	classService "sekolahku_backend/internals/features/school/classes/service"
)

/* ===================== FAKE STORE ===================== */

type fakeStore struct {
	class    *classService.ClassContext
	students map[uuid.UUID]classService.RosterStudent
	records  []model.AttendanceModel

	creates int
	updates int
}

func newFakeStore(studentNames ...string) *fakeStore {
	teacherID := uuid.New()
	class := &classService.ClassContext{
		ID:      uuid.New(),
		Name:    "VII-A",
		Teacher: classService.ClassTeacher{ID: teacherID, NIP: "123", Name: "Bu Siti"},
	}
	students := map[uuid.UUID]classService.RosterStudent{}
	for i, name := range studentNames {
		st := classService.RosterStudent{ID: uuid.New(), NISN: "005000000" + string(rune('1'+i)), Name: name}
		class.Students = append(class.Students, st)
		students[st.ID] = st
	}
	return &fakeStore{class: class, students: students}
}

func (f *fakeStore) GetClass(_ context.Context, classID uuid.UUID) (*classService.ClassContext, error) {
	if classID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Class Id not inputted!")
	}
	if classID != f.class.ID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
	}
	return f.class, nil
}

func (f *fakeStore) GetStudent(_ context.Context, studentID uuid.UUID) (*classService.RosterStudent, error) {
	if studentID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Student Id not inputted!")
	}
	st, ok := f.students[studentID]
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	return &st, nil
}

func (f *fakeStore) ListAttendance(_ context.Context, classID uuid.UUID, from, to time.Time) ([]model.AttendanceModel, error) {
	var out []model.AttendanceModel
	for _, rec := range f.records {
		if rec.AttendanceClassID != classID {
			continue
		}
		if rec.AttendanceDate.Before(from) || rec.AttendanceDate.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeStore) CreateAttendance(_ context.Context, rec *model.AttendanceModel) error {
	rec.AttendanceID = uuid.New()
	rec.AttendanceCreatedAt = time.Now()
	f.records = append(f.records, *rec)
	f.creates++
	return nil
}

func (f *fakeStore) UpdateAttendance(_ context.Context, id uuid.UUID, date time.Time, status model.AttendanceStatus) error {
	for i := range f.records {
		if f.records[i].AttendanceID == id {
			f.records[i].AttendanceDate = date
			f.records[i].AttendanceStatus = status
			f.updates++
			return nil
		}
	}
	return fiber.NewError(fiber.StatusNotFound, "attendance record not found")
}

func (f *fakeStore) WithinTransaction(_ context.Context, fn func(Store) error) error {
	return fn(f)
}

func (f *fakeStore) addRecord(studentID uuid.UUID, date time.Time, status model.AttendanceStatus) {
	f.records = append(f.records, model.AttendanceModel{
		AttendanceID:        uuid.New(),
		AttendanceClassID:   f.class.ID,
		AttendanceStudentID: studentID,
		AttendanceDate:      date,
		AttendanceStatus:    status,
	})
}

func requireFiberCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	require.Equal(t, code, fe.Code)
}

/* ===================== READ TESTS ===================== */

func TestGetDailyAttendanceDefaultFill(t *testing.T) {
	store := newFakeStore("Citra", "Ahmad", "Bunga")
	svc := NewAttendanceService(store)

	result, err := svc.GetDailyAttendance(context.Background(), dto.GetDailyAttendanceRequest{
		LoggedUserRole: constants.RoleTeacher,
		ClassID:        store.class.ID,
		Date:           "2024-03-05",
	})
	require.NoError(t, err)

	// roster 3 siswa tanpa record tersimpan → 3 entri semua ABSENT
	require.Len(t, result.StudentAttendance, 3)
	for _, item := range result.StudentAttendance {
		require.Equal(t, "ABSENT", item.Status)
		require.Equal(t, "2024-03-05", item.Date)
	}
	require.Equal(t, float64(0), result.PercentagePresent)

	// urut nama + no_student 1..N
	require.Equal(t, "Ahmad", result.StudentAttendance[0].Student.Name)
	require.Equal(t, "Bunga", result.StudentAttendance[1].Student.Name)
	require.Equal(t, "Citra", result.StudentAttendance[2].Student.Name)
	for i, item := range result.StudentAttendance {
		require.Equal(t, i+1, item.NoStudent)
	}
}

func TestGetDailyAttendancePercentage(t *testing.T) {
	store := newFakeStore("A", "B", "C")
	svc := NewAttendanceService(store)
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	store.addRecord(store.class.Students[0].ID, date, model.StatusPresent)
	store.addRecord(store.class.Students[1].ID, date, model.StatusHoliday)
	// siswa ke-3 tanpa record → ABSENT

	result, err := svc.GetDailyAttendance(context.Background(), dto.GetDailyAttendanceRequest{
		LoggedUserRole: constants.RoleAdmin,
		ClassID:        store.class.ID,
		Date:           "2024-03-05",
	})
	require.NoError(t, err)

	// HOLIDAY keluar dari penyebut: 1 hadir dari 2 hari valid
	require.Equal(t, 50.00, result.PercentagePresent)
}

func TestGetAttendanceDetailsValidation(t *testing.T) {
	store := newFakeStore("A")
	svc := NewAttendanceService(store)
	studentID := store.class.Students[0].ID

	tests := []struct {
		name string
		req  dto.GetAttendanceDetailsRequest
		code int
	}{
		{"role missing", dto.GetAttendanceDetailsRequest{ClassID: store.class.ID, StudentID: studentID, Date: "2024-03-05"}, fiber.StatusForbidden},
		{"role parent", dto.GetAttendanceDetailsRequest{LoggedUserRole: constants.RoleParent, ClassID: store.class.ID, StudentID: studentID, Date: "2024-03-05"}, fiber.StatusForbidden},
		{"class missing", dto.GetAttendanceDetailsRequest{LoggedUserRole: constants.RoleAdmin, StudentID: studentID, Date: "2024-03-05"}, fiber.StatusBadRequest},
		{"class unknown", dto.GetAttendanceDetailsRequest{LoggedUserRole: constants.RoleAdmin, ClassID: uuid.New(), StudentID: studentID, Date: "2024-03-05"}, fiber.StatusNotFound},
		{"student unknown", dto.GetAttendanceDetailsRequest{LoggedUserRole: constants.RoleAdmin, ClassID: store.class.ID, StudentID: uuid.New(), Date: "2024-03-05"}, fiber.StatusNotFound},
		{"date missing", dto.GetAttendanceDetailsRequest{LoggedUserRole: constants.RoleAdmin, ClassID: store.class.ID, StudentID: studentID}, fiber.StatusBadRequest},
		{"date malformed", dto.GetAttendanceDetailsRequest{LoggedUserRole: constants.RoleAdmin, ClassID: store.class.ID, StudentID: studentID, Date: "05/03/2024"}, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetAttendanceDetails(context.Background(), tt.req)
			requireFiberCode(t, err, tt.code)
		})
	}
}

func TestGetWeeklyAttendance(t *testing.T) {
	store := newFakeStore("A", "B")
	svc := NewAttendanceService(store)

	// minggu 1 Feb 2024 = 5..10 Feb
	monday := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	first := store.class.Students[0]
	for i := 0; i < 6; i++ {
		store.addRecord(first.ID, monday.AddDate(0, 0, i), model.StatusPresent)
	}

	result, err := svc.GetWeeklyAttendance(context.Background(), dto.GetWeeklyAttendanceRequest{
		LoggedUserRole: constants.RoleTeacher,
		ClassID:        store.class.ID,
		Year:           2024, Month: 2, Week: 1,
	})
	require.NoError(t, err)
	require.Len(t, result.Students, 2)

	require.Len(t, result.Students[0].Attendance, 6)
	require.Equal(t, 100.00, result.Students[0].PercentagePresent)
	require.Equal(t, "2024-02-05", result.Students[0].Attendance[0].Date)

	// siswa tanpa record: grid tetap penuh, semua ABSENT
	require.Len(t, result.Students[1].Attendance, 6)
	require.Equal(t, 0.00, result.Students[1].PercentagePresent)
	for _, mark := range result.Students[1].Attendance {
		require.Equal(t, "ABSENT", mark.Status)
	}
}

func TestGetStudentMonthlyAttendance(t *testing.T) {
	store := newFakeStore("A")
	svc := NewAttendanceService(store)
	st := store.class.Students[0]

	// hadir penuh di minggu pertama Feb 2024
	monday := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		store.addRecord(st.ID, monday.AddDate(0, 0, i), model.StatusPresent)
	}

	result, err := svc.GetStudentMonthlyAttendance(context.Background(), dto.GetStudentMonthlyAttendanceRequest{
		LoggedUserRole: constants.RoleAdmin,
		ClassID:        store.class.ID,
		StudentID:      st.ID,
		Year:           2024, Month: 2,
	})
	require.NoError(t, err)

	// Feb 2024 punya 4 minggu (Senin 5, 12, 19, 26); join harus urut nomor minggu
	require.Len(t, result.MonthlyAttendance, 4)
	for i, block := range result.MonthlyAttendance {
		require.Equal(t, i+1, block.NumOfTheWeek)
		require.Len(t, block.Attendance, 6)
	}
	require.Equal(t, 100.00, result.MonthlyAttendance[0].PercentagePresent)
	require.Equal(t, 0.00, result.MonthlyAttendance[1].PercentagePresent)
}

/* ===================== WRITE TESTS ===================== */

func TestCreateOrUpdateManyIdempotent(t *testing.T) {
	store := newFakeStore("A", "B")
	svc := NewAttendanceService(store)

	req := dto.CreateOrUpdateManyRequest{
		LoggedUserRole: constants.RoleTeacher,
		ClassID:        store.class.ID,
		Date:           "2024-03-05",
		StudentAttendances: []dto.AttendanceEntryRequest{
			{StudentID: store.class.Students[0].ID, Status: "PRESENT"},
			{StudentID: store.class.Students[1].ID, Status: "HOLIDAY"},
		},
	}

	first, err := svc.CreateOrUpdateMany(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, store.creates)
	require.Equal(t, 0, store.updates)

	// payload identik → nol tulisan, echo identik
	second, err := svc.CreateOrUpdateMany(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, store.creates)
	require.Equal(t, 0, store.updates)
	require.Equal(t, first, second)
}

func TestCreateOrUpdateManyDiff(t *testing.T) {
	store := newFakeStore("A", "B")
	svc := NewAttendanceService(store)
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	store.addRecord(store.class.Students[0].ID, date, model.StatusAbsent)

	_, err := svc.CreateOrUpdateMany(context.Background(), dto.CreateOrUpdateManyRequest{
		LoggedUserRole: constants.RoleAdmin,
		ClassID:        store.class.ID,
		Date:           "2024-03-05",
		StudentAttendances: []dto.AttendanceEntryRequest{
			{StudentID: store.class.Students[0].ID, Status: "PRESENT"}, // beda → update
			{StudentID: store.class.Students[1].ID, Status: "ABSENT"},  // baru → create
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, store.updates)
	require.Equal(t, 1, store.creates)
}

func TestCreateOrUpdateManyMembershipFailFast(t *testing.T) {
	store := newFakeStore("A")
	svc := NewAttendanceService(store)

	_, err := svc.CreateOrUpdateMany(context.Background(), dto.CreateOrUpdateManyRequest{
		LoggedUserRole: constants.RoleTeacher,
		ClassID:        store.class.ID,
		Date:           "2024-03-05",
		StudentAttendances: []dto.AttendanceEntryRequest{
			{StudentID: store.class.Students[0].ID, Status: "PRESENT"},
			{StudentID: uuid.New(), Status: "PRESENT"}, // bukan anggota kelas
		},
	})
	requireFiberCode(t, err, fiber.StatusBadRequest)
	require.Equal(t, "Student not found in the class", err.(*fiber.Error).Message)

	// fail-fast: entri valid di batch yang sama pun tidak ditulis
	require.Equal(t, 0, store.creates)
	require.Equal(t, 0, store.updates)
}

func TestCreateOrUpdateManyValidation(t *testing.T) {
	store := newFakeStore("A")
	svc := NewAttendanceService(store)
	entry := []dto.AttendanceEntryRequest{{StudentID: store.class.Students[0].ID, Status: "PRESENT"}}

	tests := []struct {
		name string
		req  dto.CreateOrUpdateManyRequest
		code int
	}{
		{"role parent", dto.CreateOrUpdateManyRequest{LoggedUserRole: constants.RoleParent, ClassID: store.class.ID, Date: "2024-03-05", StudentAttendances: entry}, fiber.StatusForbidden},
		{"date missing", dto.CreateOrUpdateManyRequest{LoggedUserRole: constants.RoleAdmin, ClassID: store.class.ID, StudentAttendances: entry}, fiber.StatusBadRequest},
		{"entries empty", dto.CreateOrUpdateManyRequest{LoggedUserRole: constants.RoleAdmin, ClassID: store.class.ID, Date: "2024-03-05"}, fiber.StatusBadRequest},
		{"class missing", dto.CreateOrUpdateManyRequest{LoggedUserRole: constants.RoleAdmin, Date: "2024-03-05", StudentAttendances: entry}, fiber.StatusBadRequest},
		{"status unknown", dto.CreateOrUpdateManyRequest{LoggedUserRole: constants.RoleAdmin, ClassID: store.class.ID, Date: "2024-03-05",
			StudentAttendances: []dto.AttendanceEntryRequest{{StudentID: store.class.Students[0].ID, Status: "present"}}}, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrUpdateMany(context.Background(), tt.req)
			requireFiberCode(t, err, tt.code)
			require.Zero(t, store.creates)
			require.Zero(t, store.updates)
		})
	}
}

func TestCreateOrUpdateSingle(t *testing.T) {
	store := newFakeStore("A")
	svc := NewAttendanceService(store)
	st := store.class.Students[0]

	req := dto.CreateOrUpdateRequest{
		LoggedUserRole: constants.RoleTeacher,
		ClassID:        store.class.ID,
		StudentID:      st.ID,
		Date:           "2024-03-05",
		Status:         "PRESENT",
	}

	result, err := svc.CreateOrUpdate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, store.creates)
	require.Equal(t, "PRESENT", result.Status)
	require.Equal(t, "2024-03-05", result.Date)
	require.Equal(t, st.ID, result.Student.ID)

	// record sudah ada dengan status beda → update by id
	req.Status = "HOLIDAY"
	result, err = svc.CreateOrUpdate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, store.creates)
	require.Equal(t, 1, store.updates)
	require.Equal(t, "HOLIDAY", result.Status)

	// status sama → no-op
	_, err = svc.CreateOrUpdate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, store.creates)
	require.Equal(t, 1, store.updates)
}
