package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/attendance/model"
	classService "sekolahku_backend/internals/features/school/classes/service"
)

// Store adalah akses data abstrak untuk engine absensi.
// Implementasi produksi pakai GORM; test pakai fake in-memory.
type Store interface {
	GetClass(ctx context.Context, classID uuid.UUID) (*classService.ClassContext, error)
	GetStudent(ctx context.Context, studentID uuid.UUID) (*classService.RosterStudent, error)

	// ListAttendance mengambil record persisted untuk classID pada [from, to]
	// inklusif; varian harian: from == to.
	ListAttendance(ctx context.Context, classID uuid.UUID, from, to time.Time) ([]model.AttendanceModel, error)

	CreateAttendance(ctx context.Context, rec *model.AttendanceModel) error
	UpdateAttendance(ctx context.Context, id uuid.UUID, date time.Time, status model.AttendanceStatus) error

	// WithinTransaction menjalankan fn dalam satu transaksi store.
	WithinTransaction(ctx context.Context, fn func(Store) error) error
}

/* ===================== GORM STORE ===================== */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) GetClass(ctx context.Context, classID uuid.UUID) (*classService.ClassContext, error) {
	return classService.ResolveClassRoster(ctx, s.DB, classID)
}

func (s *GormStore) GetStudent(ctx context.Context, studentID uuid.UUID) (*classService.RosterStudent, error) {
	return classService.ResolveStudent(ctx, s.DB, studentID)
}

func (s *GormStore) ListAttendance(ctx context.Context, classID uuid.UUID, from, to time.Time) ([]model.AttendanceModel, error) {
	var records []model.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_class_id = ? AND attendance_date BETWEEN ? AND ?", classID, from, to).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) CreateAttendance(ctx context.Context, rec *model.AttendanceModel) error {
	return s.DB.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) UpdateAttendance(ctx context.Context, id uuid.UUID, date time.Time, status model.AttendanceStatus) error {
	return s.DB.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", id).
		Updates(map[string]interface{}{
			"attendance_date":   date,
			"attendance_status": status,
		}).Error
}

func (s *GormStore) WithinTransaction(ctx context.Context, fn func(Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}
