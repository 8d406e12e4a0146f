package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// Migrate menjalankan AutoMigrate semua tabel.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.TeacherModel{},
		&classModel.StudentModel{},
		&classModel.ClassModel{},
		&classModel.StudentClassModel{},
		&attendanceModel.AttendanceModel{},
	)
}

// Seed mengisi data awal: satu admin + satu guru + kelas demo dengan rosternya.
func Seed(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia-sekali"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := userModel.UserModel{
		UserName:     "admin",
		UserEmail:    "admin@sekolahku.id",
		UserPassword: string(hashed),
		UserRole:     constants.RoleAdmin,
	}
	if err := db.Where("user_name = ?", admin.UserName).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	teacherUser := userModel.UserModel{
		UserName:     "bu.siti",
		UserEmail:    "siti@sekolahku.id",
		UserPassword: string(hashed),
		UserRole:     constants.RoleTeacher,
	}
	if err := db.Where("user_name = ?", teacherUser.UserName).FirstOrCreate(&teacherUser).Error; err != nil {
		return err
	}

	teacher := classModel.TeacherModel{
		TeacherNIP:    "196512301990032003",
		TeacherUserID: teacherUser.UserID,
	}
	if err := db.Where("teacher_nip = ?", teacher.TeacherNIP).FirstOrCreate(&teacher).Error; err != nil {
		return err
	}

	class := classModel.ClassModel{
		ClassName:      "VII-A",
		ClassTeacherID: &teacher.TeacherID,
	}
	if err := db.Where("class_name = ?", class.ClassName).FirstOrCreate(&class).Error; err != nil {
		return err
	}

	students := []classModel.StudentModel{
		{StudentNISN: "0051234561", StudentName: "Ahmad Fauzi"},
		{StudentNISN: "0051234562", StudentName: "Bunga Citra"},
		{StudentNISN: "0051234563", StudentName: "Citra Dewi"},
	}
	for i := range students {
		if err := db.Where("student_nisn = ?", students[i].StudentNISN).FirstOrCreate(&students[i]).Error; err != nil {
			return err
		}
		enrollment := classModel.StudentClassModel{
			StudentClassStudentID: students[i].StudentID,
			StudentClassClassID:   class.ClassID,
		}
		err := db.Where("student_class_student_id = ? AND student_class_class_id = ?",
			students[i].StudentID, class.ClassID).
			FirstOrCreate(&enrollment).Error
		if err != nil {
			return err
		}
	}

	log.Println("✅ Seeder selesai.")
	return nil
}
