package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	attendanceModel "classhub_backend/internals/features/school/attendance/model"
	gradeModel "classhub_backend/internals/features/school/grades/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&attendanceModel.AttendanceModel{},
		&gradeModel.GradeModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedAttendance(t *testing.T, db *gorm.DB, orgID, lessonID, studentID uuid.UUID, present bool) {
	t.Helper()
	row := attendanceModel.AttendanceModel{
		AttendanceOrganizationID: orgID,
		AttendanceLessonID:       lessonID,
		AttendanceStudentID:      studentID,
		AttendanceWasPresent:     present,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
}

func TestRecordGradeRequiresPresentAttendance(t *testing.T) {
	orgID := uuid.New()
	lessonID := uuid.New()
	studentID := uuid.New()

	t.Run("no attendance row", func(t *testing.T) {
		db := newTestDB(t)
		row := gradeModel.GradeModel{
			GradeOrganizationID: orgID,
			GradeLessonID:       lessonID,
			GradeStudentID:      studentID,
			GradeValue:          5,
		}
		if err := RecordGrade(db, &row); !errors.Is(err, ErrStudentNotPresent) {
			t.Fatalf("err = %v, want ErrStudentNotPresent", err)
		}
		var count int64
		db.Model(&gradeModel.GradeModel{}).Count(&count)
		if count != 0 {
			t.Fatalf("grades persisted = %d, want 0", count)
		}
	})

	t.Run("marked absent", func(t *testing.T) {
		db := newTestDB(t)
		seedAttendance(t, db, orgID, lessonID, studentID, false)
		row := gradeModel.GradeModel{
			GradeOrganizationID: orgID,
			GradeLessonID:       lessonID,
			GradeStudentID:      studentID,
			GradeValue:          4,
		}
		if err := RecordGrade(db, &row); !errors.Is(err, ErrStudentNotPresent) {
			t.Fatalf("err = %v, want ErrStudentNotPresent", err)
		}
	})

	t.Run("marked present", func(t *testing.T) {
		db := newTestDB(t)
		seedAttendance(t, db, orgID, lessonID, studentID, true)
		row := gradeModel.GradeModel{
			GradeOrganizationID: orgID,
			GradeLessonID:       lessonID,
			GradeStudentID:      studentID,
			GradeValue:          4,
		}
		if err := RecordGrade(db, &row); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var got gradeModel.GradeModel
		if err := db.First(&got, "grade_lesson_id = ? AND grade_student_id = ?", lessonID, studentID).Error; err != nil {
			t.Fatalf("reload: %v", err)
		}
		if got.GradeValue != 4 {
			t.Errorf("value = %d, want 4", got.GradeValue)
		}
	})
}

func TestRecordGradeRejectsSecondGradeForPair(t *testing.T) {
	db := newTestDB(t)

	orgID := uuid.New()
	lessonID := uuid.New()
	studentID := uuid.New()
	seedAttendance(t, db, orgID, lessonID, studentID, true)

	first := gradeModel.GradeModel{
		GradeOrganizationID: orgID,
		GradeLessonID:       lessonID,
		GradeStudentID:      studentID,
		GradeValue:          5,
	}
	if err := RecordGrade(db, &first); err != nil {
		t.Fatalf("first grade: %v", err)
	}

	second := gradeModel.GradeModel{
		GradeOrganizationID: orgID,
		GradeLessonID:       lessonID,
		GradeStudentID:      studentID,
		GradeValue:          3,
	}
	// Unique index on (lesson, student) is the enforcing constraint.
	if err := RecordGrade(db, &second); err == nil {
		t.Fatal("second grade for the pair should fail")
	}

	var count int64
	db.Model(&gradeModel.GradeModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("grades = %d, want 1", count)
	}
	var got gradeModel.GradeModel
	if err := db.First(&got, "grade_lesson_id = ?", lessonID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.GradeValue != 5 {
		t.Errorf("surviving value = %d, want the first grade (5)", got.GradeValue)
	}
}
