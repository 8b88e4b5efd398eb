package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	orgModel "classhub_backend/internals/features/organizations/model"
	attendanceModel "classhub_backend/internals/features/school/attendance/model"
	groupModel "classhub_backend/internals/features/school/groups/model"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
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
		&lessonModel.LessonModel{},
		&groupModel.GroupStudentModel{},
		&attendanceModel.AttendanceModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestReconcileAttendanceIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	org := orgModel.OrganizationModel{OrganizationID: uuid.New()}
	groupID := uuid.New()
	present := uuid.New()
	unmarked := uuid.New()

	lesson := lessonModel.LessonModel{
		LessonOrganizationID: org.OrganizationID,
		LessonTitle:          "Group math",
		LessonDate:           time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		LessonStartMinutes:   480,
		LessonEndMinutes:     540,
		LessonTeacherID:      uuid.New(),
		LessonGroupID:        &groupID,
		LessonIsCompleted:    true,
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	for _, studentID := range []uuid.UUID{present, unmarked} {
		member := groupModel.GroupStudentModel{
			GroupStudentOrganizationID: org.OrganizationID,
			GroupStudentGroupID:        groupID,
			GroupStudentStudentID:      studentID,
		}
		if err := db.Create(&member).Error; err != nil {
			t.Fatalf("seed member: %v", err)
		}
	}
	marked := attendanceModel.AttendanceModel{
		AttendanceOrganizationID: org.OrganizationID,
		AttendanceLessonID:       lesson.LessonID,
		AttendanceStudentID:      present,
		AttendanceWasPresent:     true,
	}
	if err := db.Create(&marked).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	orgs := []orgModel.OrganizationModel{org}

	first := ReconcileAttendance(db, orgs)
	if first[org.OrganizationID] != 1 {
		t.Fatalf("first run inserted %d, want 1", first[org.OrganizationID])
	}

	second := ReconcileAttendance(db, orgs)
	if n := second[org.OrganizationID]; n != 0 {
		t.Fatalf("second run inserted %d, want 0", n)
	}

	var rows []attendanceModel.AttendanceModel
	if err := db.Where("attendance_lesson_id = ?", lesson.LessonID).Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("attendance rows = %d, want 2", len(rows))
	}
	for _, row := range rows {
		switch row.AttendanceStudentID {
		case present:
			if !row.AttendanceWasPresent {
				t.Error("explicit present row was overwritten")
			}
		case unmarked:
			if row.AttendanceWasPresent {
				t.Error("back-filled row should be absent")
			}
		default:
			t.Errorf("unexpected student %s", row.AttendanceStudentID)
		}
	}
}

func TestReconcileAttendanceSkipsPendingAndGrouplessLessons(t *testing.T) {
	db := newTestDB(t)

	org := orgModel.OrganizationModel{OrganizationID: uuid.New()}
	groupID := uuid.New()
	student := uuid.New()

	member := groupModel.GroupStudentModel{
		GroupStudentOrganizationID: org.OrganizationID,
		GroupStudentGroupID:        groupID,
		GroupStudentStudentID:      student,
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}

	pending := lessonModel.LessonModel{
		LessonOrganizationID: org.OrganizationID,
		LessonTitle:          "Not over yet",
		LessonDate:           time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		LessonStartMinutes:   480,
		LessonEndMinutes:     540,
		LessonTeacherID:      uuid.New(),
		LessonGroupID:        &groupID,
	}
	groupless := lessonModel.LessonModel{
		LessonOrganizationID: org.OrganizationID,
		LessonTitle:          "One-on-one",
		LessonDate:           time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		LessonStartMinutes:   600,
		LessonEndMinutes:     660,
		LessonTeacherID:      uuid.New(),
		LessonIsCompleted:    true,
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending: %v", err)
	}
	if err := db.Create(&groupless).Error; err != nil {
		t.Fatalf("seed groupless: %v", err)
	}

	results := ReconcileAttendance(db, []orgModel.OrganizationModel{org})
	if n := results[org.OrganizationID]; n != 0 {
		t.Fatalf("inserted %d, want 0", n)
	}

	var count int64
	if err := db.Model(&attendanceModel.AttendanceModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("attendance rows = %d, want 0", count)
	}
}
