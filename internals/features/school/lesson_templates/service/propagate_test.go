package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	templateModel "classhub_backend/internals/features/school/lesson_templates/model"
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
	if err := db.AutoMigrate(&lessonModel.LessonModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPropagateTemplateEditSkipsCompletedLessons(t *testing.T) {
	db := newTestDB(t)

	orgID := uuid.New()
	tpl := templateModel.LessonTemplateModel{
		LessonTemplateID:             uuid.New(),
		LessonTemplateOrganizationID: orgID,
		LessonTemplateTitle:          "Algebra (moved)",
		LessonTemplateStartMinutes:   600,
		LessonTemplateEndMinutes:     660,
		LessonTemplateTeacherID:      uuid.New(),
	}
	tplID := tpl.LessonTemplateID

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	completed := lessonModel.LessonModel{
		LessonOrganizationID: orgID,
		LessonTitle:          "Algebra",
		LessonDate:           date,
		LessonStartMinutes:   480,
		LessonEndMinutes:     540,
		LessonTeacherID:      uuid.New(),
		LessonTemplateID:     &tplID,
		LessonIsCompleted:    true,
	}
	pending := lessonModel.LessonModel{
		LessonOrganizationID: orgID,
		LessonTitle:          "Algebra",
		LessonDate:           date.AddDate(0, 0, 7),
		LessonStartMinutes:   480,
		LessonEndMinutes:     540,
		LessonTeacherID:      completed.LessonTeacherID,
		LessonTemplateID:     &tplID,
	}
	if err := db.Create(&completed).Error; err != nil {
		t.Fatalf("seed completed: %v", err)
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending: %v", err)
	}

	updated, err := PropagateTemplateEdit(db, &tpl)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if updated != 1 {
		t.Fatalf("updated = %d, want 1", updated)
	}

	var got lessonModel.LessonModel
	if err := db.First(&got, "lesson_id = ?", completed.LessonID).Error; err != nil {
		t.Fatalf("reload completed: %v", err)
	}
	if got.LessonTitle != "Algebra" || got.LessonStartMinutes != 480 {
		t.Errorf("completed lesson changed: title=%q start=%d", got.LessonTitle, got.LessonStartMinutes)
	}

	if err := db.First(&got, "lesson_id = ?", pending.LessonID).Error; err != nil {
		t.Fatalf("reload pending: %v", err)
	}
	if got.LessonTitle != "Algebra (moved)" || got.LessonStartMinutes != 600 || got.LessonEndMinutes != 660 {
		t.Errorf("pending lesson not updated: title=%q slot=%d-%d", got.LessonTitle, got.LessonStartMinutes, got.LessonEndMinutes)
	}
	if got.LessonTeacherID != tpl.LessonTemplateTeacherID {
		t.Errorf("pending teacher = %s, want %s", got.LessonTeacherID, tpl.LessonTemplateTeacherID)
	}
}

func TestPropagateTemplateEditScopedToTemplate(t *testing.T) {
	db := newTestDB(t)

	orgID := uuid.New()
	tplID := uuid.New()
	other := lessonModel.LessonModel{
		LessonOrganizationID: orgID,
		LessonTitle:          "Standalone",
		LessonDate:           time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		LessonStartMinutes:   480,
		LessonEndMinutes:     540,
		LessonTeacherID:      uuid.New(),
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	tpl := templateModel.LessonTemplateModel{
		LessonTemplateID:             tplID,
		LessonTemplateOrganizationID: orgID,
		LessonTemplateTitle:          "Geometry",
		LessonTemplateStartMinutes:   600,
		LessonTemplateEndMinutes:     660,
		LessonTemplateTeacherID:      uuid.New(),
	}
	updated, err := PropagateTemplateEdit(db, &tpl)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}
	if updated != 0 {
		t.Fatalf("updated = %d, want 0", updated)
	}

	var got lessonModel.LessonModel
	if err := db.First(&got, "lesson_id = ?", other.LessonID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.LessonTitle != "Standalone" {
		t.Errorf("unlinked lesson changed: %q", got.LessonTitle)
	}
}
