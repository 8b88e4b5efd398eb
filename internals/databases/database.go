package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"classhub_backend/internals/configs"
	documentModel "classhub_backend/internals/features/documents/model"
	orgModel "classhub_backend/internals/features/organizations/model"
	attendanceModel "classhub_backend/internals/features/school/attendance/model"
	classroomModel "classhub_backend/internals/features/school/classrooms/model"
	gradeModel "classhub_backend/internals/features/school/grades/model"
	groupModel "classhub_backend/internals/features/school/groups/model"
	templateModel "classhub_backend/internals/features/school/lesson_templates/model"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
	studentModel "classhub_backend/internals/features/school/students/model"
	teacherModel "classhub_backend/internals/features/school/teachers/model"
	userModel "classhub_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=classhub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate keeps the schema in sync and installs the constraints the
// application relies on for correctness (grade uniqueness is declared on the
// model; the schedule overlap exclusion needs raw SQL).
func Migrate() {
	if err := DB.AutoMigrate(
		&orgModel.OrganizationModel{},
		&userModel.UserModel{},
		&teacherModel.TeacherModel{},
		&classroomModel.ClassroomModel{},
		&studentModel.StudentModel{},
		&groupModel.StudentGroupModel{},
		&groupModel.GroupStudentModel{},
		&templateModel.LessonTemplateModel{},
		&lessonModel.LessonModel{},
		&attendanceModel.AttendanceModel{},
		&gradeModel.GradeModel{},
		&documentModel.DocumentModel{},
	); err != nil {
		log.Fatalf("[ERROR] migrate failed: %v", err)
	}

	if err := EnsureScheduleConstraints(); err != nil {
		log.Fatalf("[ERROR] schedule constraints: %v", err)
	}
}

// EnsureScheduleConstraints installs a btree_gist EXCLUDE constraint so two
// lessons for the same teacher on the same date can never commit with
// overlapping time ranges, whatever the application-level check saw.
// int4range is half-open, which matches the overlap rule: slots that merely
// touch do not overlap. Violations surface as SQLSTATE 23P01.
func EnsureScheduleConstraints() error {
	const ddl = `
	CREATE EXTENSION IF NOT EXISTS btree_gist;
	DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'lessons_teacher_no_overlap'
		) THEN
			ALTER TABLE lessons ADD CONSTRAINT lessons_teacher_no_overlap
			EXCLUDE USING gist (
				lesson_organization_id WITH =,
				lesson_teacher_id WITH =,
				lesson_date WITH =,
				int4range(lesson_start_minutes, lesson_end_minutes) WITH &&
			) WHERE (NOT lesson_is_canceled AND lesson_deleted_at IS NULL);
		END IF;
	END $$;
	`
	return DB.Exec(ddl).Error
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
