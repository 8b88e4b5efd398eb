// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lessonDto "classhub_backend/internals/features/school/lessons/dto"
	lessonModel "classhub_backend/internals/features/school/lessons/model"
	studentModel "classhub_backend/internals/features/school/students/model"
	d "classhub_backend/internals/features/users/dto"
	m "classhub_backend/internals/features/users/model"
	helper "classhub_backend/internals/helpers"
	helperAuth "classhub_backend/internals/helpers/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

/* =========================
   Me
   ========================= */

func (ctl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var user m.UserModel
	if err := ctl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Profile", d.FromModel(&user))
}

/* =========================
   My lessons (student view)
   ========================= */

// GET /api/u/lessons
// Lessons of every group the caller's student record belongs to, upcoming first.
func (ctl *UserController) MyLessons(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var student studentModel.StudentModel
	if err := ctl.DB.
		Where("student_organization_id = ? AND student_user_id = ?", orgID, userID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "no student record linked to this account")
		}
		return helper.WritePGError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 200)

	memberships := ctl.DB.Table("group_students").
		Select("group_student_group_id").
		Where("group_student_organization_id = ? AND group_student_student_id = ?", orgID, student.StudentID)

	query := ctl.DB.Model(&lessonModel.LessonModel{}).
		Where("lesson_organization_id = ?", orgID).
		Where("lesson_group_id IN (?)", memberships)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var lessons []lessonModel.LessonModel
	if err := query.
		Order("lesson_date ASC, lesson_start_minutes ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&lessons).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "My lessons", lessonDto.FromModels(lessons),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================
   Admin: users of my org
   ========================= */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	user := m.UserModel{
		UserOrganizationID: orgID,
		UserName:           req.UserName,
		UserEmail:          req.UserEmail,
		UserRole:           m.UserRole(req.UserRole),
	}
	if err := user.SetPassword(req.UserPassword); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "User created", d.FromModel(&user))
}

func (ctl *UserController) List(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrganizationIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	query := ctl.DB.Model(&m.UserModel{}).
		Where("user_organization_id = ?", orgID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var users []m.UserModel
	if err := query.
		Order("user_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, d.FromModel(&users[i]))
	}
	return helper.JsonList(c, "Users", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
