// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"classhub_backend/internals/configs"
	orgModel "classhub_backend/internals/features/organizations/model"
	d "classhub_backend/internals/features/users/dto"
	m "classhub_backend/internals/features/users/model"
	helper "classhub_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuth(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func signAccessToken(user *m.UserModel, expiresAt time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret is not configured")
	}
	claims := jwt.MapClaims{
		"user_id":         user.UserID.String(),
		"role":            string(user.UserRole),
		"organization_id": user.UserOrganizationID.String(),
		"iat":             time.Now().Unix(),
		"exp":             expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

/*
========================= Register (org bootstrap) =========================
*/

// POST /api/auth/register
// Creates the organization and its first admin in one tx. The unique index
// still guards the race on slug.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	org := orgModel.OrganizationModel{
		OrganizationName: strings.TrimSpace(req.OrganizationName),
	}
	user := m.UserModel{
		UserName:  strings.TrimSpace(req.UserName),
		UserEmail: strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserRole:  m.RoleAdmin,
	}
	if err := user.SetPassword(req.UserPassword); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		user.UserOrganizationID = org.OrganizationID
		return tx.Create(&user).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	token, err := signAccessToken(&user, expiresAt)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "could not issue token")
	}

	return helper.JsonCreated(c, "Organization registered", d.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        d.FromModel(&user),
	})
}

/*
========================= Login =========================
*/

// Wrong email and wrong password answer identically.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user m.UserModel
	if err := ctl.DB.
		Where("user_email = ? AND user_is_active = TRUE", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
		}
		return helper.WritePGError(c, err)
	}
	if !user.CheckPassword(req.UserPassword) {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	token, err := signAccessToken(&user, expiresAt)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "could not issue token")
	}

	return helper.JsonOK(c, "Login successful", d.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        d.FromModel(&user),
	})
}
