package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

/* =========================
   Model: UserModel
========================= */

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id"`

	// Tenant
	UserOrganizationID uuid.UUID `gorm:"type:uuid;not null;column:user_organization_id;index;uniqueIndex:uq_users_org_email,priority:1"`

	UserName     string   `gorm:"type:varchar(120);not null;column:user_name"`
	UserEmail    string   `gorm:"type:varchar(160);not null;column:user_email;uniqueIndex:uq_users_org_email,priority:2"`
	UserPassword string   `gorm:"type:varchar(120);not null;column:user_password" json:"-"`
	UserRole     UserRole `gorm:"type:varchar(20);not null;default:'student';column:user_role"`
	UserIsActive bool     `gorm:"not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
