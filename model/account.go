package model

import (
	"time"

	"github.com/abmshq/abms-backend/constant"
)

// Account represents the account table entity
type Account struct {
	ID           string          `db:"id" json:"id"`
	UserName     string          `db:"user_name" json:"user_name"`
	Email        string          `db:"email" json:"email"`
	PhoneNumber  string          `db:"phone_number" json:"phone_number"`
	PasswordHash []byte          `db:"password_hash" json:"-"`
	PasswordSalt []byte          `db:"password_salt" json:"-"`
	FullName     string          `db:"full_name" json:"full_name"`
	Avatar       string          `db:"avatar" json:"avatar,omitempty"`
	Role         int             `db:"role" json:"role"`
	BuildingID   string          `db:"building_id" json:"building_id"`
	Status       constant.Status `db:"status" json:"status"`
	CreateUser   string          `db:"create_user" json:"create_user"`
	CreateTime   time.Time       `db:"create_time" json:"create_time"`
	ModifyUser   *string         `db:"modify_user" json:"modify_user,omitempty"`
	ModifyTime   *time.Time      `db:"modify_time" json:"modify_time,omitempty"`
}

// AccountInsertRequest for registering a new account
type AccountInsertRequest struct {
	UserName   string `json:"user_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,min=9,max=12,numeric"`
	Password   string `json:"password" validate:"required,min=6"`
	FullName   string `json:"full_name" validate:"required"`
	Avatar     string `json:"avatar"`
	Role       int    `json:"role" validate:"required,gte=1,lte=4"`
	BuildingID string `json:"building_id" validate:"required"`
}

// AccountUpdateRequest for editing an existing account (password is
// never changed through this path)
type AccountUpdateRequest struct {
	UserName   string `json:"user_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,min=9,max=12,numeric"`
	FullName   string `json:"full_name" validate:"required"`
	Avatar     string `json:"avatar"`
	Role       int    `json:"role" validate:"required,gte=1,lte=4"`
	BuildingID string `json:"building_id" validate:"required"`
}

// AccountFilter for querying accounts. Zero-valued fields are
// wildcards; SearchTerm free-text matches phone, email and full name.
type AccountFilter struct {
	SearchTerm  string
	PhoneNumber string
	Email       string
	BuildingID  string
	Role        *int
	Status      *constant.Status
}

// LoginRequest for phone-number login
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// LoginWithEmailRequest for email login
type LoginWithEmailRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
	Token    string `json:"token"`
}
