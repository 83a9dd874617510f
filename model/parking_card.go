package model

import (
	"time"

	"github.com/abmshq/abms-backend/constant"
)

// ParkingCard represents the parking_card table entity
type ParkingCard struct {
	ID           string          `db:"id" json:"id"`
	ResidentID   string          `db:"resident_id" json:"resident_id"`
	LicensePlate string          `db:"license_plate" json:"license_plate"`
	Brand        string          `db:"brand" json:"brand"`
	Color        string          `db:"color" json:"color"`
	Image        string          `db:"image" json:"image,omitempty"`
	ExpireDate   time.Time       `db:"expire_date" json:"expire_date"`
	Note         string          `db:"note" json:"note,omitempty"`
	Status       constant.Status `db:"status" json:"status"`
	CreateUser   string          `db:"create_user" json:"create_user"`
	CreateTime   time.Time       `db:"create_time" json:"create_time"`
	ModifyUser   *string         `db:"modify_user" json:"modify_user,omitempty"`
	ModifyTime   *time.Time      `db:"modify_time" json:"modify_time,omitempty"`
}

type ParkingCardInsertRequest struct {
	ResidentID   string    `json:"resident_id" validate:"required"`
	LicensePlate string    `json:"license_plate" validate:"required"`
	Brand        string    `json:"brand" validate:"required"`
	Color        string    `json:"color" validate:"required"`
	Image        string    `json:"image"`
	ExpireDate   time.Time `json:"expire_date" validate:"required"`
	Note         string    `json:"note"`
}

// ParkingCardEditRequest additionally lets the operator move the card
// through its status lifecycle
type ParkingCardEditRequest struct {
	ResidentID   string          `json:"resident_id" validate:"required"`
	Brand        string          `json:"brand" validate:"required"`
	Color        string          `json:"color" validate:"required"`
	Image        string          `json:"image"`
	ExpireDate   time.Time       `json:"expire_date" validate:"required"`
	Note         string          `json:"note"`
	Status       constant.Status `json:"status" validate:"gte=0,lte=4"`
}

type ParkingCardFilter struct {
	ResidentID   string
	LicensePlate string
	Status       *constant.Status
}
