package model

import (
	"time"

	"github.com/abmshq/abms-backend/constant"
)

// Visitor represents a front-desk visit request
type Visitor struct {
	ID                 string          `db:"id" json:"id"`
	RoomID             string          `db:"room_id" json:"room_id"`
	FullName           string          `db:"full_name" json:"full_name"`
	ArrivalTime        time.Time       `db:"arrival_time" json:"arrival_time"`
	DepartureTime      time.Time       `db:"departure_time" json:"departure_time"`
	Gender             string          `db:"gender" json:"gender"`
	PhoneNumber        string          `db:"phone_number" json:"phone_number"`
	IdentityNumber     string          `db:"identity_number" json:"identity_number"`
	IdentityCardImgURL string          `db:"identity_card_img_url" json:"identity_card_img_url,omitempty"`
	Description        string          `db:"description" json:"description,omitempty"`
	ApproveUser        *string         `db:"approve_user" json:"approve_user,omitempty"`
	Status             constant.Status `db:"status" json:"status"`
}

type VisitorInsertRequest struct {
	RoomID             string    `json:"room_id" validate:"required"`
	FullName           string    `json:"full_name" validate:"required"`
	ArrivalTime        time.Time `json:"arrival_time" validate:"required"`
	DepartureTime      time.Time `json:"departure_time" validate:"required"`
	Gender             string    `json:"gender" validate:"required,oneof=male female other"`
	PhoneNumber        string    `json:"phone_number" validate:"required,min=9,max=12,numeric"`
	IdentityNumber     string    `json:"identity_number" validate:"required"`
	IdentityCardImgURL string    `json:"identity_card_img_url"`
	Description        string    `json:"description"`
}

// VisitorFilter for querying visit requests. Time selects visitors
// whose arrival/departure window contains the instant.
type VisitorFilter struct {
	RoomID     string
	FullName   string
	BuildingID string
	Time       *time.Time
	Status     *constant.Status
}
