package model

import (
	"time"

	"github.com/abmshq/abms-backend/constant"
)

// Construction represents a resident construction/renovation request
type Construction struct {
	ID                       string          `db:"id" json:"id"`
	RoomID                   string          `db:"room_id" json:"room_id"`
	Name                     string          `db:"name" json:"name"`
	ConstructionOrganization string          `db:"construction_organization" json:"construction_organization"`
	PhoneContact             string          `db:"phone_contact" json:"phone_contact"`
	StartTime                time.Time       `db:"start_time" json:"start_time"`
	EndTime                  time.Time       `db:"end_time" json:"end_time"`
	Description              string          `db:"description" json:"description,omitempty"`
	Status                   constant.Status `db:"status" json:"status"`
	CreateUser               string          `db:"create_user" json:"create_user"`
	CreateTime               time.Time       `db:"create_time" json:"create_time"`
	ModifyUser               *string         `db:"modify_user" json:"modify_user,omitempty"`
	ModifyTime               *time.Time      `db:"modify_time" json:"modify_time,omitempty"`
}

type ConstructionInsertRequest struct {
	RoomID                   string    `json:"room_id" validate:"required"`
	Name                     string    `json:"name" validate:"required"`
	ConstructionOrganization string    `json:"construction_organization" validate:"required"`
	PhoneContact             string    `json:"phone_contact" validate:"required,min=9,max=12,numeric"`
	StartTime                time.Time `json:"start_time" validate:"required"`
	EndTime                  time.Time `json:"end_time" validate:"required"`
	Description              string    `json:"description"`
}

type ConstructionFilter struct {
	RoomID string
	Name   string
	Status *constant.Status
}
