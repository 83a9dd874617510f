package model

import (
	"time"

	"github.com/abmshq/abms-backend/constant"
)

// Fund represents a building fund record
type Fund struct {
	ID          string          `db:"id" json:"id"`
	BuildingID  string          `db:"building_id" json:"building_id"`
	FundName    string          `db:"fund_name" json:"fund_name"`
	FundSource  string          `db:"fund_source" json:"fund_source"`
	Amount      float64         `db:"amount" json:"amount"`
	Description string          `db:"description" json:"description,omitempty"`
	Status      constant.Status `db:"status" json:"status"`
	CreateUser  string          `db:"create_user" json:"create_user"`
	CreateTime  time.Time       `db:"create_time" json:"create_time"`
	ModifyUser  *string         `db:"modify_user" json:"modify_user,omitempty"`
	ModifyTime  *time.Time      `db:"modify_time" json:"modify_time,omitempty"`
}

type FundInsertRequest struct {
	BuildingID  string  `json:"building_id" validate:"required"`
	FundName    string  `json:"fund_name" validate:"required"`
	FundSource  string  `json:"fund_source" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type FundFilter struct {
	BuildingID string
	FundName   string
	Status     *constant.Status
}
