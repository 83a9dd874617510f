package model

import (
	"time"

	"github.com/abmshq/abms-backend/constant"
)

// Expense represents a building operating expense record
type Expense struct {
	ID            string          `db:"id" json:"id"`
	BuildingID    string          `db:"building_id" json:"building_id"`
	ExpenseSource string          `db:"expense_source" json:"expense_source"`
	Amount        float64         `db:"amount" json:"amount"`
	Description   string          `db:"description" json:"description,omitempty"`
	ExpenseDate   time.Time       `db:"expense_date" json:"expense_date"`
	Status        constant.Status `db:"status" json:"status"`
	CreateUser    string          `db:"create_user" json:"create_user"`
	CreateTime    time.Time       `db:"create_time" json:"create_time"`
	ModifyUser    *string         `db:"modify_user" json:"modify_user,omitempty"`
	ModifyTime    *time.Time      `db:"modify_time" json:"modify_time,omitempty"`
}

type ExpenseInsertRequest struct {
	BuildingID    string    `json:"building_id" validate:"required"`
	ExpenseSource string    `json:"expense_source" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	Description   string    `json:"description"`
	ExpenseDate   time.Time `json:"expense_date" validate:"required"`
}

type ExpenseFilter struct {
	BuildingID    string
	ExpenseSource string
	Status        *constant.Status
}
