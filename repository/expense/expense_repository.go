package expense

import (
	"context"
	"database/sql"

	"github.com/abmshq/abms-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	GetByID(ctx context.Context, id string) (*model.Expense, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Expense, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, e *model.Expense) error
	List(ctx context.Context, filter *model.ExpenseFilter) ([]model.Expense, error)
}

func NewExpenseRepository(conn *sqlx.DB) ExpenseRepository {
	return &SQL{conn: conn}
}

const (
	expenseColumns = `id, building_id, expense_source, amount, description, expense_date, status, create_user, create_time, modify_user, modify_time`

	insertExpenseQuery = `INSERT INTO expense (id, building_id, expense_source, amount, description, expense_date, status, create_user, create_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateExpenseQuery = `UPDATE expense SET building_id = ?, expense_source = ?, amount = ?, description = ?, expense_date = ?, status = ?, modify_user = ?, modify_time = ? WHERE id = ?`

	getExpenseBase = `SELECT ` + expenseColumns + ` FROM expense WHERE true`
)

func (s *SQL) Create(ctx context.Context, e *model.Expense) error {
	_, err := s.conn.ExecContext(ctx, insertExpenseQuery,
		e.ID, e.BuildingID, e.ExpenseSource, e.Amount, e.Description,
		e.ExpenseDate, e.Status, e.CreateUser, e.CreateTime)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	var entity model.Expense
	if err := s.conn.QueryRowxContext(ctx, getExpenseBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Expense, error) {
	var entity model.Expense
	if err := tx.QueryRowxContext(ctx, getExpenseBase+" AND id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, e *model.Expense) error {
	_, err := tx.ExecContext(ctx, updateExpenseQuery,
		e.BuildingID, e.ExpenseSource, e.Amount, e.Description, e.ExpenseDate,
		e.Status, e.ModifyUser, e.ModifyTime, e.ID)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.ExpenseFilter) ([]model.Expense, error) {
	query := getExpenseBase
	args := make([]any, 0, 3)

	if filter != nil {
		if filter.BuildingID != "" {
			query += " AND building_id = ?"
			args = append(args, filter.BuildingID)
		}
		if filter.ExpenseSource != "" {
			query += " AND expense_source LIKE ?"
			args = append(args, "%"+filter.ExpenseSource+"%")
		}
		if filter.Status != nil {
			query += " AND status = ?"
			args = append(args, *filter.Status)
		}
	}

	rows, err := s.conn.QueryxContext(ctx, query+" ORDER BY expense_date DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Expense, 0)
	for rows.Next() {
		var entity model.Expense
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		list = append(list, entity)
	}
	return list, rows.Err()
}
