package fund

import (
	"context"
	"database/sql"

	"github.com/abmshq/abms-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type FundRepository interface {
	Create(ctx context.Context, f *model.Fund) error
	GetByID(ctx context.Context, id string) (*model.Fund, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Fund, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, f *model.Fund) error
	List(ctx context.Context, filter *model.FundFilter) ([]model.Fund, error)
}

func NewFundRepository(conn *sqlx.DB) FundRepository {
	return &SQL{conn: conn}
}

const (
	fundColumns = `id, building_id, fund_name, fund_source, amount, description, status, create_user, create_time, modify_user, modify_time`

	insertFundQuery = `INSERT INTO fund (id, building_id, fund_name, fund_source, amount, description, status, create_user, create_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateFundQuery = `UPDATE fund SET building_id = ?, fund_name = ?, fund_source = ?, amount = ?, description = ?, status = ?, modify_user = ?, modify_time = ? WHERE id = ?`

	getFundBase = `SELECT ` + fundColumns + ` FROM fund WHERE true`
)

func (s *SQL) Create(ctx context.Context, f *model.Fund) error {
	_, err := s.conn.ExecContext(ctx, insertFundQuery,
		f.ID, f.BuildingID, f.FundName, f.FundSource, f.Amount, f.Description,
		f.Status, f.CreateUser, f.CreateTime)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Fund, error) {
	var entity model.Fund
	if err := s.conn.QueryRowxContext(ctx, getFundBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Fund, error) {
	var entity model.Fund
	if err := tx.QueryRowxContext(ctx, getFundBase+" AND id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, f *model.Fund) error {
	_, err := tx.ExecContext(ctx, updateFundQuery,
		f.BuildingID, f.FundName, f.FundSource, f.Amount, f.Description,
		f.Status, f.ModifyUser, f.ModifyTime, f.ID)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.FundFilter) ([]model.Fund, error) {
	query := getFundBase
	args := make([]any, 0, 3)

	if filter != nil {
		if filter.BuildingID != "" {
			query += " AND building_id = ?"
			args = append(args, filter.BuildingID)
		}
		if filter.FundName != "" {
			query += " AND fund_name LIKE ?"
			args = append(args, "%"+filter.FundName+"%")
		}
		if filter.Status != nil {
			query += " AND status = ?"
			args = append(args, *filter.Status)
		}
	}

	rows, err := s.conn.QueryxContext(ctx, query+" ORDER BY create_time DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Fund, 0)
	for rows.Next() {
		var entity model.Fund
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		list = append(list, entity)
	}
	return list, rows.Err()
}
