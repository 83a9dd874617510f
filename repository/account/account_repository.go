package account

import (
	"context"
	"database/sql"

	"github.com/abmshq/abms-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	Create(ctx context.Context, acc *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Account, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.Account, error)
	GetDuplicate(ctx context.Context, phone, email, excludeID string) (*model.Account, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, acc *model.Account) error
	List(ctx context.Context, filter *model.AccountFilter) ([]model.Account, error)
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	accountColumns = `id, user_name, email, phone_number, password_hash, password_salt, full_name, avatar, role, building_id, status, create_user, create_time, modify_user, modify_time`

	insertAccountQuery = `INSERT INTO account (id, user_name, email, phone_number, password_hash, password_salt, full_name, avatar, role, building_id, status, create_user, create_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateAccountQuery = `UPDATE account SET user_name = ?, email = ?, phone_number = ?, full_name = ?, avatar = ?, role = ?, building_id = ?, status = ?, modify_user = ?, modify_time = ? WHERE id = ?`

	getAccountBase = `SELECT ` + accountColumns + ` FROM account WHERE true`
)

func (s *SQL) Create(ctx context.Context, acc *model.Account) error {
	_, err := s.conn.ExecContext(ctx, insertAccountQuery,
		acc.ID, acc.UserName, acc.Email, acc.PhoneNumber, acc.PasswordHash, acc.PasswordSalt,
		acc.FullName, acc.Avatar, acc.Role, acc.BuildingID, acc.Status, acc.CreateUser, acc.CreateTime)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Account, error) {
	var entity model.Account
	if err := s.conn.QueryRowxContext(ctx, getAccountBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDTx locks the row for the lifetime of the transaction so a
// concurrent update or delete serializes instead of racing.
func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Account, error) {
	var entity model.Account
	if err := tx.QueryRowxContext(ctx, getAccountBase+" AND id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.Account, error) {
	query, args := buildAccountFilter(filter)

	var entity model.Account
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetDuplicate finds an account holding the given phone or email,
// regardless of status. Soft-deleted accounts keep their identifiers
// reserved. excludeID skips the account being edited.
func (s *SQL) GetDuplicate(ctx context.Context, phone, email, excludeID string) (*model.Account, error) {
	query := getAccountBase + " AND (phone_number = ? OR email = ?)"
	args := []any{phone, email}
	if excludeID != "" {
		query += " AND id != ?"
		args = append(args, excludeID)
	}

	var entity model.Account
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, acc *model.Account) error {
	_, err := tx.ExecContext(ctx, updateAccountQuery,
		acc.UserName, acc.Email, acc.PhoneNumber, acc.FullName, acc.Avatar, acc.Role,
		acc.BuildingID, acc.Status, acc.ModifyUser, acc.ModifyTime, acc.ID)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.AccountFilter) ([]model.Account, error) {
	query, args := buildAccountFilter(filter)

	rows, err := s.conn.QueryxContext(ctx, query+" ORDER BY create_time DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Account, 0)
	for rows.Next() {
		var entity model.Account
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		list = append(list, entity)
	}
	return list, rows.Err()
}

func buildAccountFilter(filter *model.AccountFilter) (string, []any) {
	query := getAccountBase
	args := make([]any, 0, 6)

	if filter == nil {
		return query, args
	}
	if filter.SearchTerm != "" {
		term := "%" + filter.SearchTerm + "%"
		query += " AND (phone_number LIKE ? OR email LIKE ? OR full_name LIKE ?)"
		args = append(args, term, term, term)
	}
	if filter.PhoneNumber != "" {
		query += " AND phone_number = ?"
		args = append(args, filter.PhoneNumber)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.BuildingID != "" {
		query += " AND building_id = ?"
		args = append(args, filter.BuildingID)
	}
	if filter.Role != nil {
		query += " AND role = ?"
		args = append(args, *filter.Role)
	}
	if filter.Status != nil {
		query += " AND status = ?"
		args = append(args, *filter.Status)
	}
	return query, args
}
