package construction

import (
	"context"
	"database/sql"

	"github.com/abmshq/abms-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ConstructionRepository interface {
	Create(ctx context.Context, c *model.Construction) error
	GetByID(ctx context.Context, id string) (*model.Construction, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Construction, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, c *model.Construction) error
	List(ctx context.Context, filter *model.ConstructionFilter) ([]model.Construction, error)
}

func NewConstructionRepository(conn *sqlx.DB) ConstructionRepository {
	return &SQL{conn: conn}
}

const (
	constructionColumns = `id, room_id, name, construction_organization, phone_contact, start_time, end_time, description, status, create_user, create_time, modify_user, modify_time`

	insertConstructionQuery = `INSERT INTO construction (id, room_id, name, construction_organization, phone_contact, start_time, end_time, description, status, create_user, create_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateConstructionQuery = `UPDATE construction SET room_id = ?, name = ?, construction_organization = ?, phone_contact = ?, start_time = ?, end_time = ?, description = ?, status = ?, modify_user = ?, modify_time = ? WHERE id = ?`

	getConstructionBase = `SELECT ` + constructionColumns + ` FROM construction WHERE true`
)

func (s *SQL) Create(ctx context.Context, c *model.Construction) error {
	_, err := s.conn.ExecContext(ctx, insertConstructionQuery,
		c.ID, c.RoomID, c.Name, c.ConstructionOrganization, c.PhoneContact,
		c.StartTime, c.EndTime, c.Description, c.Status, c.CreateUser, c.CreateTime)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Construction, error) {
	var entity model.Construction
	if err := s.conn.QueryRowxContext(ctx, getConstructionBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Construction, error) {
	var entity model.Construction
	if err := tx.QueryRowxContext(ctx, getConstructionBase+" AND id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, c *model.Construction) error {
	_, err := tx.ExecContext(ctx, updateConstructionQuery,
		c.RoomID, c.Name, c.ConstructionOrganization, c.PhoneContact, c.StartTime,
		c.EndTime, c.Description, c.Status, c.ModifyUser, c.ModifyTime, c.ID)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.ConstructionFilter) ([]model.Construction, error) {
	query := getConstructionBase
	args := make([]any, 0, 3)

	if filter != nil {
		if filter.RoomID != "" {
			query += " AND room_id = ?"
			args = append(args, filter.RoomID)
		}
		if filter.Name != "" {
			query += " AND name LIKE ?"
			args = append(args, "%"+filter.Name+"%")
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

	list := make([]model.Construction, 0)
	for rows.Next() {
		var entity model.Construction
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		list = append(list, entity)
	}
	return list, rows.Err()
}
