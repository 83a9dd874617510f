package visitor

import (
	"context"
	"database/sql"

	"github.com/abmshq/abms-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type VisitorRepository interface {
	Create(ctx context.Context, v *model.Visitor) error
	GetByID(ctx context.Context, id string) (*model.Visitor, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Visitor, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, v *model.Visitor) error
	List(ctx context.Context, filter *model.VisitorFilter) ([]model.Visitor, error)
}

func NewVisitorRepository(conn *sqlx.DB) VisitorRepository {
	return &SQL{conn: conn}
}

const (
	visitorColumns = `v.id, v.room_id, v.full_name, v.arrival_time, v.departure_time, v.gender, v.phone_number, v.identity_number, v.identity_card_img_url, v.description, v.approve_user, v.status`

	insertVisitorQuery = `INSERT INTO visitor (id, room_id, full_name, arrival_time, departure_time, gender, phone_number, identity_number, identity_card_img_url, description, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateVisitorQuery = `UPDATE visitor SET room_id = ?, full_name = ?, arrival_time = ?, departure_time = ?, gender = ?, phone_number = ?, identity_number = ?, identity_card_img_url = ?, description = ?, approve_user = ?, status = ? WHERE id = ?`

	getVisitorBase = `SELECT ` + visitorColumns + ` FROM visitor v WHERE true`
)

func (s *SQL) Create(ctx context.Context, v *model.Visitor) error {
	_, err := s.conn.ExecContext(ctx, insertVisitorQuery,
		v.ID, v.RoomID, v.FullName, v.ArrivalTime, v.DepartureTime, v.Gender,
		v.PhoneNumber, v.IdentityNumber, v.IdentityCardImgURL, v.Description, v.Status)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Visitor, error) {
	var entity model.Visitor
	if err := s.conn.QueryRowxContext(ctx, getVisitorBase+" AND v.id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.Visitor, error) {
	var entity model.Visitor
	if err := tx.QueryRowxContext(ctx, getVisitorBase+" AND v.id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, v *model.Visitor) error {
	_, err := tx.ExecContext(ctx, updateVisitorQuery,
		v.RoomID, v.FullName, v.ArrivalTime, v.DepartureTime, v.Gender, v.PhoneNumber,
		v.IdentityNumber, v.IdentityCardImgURL, v.Description, v.ApproveUser, v.Status, v.ID)
	return err
}

// List filters visit requests. A Time filter selects visitors whose
// arrival/departure window contains the instant. The building filter
// resolves through the visitor's room.
func (s *SQL) List(ctx context.Context, filter *model.VisitorFilter) ([]model.Visitor, error) {
	query := getVisitorBase
	args := make([]any, 0, 6)

	if filter != nil {
		if filter.BuildingID != "" {
			query = `SELECT ` + visitorColumns + ` FROM visitor v JOIN room r ON v.room_id = r.id WHERE r.building_id = ?`
			args = append(args, filter.BuildingID)
		}
		if filter.RoomID != "" {
			query += " AND v.room_id = ?"
			args = append(args, filter.RoomID)
		}
		if filter.FullName != "" {
			query += " AND v.full_name LIKE ?"
			args = append(args, "%"+filter.FullName+"%")
		}
		if filter.Time != nil {
			query += " AND v.arrival_time <= ? AND ? <= v.departure_time"
			args = append(args, *filter.Time, *filter.Time)
		}
		if filter.Status != nil {
			query += " AND v.status = ?"
			args = append(args, *filter.Status)
		}
	}

	rows, err := s.conn.QueryxContext(ctx, query+" ORDER BY v.arrival_time DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]model.Visitor, 0)
	for rows.Next() {
		var entity model.Visitor
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		list = append(list, entity)
	}
	return list, rows.Err()
}
