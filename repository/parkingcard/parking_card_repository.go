package parkingcard

import (
	"context"
	"database/sql"

	"github.com/abmshq/abms-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ParkingCardRepository interface {
	Create(ctx context.Context, card *model.ParkingCard) error
	GetByID(ctx context.Context, id string) (*model.ParkingCard, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.ParkingCard, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, card *model.ParkingCard) error
	List(ctx context.Context, filter *model.ParkingCardFilter) ([]model.ParkingCard, error)
}

func NewParkingCardRepository(conn *sqlx.DB) ParkingCardRepository {
	return &SQL{conn: conn}
}

const (
	cardColumns = `id, resident_id, license_plate, brand, color, image, expire_date, note, status, create_user, create_time, modify_user, modify_time`

	insertCardQuery = `INSERT INTO parking_card (id, resident_id, license_plate, brand, color, image, expire_date, note, status, create_user, create_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateCardQuery = `UPDATE parking_card SET resident_id = ?, brand = ?, color = ?, image = ?, expire_date = ?, note = ?, status = ?, modify_user = ?, modify_time = ? WHERE id = ?`

	getCardBase = `SELECT ` + cardColumns + ` FROM parking_card WHERE true`
)

func (s *SQL) Create(ctx context.Context, card *model.ParkingCard) error {
	_, err := s.conn.ExecContext(ctx, insertCardQuery,
		card.ID, card.ResidentID, card.LicensePlate, card.Brand, card.Color, card.Image,
		card.ExpireDate, card.Note, card.Status, card.CreateUser, card.CreateTime)
	return err
}

func (s *SQL) GetByID(ctx context.Context, id string) (*model.ParkingCard, error) {
	var entity model.ParkingCard
	if err := s.conn.QueryRowxContext(ctx, getCardBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.ParkingCard, error) {
	var entity model.ParkingCard
	if err := tx.QueryRowxContext(ctx, getCardBase+" AND id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, card *model.ParkingCard) error {
	_, err := tx.ExecContext(ctx, updateCardQuery,
		card.ResidentID, card.Brand, card.Color, card.Image, card.ExpireDate, card.Note,
		card.Status, card.ModifyUser, card.ModifyTime, card.ID)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.ParkingCardFilter) ([]model.ParkingCard, error) {
	query := getCardBase
	args := make([]any, 0, 3)

	if filter != nil {
		if filter.ResidentID != "" {
			query += " AND resident_id = ?"
			args = append(args, filter.ResidentID)
		}
		if filter.LicensePlate != "" {
			query += " AND license_plate LIKE ?"
			args = append(args, "%"+filter.LicensePlate+"%")
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

	list := make([]model.ParkingCard, 0)
	for rows.Next() {
		var entity model.ParkingCard
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		list = append(list, entity)
	}
	return list, rows.Err()
}
