package parkingcard

import (
	"context"
	"time"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	parkingcardrepo "github.com/abmshq/abms-backend/repository/parkingcard"
	txrepo "github.com/abmshq/abms-backend/repository/tx"
	"github.com/abmshq/abms-backend/thirdparty/rabbitmq"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExpirationPublisher schedules the delayed message that deactivates a
// card once its expiry date passes.
type ExpirationPublisher interface {
	PublishCardExpiration(msg rabbitmq.CardExpirationMessage) error
}

type ParkingCardApp interface {
	Create(ctx context.Context, req *model.ParkingCardInsertRequest) (string, error)
	Update(ctx context.Context, id string, req *model.ParkingCardEditRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, filter *model.ParkingCardFilter) ([]model.ParkingCard, error)
	GetByID(ctx context.Context, id string) (*model.ParkingCard, error)
	Expire(ctx context.Context, id string) error
}

type parkingCardAppImpl struct {
	txRepo    txrepo.TxRepository
	cardRepo  parkingcardrepo.ParkingCardRepository
	publisher ExpirationPublisher
}

func NewParkingCardApp(txRepo txrepo.TxRepository, cardRepo parkingcardrepo.ParkingCardRepository, publisher ExpirationPublisher) ParkingCardApp {
	return &parkingCardAppImpl{
		txRepo:    txRepo,
		cardRepo:  cardRepo,
		publisher: publisher,
	}
}

func (s *parkingCardAppImpl) Create(ctx context.Context, req *model.ParkingCardInsertRequest) (string, error) {
	if msg := validatorx.Message(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	createUser, _ := actor.FromContext(ctx)
	card := &model.ParkingCard{
		ID:           uuid.NewString(),
		ResidentID:   req.ResidentID,
		LicensePlate: req.LicensePlate,
		Brand:        req.Brand,
		Color:        req.Color,
		Image:        req.Image,
		ExpireDate:   req.ExpireDate,
		Note:         req.Note,
		Status:       constant.StatusSent,
		CreateUser:   createUser,
		CreateTime:   time.Now(),
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		logger.Error("[Create] err cardRepo.Create", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	s.scheduleExpiration(card)

	return card.ID, nil
}

func (s *parkingCardAppImpl) Update(ctx context.Context, id string, req *model.ParkingCardEditRequest) (string, error) {
	if msg := validatorx.Message(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	modifyUser, ok := actor.FromContext(ctx)
	if !ok {
		return "", errors.SetCustomError(constant.ErrForbidden)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Update] begin tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	card, err := s.cardRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Update] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if card == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	rescheduled := !card.ExpireDate.Equal(req.ExpireDate)
	card.ResidentID = req.ResidentID
	card.Brand = req.Brand
	card.Color = req.Color
	card.Image = req.Image
	card.ExpireDate = req.ExpireDate
	card.Note = req.Note
	card.Status = req.Status
	card.ModifyUser = &modifyUser
	card.ModifyTime = &now

	if err := s.cardRepo.UpdateTx(ctx, tx, card); err != nil {
		logger.Error("[Update] err UpdateTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if rescheduled {
		s.scheduleExpiration(card)
	}

	return card.ID, nil
}

func (s *parkingCardAppImpl) Delete(ctx context.Context, id string) (string, error) {
	modifyUser, ok := actor.FromContext(ctx)
	if !ok {
		return "", errors.SetCustomError(constant.ErrForbidden)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Delete] begin tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	card, err := s.cardRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Delete] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if card == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	if card.Status != constant.StatusInactive {
		now := time.Now()
		card.Status = constant.StatusInactive
		card.ModifyUser = &modifyUser
		card.ModifyTime = &now
		if err := s.cardRepo.UpdateTx(ctx, tx, card); err != nil {
			logger.Error("[Delete] err UpdateTx", zap.Error(err))
			return "", errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return card.ID, nil
}

func (s *parkingCardAppImpl) Get(ctx context.Context, filter *model.ParkingCardFilter) ([]model.ParkingCard, error) {
	list, err := s.cardRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Get] err cardRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *parkingCardAppImpl) GetByID(ctx context.Context, id string) (*model.ParkingCard, error) {
	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err cardRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if card == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return card, nil
}

// Expire is the consumer callback for delayed expiration messages. A
// card renewed after the message was scheduled keeps its status; a
// missing card is treated as done.
func (s *parkingCardAppImpl) Expire(ctx context.Context, id string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	card, err := s.cardRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if card == nil || card.Status == constant.StatusInactive || card.ExpireDate.After(time.Now()) {
		if err := s.txRepo.CommitTx(tx); err != nil {
			return err
		}
		committed = true
		return nil
	}

	now := time.Now()
	system := "system"
	card.Status = constant.StatusInactive
	card.ModifyUser = &system
	card.ModifyTime = &now
	if err := s.cardRepo.UpdateTx(ctx, tx, card); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}

// scheduleExpiration is best effort: a card that misses its delayed
// message is still denied by expiry-date checks at the gate.
func (s *parkingCardAppImpl) scheduleExpiration(card *model.ParkingCard) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishCardExpiration(rabbitmq.CardExpirationMessage{
		CardID:    card.ID,
		ExpiresAt: card.ExpireDate,
	})
	if err != nil {
		logger.Warn("schedule card expiration failed", zap.String("card_id", card.ID), zap.Error(err))
	}
}
