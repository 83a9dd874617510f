package visitor

import (
	"context"
	"time"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	txrepo "github.com/abmshq/abms-backend/repository/tx"
	visitorrepo "github.com/abmshq/abms-backend/repository/visitor"
	"github.com/abmshq/abms-backend/thirdparty/rabbitmq"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationPublisher announces approval decisions to downstream
// consumers (resident apps, front desk displays).
type NotificationPublisher interface {
	PublishStatusNotification(msg rabbitmq.StatusNotificationMessage) error
}

type VisitorApp interface {
	Create(ctx context.Context, req *model.VisitorInsertRequest) (string, error)
	Update(ctx context.Context, id string, req *model.VisitorInsertRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, filter *model.VisitorFilter) ([]model.Visitor, error)
	GetByID(ctx context.Context, id string) (*model.Visitor, error)
	Manage(ctx context.Context, id string, status constant.Status) (string, error)
}

type visitorAppImpl struct {
	txRepo      txrepo.TxRepository
	visitorRepo visitorrepo.VisitorRepository
	publisher   NotificationPublisher
}

func NewVisitorApp(txRepo txrepo.TxRepository, visitorRepo visitorrepo.VisitorRepository, publisher NotificationPublisher) VisitorApp {
	return &visitorAppImpl{
		txRepo:      txRepo,
		visitorRepo: visitorRepo,
		publisher:   publisher,
	}
}

func validateWindow(req *model.VisitorInsertRequest) string {
	if msg := validatorx.Message(req); msg != "" {
		return msg
	}
	if !req.DepartureTime.After(req.ArrivalTime) {
		return "departure_time must be after arrival_time"
	}
	return ""
}

func (s *visitorAppImpl) Create(ctx context.Context, req *model.VisitorInsertRequest) (string, error) {
	if msg := validateWindow(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	visitor := &model.Visitor{
		ID:                 uuid.NewString(),
		RoomID:             req.RoomID,
		FullName:           req.FullName,
		ArrivalTime:        req.ArrivalTime,
		DepartureTime:      req.DepartureTime,
		Gender:             req.Gender,
		PhoneNumber:        req.PhoneNumber,
		IdentityNumber:     req.IdentityNumber,
		IdentityCardImgURL: req.IdentityCardImgURL,
		Description:        req.Description,
		Status:             constant.StatusSent,
	}

	if err := s.visitorRepo.Create(ctx, visitor); err != nil {
		logger.Error("[Create] err visitorRepo.Create", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return visitor.ID, nil
}

func (s *visitorAppImpl) Update(ctx context.Context, id string, req *model.VisitorInsertRequest) (string, error) {
	if msg := validateWindow(req); msg != "" {
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

	visitor, err := s.visitorRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Update] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if visitor == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	visitor.RoomID = req.RoomID
	visitor.FullName = req.FullName
	visitor.ArrivalTime = req.ArrivalTime
	visitor.DepartureTime = req.DepartureTime
	visitor.Gender = req.Gender
	visitor.PhoneNumber = req.PhoneNumber
	visitor.IdentityNumber = req.IdentityNumber
	visitor.IdentityCardImgURL = req.IdentityCardImgURL
	visitor.Description = req.Description
	visitor.ApproveUser = &modifyUser

	if err := s.visitorRepo.UpdateTx(ctx, tx, visitor); err != nil {
		logger.Error("[Update] err UpdateTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return visitor.ID, nil
}

func (s *visitorAppImpl) Delete(ctx context.Context, id string) (string, error) {
	_, ok := actor.FromContext(ctx)
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

	visitor, err := s.visitorRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Delete] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if visitor == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	if visitor.Status != constant.StatusInactive {
		visitor.Status = constant.StatusInactive
		if err := s.visitorRepo.UpdateTx(ctx, tx, visitor); err != nil {
			logger.Error("[Delete] err UpdateTx", zap.Error(err))
			return "", errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return visitor.ID, nil
}

func (s *visitorAppImpl) Get(ctx context.Context, filter *model.VisitorFilter) ([]model.Visitor, error) {
	list, err := s.visitorRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Get] err visitorRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *visitorAppImpl) GetByID(ctx context.Context, id string) (*model.Visitor, error) {
	visitor, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err visitorRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if visitor == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return visitor, nil
}

// Manage records the front-desk decision on a visit request, stamping
// the approving user.
func (s *visitorAppImpl) Manage(ctx context.Context, id string, status constant.Status) (string, error) {
	if status != constant.StatusApproved && status != constant.StatusRejected {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "status must be approved or rejected")
	}

	approveUser, ok := actor.FromContext(ctx)
	if !ok {
		return "", errors.SetCustomError(constant.ErrForbidden)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Manage] begin tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	visitor, err := s.visitorRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Manage] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if visitor == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	visitor.Status = status
	visitor.ApproveUser = &approveUser

	if err := s.visitorRepo.UpdateTx(ctx, tx, visitor); err != nil {
		logger.Error("[Manage] err UpdateTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Manage] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		err := s.publisher.PublishStatusNotification(rabbitmq.StatusNotificationMessage{
			Entity:      "visitor",
			ID:          visitor.ID,
			Status:      int(status),
			ApproveUser: approveUser,
			DecidedAt:   time.Now(),
		})
		if err != nil {
			logger.Warn("publish visitor notification failed", zap.String("visitor_id", visitor.ID), zap.Error(err))
		}
	}

	return visitor.ID, nil
}
