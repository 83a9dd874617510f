package construction

import (
	"context"
	"time"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	constructionrepo "github.com/abmshq/abms-backend/repository/construction"
	txrepo "github.com/abmshq/abms-backend/repository/tx"
	"github.com/abmshq/abms-backend/thirdparty/rabbitmq"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationPublisher interface {
	PublishStatusNotification(msg rabbitmq.StatusNotificationMessage) error
}

type ConstructionApp interface {
	Create(ctx context.Context, req *model.ConstructionInsertRequest) (string, error)
	Update(ctx context.Context, id string, req *model.ConstructionInsertRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, filter *model.ConstructionFilter) ([]model.Construction, error)
	GetByID(ctx context.Context, id string) (*model.Construction, error)
	Manage(ctx context.Context, id string, status constant.Status) (string, error)
}

type constructionAppImpl struct {
	txRepo           txrepo.TxRepository
	constructionRepo constructionrepo.ConstructionRepository
	publisher        NotificationPublisher
}

func NewConstructionApp(txRepo txrepo.TxRepository, constructionRepo constructionrepo.ConstructionRepository, publisher NotificationPublisher) ConstructionApp {
	return &constructionAppImpl{
		txRepo:           txRepo,
		constructionRepo: constructionRepo,
		publisher:        publisher,
	}
}

func validateSchedule(req *model.ConstructionInsertRequest) string {
	if msg := validatorx.Message(req); msg != "" {
		return msg
	}
	if !req.EndTime.After(req.StartTime) {
		return "end_time must be after start_time"
	}
	return ""
}

func (s *constructionAppImpl) Create(ctx context.Context, req *model.ConstructionInsertRequest) (string, error) {
	if msg := validateSchedule(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	createUser, _ := actor.FromContext(ctx)
	construction := &model.Construction{
		ID:                       uuid.NewString(),
		RoomID:                   req.RoomID,
		Name:                     req.Name,
		ConstructionOrganization: req.ConstructionOrganization,
		PhoneContact:             req.PhoneContact,
		StartTime:                req.StartTime,
		EndTime:                  req.EndTime,
		Description:              req.Description,
		Status:                   constant.StatusSent,
		CreateUser:               createUser,
		CreateTime:               time.Now(),
	}

	if err := s.constructionRepo.Create(ctx, construction); err != nil {
		logger.Error("[Create] err constructionRepo.Create", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return construction.ID, nil
}

func (s *constructionAppImpl) Update(ctx context.Context, id string, req *model.ConstructionInsertRequest) (string, error) {
	if msg := validateSchedule(req); msg != "" {
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

	construction, err := s.constructionRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Update] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if construction == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	construction.RoomID = req.RoomID
	construction.Name = req.Name
	construction.ConstructionOrganization = req.ConstructionOrganization
	construction.PhoneContact = req.PhoneContact
	construction.StartTime = req.StartTime
	construction.EndTime = req.EndTime
	construction.Description = req.Description
	construction.ModifyUser = &modifyUser
	construction.ModifyTime = &now

	if err := s.constructionRepo.UpdateTx(ctx, tx, construction); err != nil {
		logger.Error("[Update] err UpdateTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return construction.ID, nil
}

func (s *constructionAppImpl) Delete(ctx context.Context, id string) (string, error) {
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

	construction, err := s.constructionRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Delete] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if construction == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	if construction.Status != constant.StatusInactive {
		now := time.Now()
		construction.Status = constant.StatusInactive
		construction.ModifyUser = &modifyUser
		construction.ModifyTime = &now
		if err := s.constructionRepo.UpdateTx(ctx, tx, construction); err != nil {
			logger.Error("[Delete] err UpdateTx", zap.Error(err))
			return "", errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return construction.ID, nil
}

func (s *constructionAppImpl) Get(ctx context.Context, filter *model.ConstructionFilter) ([]model.Construction, error) {
	list, err := s.constructionRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Get] err constructionRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *constructionAppImpl) GetByID(ctx context.Context, id string) (*model.Construction, error) {
	construction, err := s.constructionRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err constructionRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if construction == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return construction, nil
}

func (s *constructionAppImpl) Manage(ctx context.Context, id string, status constant.Status) (string, error) {
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

	construction, err := s.constructionRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Manage] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if construction == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	construction.Status = status
	construction.ModifyUser = &approveUser
	construction.ModifyTime = &now

	if err := s.constructionRepo.UpdateTx(ctx, tx, construction); err != nil {
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
			Entity:      "construction",
			ID:          construction.ID,
			Status:      int(status),
			ApproveUser: approveUser,
			DecidedAt:   time.Now(),
		})
		if err != nil {
			logger.Warn("publish construction notification failed", zap.String("construction_id", construction.ID), zap.Error(err))
		}
	}

	return construction.ID, nil
}
