package fund

import (
	"context"
	"time"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	fundrepo "github.com/abmshq/abms-backend/repository/fund"
	txrepo "github.com/abmshq/abms-backend/repository/tx"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FundApp interface {
	Create(ctx context.Context, req *model.FundInsertRequest) (string, error)
	Update(ctx context.Context, id string, req *model.FundInsertRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, filter *model.FundFilter) ([]model.Fund, error)
	GetByID(ctx context.Context, id string) (*model.Fund, error)
}

type fundAppImpl struct {
	txRepo   txrepo.TxRepository
	fundRepo fundrepo.FundRepository
}

func NewFundApp(txRepo txrepo.TxRepository, fundRepo fundrepo.FundRepository) FundApp {
	return &fundAppImpl{
		txRepo:   txRepo,
		fundRepo: fundRepo,
	}
}

func (s *fundAppImpl) Create(ctx context.Context, req *model.FundInsertRequest) (string, error) {
	if msg := validatorx.Message(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	createUser, _ := actor.FromContext(ctx)
	fund := &model.Fund{
		ID:          uuid.NewString(),
		BuildingID:  req.BuildingID,
		FundName:    req.FundName,
		FundSource:  req.FundSource,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      constant.StatusActive,
		CreateUser:  createUser,
		CreateTime:  time.Now(),
	}

	if err := s.fundRepo.Create(ctx, fund); err != nil {
		logger.Error("[Create] err fundRepo.Create", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return fund.ID, nil
}

func (s *fundAppImpl) Update(ctx context.Context, id string, req *model.FundInsertRequest) (string, error) {
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

	fund, err := s.fundRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Update] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if fund == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	fund.BuildingID = req.BuildingID
	fund.FundName = req.FundName
	fund.FundSource = req.FundSource
	fund.Amount = req.Amount
	fund.Description = req.Description
	fund.ModifyUser = &modifyUser
	fund.ModifyTime = &now

	if err := s.fundRepo.UpdateTx(ctx, tx, fund); err != nil {
		logger.Error("[Update] err UpdateTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return fund.ID, nil
}

func (s *fundAppImpl) Delete(ctx context.Context, id string) (string, error) {
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

	fund, err := s.fundRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Delete] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if fund == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	if fund.Status != constant.StatusInactive {
		now := time.Now()
		fund.Status = constant.StatusInactive
		fund.ModifyUser = &modifyUser
		fund.ModifyTime = &now
		if err := s.fundRepo.UpdateTx(ctx, tx, fund); err != nil {
			logger.Error("[Delete] err UpdateTx", zap.Error(err))
			return "", errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return fund.ID, nil
}

func (s *fundAppImpl) Get(ctx context.Context, filter *model.FundFilter) ([]model.Fund, error) {
	list, err := s.fundRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Get] err fundRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *fundAppImpl) GetByID(ctx context.Context, id string) (*model.Fund, error) {
	fund, err := s.fundRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err fundRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if fund == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return fund, nil
}
