package account

import (
	"context"
	"time"

	"github.com/abmshq/abms-backend/application/auth"
	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	accountrepo "github.com/abmshq/abms-backend/repository/account"
	txrepo "github.com/abmshq/abms-backend/repository/tx"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountApp interface {
	Create(ctx context.Context, req *model.AccountInsertRequest) (string, error)
	Update(ctx context.Context, id string, req *model.AccountUpdateRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, filter *model.AccountFilter) ([]model.Account, error)
	GetByID(ctx context.Context, id string) (*model.Account, error)
}

type accountAppImpl struct {
	txRepo      txrepo.TxRepository
	accountRepo accountrepo.AccountRepository
}

func NewAccountApp(txRepo txrepo.TxRepository, accountRepo accountrepo.AccountRepository) AccountApp {
	return &accountAppImpl{
		txRepo:      txRepo,
		accountRepo: accountRepo,
	}
}

func (s *accountAppImpl) Create(ctx context.Context, req *model.AccountInsertRequest) (string, error) {
	if msg := validatorx.Message(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	existing, err := s.accountRepo.GetDuplicate(ctx, req.Phone, req.Email, "")
	if err != nil {
		logger.Error("[Create] err GetDuplicate", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return "", errors.SetCustomError(constant.ErrAccountExists)
	}

	hash, salt, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("[Create] err HashPassword", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	createUser, _ := actor.FromContext(ctx)
	account := &model.Account{
		ID:           uuid.NewString(),
		UserName:     req.UserName,
		Email:        req.Email,
		PhoneNumber:  req.Phone,
		PasswordHash: hash,
		PasswordSalt: salt,
		FullName:     req.FullName,
		Avatar:       req.Avatar,
		Role:         req.Role,
		BuildingID:   req.BuildingID,
		Status:       constant.StatusActive,
		CreateUser:   createUser,
		CreateTime:   time.Now(),
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		logger.Error("[Create] err accountRepo.Create", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return account.ID, nil
}

func (s *accountAppImpl) Update(ctx context.Context, id string, req *model.AccountUpdateRequest) (string, error) {
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

	account, err := s.accountRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Update] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.accountRepo.GetDuplicate(ctx, req.Phone, req.Email, id)
	if err != nil {
		logger.Error("[Update] err GetDuplicate", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return "", errors.SetCustomError(constant.ErrAccountExists)
	}

	now := time.Now()
	account.UserName = req.UserName
	account.Email = req.Email
	account.PhoneNumber = req.Phone
	account.FullName = req.FullName
	account.Avatar = req.Avatar
	account.Role = req.Role
	account.BuildingID = req.BuildingID
	account.ModifyUser = &modifyUser
	account.ModifyTime = &now

	if err := s.accountRepo.UpdateTx(ctx, tx, account); err != nil {
		logger.Error("[Update] err UpdateTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return account.ID, nil
}

// Delete soft-deletes: the row stays, status moves to inactive.
// Deleting an already-inactive account succeeds without touching it.
func (s *accountAppImpl) Delete(ctx context.Context, id string) (string, error) {
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

	account, err := s.accountRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Delete] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	if account.Status != constant.StatusInactive {
		now := time.Now()
		account.Status = constant.StatusInactive
		account.ModifyUser = &modifyUser
		account.ModifyTime = &now
		if err := s.accountRepo.UpdateTx(ctx, tx, account); err != nil {
			logger.Error("[Delete] err UpdateTx", zap.Error(err))
			return "", errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return account.ID, nil
}

func (s *accountAppImpl) Get(ctx context.Context, filter *model.AccountFilter) ([]model.Account, error) {
	list, err := s.accountRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Get] err accountRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *accountAppImpl) GetByID(ctx context.Context, id string) (*model.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err accountRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return account, nil
}
