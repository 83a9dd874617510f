package expense

import (
	"context"
	"time"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	expenserepo "github.com/abmshq/abms-backend/repository/expense"
	txrepo "github.com/abmshq/abms-backend/repository/tx"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseApp interface {
	Create(ctx context.Context, req *model.ExpenseInsertRequest) (string, error)
	Update(ctx context.Context, id string, req *model.ExpenseInsertRequest) (string, error)
	Delete(ctx context.Context, id string) (string, error)
	Get(ctx context.Context, filter *model.ExpenseFilter) ([]model.Expense, error)
	GetByID(ctx context.Context, id string) (*model.Expense, error)
}

type expenseAppImpl struct {
	txRepo      txrepo.TxRepository
	expenseRepo expenserepo.ExpenseRepository
}

func NewExpenseApp(txRepo txrepo.TxRepository, expenseRepo expenserepo.ExpenseRepository) ExpenseApp {
	return &expenseAppImpl{
		txRepo:      txRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *expenseAppImpl) Create(ctx context.Context, req *model.ExpenseInsertRequest) (string, error) {
	if msg := validatorx.Message(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	createUser, _ := actor.FromContext(ctx)
	expense := &model.Expense{
		ID:            uuid.NewString(),
		BuildingID:    req.BuildingID,
		ExpenseSource: req.ExpenseSource,
		Amount:        req.Amount,
		Description:   req.Description,
		ExpenseDate:   req.ExpenseDate,
		Status:        constant.StatusActive,
		CreateUser:    createUser,
		CreateTime:    time.Now(),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		logger.Error("[Create] err expenseRepo.Create", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return expense.ID, nil
}

func (s *expenseAppImpl) Update(ctx context.Context, id string, req *model.ExpenseInsertRequest) (string, error) {
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

	expense, err := s.expenseRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Update] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if expense == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	now := time.Now()
	expense.BuildingID = req.BuildingID
	expense.ExpenseSource = req.ExpenseSource
	expense.Amount = req.Amount
	expense.Description = req.Description
	expense.ExpenseDate = req.ExpenseDate
	expense.ModifyUser = &modifyUser
	expense.ModifyTime = &now

	if err := s.expenseRepo.UpdateTx(ctx, tx, expense); err != nil {
		logger.Error("[Update] err UpdateTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Update] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return expense.ID, nil
}

func (s *expenseAppImpl) Delete(ctx context.Context, id string) (string, error) {
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

	expense, err := s.expenseRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.Error("[Delete] err GetByIDTx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if expense == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}

	if expense.Status != constant.StatusInactive {
		now := time.Now()
		expense.Status = constant.StatusInactive
		expense.ModifyUser = &modifyUser
		expense.ModifyTime = &now
		if err := s.expenseRepo.UpdateTx(ctx, tx, expense); err != nil {
			logger.Error("[Delete] err UpdateTx", zap.Error(err))
			return "", errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Delete] commit tx", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return expense.ID, nil
}

func (s *expenseAppImpl) Get(ctx context.Context, filter *model.ExpenseFilter) ([]model.Expense, error) {
	list, err := s.expenseRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Get] err expenseRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return list, nil
}

func (s *expenseAppImpl) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err expenseRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if expense == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return expense, nil
}
