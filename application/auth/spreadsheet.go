package auth

import (
	"context"
	"io"
	"time"

	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Column layout for account import sheets. The first row is a header.
var accountSheetHeader = []string{"Phone Number", "Password", "User Name", "Email", "Full Name"}

// ImportAccounts bulk-registers accounts from an xlsx sheet. Every row
// gets the given role and building, a hashed password and a fresh id.
// Returns the created ids in sheet order.
func (s *authAppImpl) ImportAccounts(ctx context.Context, r io.Reader, role int, buildingID string) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "file is not a readable spreadsheet")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		logger.Error("[ImportAccounts] err GetRows", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(rows) < 2 {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "spreadsheet must contain at least one data row")
	}

	createUser, _ := actor.FromContext(ctx)
	ids := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 5 || row[0] == "" {
			continue
		}
		phone, password, userName, email, fullName := row[0], row[1], row[2], row[3], row[4]

		existing, err := s.accountRepo.GetDuplicate(ctx, phone, email, "")
		if err != nil {
			logger.Error("[ImportAccounts] err GetDuplicate", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return nil, errors.SetCustomErrorMsg(constant.ErrAccountExists, "duplicate phone or email: "+phone)
		}

		hash, salt, err := HashPassword(password)
		if err != nil {
			logger.Error("[ImportAccounts] err HashPassword", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		account := &model.Account{
			ID:           uuid.NewString(),
			UserName:     userName,
			Email:        email,
			PhoneNumber:  phone,
			PasswordHash: hash,
			PasswordSalt: salt,
			FullName:     fullName,
			Role:         role,
			BuildingID:   buildingID,
			Status:       constant.StatusActive,
			CreateUser:   createUser,
			CreateTime:   time.Now(),
		}
		if err := s.accountRepo.Create(ctx, account); err != nil {
			logger.Error("[ImportAccounts] err accountRepo.Create", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		ids = append(ids, account.ID)
	}

	return ids, nil
}

// ExportAccounts renders the resident accounts of a building as an
// xlsx file.
func (s *authAppImpl) ExportAccounts(ctx context.Context, buildingID string) ([]byte, error) {
	role := constant.RoleResident
	accounts, err := s.accountRepo.List(ctx, &model.AccountFilter{
		BuildingID: buildingID,
		Role:       &role,
	})
	if err != nil {
		logger.Error("[ExportAccounts] err accountRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Accounts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		logger.Error("[ExportAccounts] err NewSheet", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for col, title := range accountSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			logger.Error("[ExportAccounts] err SetCellValue", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	for i, acc := range accounts {
		values := []string{acc.PhoneNumber, "", acc.UserName, acc.Email, acc.FullName}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				logger.Error("[ExportAccounts] err SetCellValue", zap.Error(err))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("[ExportAccounts] err WriteToBuffer", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return buf.Bytes(), nil
}
