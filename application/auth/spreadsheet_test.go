package auth_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	appauth "github.com/abmshq/abms-backend/application/auth"
	"github.com/abmshq/abms-backend/constant"
	accountmocks "github.com/abmshq/abms-backend/mocks/repository/account"
	redismocks "github.com/abmshq/abms-backend/mocks/repository/redis"
	"github.com/abmshq/abms-backend/model"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

func buildImportSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []string{"Phone Number", "Password", "User Name", "Email", "Full Name"}
	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue("Sheet1", cell, title); err != nil {
			t.Fatalf("SetCellValue() error = %v", err)
		}
	}
	for i, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("SetCellValue() error = %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() error = %v", err)
	}
	return buf
}

func TestAuthApp_ImportAccounts(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(testAuthConfig(), accountRepo, redisRepo)

	sheet := buildImportSheet(t, [][]string{
		{"0912345678", "password123", "resident1", "resident1@example.com", "First Resident"},
		{"0987654321", "password456", "resident2", "resident2@example.com", "Second Resident"},
	})

	accountRepo.
		On("GetDuplicate", mock.Anything, "0912345678", "resident1@example.com", "").
		Return(nil, nil).
		Once()
	accountRepo.
		On("GetDuplicate", mock.Anything, "0987654321", "resident2@example.com", "").
		Return(nil, nil).
		Once()

	accountRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(acc *model.Account) bool {
			return acc.Role == constant.RoleResident &&
				acc.BuildingID == "building-1" &&
				acc.Status == constant.StatusActive &&
				len(acc.PasswordHash) > 0
		})).
		Return(nil).
		Twice()

	ids, err := app.ImportAccounts(context.Background(), sheet, constant.RoleResident, "building-1")
	if err != nil {
		t.Fatalf("ImportAccounts() error = %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ImportAccounts() created %d accounts, want 2", len(ids))
	}
}

func TestAuthApp_ImportAccounts_DuplicateAborts(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(testAuthConfig(), accountRepo, redisRepo)

	sheet := buildImportSheet(t, [][]string{
		{"0912345678", "password123", "resident1", "taken@example.com", "First Resident"},
	})

	accountRepo.
		On("GetDuplicate", mock.Anything, "0912345678", "taken@example.com", "").
		Return(&model.Account{ID: "acc-existing"}, nil).
		Once()

	_, err := app.ImportAccounts(context.Background(), sheet, constant.RoleResident, "building-1")
	if err == nil {
		t.Fatal("ImportAccounts() accepted a duplicate row")
	}
	if !strings.Contains(err.Error(), "0912345678") {
		t.Fatalf("ImportAccounts() error = %v, want the offending phone number", err)
	}
}

func TestAuthApp_ImportAccounts_RejectsGarbage(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(testAuthConfig(), accountRepo, redisRepo)

	_, err := app.ImportAccounts(context.Background(), strings.NewReader("not an xlsx file"), constant.RoleResident, "building-1")
	if err == nil {
		t.Fatal("ImportAccounts() accepted a non-spreadsheet payload")
	}
}

func TestAuthApp_ExportAccounts(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(testAuthConfig(), accountRepo, redisRepo)

	role := constant.RoleResident
	accountRepo.
		On("List", mock.Anything, &model.AccountFilter{BuildingID: "building-1", Role: &role}).
		Return([]model.Account{
			{UserName: "resident1", Email: "resident1@example.com", PhoneNumber: "0912345678", FullName: "First Resident"},
		}, nil).
		Once()

	data, err := app.ExportAccounts(context.Background(), "building-1")
	if err != nil {
		t.Fatalf("ExportAccounts() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a readable spreadsheet: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Accounts")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("exported %d rows, want header + 1 account", len(rows))
	}
	if rows[1][0] != "0912345678" || rows[1][3] != "resident1@example.com" {
		t.Fatalf("exported row = %v", rows[1])
	}
}
