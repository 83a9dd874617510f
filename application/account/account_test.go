package account_test

import (
	"context"
	"errors"
	"testing"

	appaccount "github.com/abmshq/abms-backend/application/account"
	"github.com/abmshq/abms-backend/constant"
	accountmocks "github.com/abmshq/abms-backend/mocks/repository/account"
	txmocks "github.com/abmshq/abms-backend/mocks/repository/tx"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/actor"
	cerr "github.com/abmshq/abms-backend/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestAccountApp_Create(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		accountRepo *accountmocks.AccountRepository
	}
	type args struct {
		ctx context.Context
		req *model.AccountInsertRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create account",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			args: args{
				ctx: actor.WithActor(context.Background(), "admin1"),
				req: &model.AccountInsertRequest{
					UserName:   "resident1",
					Email:      "resident1@example.com",
					Phone:      "0912345678",
					Password:   "password123",
					FullName:   "Test Resident",
					Role:       constant.RoleResident,
					BuildingID: "building-1",
				},
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetDuplicate", mock.Anything, "0912345678", "resident1@example.com", "").
					Return(nil, nil).
					Once()

				f.accountRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(acc *model.Account) bool {
						return acc.ID != "" &&
							acc.PhoneNumber == "0912345678" &&
							acc.Status == constant.StatusActive &&
							acc.CreateUser == "admin1" &&
							len(acc.PasswordHash) > 0 &&
							len(acc.PasswordSalt) > 0
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: duplicate phone",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AccountInsertRequest{
					UserName:   "resident2",
					Email:      "resident2@example.com",
					Phone:      "0912345678",
					Password:   "password123",
					FullName:   "Other Resident",
					Role:       constant.RoleResident,
					BuildingID: "building-1",
				},
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetDuplicate", mock.Anything, "0912345678", "resident2@example.com", "").
					Return(&model.Account{ID: "acc-existing"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountExists,
		},
		{
			name: "error: password too short",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AccountInsertRequest{
					UserName:   "resident3",
					Email:      "resident3@example.com",
					Phone:      "0912345678",
					Password:   "short",
					FullName:   "Test",
					Role:       constant.RoleResident,
					BuildingID: "building-1",
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appaccount.NewAccountApp(tt.fields.txRepo, tt.fields.accountRepo)

			got, err := app.Create(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got == "" {
				t.Fatal("Create() returned an empty id")
			}
		})
	}
}

func TestAccountApp_Update(t *testing.T) {
	validReq := &model.AccountUpdateRequest{
		UserName:   "resident1",
		Email:      "new@example.com",
		Phone:      "0998765432",
		FullName:   "Renamed Resident",
		Role:       constant.RoleResident,
		BuildingID: "building-1",
	}

	type fields struct {
		txRepo      *txmocks.TxRepository
		accountRepo *accountmocks.AccountRepository
	}
	type args struct {
		ctx context.Context
		id  string
		req *model.AccountUpdateRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: update inside a transaction",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			args: args{
				ctx: actor.WithActor(context.Background(), "admin1"),
				id:  "acc-1",
				req: validReq,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.accountRepo.
					On("GetByIDTx", mock.Anything, tx, "acc-1").
					Return(&model.Account{
						ID:          "acc-1",
						UserName:    "resident1",
						Email:       "old@example.com",
						PhoneNumber: "0912345678",
						Status:      constant.StatusActive,
					}, nil).
					Once()

				f.accountRepo.
					On("GetDuplicate", mock.Anything, "0998765432", "new@example.com", "acc-1").
					Return(nil, nil).
					Once()

				f.accountRepo.
					On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(acc *model.Account) bool {
						return acc.ID == "acc-1" &&
							acc.Email == "new@example.com" &&
							acc.PhoneNumber == "0998765432" &&
							acc.ModifyUser != nil && *acc.ModifyUser == "admin1" &&
							acc.ModifyTime != nil
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: account not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			args: args{
				ctx: actor.WithActor(context.Background(), "admin1"),
				id:  "acc-missing",
				req: validReq,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.accountRepo.
					On("GetByIDTx", mock.Anything, tx, "acc-missing").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: no authenticated actor",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			args: args{
				ctx: context.Background(),
				id:  "acc-1",
				req: validReq,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrForbidden,
		},
		{
			name: "error: new phone belongs to another account",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			args: args{
				ctx: actor.WithActor(context.Background(), "admin1"),
				id:  "acc-1",
				req: validReq,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.accountRepo.
					On("GetByIDTx", mock.Anything, tx, "acc-1").
					Return(&model.Account{ID: "acc-1"}, nil).
					Once()

				f.accountRepo.
					On("GetDuplicate", mock.Anything, "0998765432", "new@example.com", "acc-1").
					Return(&model.Account{ID: "acc-2"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appaccount.NewAccountApp(tt.fields.txRepo, tt.fields.accountRepo)

			got, err := app.Update(tt.args.ctx, tt.args.id, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got != tt.args.id {
				t.Fatalf("Update() = %s, want %s", got, tt.args.id)
			}
		})
	}
}

func TestAccountApp_Delete(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		accountRepo *accountmocks.AccountRepository
	}
	tests := []struct {
		name     string
		fields   fields
		ctx      context.Context
		id       string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: active account goes inactive",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			ctx: actor.WithActor(context.Background(), "admin1"),
			id:  "acc-1",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.accountRepo.
					On("GetByIDTx", mock.Anything, tx, "acc-1").
					Return(&model.Account{ID: "acc-1", Status: constant.StatusActive}, nil).
					Once()

				f.accountRepo.
					On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(acc *model.Account) bool {
						return acc.ID == "acc-1" &&
							acc.Status == constant.StatusInactive &&
							acc.ModifyUser != nil && *acc.ModifyUser == "admin1"
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: deleting an already-inactive account is a no-op",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			ctx: actor.WithActor(context.Background(), "admin1"),
			id:  "acc-1",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				// No UpdateTx expectation: the row must not be touched
				f.accountRepo.
					On("GetByIDTx", mock.Anything, tx, "acc-1").
					Return(&model.Account{ID: "acc-1", Status: constant.StatusInactive}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: account not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				accountRepo: accountmocks.NewAccountRepository(t),
			},
			ctx: actor.WithActor(context.Background(), "admin1"),
			id:  "acc-missing",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.accountRepo.
					On("GetByIDTx", mock.Anything, tx, "acc-missing").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appaccount.NewAccountApp(tt.fields.txRepo, tt.fields.accountRepo)

			got, err := app.Delete(tt.ctx, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got != tt.id {
				t.Fatalf("Delete() = %s, want %s", got, tt.id)
			}
		})
	}
}

func TestAccountApp_GetByID(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	accountRepo := accountmocks.NewAccountRepository(t)
	app := appaccount.NewAccountApp(txRepo, accountRepo)

	accountRepo.
		On("GetByID", mock.Anything, "acc-1").
		Return(&model.Account{ID: "acc-1", UserName: "resident1"}, nil).
		Once()

	got, err := app.GetByID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.UserName != "resident1" {
		t.Fatalf("GetByID() = %+v", got)
	}

	accountRepo.
		On("GetByID", mock.Anything, "acc-missing").
		Return(nil, nil).
		Once()

	_, err = app.GetByID(context.Background(), "acc-missing")
	if err == nil {
		t.Fatal("GetByID() did not fail for a missing account")
	}
	assertErrCode(t, err, constant.ErrNotFound)
}
