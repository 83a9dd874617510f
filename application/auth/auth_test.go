package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appauth "github.com/abmshq/abms-backend/application/auth"
	"github.com/abmshq/abms-backend/cmd/config"
	"github.com/abmshq/abms-backend/constant"
	accountmocks "github.com/abmshq/abms-backend/mocks/repository/account"
	redismocks "github.com/abmshq/abms-backend/mocks/repository/redis"
	"github.com/abmshq/abms-backend/model"
	"github.com/abmshq/abms-backend/utils/actor"
	cerr "github.com/abmshq/abms-backend/utils/errors"
	"github.com/stretchr/testify/mock"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTIssuer:      "abms-backend",
			JWTAudience:    "abms-clients",
			JWTExpiration:  30 * time.Minute,
			SessionExpTime: 30 * time.Minute,
		},
	}
}

func TestAuthApp_Login(t *testing.T) {
	hash, salt, err := appauth.HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	type fields struct {
		accountRepo *accountmocks.AccountRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with phone number",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					PhoneNumber: "0912345678",
					Password:    "password123",
				},
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{PhoneNumber: "0912345678"}).
					Return(&model.Account{
						ID:           "acc-1",
						UserName:     "resident1",
						FullName:     "Test Resident",
						PhoneNumber:  "0912345678",
						PasswordHash: hash,
						PasswordSalt: salt,
						Role:         constant.RoleResident,
						Status:       constant.StatusActive,
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), "resident1", 30*time.Minute).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				UserName: "resident1",
				FullName: "Test Resident",
				Role:     constant.RoleResident,
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					PhoneNumber: "0900000000",
					Password:    "password123",
				},
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{PhoneNumber: "0900000000"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name: "error: wrong password",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					PhoneNumber: "0912345678",
					Password:    "not-the-password",
				},
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{PhoneNumber: "0912345678"}).
					Return(&model.Account{
						ID:           "acc-1",
						UserName:     "resident1",
						PhoneNumber:  "0912345678",
						PasswordHash: hash,
						PasswordSalt: salt,
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					PhoneNumber: "0912345678",
					Password:    "password123",
				},
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("Get", mock.Anything, &model.AccountFilter{PhoneNumber: "0912345678"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(testAuthConfig(), tt.fields.accountRepo, tt.fields.redisRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.UserName != tt.want.UserName || got.FullName != tt.want.FullName || got.Role != tt.want.Role {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

func TestAuthApp_Register(t *testing.T) {
	type fields struct {
		accountRepo *accountmocks.AccountRepository
		redisRepo   *redismocks.Repository
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
			name: "success: register new account",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: actor.WithActor(context.Background(), "manager1"),
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
							acc.UserName == "resident1" &&
							acc.Email == "resident1@example.com" &&
							acc.PhoneNumber == "0912345678" &&
							acc.Status == constant.StatusActive &&
							acc.CreateUser == "manager1" &&
							len(acc.PasswordHash) == 64 &&
							len(acc.PasswordSalt) == 64
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: phone or email already taken, soft-deleted included",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AccountInsertRequest{
					UserName:   "resident2",
					Email:      "taken@example.com",
					Phone:      "0912345678",
					Password:   "password123",
					FullName:   "Other Resident",
					Role:       constant.RoleResident,
					BuildingID: "building-1",
				},
			},
			mockCall: func(f fields) {
				f.accountRepo.
					On("GetDuplicate", mock.Anything, "0912345678", "taken@example.com", "").
					Return(&model.Account{
						ID:     "acc-old",
						Status: constant.StatusInactive,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountExists,
		},
		{
			name: "error: invalid request",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AccountInsertRequest{
					UserName:   "resident3",
					Email:      "not-an-email",
					Phone:      "0912345678",
					Password:   "password123",
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
			app := appauth.NewAuthApp(testAuthConfig(), tt.fields.accountRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == "" {
				t.Fatal("Register() returned an empty id")
			}
		})
	}
}

func TestAuthApp_ParseUserFromToken(t *testing.T) {
	app := appauth.NewAuthApp(testAuthConfig(), accountmocks.NewAccountRepository(t), redismocks.NewRepository(t))

	account := &model.Account{
		ID:          "acc-1",
		UserName:    "resident1",
		Email:       "resident1@example.com",
		PhoneNumber: "0912345678",
		FullName:    "Test Resident",
		Role:        constant.RoleResident,
		BuildingID:  "building-1",
		Status:      constant.StatusActive,
	}

	token, jti, err := app.IssueToken(account)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if jti == "" {
		t.Fatal("IssueToken() returned an empty jti")
	}

	user, err := app.ParseUserFromToken(token)
	if err != nil {
		t.Fatalf("ParseUserFromToken() error = %v", err)
	}
	if user != "resident1" {
		t.Fatalf("ParseUserFromToken() = %s, want resident1", user)
	}

	// A token signed with another secret must be rejected
	otherCfg := testAuthConfig()
	otherCfg.Auth.JWTSecret = "a-different-secret"
	otherApp := appauth.NewAuthApp(otherCfg, accountmocks.NewAccountRepository(t), redismocks.NewRepository(t))
	if _, err := otherApp.ParseUserFromToken(token); err == nil {
		t.Fatal("ParseUserFromToken() accepted a token signed with another secret")
	}

	if _, err := app.ParseUserFromToken("not.a.token"); err == nil {
		t.Fatal("ParseUserFromToken() accepted a malformed token")
	}
}

func TestAuthApp_ValidateToken(t *testing.T) {
	type fields struct {
		accountRepo *accountmocks.AccountRepository
		redisRepo   *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		badToken string
		want     string
		wantErr  bool
	}{
		{
			name: "success: live session",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, mock.AnythingOfType("string")).
					Return("resident1", nil).
					Once()
			},
			want:    "resident1",
			wantErr: false,
		},
		{
			name: "error: session expired",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, mock.AnythingOfType("string")).
					Return("", errors.New("redis: nil")).
					Once()
			},
			wantErr: true,
		},
		{
			name: "error: session bound to another user",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, mock.AnythingOfType("string")).
					Return("someone-else", nil).
					Once()
			},
			wantErr: true,
		},
		{
			name: "error: malformed token",
			fields: fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			badToken: "invalid.token.string",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(testAuthConfig(), tt.fields.accountRepo, tt.fields.redisRepo)

			tokenString := tt.badToken
			if tokenString == "" {
				var err error
				tokenString, _, err = app.IssueToken(&model.Account{
					ID:       "acc-1",
					UserName: "resident1",
				})
				if err != nil {
					t.Fatalf("IssueToken() error = %v", err)
				}
			}

			got, err := app.ValidateToken(context.Background(), tokenString)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ValidateToken() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAuthApp_Logout(t *testing.T) {
	accountRepo := accountmocks.NewAccountRepository(t)
	redisRepo := redismocks.NewRepository(t)
	app := appauth.NewAuthApp(testAuthConfig(), accountRepo, redisRepo)

	token, jti, err := app.IssueToken(&model.Account{ID: "acc-1", UserName: "resident1"})
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}

	redisRepo.
		On("DeleteSession", mock.Anything, jti).
		Return(nil).
		Once()

	if err := app.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	// A garbage token cannot name a session to delete
	if err := app.Logout(context.Background(), "garbage"); err == nil {
		t.Fatal("Logout() accepted a malformed token")
	}
}
