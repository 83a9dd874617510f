package auth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/abmshq/abms-backend/cmd/config"
	"github.com/abmshq/abms-backend/constant"
	"github.com/abmshq/abms-backend/model"
	accountrepo "github.com/abmshq/abms-backend/repository/account"
	redisrepo "github.com/abmshq/abms-backend/repository/redis"
	"github.com/abmshq/abms-backend/utils/actor"
	"github.com/abmshq/abms-backend/utils/errors"
	"github.com/abmshq/abms-backend/utils/logger"
	validatorx "github.com/abmshq/abms-backend/utils/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountClaims is the signed claim set carried by every bearer token.
type AccountClaims struct {
	AccountID   string `json:"Id"`
	User        string `json:"User"`
	Role        int    `json:"Role"`
	Email       string `json:"Email"`
	PhoneNumber string `json:"PhoneNumber"`
	FullName    string `json:"FullName"`
	BuildingID  string `json:"BuildingId"`
	Status      int    `json:"Status"`
	jwt.RegisteredClaims
}

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	LoginWithEmail(ctx context.Context, req *model.LoginWithEmailRequest) (*model.LoginResponse, error)
	Register(ctx context.Context, req *model.AccountInsertRequest) (string, error)
	IssueToken(account *model.Account) (token string, jti string, err error)
	ParseUserFromToken(tokenString string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	Logout(ctx context.Context, tokenString string) error
	ImportAccounts(ctx context.Context, r io.Reader, role int, buildingID string) ([]string, error)
	ExportAccounts(ctx context.Context, buildingID string) ([]byte, error)
}

type authAppImpl struct {
	config      *config.Config
	accountRepo accountrepo.AccountRepository
	redisRepo   redisrepo.Repository
}

func NewAuthApp(config *config.Config, accountRepo accountrepo.AccountRepository, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:      config,
		accountRepo: accountRepo,
		redisRepo:   redisRepo,
	}
}

func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if msg := validatorx.Message(req); msg != "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{PhoneNumber: req.PhoneNumber})
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.login(ctx, account, req.Password)
}

func (s *authAppImpl) LoginWithEmail(ctx context.Context, req *model.LoginWithEmailRequest) (*model.LoginResponse, error) {
	if msg := validatorx.Message(req); msg != "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[LoginWithEmail] err accountRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.login(ctx, account, req.Password)
}

func (s *authAppImpl) login(ctx context.Context, account *model.Account, password string) (*model.LoginResponse, error) {
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	if !VerifyPassword(password, account.PasswordHash, account.PasswordSalt) {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.IssueToken(account)
	if err != nil {
		logger.Error("[login] err IssueToken", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, account.UserName, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[login] err SetSession", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		UserName: account.UserName,
		FullName: account.FullName,
		Role:     account.Role,
		Token:    token,
	}, nil
}

// Register creates a new account. Phone and email must be free across
// every status: a soft-deleted account keeps its identifiers reserved.
func (s *authAppImpl) Register(ctx context.Context, req *model.AccountInsertRequest) (string, error) {
	if msg := validatorx.Message(req); msg != "" {
		return "", errors.SetCustomErrorMsg(constant.ErrInvalidRequest, msg)
	}

	existing, err := s.accountRepo.GetDuplicate(ctx, req.Phone, req.Email, "")
	if err != nil {
		logger.Error("[Register] err GetDuplicate", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return "", errors.SetCustomError(constant.ErrAccountExists)
	}

	hash, salt, err := HashPassword(req.Password)
	if err != nil {
		logger.Error("[Register] err HashPassword", zap.Error(err))
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
		logger.Error("[Register] err accountRepo.Create", zap.Error(err))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return account.ID, nil
}

// IssueToken signs a 30-minute HS256 token embedding the account's
// identity claims and a unique token id.
func (s *authAppImpl) IssueToken(account *model.Account) (string, string, error) {
	jti := uuid.NewString()
	now := time.Now()
	claims := AccountClaims{
		AccountID:   account.ID,
		User:        account.UserName,
		Role:        account.Role,
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
		FullName:    account.FullName,
		BuildingID:  account.BuildingID,
		Status:      int(account.Status),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Auth.JWTIssuer,
			Audience:  jwt.ClaimStrings{s.config.Auth.JWTAudience},
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, jti, nil
}

// ParseUserFromToken verifies the signature and expiry and returns the
// embedded username claim. Verification happens on every parse, not
// only at issuance.
func (s *authAppImpl) ParseUserFromToken(tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}
	if claims.User == "" {
		return "", fmt.Errorf("token missing user claim")
	}
	return claims.User, nil
}

// ValidateToken additionally requires the token's jti session to still
// exist, so a logout invalidates outstanding tokens.
func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return "", err
	}
	if claims.User == "" {
		return "", fmt.Errorf("token missing user claim")
	}
	if claims.ID == "" {
		return "", fmt.Errorf("token missing jti")
	}

	sessionUser, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	if sessionUser != "" && sessionUser != claims.User {
		return "", fmt.Errorf("token does not match session")
	}

	return claims.User, nil
}

func (s *authAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *authAppImpl) parseClaims(tokenString string) (*AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AccountClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}
