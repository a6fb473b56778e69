package account

import (
	"context"
	"strings"
	"time"

	"tayarpro-be/internal/auth"
	"tayarpro-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (*Account, error)
	Login(ctx context.Context, username, password string) (string, *Account, error)
	GetProfile(ctx context.Context, accountID string) (*Account, error)
	UpdateProfile(ctx context.Context, accountID string, params UpdateProfileParams) (*Account, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenManager
}

func NewService(repo Repository, tokens *auth.TokenManager) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*Account, error) {
	log := logger.FromCtx(ctx)

	hashed, err := auth.HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	a := &Account{
		AccountID:   uuid.New().String(),
		Username:    params.Username,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		PhoneNumber: params.PhoneNumber,
		Email:       params.Email,
		Address:     params.Address,
		City:        params.City,
		State:       params.State,
		ZipCode:     params.ZipCode,
		Gender:      params.Gender,
		Password:    hashed,
		CreatedAt:   time.Now(),
		IsActive:    "Y",
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if strings.Contains(err.Error(), "accounts_email_key") {
			return nil, ErrEmailExists
		}
		if strings.Contains(err.Error(), "accounts_username_key") {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	log.Info("account registered",
		zap.String("accountid", a.AccountID),
		zap.String("username", a.Username),
	)

	return a, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, *Account, error) {
	a, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if a == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, a.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(a.Username, a.AccountID)
	if err != nil {
		return "", nil, err
	}

	return token, a, nil
}

func (s *service) GetProfile(ctx context.Context, accountID string) (*Account, error) {
	a, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

func (s *service) UpdateProfile(ctx context.Context, accountID string, params UpdateProfileParams) (*Account, error) {
	return s.repo.UpdateProfile(ctx, accountID, params)
}
