package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"roamly/internal/models/db_models"
	"roamly/internal/models/request_models"
	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/logger"
	"roamly/pkg/memcache"
	"roamly/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AuthServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error
}

type AuthService struct {
	userRepo    repositories.UserRepository
	jwtMaker    *utils.JWTMaker
	mailService MailServiceInterface
	resetTokens memcache.ResetTokenStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtMaker *utils.JWTMaker,
	mailService MailServiceInterface,
	resetTokens memcache.ResetTokenStore,
) AuthServiceInterface {
	return &AuthService{
		userRepo:    userRepo,
		jwtMaker:    jwtMaker,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AuthService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.L().Error("find user by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.L().Error("hash password", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         db_models.RoleUser,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		logger.L().Error("insert user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return a.authResponse(user)
}

// Login replies with the same generic error for an unknown email and
// a wrong password, so the response never hints which one it was.
func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		logger.L().Error("find user by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.authResponse(user)
}

// ForgotPassword always reports success so the endpoint cannot be
// used to probe which emails are registered.
func (a *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		logger.L().Error("find user by email", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, user.Email, resetTokenTTL)

	if err := a.mailService.SendPasswordReset(user.Email, token); err != nil {
		logger.L().Error("send reset mail", zap.Error(err), zap.String("email", user.Email))
	}
	return nil
}

func (a *AuthService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(req.Token)
	if email == "" {
		return utils.ErrResetTokenInvalid
	}

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.L().Error("find user by email", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrResetTokenInvalid
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.userRepo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		logger.L().Error("update password", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AuthService) authResponse(user *db_models.User) (*response_models.AuthResponse, error) {
	token, err := a.jwtMaker.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		logger.L().Error("create token", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return &response_models.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	resp := response_models.UserResponse{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Preferences: user.Preferences,
	}
	for i := range user.SavedCities {
		resp.SavedDestinations = append(resp.SavedDestinations, toCityResponse(&user.SavedCities[i]))
	}
	return resp
}
