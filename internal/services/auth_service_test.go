package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamly/internal/models/request_models"
	"roamly/pkg/config"
	"roamly/pkg/memcache"
	"roamly/pkg/utils"
)

func newAuthFixture(t *testing.T) (AuthServiceInterface, *fakeUserRepo, *fakeMailService, memcache.ResetTokenStore) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiry = time.Hour

	userRepo := newFakeUserRepo()
	mail := &fakeMailService{}
	tokens := memcache.NewResetTokens()
	svc := NewAuthService(userRepo, utils.NewJWTMaker(cfg), mail, tokens)
	return svc, userRepo, mail, tokens
}

func TestSignUp_IssuesToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	resp, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user", resp.User.Role)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := request_models.SignUpRequest{Name: "Ada", Email: "ada@example.com", Password: "hunter22"}
	_, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)

	// Same address with different casing collides.
	req.Email = "ADA@Example.com"
	_, err = svc.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "ada@example.com", Password: "not-it",
	})
	_, unknownEmail := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "nobody@example.com", Password: "hunter22",
	})

	assert.ErrorIs(t, wrongPassword, utils.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, utils.ErrInvalidCredentials)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name: "Ada", Email: "Ada@Example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: " ada@example.com ", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	svc, _, mail, _ := newAuthFixture(t)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestResetPassword_TokenIsSingleUse(t *testing.T) {
	svc, _, mail, _ := newAuthFixture(t)

	_, err := svc.SignUp(context.Background(), request_models.SignUpRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com"))
	require.Len(t, mail.sent, 1)
	token := mail.sent[0].token

	err = svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token: token, NewPassword: "new-password",
	})
	require.NoError(t, err)

	// Old password gone, new one works.
	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "ada@example.com", Password: "hunter22",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "ada@example.com", Password: "new-password",
	})
	assert.NoError(t, err)

	// Replaying the token fails.
	err = svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token: token, NewPassword: "another-one",
	})
	assert.ErrorIs(t, err, utils.ErrResetTokenInvalid)
}

func TestResetPassword_BogusToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	err := svc.ResetPassword(context.Background(), request_models.ResetPasswordRequest{
		Token: "nope", NewPassword: "whatever1",
	})
	assert.ErrorIs(t, err, utils.ErrResetTokenInvalid)
}
