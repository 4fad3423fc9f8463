// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"violin_study_plan/internal/config"
	"violin_study_plan/internal/model"
	"violin_study_plan/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthServiceForTest(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"

	clock := fixedClock(t, "2026-03-10T12:00:00Z")
	svc := NewAuthService(
		db,
		repository.NewGormUserRepository(),
		repository.NewGormProgressRepository(),
		repository.NewGormSettingsRepository(),
		NewMemoryLoginLimiter(5, 300*time.Second, clock),
		cfg,
		clock,
	)
	return svc, db
}

func adminLogin() *model.LoginRequest {
	return &model.LoginRequest{Username: config.AdminUsername, Password: config.AdminInitialPassword}
}

func Test_authService_Login_BootstrapsAdmin(t *testing.T) {
	ctx := context.Background()
	svc, db := newAuthServiceForTest(t)

	resp, err := svc.Login(ctx, adminLogin(), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.True(t, resp.MustChangePassword)
	assert.NotEmpty(t, resp.AccessToken)

	// The token is HS256-signed with the configured secret and carries the
	// username as subject.
	parser := jwt.NewParser(jwt.WithTimeFunc(func() time.Time {
		return fixedClock(t, "2026-03-10T12:00:00Z")()
	}))
	token, err := parser.Parse(resp.AccessToken, func(tk *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, config.AdminUsername, sub)

	// Bootstrap also creates the progress documents and the settings row.
	sessions, err := repository.NewGormProgressRepository().ListSessions(ctx, db, config.AdminUsername)
	require.NoError(t, err)
	assert.Len(t, sessions, 6)

	settings, err := repository.NewGormSettingsRepository().Get(ctx, db)
	require.NoError(t, err)
	assert.NotEmpty(t, settings.SessionDurations)

	user, err := repository.NewGormUserRepository().FindByUsername(ctx, db, config.AdminUsername)
	require.NoError(t, err)
	assert.True(t, user.MustChangePassword)
	require.NotNil(t, user.FirstLoginAt)
}

func Test_authService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(ctx, adminLogin(), "10.0.0.1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, &model.LoginRequest{Username: config.AdminUsername, Password: "wrong"}, "10.0.0.1")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.Detail.Code)
}

func Test_authService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthServiceForTest(t)

	// Only the admin account is lazily created; anyone else is rejected with
	// the same message as a bad password.
	_, err := svc.Login(ctx, &model.LoginRequest{Username: "mallory", Password: "whatever"}, "10.0.0.1")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func Test_authService_Login_LockoutAfterRepeatedFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthServiceForTest(t)

	bad := &model.LoginRequest{Username: config.AdminUsername, Password: "wrong"}
	for i := 0; i < 5; i++ {
		_, err := svc.Login(ctx, bad, "10.9.9.9")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthorized, "attempt %d", i+1)
	}

	// Even the right password is refused while the IP is locked.
	_, err := svc.Login(ctx, adminLogin(), "10.9.9.9")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrTooManyRequests)

	// Another IP is unaffected.
	_, err = svc.Login(ctx, adminLogin(), "10.8.8.8")
	assert.NoError(t, err)
}

func Test_authService_SetFirstLoginPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(ctx, adminLogin(), "10.0.0.1")
	require.NoError(t, err)

	err = svc.SetFirstLoginPassword(ctx, config.AdminUsername, &model.FirstLoginPasswordRequest{NewPassword: "a-better-password"})
	require.NoError(t, err)

	// The old password no longer works and the flag is cleared.
	_, err = svc.Login(ctx, adminLogin(), "10.0.0.2")
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	resp, err := svc.Login(ctx, &model.LoginRequest{Username: config.AdminUsername, Password: "a-better-password"}, "10.0.0.3")
	require.NoError(t, err)
	assert.False(t, resp.MustChangePassword)

	// A second forced change is rejected.
	err = svc.SetFirstLoginPassword(ctx, config.AdminUsername, &model.FirstLoginPasswordRequest{NewPassword: "yet-another"})
	require.Error(t, err)
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PASSWORD_CHANGE_NOT_REQUIRED", appErr.Detail.Code)
}

func Test_authService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(ctx, adminLogin(), "10.0.0.1")
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, config.AdminUsername, &model.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "irrelevant-password",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "WRONG_PASSWORD", appErr.Detail.Code)
	})

	t.Run("successful change", func(t *testing.T) {
		err := svc.ChangePassword(ctx, config.AdminUsername, &model.ChangePasswordRequest{
			CurrentPassword: config.AdminInitialPassword,
			NewPassword:     "brand-new-password",
		})
		require.NoError(t, err)

		resp, err := svc.Login(ctx, &model.LoginRequest{Username: config.AdminUsername, Password: "brand-new-password"}, "10.0.0.4")
		require.NoError(t, err)
		assert.False(t, resp.MustChangePassword)
	})
}

func Test_authService_GetUserAndVerify(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, model.ErrUnauthorized)

	_, err = svc.Login(ctx, adminLogin(), "10.0.0.1")
	require.NoError(t, err)

	user, err := svc.GetUser(ctx, config.AdminUsername)
	require.NoError(t, err)
	assert.Equal(t, config.AdminUsername, user.Username)
	assert.True(t, user.MustChangePassword)

	verify, err := svc.Verify(ctx, config.AdminUsername)
	require.NoError(t, err)
	assert.True(t, verify.Valid)
	assert.Equal(t, config.AdminUsername, verify.Username)
}
