package impl

import (
	"context"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/auth"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockCredentialHasher
}

func createTestAuthService(t *testing.T, cfg *config.Config) authServiceFixtures {
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockCredentialHasher(t)

	service := NewAuthService(AuthServiceParams{
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:        service,
		credentialRepo: credentialRepo,
		hasher:         hasher,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
	fx.hasher.EXPECT().Register("correcthorse").Return(&entity.StoredCredential{Hash: "H", Salt: "S"}, nil).Once()
	fx.credentialRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.Username == "alice" && c.PasswordHash == "H" && c.PasswordSalt == "S"
		})).
		Return(nil).Once()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "correcthorse"})

	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil).Once()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "correcthorse"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.hasher.AssertNotCalled(t, "Register", mock.Anything)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
	fx.hasher.EXPECT().Register("correcthorse").Return(&entity.StoredCredential{Hash: "H", Salt: "S"}, nil).Once()
	fx.credentialRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUsername).Once()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "correcthorse"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
	fx.hasher.EXPECT().Register("correcthorse").Return(nil, errors.New("entropy source exhausted")).Once()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "correcthorse"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.credentialRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, errors.New("connection refused")).Once()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "correcthorse"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to check username")
}

func TestAuthService_Register_PasswordPolicy(t *testing.T) {
	cfg := newTestConfig(2, time.Second)
	cfg.PasswordPolicy = &config.PasswordPolicyConfig{MinLength: 8, MaxLength: 12}

	tests := []struct {
		name     string
		password string
		details  string
	}{
		{name: "too short", password: "short", details: "password must be at least 8 characters"},
		{name: "too long", password: "averyveryverylongpassword", details: "password must be at most 12 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, cfg)

			_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Username: "alice", Password: tt.password})

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "PASSWORD_POLICY", appErr.ErrorCode())
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestAuthService_Register_PolicyCountsRunes(t *testing.T) {
	cfg := newTestConfig(2, time.Second)
	cfg.PasswordPolicy = &config.PasswordPolicyConfig{MinLength: 4}
	fx := createTestAuthService(t, cfg)
	ctx := context.Background()

	fx.credentialRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
	fx.hasher.EXPECT().Register("pässwörd").Return(&entity.StoredCredential{Hash: "H", Salt: "S"}, nil).Once()
	fx.credentialRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "pässwörd"})

	assert.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.Credential{Username: "alice", PasswordHash: "H", PasswordSalt: "S"}, nil).Once()
	fx.hasher.EXPECT().Verify("correcthorse", "H", "S").Return(true).Once()

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "correcthorse"})

	require.NoError(t, err)
	assert.True(t, out.Authenticated)
	assert.Equal(t, "alice", out.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.Credential{Username: "alice", PasswordHash: "H", PasswordSalt: "S"}, nil).Once()
	fx.hasher.EXPECT().Verify("wrongpassword", "H", "S").Return(false).Once()

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrongpassword"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownUserStillDerives(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "mallory").Return(nil, repository.ErrCredentialNotFound).Once()
	fx.hasher.EXPECT().Verify("correcthorse", dummyHash, dummySalt).Return(false).Once()

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "mallory", Password: "correcthorse"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "mallory").Return(nil, repository.ErrCredentialNotFound).Once()
	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.Credential{Username: "alice", PasswordHash: "H", PasswordSalt: "S"}, nil).Once()
	fx.hasher.EXPECT().Verify(mock.Anything, mock.Anything, mock.Anything).Return(false).Twice()

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Username: "mallory", Password: "x"})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "x"})

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, wrongApp.HTTPCode(), unknownApp.HTTPCode())
	assert.Equal(t, wrongApp.ErrorCode(), unknownApp.ErrorCode())
	assert.Equal(t, wrongApp.Message(), unknownApp.Message())
	assert.Equal(t, wrongApp.Details(), unknownApp.Details())
}

func TestAuthService_Login_LookupFailure(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2, time.Second))
	ctx := context.Background()

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, errors.New("connection refused")).Once()

	_, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "correcthorse"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_NoHashingSlot(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(1, 20*time.Millisecond))
	ctx := context.Background()

	// Occupy the only slot.
	release, err := fx.service.(*authService).acquire(ctx)
	require.NoError(t, err)
	defer release()

	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.Credential{Username: "alice", PasswordHash: "H", PasswordSalt: "S"}, nil).Once()

	_, err = fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "correcthorse"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_NoHashingSlotUnknownUser(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(1, 20*time.Millisecond))
	ctx := context.Background()

	release, err := fx.service.(*authService).acquire(ctx)
	require.NoError(t, err)
	defer release()

	fx.credentialRepo.EXPECT().FindByUsername(ctx, "mallory").Return(nil, repository.ErrCredentialNotFound).Once()

	_, err = fx.service.Login(ctx, usecase.LoginInput{Username: "mallory", Password: "correcthorse"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

// The credential lookup must not hold a hashing slot.
func TestAuthService_Login_LookupRunsWithoutSlot(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(1, 20*time.Millisecond))
	srv := fx.service.(*authService)
	ctx := context.Background()

	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Run(func(_ context.Context, _ string) {
			// Fails if Login already holds the only slot.
			assert.True(t, srv.slots.TryAcquire(1))
			srv.slots.Release(1)
		}).
		Return(&entity.Credential{Username: "alice", PasswordHash: "H", PasswordSalt: "S"}, nil).Once()
	fx.hasher.EXPECT().
		Verify("correcthorse", "H", "S").
		Run(func(_, _, _ string) {
			assert.False(t, srv.slots.TryAcquire(1))
		}).
		Return(true).Once()

	out, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "correcthorse"})

	require.NoError(t, err)
	assert.True(t, out.Authenticated)
	assert.True(t, srv.slots.TryAcquire(1))
}

func TestAuthService_Login_CanceledContext(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(1, time.Second))

	release, err := fx.service.(*authService).acquire(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.credentialRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.Credential{Username: "alice", PasswordHash: "H", PasswordSalt: "S"}, nil).Once()

	_, err = fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "correcthorse"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestNewAuthService_Defaults(t *testing.T) {
	srv := NewAuthService(AuthServiceParams{Config: &config.Config{}, Logger: newDiscardLogger()}).(*authService)

	assert.Zero(t, srv.loginTimeout)
	assert.Zero(t, srv.minLength)
	assert.Zero(t, srv.maxLength)
	assert.True(t, srv.slots.TryAcquire(1))
	assert.False(t, srv.slots.TryAcquire(1))
}

// Register then Login through the real PBKDF2 hasher.
func TestAuthService_RoundTripWithPBKDF2(t *testing.T) {
	hasher, err := auth.NewPBKDF2Hasher()
	require.NoError(t, err)

	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	srv := NewAuthService(AuthServiceParams{
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		Config:         newTestConfig(2, time.Second),
		Logger:         newDiscardLogger(),
	})
	ctx := context.Background()

	var stored *entity.Credential
	credentialRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
	credentialRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, credential *entity.Credential) { stored = credential }).
		Return(nil).Once()

	_, err = srv.Register(ctx, usecase.RegisterInput{Username: "alice", Password: "correcthorse"})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correcthorse", stored.PasswordHash)

	credentialRepo.EXPECT().FindByUsername(ctx, "alice").RunAndReturn(
		func(context.Context, string) (*entity.Credential, error) { return stored, nil },
	).Twice()

	out, err := srv.Login(ctx, usecase.LoginInput{Username: "alice", Password: "correcthorse"})
	require.NoError(t, err)
	assert.True(t, out.Authenticated)

	_, err = srv.Login(ctx, usecase.LoginInput{Username: "alice", Password: "correcthorsE"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
