// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"
	"unicode/utf8"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/semaphore"
)

// Unknown usernames are verified against this record so they cost one derivation like a real account.
// No password derives to an all-zero key, so it never verifies.
const (
	dummySalt = "AAAAAAAAAAAAAAAAAAAAAA=="
	dummyHash = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentialRepo repository.CredentialRepository
	hasher         service.CredentialHasher
	slots          *semaphore.Weighted
	loginTimeout   time.Duration
	minLength      int
	maxLength      int
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Hasher         service.CredentialHasher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxConcurrent := 1
	loginTimeout := time.Duration(0)
	if params.Config.Auth != nil {
		maxConcurrent = max(params.Config.Auth.MaxConcurrentHashes, 1)
		loginTimeout = params.Config.Auth.LoginTimeout
	}

	srv := &authService{
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		slots:          semaphore.NewWeighted(int64(maxConcurrent)),
		loginTimeout:   loginTimeout,
		logger:         params.Logger,
	}
	if params.Config.PasswordPolicy != nil {
		srv.minLength = params.Config.PasswordPolicy.MinLength
		srv.maxLength = params.Config.PasswordPolicy.MaxLength
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password with a fresh salt and stores the credential.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.checkPolicy(input.Password); err != nil {
		return nil, err
	}

	exists, err := srv.credentialRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username taken")
	}

	release, err := srv.acquire(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire hashing slot")
	}
	stored, err := srv.hasher.Register(input.Password)
	release()
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	credential := &entity.Credential{
		Username:     input.Username,
		PasswordHash: stored.Hash,
		PasswordSalt: stored.Salt,
	}
	if err := srv.credentialRepo.Create(ctx, credential); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("username taken concurrently")
		}

		return nil, errors.Wrap(err, "failed to store credential")
	}

	srv.log(ctx).Info("Credential registered", slog.String("username", input.Username))

	return &usecase.RegisterOutput{Username: input.Username}, nil
}

// Login verifies the password against the stored credential.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := srv.credentialRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrCredentialNotFound) {
		if _, err := srv.verify(ctx, input.Password, dummyHash, dummySalt); err != nil {
			return nil, err
		}
		srv.log(ctx).Info("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credential")
	}

	ok, err := srv.verify(ctx, input.Password, credential.PasswordHash, credential.PasswordSalt)
	if err != nil {
		return nil, err
	}
	if !ok {
		srv.log(ctx).Info("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return &usecase.LoginOutput{Authenticated: true, Username: credential.Username}, nil
}

// verify runs one derivation under a hashing slot.
func (srv *authService) verify(ctx context.Context, password, hash, salt string) (bool, error) {
	release, err := srv.acquire(ctx)
	if err != nil {
		srv.log(ctx).Warn("Login rejected while waiting for a hashing slot", slog.Any("error", err))

		return false, errors.Wrap(domainerrors.ErrInvalidCredentials, "hashing slot unavailable")
	}
	defer release()

	return srv.hasher.Verify(password, hash, salt), nil
}

// acquire takes a derivation slot, waiting at most loginTimeout.
func (srv *authService) acquire(ctx context.Context) (func(), error) {
	if srv.loginTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.loginTimeout)
		defer cancel()
	}

	if err := srv.slots.Acquire(ctx, 1); err != nil {
		return nil, errors.WithStack(err)
	}

	return func() { srv.slots.Release(1) }, nil
}

func (srv *authService) checkPolicy(password string) error {
	length := utf8.RuneCountInString(password)

	if srv.minLength > 0 && length < srv.minLength {
		return domainerrors.ErrPasswordPolicy.WithDetails("password must be at least " + strconv.Itoa(srv.minLength) + " characters")
	}
	if srv.maxLength > 0 && length > srv.maxLength {
		return domainerrors.ErrPasswordPolicy.WithDetails("password must be at most " + strconv.Itoa(srv.maxLength) + " characters")
	}

	return nil
}
