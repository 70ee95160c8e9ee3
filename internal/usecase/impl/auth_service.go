// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"evently/config"
	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/usecase"
	"evently/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// usernameRetryLimit bounds how many fresh username candidates registration
// tries before giving up on a pathological collision streak.
const usernameRetryLimit = 5

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and returns the stored user together with a
// fresh session token. The username is derived from the display name; the
// database enforces its uniqueness and drives the bounded retry loop here.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, err
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrEmailAlreadyExists
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		for attempt := 0; attempt < usernameRetryLimit; attempt++ {
			candidate := &entity.User{
				Username:     util.UsernameFromName(input.Name),
				Email:        input.Email,
				Name:         input.Name,
				PasswordHash: hashedPassword,
				Role:         entity.RoleUser,
			}

			createErr := userRepo.Create(ctx, candidate)
			if createErr == nil {
				registeredUser = candidate

				return nil
			}
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyExists
			}
			if errors.Is(createErr, repository.ErrDuplicateUsername) {
				srv.log(ctx).Debug("Username collision, retrying with a fresh candidate",
					slog.String("username", candidate.Username), slog.Int("attempt", attempt+1))

				continue
			}

			return errors.Wrap(createErr, "failed to create user")
		}

		return domainerrors.ErrUsernameAlreadyExists.WrapMessage("could not allocate a unique username")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Generate(registeredUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("userID", registeredUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID), slog.String("username", registeredUser.Username))

	return &usecase.LoginOutput{User: registeredUser, Token: token}, nil
}

// Login verifies credentials and issues a session token. Unknown emails,
// wrong passwords and deleted accounts all fail with the same error so the
// response does not reveal which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !user.IsActive() {
		srv.log(ctx).Warn("Login attempt for deactivated account", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user, Token: token}, nil
}

// GetProfile returns the authenticated user's own record.
func (srv *authService) GetProfile(ctx context.Context, actor *entity.User) (*entity.User, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies the caller's changes to their own record.
func (srv *authService) UpdateProfile(ctx context.Context, actor *entity.User, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load profile for update")
		}

		user.Name = input.Name
		user.Email = input.Email
		if input.Bio != nil {
			user.Bio = *input.Bio
		}
		if input.Birthdate != nil {
			user.Birthdate = input.Birthdate
		}
		if input.Photo != nil {
			user.Photo = *input.Photo
		}
		if input.Locations != nil {
			user.Locations = input.Locations
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyExists
			}

			return errors.Wrap(err, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", actor.ID))

	return updated, nil
}
