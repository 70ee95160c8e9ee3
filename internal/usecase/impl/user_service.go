package impl

import (
	"context"
	"log/slog"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/usecase"
	"evently/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns users matching the filter together with the total count.
func (srv *userService) List(ctx context.Context, input *usecase.ListUsersInput) (*usecase.UserListOutput, error) {
	filter := repository.UserFilter{
		Query:  input.Query,
		Offset: input.Offset,
		Limit:  input.Limit,
	}

	users, count, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{Users: users, Count: count}, nil
}

// GetByUsername returns a single user by username.
func (srv *userService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Create makes a new account on behalf of an administrator. The actor must
// rank at least as high as the role being granted.
func (srv *userService) Create(ctx context.Context, actor *entity.User, input *usecase.CreateUserInput) (*entity.User, error) {
	if actor == nil || actor.Role.Rank() < entity.RoleAdmin.Rank() {
		return nil, domainerrors.ErrForbidden
	}

	role := entity.RoleUser
	if input.Role != "" {
		role = input.Role
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
		}
	}
	if actor.Role.Rank() < role.Rank() {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot grant a role above your own")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	var created *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		for attempt := 0; attempt < usernameRetryLimit; attempt++ {
			candidate := &entity.User{
				Username:     util.UsernameFromName(input.Name),
				Email:        input.Email,
				Name:         input.Name,
				PasswordHash: hashedPassword,
				Role:         role,
			}

			createErr := userRepo.Create(ctx, candidate)
			if createErr == nil {
				created = candidate

				return nil
			}
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyExists
			}
			if errors.Is(createErr, repository.ErrDuplicateUsername) {
				continue
			}

			return errors.Wrap(createErr, "failed to create user")
		}

		return domainerrors.ErrUsernameAlreadyExists.WrapMessage("could not allocate a unique username")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user creation transaction", slog.Any("actorID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User created by administrator", slog.Any("actorID", actor.ID), slog.Any("userID", created.ID), slog.Any("role", created.Role))

	return created, nil
}

// Edit updates another user's record, gated on the role order.
func (srv *userService) Edit(ctx context.Context, actor *entity.User, targetID string, input *usecase.EditUserInput) (*entity.User, error) {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid user id")
	}

	var updated *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		target, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for edit")
		}

		if !entity.CanActOn(actor, target) {
			return domainerrors.ErrForbidden
		}

		if input.Name != nil {
			target.Name = *input.Name
		}
		if input.Email != nil {
			target.Email = *input.Email
		}
		if input.Bio != nil {
			target.Bio = *input.Bio
		}
		if input.Birthdate != nil {
			target.Birthdate = input.Birthdate
		}
		if input.Photo != nil {
			target.Photo = *input.Photo
		}
		if input.Locations != nil {
			target.Locations = input.Locations
		}
		if input.Role != nil {
			role := *input.Role
			if !role.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown role")
			}
			if actor == nil || actor.Role.Rank() < role.Rank() {
				return domainerrors.ErrForbidden.WrapMessage("cannot grant a role above your own")
			}
			target.Role = role
		}

		if err := userRepo.Update(ctx, target); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyExists
			}

			return errors.Wrap(err, "failed to update user")
		}

		updated = target

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user edit transaction", slog.Any("targetID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User edited", slog.Any("targetID", id))

	return updated, nil
}

// Delete soft-deletes a user. Super administrators can never be deleted.
func (srv *userService) Delete(ctx context.Context, actor *entity.User, targetID string) error {
	id, err := uuid.Parse(targetID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid user id")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		target, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for deletion")
		}

		if !target.Role.Deletable() {
			return domainerrors.ErrUserUndeletable
		}
		if !entity.CanActOn(actor, target) {
			return domainerrors.ErrForbidden
		}

		if err := userRepo.SoftDelete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user deletion transaction", slog.Any("targetID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("targetID", id))

	return nil
}
