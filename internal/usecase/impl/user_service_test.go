package impl

import (
	"context"
	"testing"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(userRepo *fakeUserRepo) usecase.UserUsecase {
	return &userService{
		txManager: &fakeTxManager{factory: &fakeFactory{userRepo: userRepo}},
		userRepo:  userRepo,
		hasher:    &fakeHasher{},
		logger:    newDiscardLogger(),
	}
}

func adminActor() *entity.User {
	return &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
}

func TestUserService_Create_RequiresAdmin(t *testing.T) {
	service := newUserService(&fakeUserRepo{})

	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	_, err := service.Create(context.Background(), actor, &usecase.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "Sup3r$ecret",
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Create_CannotGrantHigherRole(t *testing.T) {
	service := newUserService(&fakeUserRepo{})

	_, err := service.Create(context.Background(), adminActor(), &usecase.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "Sup3r$ecret",
		Role:     entity.RoleSuperAdmin,
	})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Create_Success(t *testing.T) {
	var stored *entity.User
	userRepo := &fakeUserRepo{
		create: func(ctx context.Context, user *entity.User) error {
			user.ID = uuid.New()
			stored = user

			return nil
		},
	}
	service := newUserService(userRepo)

	created, err := service.Create(context.Background(), adminActor(), &usecase.CreateUserInput{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "Sup3r$ecret",
		Role:     entity.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, stored.Role)
	assert.Equal(t, stored, created)
}

func TestUserService_Edit_ForbiddenForHigherRankTarget(t *testing.T) {
	targetID := uuid.New()
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleSuperAdmin}, nil
		},
	}
	service := newUserService(userRepo)

	name := "New Name"
	_, err := service.Edit(context.Background(), adminActor(), targetID.String(), &usecase.EditUserInput{Name: &name})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Edit_SelfAllowed(t *testing.T) {
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleUser, Name: "Old"}, nil
		},
		update: func(ctx context.Context, user *entity.User) error {
			return nil
		},
	}
	service := newUserService(userRepo)

	name := "New"
	updated, err := service.Edit(context.Background(), actor, actor.ID.String(), &usecase.EditUserInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
}

func TestUserService_Edit_InvalidID(t *testing.T) {
	service := newUserService(&fakeUserRepo{})

	_, err := service.Edit(context.Background(), adminActor(), "not-a-uuid", &usecase.EditUserInput{})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Delete_SuperAdminNeverDeletable(t *testing.T) {
	targetID := uuid.New()
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleSuperAdmin}, nil
		},
	}
	service := newUserService(userRepo)

	// Even a super administrator cannot delete one.
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}
	err := service.Delete(context.Background(), actor, targetID.String())

	require.ErrorIs(t, err, domainerrors.ErrUserUndeletable)
}

func TestUserService_Delete_ForbiddenForLowerRankActor(t *testing.T) {
	targetID := uuid.New()
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleAdmin}, nil
		},
	}
	service := newUserService(userRepo)

	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	err := service.Delete(context.Background(), actor, targetID.String())

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_Delete_Success(t *testing.T) {
	targetID := uuid.New()
	deleted := false
	userRepo := &fakeUserRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleUser}, nil
		},
		softDelete: func(ctx context.Context, id uuid.UUID) error {
			deleted = true

			return nil
		},
	}
	service := newUserService(userRepo)

	err := service.Delete(context.Background(), adminActor(), targetID.String())

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestUserService_GetByUsername_NotFound(t *testing.T) {
	userRepo := &fakeUserRepo{
		findByUsername: func(ctx context.Context, username string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}
	service := newUserService(userRepo)

	_, err := service.GetByUsername(context.Background(), "ghost123")

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	users := []*entity.User{{ID: uuid.New(), Username: "alice123"}}
	userRepo := &fakeUserRepo{
		list: func(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
			assert.Equal(t, "ali", filter.Query)

			return users, 1, nil
		},
	}
	service := newUserService(userRepo)

	output, err := service.List(context.Background(), &usecase.ListUsersInput{Query: "ali"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Count)
	assert.Equal(t, users, output.Users)
}
