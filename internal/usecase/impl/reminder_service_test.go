package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReminderService(reminderRepo *fakeReminderRepo, eventRepo *fakeEventRepo) usecase.ReminderUsecase {
	return &reminderService{
		txManager:    &fakeTxManager{factory: &fakeFactory{reminderRepo: reminderRepo, eventRepo: eventRepo}},
		reminderRepo: reminderRepo,
		eventRepo:    eventRepo,
		logger:       newDiscardLogger(),
	}
}

func TestReminderService_Create_DefaultsMessage(t *testing.T) {
	actor := &entity.User{ID: uuid.New()}
	eventID := uuid.New()
	var stored *entity.Reminder
	eventRepo := &fakeEventRepo{
		findByCode: func(ctx context.Context, code string) (*entity.Event, error) {
			return &entity.Event{ID: eventID, Code: code}, nil
		},
	}
	reminderRepo := &fakeReminderRepo{
		create: func(ctx context.Context, reminder *entity.Reminder) error {
			reminder.ID = uuid.New()
			stored = reminder

			return nil
		},
	}
	service := newReminderService(reminderRepo, eventRepo)

	created, err := service.Create(context.Background(), actor, &usecase.CreateReminderInput{
		EventCode:    "EVT-1-AAAAA",
		ReminderDate: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultReminderMessage, stored.Message)
	assert.Equal(t, eventID, stored.EventID)
	assert.Equal(t, actor.ID, stored.UserID)
	assert.True(t, strings.HasPrefix(stored.Code, "REM-"), "code %q should carry the reminder prefix", stored.Code)
	assert.Equal(t, stored, created)
}

func TestReminderService_Create_UnknownEvent(t *testing.T) {
	eventRepo := &fakeEventRepo{
		findByCode: func(ctx context.Context, code string) (*entity.Event, error) {
			return nil, repository.ErrEventNotFound
		},
	}
	service := newReminderService(&fakeReminderRepo{}, eventRepo)

	_, err := service.Create(context.Background(), &entity.User{ID: uuid.New()}, &usecase.CreateReminderInput{
		EventCode:    "EVT-0-XXXXX",
		ReminderDate: time.Now(),
	})

	require.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestReminderService_List_ScopedToOwnerForRegularUsers(t *testing.T) {
	actor := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	reminderRepo := &fakeReminderRepo{
		list: func(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, int64, error) {
			require.NotNil(t, filter.UserID)
			assert.Equal(t, actor.ID, *filter.UserID)

			return nil, 0, nil
		},
	}
	service := newReminderService(reminderRepo, &fakeEventRepo{})

	_, err := service.List(context.Background(), actor, &usecase.ListRemindersInput{})

	require.NoError(t, err)
}

func TestReminderService_List_AdminSeesAll(t *testing.T) {
	reminderRepo := &fakeReminderRepo{
		list: func(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, int64, error) {
			assert.Nil(t, filter.UserID)

			return nil, 0, nil
		},
	}
	service := newReminderService(reminderRepo, &fakeEventRepo{})

	_, err := service.List(context.Background(), adminActor(), &usecase.ListRemindersInput{})

	require.NoError(t, err)
}

func TestReminderService_Update_ForbiddenForStranger(t *testing.T) {
	reminderRepo := &fakeReminderRepo{
		findByCode: func(ctx context.Context, code string) (*entity.Reminder, error) {
			return &entity.Reminder{Code: code, UserID: uuid.New()}, nil
		},
	}
	service := newReminderService(reminderRepo, &fakeEventRepo{})

	msg := "hijacked"
	_, err := service.Update(context.Background(), &entity.User{ID: uuid.New()}, "REM-1-AAAAA", &usecase.UpdateReminderInput{Message: &msg})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReminderService_Update_OwnerAllowed(t *testing.T) {
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	reminderRepo := &fakeReminderRepo{
		findByCode: func(ctx context.Context, code string) (*entity.Reminder, error) {
			return &entity.Reminder{Code: code, UserID: owner.ID, Message: "old"}, nil
		},
		update: func(ctx context.Context, reminder *entity.Reminder) error {
			return nil
		},
	}
	service := newReminderService(reminderRepo, &fakeEventRepo{})

	sent := true
	updated, err := service.Update(context.Background(), owner, "REM-1-AAAAA", &usecase.UpdateReminderInput{Sent: &sent})

	require.NoError(t, err)
	assert.True(t, updated.Sent)
}

func TestReminderService_Delete_Success(t *testing.T) {
	owner := &entity.User{ID: uuid.New(), Role: entity.RoleUser}
	deleted := false
	reminderRepo := &fakeReminderRepo{
		findByCode: func(ctx context.Context, code string) (*entity.Reminder, error) {
			return &entity.Reminder{Code: code, UserID: owner.ID}, nil
		},
		softDeleteByCode: func(ctx context.Context, code string) error {
			deleted = true

			return nil
		},
	}
	service := newReminderService(reminderRepo, &fakeEventRepo{})

	err := service.Delete(context.Background(), owner, "REM-1-AAAAA")

	require.NoError(t, err)
	assert.True(t, deleted)
}
