package impl

import (
	"context"
	"log/slog"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/usecase"
	"evently/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reminderCodePrefix marks generated reminder codes.
const reminderCodePrefix = "REM"

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	txManager    repository.TransactionManager
	reminderRepo repository.ReminderRepository
	eventRepo    repository.EventRepository
	logger       *slog.Logger
}

// ReminderServiceParams holds dependencies for reminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReminderRepo repository.ReminderRepository
	EventRepo    repository.EventRepository
	Logger       *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		txManager:    params.TxManager,
		reminderRepo: params.ReminderRepo,
		eventRepo:    params.EventRepo,
		logger:       params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the actor's reminders. Administrators see all reminders.
func (srv *reminderService) List(ctx context.Context, actor *entity.User, input *usecase.ListRemindersInput) (*usecase.ReminderListOutput, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	filter := repository.ReminderFilter{
		Offset: input.Offset,
		Limit:  input.Limit,
	}
	if actor.Role.Rank() < entity.RoleAdmin.Rank() {
		id := actor.ID
		filter.UserID = &id
	}

	reminders, count, err := srv.reminderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	return &usecase.ReminderListOutput{Reminders: reminders, Count: count}, nil
}

// Create stores a reminder owned by the actor for an existing event.
func (srv *reminderService) Create(ctx context.Context, actor *entity.User, input *usecase.CreateReminderInput) (*entity.Reminder, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	message := input.Message
	if message == "" {
		message = entity.DefaultReminderMessage
	}

	var created *entity.Reminder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		event, err := repoFactory.EventRepo().FindByCode(ctx, input.EventCode)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrap(err, "failed to load event for reminder")
		}

		reminder := &entity.Reminder{
			Code:         util.GenerateCode(reminderCodePrefix),
			EventID:      event.ID,
			UserID:       actor.ID,
			ReminderDate: input.ReminderDate,
			Message:      message,
		}

		if err := repoFactory.ReminderRepo().Create(ctx, reminder); err != nil {
			return errors.Wrap(err, "failed to create reminder")
		}

		created = reminder

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reminder creation transaction", slog.Any("userID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Reminder created", slog.String("code", created.Code), slog.Any("userID", actor.ID))

	return created, nil
}

// Update applies changes to a reminder owned by the actor.
func (srv *reminderService) Update(ctx context.Context, actor *entity.User, code string, input *usecase.UpdateReminderInput) (*entity.Reminder, error) {
	var updated *entity.Reminder
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reminderRepo := repoFactory.ReminderRepo()

		reminder, err := reminderRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrReminderNotFound) {
				return domainerrors.ErrReminderNotFound
			}

			return errors.Wrap(err, "failed to load reminder for update")
		}

		if !reminder.MutableBy(actor) {
			return domainerrors.ErrForbidden
		}

		if input.ReminderDate != nil {
			reminder.ReminderDate = *input.ReminderDate
		}
		if input.Message != nil {
			reminder.Message = *input.Message
		}
		if input.Sent != nil {
			reminder.Sent = *input.Sent
		}

		if err := reminderRepo.Update(ctx, reminder); err != nil {
			return errors.Wrap(err, "failed to update reminder")
		}

		updated = reminder

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reminder update transaction", slog.String("code", code), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Delete soft-deletes a reminder owned by the actor.
func (srv *reminderService) Delete(ctx context.Context, actor *entity.User, code string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reminderRepo := repoFactory.ReminderRepo()

		reminder, err := reminderRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrReminderNotFound) {
				return domainerrors.ErrReminderNotFound
			}

			return errors.Wrap(err, "failed to load reminder for deletion")
		}

		if !reminder.MutableBy(actor) {
			return domainerrors.ErrForbidden
		}

		if err := reminderRepo.SoftDeleteByCode(ctx, code); err != nil {
			return errors.Wrap(err, "failed to delete reminder")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reminder deletion transaction", slog.String("code", code), slog.Any("error", err))

		return err
	}

	return nil
}
