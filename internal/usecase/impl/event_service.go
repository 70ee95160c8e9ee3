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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventCodePrefix marks generated event codes.
const eventCodePrefix = "EVT"

// eventCodeRetryLimit bounds retries when a generated code collides.
const eventCodeRetryLimit = 3

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager repository.TransactionManager
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager: params.TxManager,
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// parseAllowedUsers converts the allow-list of account IDs from the wire
// format into UUIDs, rejecting the whole list on the first bad entry.
func parseAllowedUsers(ids []string) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid allowed user id " + raw)
		}
		parsed = append(parsed, id)
	}

	return parsed, nil
}

// List returns events matching the filter together with the total count.
func (srv *eventService) List(ctx context.Context, input *usecase.ListEventsInput) (*usecase.EventListOutput, error) {
	filter := repository.EventFilter{
		Query:     input.Query,
		Status:    entity.EventStatus(input.Status),
		Location:  input.Location,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Offset:    input.Offset,
		Limit:     input.Limit,
	}

	events, count, err := srv.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return &usecase.EventListOutput{Events: events, Count: count}, nil
}

// Get returns a single event by code.
func (srv *eventService) Get(ctx context.Context, code string) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// Create stores a new event hosted by the actor. The code is generated here
// and regenerated on the rare collision.
func (srv *eventService) Create(ctx context.Context, actor *entity.User, input *usecase.CreateEventInput) (*entity.Event, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	visibility := entity.EventVisibilityPublic
	if input.Visibility != "" {
		visibility = entity.EventVisibility(input.Visibility)
		if !visibility.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown visibility")
		}
	}

	allowed, err := parseAllowedUsers(input.AllowedUsers)
	if err != nil {
		return nil, err
	}

	var created *entity.Event
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.EventRepo()

		for attempt := 0; attempt < eventCodeRetryLimit; attempt++ {
			candidate := &entity.Event{
				Code:         util.GenerateCode(eventCodePrefix),
				Title:        input.Title,
				Description:  input.Description,
				Location:     input.Location,
				Date:         input.Date,
				Status:       entity.EventStatusScheduled,
				Visibility:   visibility,
				HostID:       actor.ID,
				AllowedUsers: allowed,
			}

			createErr := eventRepo.Create(ctx, candidate)
			if createErr == nil {
				created = candidate

				return nil
			}
			if errors.Is(createErr, repository.ErrDuplicateEventCode) {
				continue
			}

			return errors.Wrap(createErr, "failed to create event")
		}

		return domainerrors.ErrEventCodeConflict
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute event creation transaction", slog.Any("hostID", actor.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event created", slog.String("code", created.Code), slog.Any("hostID", actor.ID))

	return created, nil
}

// Update applies changes to an event. Only the host or an administrator may
// modify it.
func (srv *eventService) Update(ctx context.Context, actor *entity.User, code string, input *usecase.UpdateEventInput) (*entity.Event, error) {
	var updated *entity.Event
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.EventRepo()

		event, err := eventRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrap(err, "failed to load event for update")
		}

		if !event.MutableBy(actor) {
			return domainerrors.ErrForbidden
		}

		if input.Title != nil {
			event.Title = *input.Title
		}
		if input.Description != nil {
			event.Description = *input.Description
		}
		if input.Location != nil {
			event.Location = *input.Location
		}
		if input.Date != nil {
			event.Date = *input.Date
		}
		if input.Status != nil {
			status := entity.EventStatus(*input.Status)
			if !status.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown status")
			}
			event.Status = status
		}
		if input.Visibility != nil {
			visibility := entity.EventVisibility(*input.Visibility)
			if !visibility.IsValid() {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown visibility")
			}
			event.Visibility = visibility
		}
		if input.AllowedUsers != nil {
			allowed, err := parseAllowedUsers(input.AllowedUsers)
			if err != nil {
				return err
			}
			event.AllowedUsers = allowed
		}

		if err := eventRepo.Update(ctx, event); err != nil {
			return errors.Wrap(err, "failed to update event")
		}

		updated = event

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute event update transaction", slog.String("code", code), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Event updated", slog.String("code", code))

	return updated, nil
}

// Delete removes an event. Only the host or an administrator may delete it.
func (srv *eventService) Delete(ctx context.Context, actor *entity.User, code string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.EventRepo()

		event, err := eventRepo.FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return domainerrors.ErrEventNotFound
			}

			return errors.Wrap(err, "failed to load event for deletion")
		}

		if !event.MutableBy(actor) {
			return domainerrors.ErrForbidden
		}

		if err := eventRepo.DeleteByCode(ctx, code); err != nil {
			return errors.Wrap(err, "failed to delete event")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute event deletion transaction", slog.String("code", code), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Event deleted", slog.String("code", code))

	return nil
}
