package postgres

import (
	"context"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindByCode retrieves a single event by its generated code.
func (repo *eventRepository) FindByCode(ctx context.Context, code string) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Where("code = ?", code).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by code")
	}

	return toEventDomain(&eventM), nil
}

// List retrieves events matching the filter, newest first, with the total count.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EventModel{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count events")
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []*model.EventModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(models))
	for _, eventM := range models {
		events = append(events, toEventDomain(eventM))
	}

	return events, total, nil
}

// Create persists a new event entity.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)
	if eventM.ID == uuid.Nil {
		eventM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEventCode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "event references a missing host")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// Update modifies an existing event entity in the database.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Save(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEventCode
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update event")
	}

	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// DeleteByCode removes an event record entirely.
func (repo *eventRepository) DeleteByCode(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).Where("code = ?", code).Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:           data.ID,
		Code:         data.Code,
		Title:        data.Title,
		Description:  data.Description,
		Date:         data.Date,
		Location:     data.Location,
		HostID:       data.HostID,
		Visibility:   entity.EventVisibility(data.Visibility),
		Status:       entity.EventStatus(data.Status),
		AllowedUsers: data.AllowedUsers,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel for persistence.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:           data.ID,
		Code:         data.Code,
		Title:        data.Title,
		Description:  data.Description,
		Date:         data.Date,
		Location:     data.Location,
		HostID:       data.HostID,
		Visibility:   string(data.Visibility),
		Status:       string(data.Status),
		AllowedUsers: data.AllowedUsers,
		CreatedAt:    data.CreatedAt,
	}
}
