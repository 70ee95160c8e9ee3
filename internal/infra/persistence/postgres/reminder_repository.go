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

// reminderRepository implements the repository.ReminderRepository interface using GORM.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// FindByCode retrieves a single reminder by its generated code. Soft-deleted
// reminders are treated as absent.
func (repo *reminderRepository) FindByCode(ctx context.Context, code string) (*entity.Reminder, error) {
	var reminderM model.ReminderModel
	err := repo.db.WithContext(ctx).
		Where("code = ? AND deleted = false", code).
		First(&reminderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder by code")
	}

	return toReminderDomain(&reminderM), nil
}

// List retrieves reminders matching the filter, newest first, with the total count.
func (repo *reminderRepository) List(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("deleted = false")

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reminders")
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []*model.ReminderModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reminders")
	}

	reminders := make([]*entity.Reminder, 0, len(models))
	for _, reminderM := range models {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders, total, nil
}

// Create persists a new reminder entity.
func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	reminderM := fromReminderDomain(reminder)
	if reminderM.ID == uuid.Nil {
		reminderM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "reminder references a missing event or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reminder")
	}

	reminder.ID = reminderM.ID
	reminder.CreatedAt = reminderM.CreatedAt
	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

// Update modifies an existing reminder entity in the database.
func (repo *reminderRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Save(reminderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update reminder")
	}

	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

// SoftDeleteByCode marks the reminder as deleted; the record stays in storage.
func (repo *reminderRepository) SoftDeleteByCode(ctx context.Context, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("code = ? AND deleted = false", code).
		Update("deleted", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete reminder")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReminderDomain converts a GORM ReminderModel to a domain Reminder entity.
func toReminderDomain(data *model.ReminderModel) *entity.Reminder {
	if data == nil {
		return nil
	}

	return &entity.Reminder{
		ID:           data.ID,
		Code:         data.Code,
		EventID:      data.EventID,
		UserID:       data.UserID,
		ReminderDate: data.ReminderDate,
		Message:      data.Message,
		Sent:         data.Sent,
		Deleted:      data.Deleted,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromReminderDomain converts a domain Reminder entity to a GORM ReminderModel.
func fromReminderDomain(data *entity.Reminder) *model.ReminderModel {
	if data == nil {
		return nil
	}

	return &model.ReminderModel{
		ID:           data.ID,
		Code:         data.Code,
		EventID:      data.EventID,
		UserID:       data.UserID,
		ReminderDate: data.ReminderDate,
		Message:      data.Message,
		Sent:         data.Sent,
		Deleted:      data.Deleted,
		CreatedAt:    data.CreatedAt,
	}
}
