package impl

import (
	"context"
	"io"
	"log/slog"

	"evently/internal/domain/entity"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo implements repository.UserRepository with overridable funcs.
type fakeUserRepo struct {
	findByID       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmail    func(ctx context.Context, email string) (*entity.User, error)
	findByUsername func(ctx context.Context, username string) (*entity.User, error)
	list           func(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error)
	create         func(ctx context.Context, user *entity.User) error
	update         func(ctx context.Context, user *entity.User) error
	softDelete     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.findByID(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.findByEmail(ctx, email)
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.findByUsername(ctx, username)
}

func (f *fakeUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	return f.list(ctx, filter)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	return f.create(ctx, user)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return f.update(ctx, user)
}

func (f *fakeUserRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return f.softDelete(ctx, id)
}

// fakeEventRepo implements repository.EventRepository with overridable funcs.
type fakeEventRepo struct {
	findByCode   func(ctx context.Context, code string) (*entity.Event, error)
	list         func(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int64, error)
	create       func(ctx context.Context, event *entity.Event) error
	update       func(ctx context.Context, event *entity.Event) error
	deleteByCode func(ctx context.Context, code string) error
}

func (f *fakeEventRepo) FindByCode(ctx context.Context, code string) (*entity.Event, error) {
	return f.findByCode(ctx, code)
}

func (f *fakeEventRepo) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int64, error) {
	return f.list(ctx, filter)
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	return f.create(ctx, event)
}

func (f *fakeEventRepo) Update(ctx context.Context, event *entity.Event) error {
	return f.update(ctx, event)
}

func (f *fakeEventRepo) DeleteByCode(ctx context.Context, code string) error {
	return f.deleteByCode(ctx, code)
}

// fakeReminderRepo implements repository.ReminderRepository with overridable funcs.
type fakeReminderRepo struct {
	findByCode       func(ctx context.Context, code string) (*entity.Reminder, error)
	list             func(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, int64, error)
	create           func(ctx context.Context, reminder *entity.Reminder) error
	update           func(ctx context.Context, reminder *entity.Reminder) error
	softDeleteByCode func(ctx context.Context, code string) error
}

func (f *fakeReminderRepo) FindByCode(ctx context.Context, code string) (*entity.Reminder, error) {
	return f.findByCode(ctx, code)
}

func (f *fakeReminderRepo) List(ctx context.Context, filter repository.ReminderFilter) ([]*entity.Reminder, int64, error) {
	return f.list(ctx, filter)
}

func (f *fakeReminderRepo) Create(ctx context.Context, reminder *entity.Reminder) error {
	return f.create(ctx, reminder)
}

func (f *fakeReminderRepo) Update(ctx context.Context, reminder *entity.Reminder) error {
	return f.update(ctx, reminder)
}

func (f *fakeReminderRepo) SoftDeleteByCode(ctx context.Context, code string) error {
	return f.softDeleteByCode(ctx, code)
}

// fakeFactory hands out the fakes inside a transaction callback.
type fakeFactory struct {
	userRepo     repository.UserRepository
	eventRepo    repository.EventRepository
	reminderRepo repository.ReminderRepository
}

func (f *fakeFactory) UserRepo() repository.UserRepository         { return f.userRepo }
func (f *fakeFactory) EventRepo() repository.EventRepository       { return f.eventRepo }
func (f *fakeFactory) ReminderRepo() repository.ReminderRepository { return f.reminderRepo }

// fakeTxManager runs the callback directly against the fake factory.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f.factory)
}

// fakeHasher implements service.PasswordHasher for tests. The zero value
// accepts every password and "hashes" by prefixing.
type fakeHasher struct {
	hashErr     error
	strengthErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (f *fakeHasher) ValidatePasswordStrength(password string) error {
	return f.strengthErr
}

// fakeTokenService implements service.TokenService for tests.
type fakeTokenService struct {
	generateErr error
}

func (f *fakeTokenService) Generate(userID uuid.UUID) (string, error) {
	if f.generateErr != nil {
		return "", f.generateErr
	}

	return "token-for-" + userID.String(), nil
}

func (f *fakeTokenService) Validate(token string) (*service.Claims, error) {
	return nil, errMismatch
}

var errMismatch = &mismatchError{}

type mismatchError struct{}

func (*mismatchError) Error() string { return "mismatch" }
