package celebrities

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetAll(ctx context.Context) ([]Celebrity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Celebrity), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Celebrity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Celebrity), args.Error(1)
}

func (m *mockRepository) Search(ctx context.Context, query string) ([]Celebrity, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Celebrity), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, celebrity *Celebrity) error {
	args := m.Called(ctx, celebrity)
	if args.Error(0) == nil && celebrity.ID == uuid.Nil {
		celebrity.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockRepository) Update(ctx context.Context, celebrity *Celebrity) error {
	args := m.Called(ctx, celebrity)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo Repository) Service {
	// Nil cache sends every read to the store, which is what these tests
	// want to observe.
	return NewService(repo, nil, time.Minute)
}

func TestGetCelebrityNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, ErrCelebrityNotFound)

	celeb, err := svc.GetCelebrity(context.Background(), id)

	assert.Nil(t, celeb)
	assert.ErrorIs(t, err, ErrCelebrityNotFound)
}

func TestSearchCelebritiesPassesQueryThrough(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	expected := []Celebrity{{Name: "Dustin Lynch", Category: "Musician"}}
	repo.On("Search", mock.Anything, "lynch").Return(expected, nil)

	results, err := svc.SearchCelebrities(context.Background(), "lynch")

	assert.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestCreateCelebrityDefaultsAvailability(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	celeb, err := svc.CreateCelebrity(context.Background(), CreateCelebrityRequest{
		Name:        "Zac Efron",
		Image:       "/images/zac-efron.jpg",
		Description: "Actor and producer.",
		Category:    "Actor",
		FeeRange:    "$100,000 - $500,000",
	})

	assert.NoError(t, err)
	assert.True(t, celeb.Availability)
}

func TestCreateCelebrityExplicitUnavailable(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	unavailable := false
	celeb, err := svc.CreateCelebrity(context.Background(), CreateCelebrityRequest{
		Name:         "Zac Efron",
		Image:        "/images/zac-efron.jpg",
		Description:  "Actor and producer.",
		Category:     "Actor",
		FeeRange:     "$100,000 - $500,000",
		Availability: &unavailable,
	})

	assert.NoError(t, err)
	assert.False(t, celeb.Availability)
}

func TestUpdateCelebrityAppliesOnlyProvidedFields(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&Celebrity{
		ID:           id,
		Name:         "Dustin Lynch",
		Category:     "Musician",
		FeeRange:     "$50,000 - $100,000",
		Availability: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newFee := "$100,000 - $500,000"
	celeb, err := svc.UpdateCelebrity(context.Background(), id, UpdateCelebrityRequest{
		FeeRange: &newFee,
	})

	assert.NoError(t, err)
	assert.Equal(t, "$100,000 - $500,000", celeb.FeeRange)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Dustin Lynch", celeb.Name)
	assert.Equal(t, "Musician", celeb.Category)
	assert.True(t, celeb.Availability)
}

func TestDeleteCelebrityNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(ErrCelebrityNotFound)

	err := svc.DeleteCelebrity(context.Background(), id)
	assert.ErrorIs(t, err, ErrCelebrityNotFound)
}
