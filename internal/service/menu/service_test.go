package menu

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/engine"
	sessionRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/session"
)

type fakeRepo struct {
	sessions map[uuid.UUID]*domain.Session
	getErr   error
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	session, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return session, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seedSession(t *testing.T) (*fakeRepo, uuid.UUID) {
	t.Helper()

	venue := domain.VenueConfig{
		Bands: domain.NewTableBands(map[int]int{2: 2}),
		Hours: domain.OpeningHours{{Open: 0, Close: domain.SlotsPerWeek}},
		Menu: domain.Menu{
			1: {ID: 1, Name: "Fries", Price: 4.0, PrepMinutes: 5, Allergens: []string{"gluten"}},
			2: {ID: 2, Name: "Lemonade", Price: 3.5, PrepMinutes: 1, Allergens: []string{}},
		},
	}
	state, err := engine.Encode(engine.New(venue, time.Now()))
	require.NoError(t, err)

	id := uuid.New()
	repo := &fakeRepo{sessions: map[uuid.UUID]*domain.Session{
		id: {ID: id, State: state},
	}}
	return repo, id
}

func TestService_GetMenu(t *testing.T) {
	repo, id := seedSession(t)
	svc := NewService(repo, nopLogger{})

	menu, err := svc.GetMenu(context.Background(), id)
	require.NoError(t, err)

	assert.Len(t, menu, 2)
	item, ok := menu.Item(1)
	require.True(t, ok)
	assert.Equal(t, "Fries", item.Name)
	assert.Equal(t, []string{"gluten"}, item.Allergens)
}

func TestService_GetMenu_NotFound(t *testing.T) {
	repo, _ := seedSession(t)
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetMenu(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_GetMenu_CorruptState(t *testing.T) {
	repo, id := seedSession(t)
	repo.sessions[id].State = []byte(`not json`)
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetMenu(context.Background(), id)
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestService_GetMenu_RepositoryError(t *testing.T) {
	repo, id := seedSession(t)
	repo.getErr = errors.New("connection refused")
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetMenu(context.Background(), id)
	assert.ErrorIs(t, err, ErrInternal)
}
