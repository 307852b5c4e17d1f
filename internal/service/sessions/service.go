package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/engine"
	sessionRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/session"
)

// Service сервис жизненного цикла сессий: каждая сессия владеет одним
// снапшотом движка, который создается из конфигурации заведения
type Service struct {
	repo         SessionRepository
	venue        domain.VenueConfig
	timeProvider TimeProvider
	logger       Logger
}

// realTimeProvider реальный провайдер времени для production
type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// NewService создает новый экземпляр сервиса сессий
func NewService(repo SessionRepository, venue domain.VenueConfig, logger Logger) *Service {
	return &Service{
		repo:         repo,
		venue:        venue,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Create создает сессию со свежим движком из конфигурации заведения
func (s *Service) Create(ctx context.Context) (*domain.Session, error) {
	eng := engine.New(s.venue, s.timeProvider.Now())
	state, err := engine.Encode(eng)
	if err != nil {
		s.logger.Error("Create: failed to encode fresh engine: %v", err)
		return nil, fmt.Errorf("%w: encode fresh engine: %v", ErrInternal, err)
	}

	session := &domain.Session{
		ID:    uuid.New(),
		State: state,
	}
	created, err := s.repo.Create(ctx, session)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: session %s created", created.ID)
	return created, nil
}

// Get получает сессию по ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Get: session %s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: repository error for session %s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return session, nil
}

// Delete удаляет сессию
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Delete: session %s not found", id)
			return ErrSessionNotFound
		}
		s.logger.Error("Delete: repository error for session %s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: session %s deleted", id)
	return nil
}
