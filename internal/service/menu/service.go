package menu

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

// Service сервис чтения меню сессии. Меню иммутабельно, поэтому
// декодированный снапшот не сохраняется обратно
type Service struct {
	repo         SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// realTimeProvider реальный провайдер времени для production
type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// NewService создает новый экземпляр сервиса меню
func NewService(repo SessionRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetMenu возвращает read-only представление меню сессии
func (s *Service) GetMenu(ctx context.Context, sessionID uuid.UUID) (domain.Menu, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetMenu: session %s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetMenu: repository error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: GetMenu - repository error: %v", ErrInternal, err)
	}

	eng, err := engine.Decode(session.State, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetMenu: failed to decode snapshot for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	return eng.Menu(), nil
}
