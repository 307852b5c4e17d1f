package process_query

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/engine"
	sessionRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/session"
)

// UseCase единая точка входа движка: принимает тегированный запрос,
// прогоняет ровно один цикл снапшота (загрузка → advance → операция →
// сохранение) и возвращает структурированный результат
type UseCase struct {
	sessionRepo  SessionRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет один цикл запроса к движку.
//
// Отказ операции (аллергия, занятые столы, неизвестный пункт меню) - это
// результат, а не сбой: продвижение очереди и отчистка прошедших слотов,
// выполненные при загрузке, сохраняются, а сама операция не оставляет
// частичных изменений. Поэтому ошибка операции не откатывает транзакцию -
// она фиксируется и возвращается вызывающему отдельно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProcessQuery: session=%s, operation=%s", req.SessionID, req.Operation)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProcessQuery: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		resp  *Response
		opErr error
	)
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: load session: %v", ErrInternal, err)
		}

		eng, err := engine.Decode(session.State, now)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptState, err)
		}

		resp, opErr = uc.dispatch(eng, req, now)

		state, err := engine.Encode(eng)
		if err != nil {
			return fmt.Errorf("%w: encode snapshot: %v", ErrInternal, err)
		}
		if err := uc.sessionRepo.UpdateState(ctx, req.SessionID, state); err != nil {
			return fmt.Errorf("%w: save snapshot: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			uc.logger.Warn("ProcessQuery: session %s not found", req.SessionID)
		} else {
			uc.logger.Error("ProcessQuery: session=%s, operation=%s failed: %v", req.SessionID, req.Operation, err)
		}
		return nil, err
	}
	if opErr != nil {
		uc.logger.Warn("ProcessQuery: session=%s, operation=%s rejected: %v", req.SessionID, req.Operation, opErr)
		return nil, opErr
	}

	uc.logger.Info("ProcessQuery: session=%s, operation=%s completed", req.SessionID, req.Operation)
	return resp, nil
}
