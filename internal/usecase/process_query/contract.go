package process_query

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	UpdateState(ctx context.Context, id uuid.UUID, state []byte) error
}

// TxManager интерфейс менеджера транзакций: весь цикл запроса
// (загрузка снапшота, операция движка, сохранение) выполняется с
// сериализуемой изоляцией, иначе конкурентные бронирования против одного
// снапшота могут задвоить стол (lost update)
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
