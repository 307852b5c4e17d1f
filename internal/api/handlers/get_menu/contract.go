package get_menu

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type MenuService interface {
	GetMenu(ctx context.Context, sessionID uuid.UUID) (domain.Menu, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
