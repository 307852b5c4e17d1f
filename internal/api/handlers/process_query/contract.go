package process_query

import (
	"context"

	processQuery "github.com/m04kA/SMC-ReservationService/internal/usecase/process_query"
)

type ProcessQueryUseCase interface {
	Execute(ctx context.Context, req *processQuery.Request) (*processQuery.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
