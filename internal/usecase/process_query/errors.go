package process_query

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/engine"
)

// AllergyConflictError пробрасывается из движка как есть: несёт название
// блюда и конкретный аллерген
type AllergyConflictError = engine.AllergyConflictError

var (
	// ErrUnknownOperation возвращается при нераспознанном теге операции
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrCorruptState возвращается, когда снапшот сессии не проходит
	// структурную валидацию. Декодирование падает целиком - частичный
	// дефолт рассинхронизировал бы столы и очередь с тем, что клиент
	// считает забронированным
	ErrCorruptState = errors.New("session state is corrupt")

	// ErrUnknownItem возвращается при заказе несуществующего пункта меню
	ErrUnknownItem = engine.ErrUnknownItem

	// ErrPartyTooLarge возвращается, когда ни один стол не вмещает компанию
	ErrPartyTooLarge = engine.ErrPartyTooLarge

	// ErrNoTableAvailable возвращается, когда нет свободного стола
	ErrNoTableAvailable = engine.ErrNoTableAvailable

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
