package process_query

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	processQuery "github.com/m04kA/SMC-ReservationService/internal/usecase/process_query"
)

const (
	msgInvalidSessionID   = "некорректный идентификатор сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается \"02 Jan 2006, 15:04\""
	msgSessionNotFound    = "сессия не найдена"
	msgCorruptState       = "состояние сессии повреждено"
	msgPartyTooLarge      = "нет стола, вмещающего компанию такого размера"
	msgNoTableAvailable   = "нет свободного стола на запрошенное время"
)

type Handler struct {
	useCase ProcessQueryUseCase
	logger  Logger
}

func NewHandler(useCase ProcessQueryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/query
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/query - Invalid session id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req QueryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/%s/query - Invalid request body: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с нормализацией чисел
	// и разбором времени)
	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/%s/query - Failed to parse request: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var allergyErr *processQuery.AllergyConflictError
		switch {
		case errors.As(err, &allergyErr):
			h.logger.Warn("POST /sessions/%s/query - Allergy conflict: item=%s, allergen=%s",
				sessionID, allergyErr.ItemName, allergyErr.Allergen)
			handlers.RespondConflict(w, allergyErr.Error())

		case errors.Is(err, processQuery.ErrUnknownItem):
			h.logger.Warn("POST /sessions/%s/query - Unknown menu item: %v", sessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, processQuery.ErrUnknownOperation),
			errors.Is(err, processQuery.ErrInvalidInput):
			h.logger.Warn("POST /sessions/%s/query - Invalid request: %v", sessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, processQuery.ErrPartyTooLarge):
			h.logger.Warn("POST /sessions/%s/query - Party too large", sessionID)
			handlers.RespondConflict(w, msgPartyTooLarge)

		case errors.Is(err, processQuery.ErrNoTableAvailable):
			h.logger.Warn("POST /sessions/%s/query - No table available", sessionID)
			handlers.RespondConflict(w, msgNoTableAvailable)

		case errors.Is(err, processQuery.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/%s/query - Session not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, processQuery.ErrCorruptState):
			h.logger.Error("POST /sessions/%s/query - Corrupt session state: %v", sessionID, err)
			handlers.RespondUnprocessable(w, msgCorruptState)

		default:
			h.logger.Error("POST /sessions/%s/query - Failed to process query: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/%s/query - Operation %s processed", sessionID, result.Operation)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
