package get_menu

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	menuService "github.com/m04kA/SMC-ReservationService/internal/service/menu"
)

const (
	msgInvalidSessionID = "некорректный идентификатор сессии"
	msgSessionNotFound  = "сессия не найдена"
	msgCorruptState     = "состояние сессии повреждено"
)

type Handler struct {
	menu   MenuService
	logger Logger
}

func NewHandler(menu MenuService, logger Logger) *Handler {
	return &Handler{
		menu:   menu,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/menu - Invalid session id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	menu, err := h.menu.GetMenu(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, menuService.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/%s/menu - Session not found", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, menuService.ErrCorruptState):
			h.logger.Error("GET /sessions/%s/menu - Corrupt session state: %v", sessionID, err)
			handlers.RespondUnprocessable(w, msgCorruptState)
		default:
			h.logger.Error("GET /sessions/%s/menu - Failed to get menu: %v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/%s/menu - %d items returned", sessionID, len(menu))
	handlers.RespondJSON(w, http.StatusOK, FromDomainMenu(menu))
}
