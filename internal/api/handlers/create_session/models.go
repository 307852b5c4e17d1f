package create_session

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string `json:"session_id"`
	CreatedAt string `json:"created_at"`
}

// FromDomainSession конвертирует доменную сессию в HTTP response
func FromDomainSession(session *domain.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: session.ID.String(),
		CreatedAt: session.CreatedAt.Format(time.RFC3339),
	}
}
