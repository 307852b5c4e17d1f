package process_query

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Операции диспетчера. Любой другой тег - ошибка валидации запроса.
const (
	OpOrder             = "order"
	OpGetAvailableTimes = "get_available_times"
	OpBook              = "book"
	OpRecommend         = "recommend"
)

// OrderLine одна позиция заказа: пункт меню и количество единиц
type OrderLine struct {
	ItemID int
	Count  int
}

// Request единый запрос диспетчера. Поля заполняются в зависимости от
// операции; все числовые поля уже нормализованы в int на HTTP границе
type Request struct {
	SessionID uuid.UUID
	Operation string

	// order
	Items     []OrderLine
	Allergies []string

	// get_available_times, book
	PartySize int
	Time      time.Time

	// recommend
	Preferences []string
	Context     string
}

// Response единый ответ диспетчера: заполнено ровно одно из полей,
// соответствующее операции
type Response struct {
	Operation string

	Order          *OrderResult
	AvailableTimes []time.Time
	Booking        *BookingResult
	Recommendation *RecommendationResult
}

// OrderResult суммарные стоимость и время приготовления всей очереди
// после добавления заказа
type OrderResult struct {
	Cost        float64
	WaitMinutes int
}

// BookingResult индекс стола, на который легла бронь
type BookingResult struct {
	TableIndex int
}

// RecommendationResult полное меню плюс эхо предпочтений для внешнего
// рекомендателя - движок сам ничего не рекомендует
type RecommendationResult struct {
	Menu        domain.Menu
	Preferences []string
	Context     string
	Allergies   []string
}
