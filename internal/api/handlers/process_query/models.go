package process_query

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	processQuery "github.com/m04kA/SMC-ReservationService/internal/usecase/process_query"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// QueryRequest HTTP request model: один тегированный запрос на все четыре
// операции. Числовые поля принимают и числа, и числовые строки - внешний
// вызывающий (LLM-диспетчер) нестрого типизирован
type QueryRequest struct {
	Operation   string            `json:"operation"`
	Items       [][]types.FlexInt `json:"items,omitempty"`
	Allergies   []string          `json:"allergies,omitempty"`
	PartySize   *types.FlexInt    `json:"party_size,omitempty"`
	Time        string            `json:"time,omitempty"` // "02 Jan 2006, 15:04"
	Preferences []string          `json:"preferences,omitempty"`
	Context     string            `json:"context,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case, нормализуя
// все числа в int и разбирая время в формате wire-контракта
func (r *QueryRequest) ToUseCaseRequest(sessionID uuid.UUID) (*processQuery.Request, error) {
	req := &processQuery.Request{
		SessionID:   sessionID,
		Operation:   r.Operation,
		Allergies:   r.Allergies,
		Preferences: r.Preferences,
		Context:     r.Context,
	}

	for _, pair := range r.Items {
		if len(pair) != 2 {
			return nil, fmt.Errorf("items entries must be [item_id, count] pairs")
		}
		req.Items = append(req.Items, processQuery.OrderLine{
			ItemID: pair[0].Int(),
			Count:  pair[1].Int(),
		})
	}

	if r.PartySize != nil {
		req.PartySize = r.PartySize.Int()
	}

	if r.Time != "" {
		t, err := time.ParseInLocation(domain.TimeFormat, r.Time, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse time: %w", err)
		}
		req.Time = t
	}

	return req, nil
}

// QueryResponse HTTP response model: заполнено ровно одно поле результата
type QueryResponse struct {
	Operation      string                  `json:"operation"`
	Order          *OrderResponse          `json:"order,omitempty"`
	AvailableTimes []string                `json:"available_times,omitempty"`
	Booking        *BookingResponse        `json:"booking,omitempty"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
}

// OrderResponse суммарные стоимость и минуты ожидания всей очереди
type OrderResponse struct {
	Cost        float64 `json:"cost"`
	WaitMinutes int     `json:"time"`
}

// BookingResponse индекс забронированного стола
type BookingResponse struct {
	TableIndex int `json:"table_index"`
}

// RecommendationResponse меню и эхо контекста для внешнего рекомендателя
type RecommendationResponse struct {
	MenuItems   map[int]MenuItemView `json:"menu_items"`
	Preferences []string             `json:"preferences"`
	Context     string               `json:"context"`
	Allergies   []string             `json:"allergies"`
}

// MenuItemView представление пункта меню на wire
type MenuItemView struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PrepMinutes int      `json:"time"`
	Allergens   []string `json:"allergens"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response,
// форматируя времена обратно в wire-формат
func FromUseCaseResponse(resp *processQuery.Response) *QueryResponse {
	out := &QueryResponse{Operation: resp.Operation}

	if resp.Order != nil {
		out.Order = &OrderResponse{
			Cost:        resp.Order.Cost,
			WaitMinutes: resp.Order.WaitMinutes,
		}
	}

	if resp.Operation == processQuery.OpGetAvailableTimes {
		out.AvailableTimes = make([]string, 0, len(resp.AvailableTimes))
		for _, t := range resp.AvailableTimes {
			out.AvailableTimes = append(out.AvailableTimes, t.Format(domain.TimeFormat))
		}
	}

	if resp.Booking != nil {
		out.Booking = &BookingResponse{TableIndex: resp.Booking.TableIndex}
	}

	if resp.Recommendation != nil {
		items := make(map[int]MenuItemView, len(resp.Recommendation.Menu))
		for id, item := range resp.Recommendation.Menu {
			items[id] = MenuItemView{
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				PrepMinutes: item.PrepMinutes,
				Allergens:   item.Allergens,
			}
		}
		out.Recommendation = &RecommendationResponse{
			MenuItems:   items,
			Preferences: resp.Recommendation.Preferences,
			Context:     resp.Recommendation.Context,
			Allergies:   resp.Recommendation.Allergies,
		}
	}

	return out
}
