package process_query

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/engine"
)

// dispatch выполняет операцию над декодированным движком. Запрос уже
// прошел валидацию, поэтому default недостижим.
func (uc *UseCase) dispatch(eng *engine.Engine, req *Request, now time.Time) (*Response, error) {
	switch req.Operation {
	case OpOrder:
		return uc.order(eng, req)
	case OpGetAvailableTimes:
		return uc.availableTimes(eng, req, now)
	case OpBook:
		return uc.book(eng, req, now)
	case OpRecommend:
		return uc.recommend(eng, req)
	default:
		return nil, ErrUnknownOperation
	}
}

// order разворачивает позиции в поштучный список и отдает его очереди
func (uc *UseCase) order(eng *engine.Engine, req *Request) (*Response, error) {
	units := make([]int, 0, len(req.Items))
	for _, line := range req.Items {
		for i := 0; i < line.Count; i++ {
			units = append(units, line.ItemID)
		}
	}

	summary, err := eng.SubmitOrder(units, req.Allergies)
	if err != nil {
		return nil, err
	}

	return &Response{
		Operation: OpOrder,
		Order: &OrderResult{
			Cost:        summary.Cost,
			WaitMinutes: summary.WaitMinutes,
		},
	}, nil
}

func (uc *UseCase) availableTimes(eng *engine.Engine, req *Request, now time.Time) (*Response, error) {
	slots := eng.FindCandidateTimes(
		req.PartySize,
		domain.SlotAt(req.Time),
		domain.DefaultBookingSlots,
		domain.DefaultSearchWindow,
		now,
	)

	times := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		times = append(times, slot.Time())
	}

	return &Response{
		Operation:      OpGetAvailableTimes,
		AvailableTimes: times,
	}, nil
}

func (uc *UseCase) book(eng *engine.Engine, req *Request, now time.Time) (*Response, error) {
	table, err := eng.Book(req.PartySize, domain.SlotAt(req.Time), domain.DefaultBookingSlots, now)
	if err != nil {
		return nil, err
	}

	return &Response{
		Operation: OpBook,
		Booking:   &BookingResult{TableIndex: table},
	}, nil
}

func (uc *UseCase) recommend(eng *engine.Engine, req *Request) (*Response, error) {
	data := eng.RecommendationData(req.Preferences, req.Context, req.Allergies)

	return &Response{
		Operation: OpRecommend,
		Recommendation: &RecommendationResult{
			Menu:        data.Menu,
			Preferences: data.Preferences,
			Context:     data.Context,
			Allergies:   data.Allergies,
		},
	}, nil
}
