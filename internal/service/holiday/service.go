package holiday

import (
	"context"
	"time"

	"github.com/workline-hq/attendance-backend-go/internal/domain/holiday"
)

// HolidayService maintains the organization holiday calendar
// (administrator only; the router enforces that).
type HolidayService interface {
	Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]holiday.HolidayResponse, error)
}

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// Create implements HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created), nil
}

// Delete implements HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

// List implements HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}

	return responses, nil
}
