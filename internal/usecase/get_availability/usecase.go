package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowdesk/booking-service/internal/availability"
	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/infra/sessionstore"
	"github.com/glowdesk/booking-service/pkg/types"
)

const weekDays = 7

// UseCase строит недельную сетку доступности для сессии бронирования
type UseCase struct {
	sessions     SessionStore
	bookings     BookingRepository
	txManager    TransactionManager
	directory    Directory
	schedule     Schedule
	timeProvider TimeProvider
	log          Logger
}

func New(
	sessions SessionStore,
	bookings BookingRepository,
	txManager TransactionManager,
	directory Directory,
	schedule Schedule,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		bookings:     bookings,
		txManager:    txManager,
		directory:    directory,
		schedule:     schedule,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute возвращает сетку на семь дней начиная с req.WeekOf.
// Длительность проверяемого слота равна суммарной длительности выбранных услуг.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	sess, err := uc.sessions.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, req.SessionID)
		}
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}
	if sess.CustomerName != req.CustomerName {
		return nil, ErrAccessDenied
	}

	duration := sess.Selection.TotalDurationMinutes()
	if duration <= 0 {
		return nil, ErrEmptySelection
	}

	professionals, err := uc.directory.ListProfessionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list professionals: %v", ErrInternal, err)
	}

	rows, err := availability.GenerateTimeRows(uc.schedule.OpenTime, uc.schedule.CloseTime, uc.schedule.SlotStepMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: build time rows: %v", ErrInternal, err)
	}

	weekStart := truncateToDay(req.WeekOf)
	weekEnd := weekStart.AddDate(0, 0, weekDays-1)

	var snapshot []*domain.Booking
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var txErr error
		snapshot, txErr = uc.bookings.GetForRange(ctx, domain.DayBookingsFilter{
			StartDate: weekStart,
			EndDate:   weekEnd,
		})
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	cols := make([]Professional, 0, len(professionals))
	for _, p := range professionals {
		cols = append(cols, Professional{ID: p.ID, DisplayName: p.DisplayName})
	}

	days, err := uc.buildDays(snapshot, cols, rows, weekStart, duration, now)
	if err != nil {
		return nil, fmt.Errorf("%w: build grid: %v", ErrInternal, err)
	}

	return &Response{
		SessionID:               sess.ID,
		WeekStart:               weekStart.Format(domain.DateFormat),
		RequiredDurationMinutes: duration,
		Professionals:           cols,
		Days:                    days,
	}, nil
}

// buildDays собирает ячейки сетки. Для прошедших дней все ячейки недоступны,
// но занятые бронированиями ячейки по-прежнему показывают информацию о записи.
func (uc *UseCase) buildDays(
	snapshot []*domain.Booking,
	professionals []Professional,
	rows []types.TimeString,
	weekStart time.Time,
	duration int,
	now time.Time,
) ([]Day, error) {
	days := make([]Day, 0, weekDays)

	for d := 0; d < weekDays; d++ {
		date := weekStart.AddDate(0, 0, d)
		isPast := availability.IsPastDate(date, now)

		dayRows := make([]Row, 0, len(rows))
		for _, start := range rows {
			// Строка сетки идет с шагом расписания, но бронирование занимает
			// суммарную длительность корзины: слот, который не успевает
			// закончиться до закрытия салона, предлагать нельзя
			slotEnd, endErr := start.AddMinutes(duration)
			fitsSchedule := endErr == nil && !slotEnd.IsAfter(uc.schedule.CloseTime)

			cells := make([]Cell, 0, len(professionals))
			for _, p := range professionals {
				cell := Cell{ProfessionalID: p.ID}

				if booking := availability.FindBookingAt(snapshot, date, start, p.ID); booking != nil {
					cell.Occupied = occupiedFromBooking(booking)
				}

				if !isPast && fitsSchedule {
					ok, err := availability.IsSlotAvailable(snapshot, date, start, p.ID, duration)
					if err != nil {
						return nil, err
					}
					cell.Available = ok
				}

				cells = append(cells, cell)
			}
			dayRows = append(dayRows, Row{StartTime: start, Cells: cells})
		}

		days = append(days, Day{
			Date:   date.Format(domain.DateFormat),
			IsPast: isPast,
			Rows:   dayRows,
		})
	}

	return days, nil
}

func occupiedFromBooking(b *domain.Booking) *OccupiedCell {
	serviceName := ""
	if len(b.Services) > 0 {
		serviceName = b.Services[0].Name
	}
	return &OccupiedCell{
		CustomerName:    b.CustomerName,
		ServiceName:     serviceName,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
