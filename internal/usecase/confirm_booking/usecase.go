package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glowdesk/booking-service/internal/availability"
	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/internal/infra/sessionstore"
	bookingmodels "github.com/glowdesk/booking-service/internal/service/bookings/models"
	"github.com/glowdesk/booking-service/internal/workflow"
)

// UseCase подтверждает бронирование ровно один раз.
// Первый вызов забирает сессию из состояния подтверждения под блокировкой
// хранилища, поэтому повторная отправка формы создаёт не более одной записи.
type UseCase struct {
	sessions     SessionStore
	bookings     BookingRepository
	txManager    TransactionManager
	schedule     Schedule
	timeProvider TimeProvider
	metrics      Metrics
	log          Logger
}

func New(
	sessions SessionStore,
	bookings BookingRepository,
	txManager TransactionManager,
	schedule Schedule,
	timeProvider TimeProvider,
	metrics Metrics,
	log Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		bookings:     bookings,
		txManager:    txManager,
		schedule:     schedule,
		timeProvider: timeProvider,
		metrics:      metrics,
		log:          log,
	}
}

// Execute подтверждает бронирование из сессии req.SessionID.
// Перед записью слот перепроверяется по свежему снапшоту бронирований внутри
// serializable-транзакции: если слот успели занять, сессия возвращается на шаг
// выбора слота и вызывающему отдаётся ErrSlotNoLongerAvailable.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// Шаг 1: атомарно забираем черновик бронирования из сессии.
	var draft *domain.Booking
	_, err := uc.sessions.Update(ctx, req.SessionID, func(sess *workflow.Session) error {
		if sess.CustomerName != req.CustomerName {
			return ErrAccessDenied
		}
		booking, confirmErr := sess.Confirm(now)
		if confirmErr != nil {
			return confirmErr
		}
		draft = booking
		return nil
	})
	if err != nil {
		return nil, uc.mapClaimError(err, req)
	}

	// Шаг 2: проверяем дату и рабочее окно. Черновик уже забран,
	// поэтому при любой ошибке сессию нужно вернуть на выбор слота.
	if err := uc.validateSlot(draft, now); err != nil {
		uc.reopenSlotSelection(ctx, req.SessionID, now)
		return nil, err
	}

	// Шаг 3: перепроверка слота и вставка в одной транзакции.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		snapshot, txErr := uc.bookings.GetForRange(txCtx, domain.DayBookingsFilter{
			StartDate:      draft.BookingDate,
			EndDate:        draft.BookingDate,
			ProfessionalID: &draft.ProfessionalID,
		})
		if txErr != nil {
			return fmt.Errorf("load bookings snapshot: %w", txErr)
		}

		available, txErr := availability.IsSlotAvailable(snapshot, draft.BookingDate, draft.StartTime, draft.ProfessionalID, draft.DurationMinutes)
		if txErr != nil {
			return fmt.Errorf("check slot: %w", txErr)
		}
		if !available {
			return ErrSlotNoLongerAvailable
		}

		if _, txErr = uc.bookings.Create(txCtx, draft); txErr != nil {
			return fmt.Errorf("create booking: %w", txErr)
		}
		return nil
	})
	if err != nil {
		uc.reopenSlotSelection(ctx, req.SessionID, now)
		if errors.Is(err, ErrSlotNoLongerAvailable) {
			uc.metrics.IncBookingConflict()
			uc.log.Warn("[ConfirmBooking] Slot conflict: session %s, %s %s professional %d",
				req.SessionID, draft.BookingDate.Format(domain.DateFormat), draft.StartTime, draft.ProfessionalID)
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingConfirmed()
	uc.log.Info("[ConfirmBooking] Booking %s confirmed: session %s, customer %s, %s %s",
		draft.Number, req.SessionID, draft.CustomerName, draft.BookingDate.Format(domain.DateFormat), draft.StartTime)

	return &Response{Booking: bookingmodels.FromDomainBooking(draft)}, nil
}

// mapClaimError переводит ошибки шага захвата сессии в ошибки пакета
func (uc *UseCase) mapClaimError(err error, req Request) error {
	switch {
	case errors.Is(err, sessionstore.ErrSessionNotFound):
		return fmt.Errorf("%w: %s", ErrSessionNotFound, req.SessionID)
	case errors.Is(err, ErrAccessDenied):
		return ErrAccessDenied
	case errors.Is(err, workflow.ErrNoPendingConfirmation),
		errors.Is(err, workflow.ErrNoStagedSlot),
		errors.Is(err, workflow.ErrEmptySelection):
		return fmt.Errorf("%w: %v", ErrNoPendingConfirmation, err)
	default:
		return fmt.Errorf("%w: claim session: %v", ErrInternal, err)
	}
}

// reopenSlotSelection возвращает сессию на шаг выбора слота после неудачного
// подтверждения. Ошибка здесь не фатальна, клиент увидит её при следующем запросе.
func (uc *UseCase) reopenSlotSelection(ctx context.Context, sessionID uuid.UUID, now time.Time) {
	_, err := uc.sessions.Update(ctx, sessionID, func(sess *workflow.Session) error {
		return sess.ReopenSlotSelection(now)
	})
	if err != nil {
		uc.log.Error("[ConfirmBooking] Failed to reopen slot selection for session %s: %v", sessionID, err)
	}
}
