package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/glowdesk/booking-service/internal/domain"
	bookingRepo "github.com/glowdesk/booking-service/internal/infra/storage/booking"
	"github.com/glowdesk/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с уже созданными бронированиями.
// Создание нового бронирования живет отдельно, в usecase подтверждения
// сессии (usecase/confirm_booking).
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент видит только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, customerName string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%s", id, customerName)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerName != customerName {
		s.logger.Warn("GetByID: access denied for customer=%s to booking id=%d", customerName, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента.
// Опционально фильтрует по статусу.
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	if req.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%s", *req.Status, req.CustomerName)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, req.CustomerName, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%s: %v", req.CustomerName, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%s", len(bookings), req.CustomerName)
	return models.FromDomainBookingList(bookings), nil
}

// CancelBooking отменяет бронирование клиента.
// Отменить можно только бронирование в статусе confirmed.
func (s *Service) CancelBooking(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("CancelBooking: cancelling booking id=%d for customer=%s", req.BookingID, req.CustomerName)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerName != req.CustomerName {
		s.logger.Warn("CancelBooking: access denied for customer=%s to booking id=%d", req.CustomerName, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("CancelBooking: booking id=%d in status=%s cannot be cancelled", req.BookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, req.BookingID, domain.StatusCancelledByCustomer, req.Reason); err != nil {
		s.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("CancelBooking: failed to re-fetch booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: booking id=%d cancelled", req.BookingID)
	return models.FromDomainBooking(cancelled), nil
}
