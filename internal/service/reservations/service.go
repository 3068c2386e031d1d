package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitrineapp/VA-BookingService/internal/domain"
	reservationRepo "github.com/vitrineapp/VA-BookingService/internal/infra/storage/reservation"
	"github.com/vitrineapp/VA-BookingService/internal/service/reservations/models"
)

// Service drives the reservation lifecycle:
// pending -> confirmed -> in_progress -> completed, with cancel allowed
// from any non-terminal state. Every transition is all-or-nothing; on any
// failure the reservation is untouched.
type Service struct {
	repo         ReservationRepository
	calendar     SlotCalendar
	slotStore    SlotStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the lifecycle service. slotStore may be nil when no
// durable slot mirror is configured.
func NewService(
	repo ReservationRepository,
	calendar SlotCalendar,
	slotStore SlotStore,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		calendar:     calendar,
		slotStore:    slotStore,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider swaps the time source; used by tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID fetches one reservation.
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	reservation, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations returns a user's reservation history, optionally
// filtered by status.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%s, status=%v", req.UserID, req.Status)

	var status *domain.ReservationStatus
	if req.Status != nil {
		parsed, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	reservations, err := s.repo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%s", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// Confirm advances pending -> confirmed.
func (s *Service) Confirm(ctx context.Context, id string) (*models.ReservationResponse, error) {
	reservation, err := s.load(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, reservation, domain.StatusConfirmed); err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// Start advances confirmed -> in_progress and records the actual start
// time.
func (s *Service) Start(ctx context.Context, id string) (*models.ReservationResponse, error) {
	reservation, err := s.load(ctx, "Start", id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, reservation, domain.StatusInProgress); err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// Complete advances in_progress -> completed and records the actual end
// time.
func (s *Service) Complete(ctx context.Context, id string) (*models.ReservationResponse, error) {
	reservation, err := s.load(ctx, "Complete", id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, reservation, domain.StatusCompleted); err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// Cancel moves any non-terminal reservation to cancelled and returns its
// slot to the calendar.
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	reservation, err := s.load(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s", id, reservation.Status)
		return nil, fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, reservation.Status)
	}

	now := s.timeProvider.Now()
	var reason *string
	if req != nil && req.CancellationReason != "" {
		reason = &req.CancellationReason
	}

	if err := s.repo.SetCancelled(ctx, id, reason, now); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// The claim is released only after the cancellation is durable, so a
	// crash in between can never leave a cancelled reservation holding a
	// slot another customer could have taken.
	if err := s.calendar.Release(reservation.SlotID); err != nil {
		s.logger.Error("Cancel: failed to release slot %s for reservation id=%s: %v", reservation.SlotID, id, err)
	} else {
		s.mirrorAvailability(ctx, reservation.SlotID, true)
	}

	reservation.Status = domain.StatusCancelled
	reservation.CancellationReason = reason
	reservation.CancelledAt = &now

	s.logger.Info("Cancel: cancelled reservation id=%s, released slot=%s", id, reservation.SlotID)
	return models.FromDomainReservation(reservation), nil
}

// load fetches a reservation translating repository errors.
func (s *Service) load(ctx context.Context, op, id string) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// transition validates and persists one lifecycle step, updating the
// in-memory reservation only after the write succeeded.
func (s *Service) transition(ctx context.Context, reservation *domain.Reservation, next domain.ReservationStatus) error {
	if !reservation.Status.CanTransitionTo(next) {
		s.logger.Warn("transition: reservation id=%s cannot go %s -> %s", reservation.ID, reservation.Status, next)
		return fmt.Errorf("%w: cannot go %s -> %s", ErrInvalidTransition, reservation.Status, next)
	}

	now := s.timeProvider.Now()
	var startedAt, endedAt *time.Time
	switch next {
	case domain.StatusInProgress:
		startedAt = &now
	case domain.StatusCompleted:
		endedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, reservation.ID, next, startedAt, endedAt); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("transition: repository error for reservation id=%s: %v", reservation.ID, err)
		return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
	}

	reservation.Status = next
	if startedAt != nil {
		reservation.ActualStartTime = startedAt
	}
	if endedAt != nil {
		reservation.ActualEndTime = endedAt
	}

	s.logger.Info("transition: reservation id=%s is now %s", reservation.ID, next)
	return nil
}

// mirrorAvailability propagates a flip to the durable slot store, if one
// is configured. Mirror failures are logged, not surfaced: the in-memory
// calendar already owns the truth for racing claims.
func (s *Service) mirrorAvailability(ctx context.Context, slotID string, available bool) {
	if s.slotStore == nil {
		return
	}
	if err := s.slotStore.SetAvailability(ctx, slotID, available); err != nil {
		s.logger.Error("mirrorAvailability: failed to persist slot %s available=%t: %v", slotID, available, err)
	}
}
