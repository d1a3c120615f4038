package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/textter73/control-estudiantina/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TransportService struct {
	transportRepo ports.TransportRepo
	eventRepo     ports.EventRepo
	userRepo      ports.UserRepo
	notifier      ports.Notifier
	logger        logger.Logger
}

func NewTransportService(
	transportRepo ports.TransportRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *TransportService {
	return &TransportService{
		transportRepo: transportRepo,
		eventRepo:     eventRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

// TransportDetails couples the stored request with the pool derived from the
// event's confirmations at read time.
type TransportDetails struct {
	Request    *domain.TransportRequest `json:"request"`
	Unassigned []domain.Passenger       `json:"unassigned"`
}

// CreateRequest opens a transport request for an event that declared it needs
// one. One request per event.
func (s *TransportService) CreateRequest(ctx context.Context, eventID string) (*domain.TransportRequest, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.RequiresTransport {
		return nil, fmt.Errorf("%w: event does not require transport", domain.ErrValidation)
	}
	if event.Status != domain.EventStatusOpen {
		return nil, domain.ErrEventClosed
	}

	req := &domain.TransportRequest{
		ID:      uuid.New().String(),
		EventID: eventID,
		Status:  domain.TransportStatusPending,
	}
	if err = s.transportRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create transport request: %w", err)
	}

	s.logger.Info("transport request created",
		logger.String("request_id", req.ID),
		logger.String("event_id", eventID),
	)

	return req, nil
}

// Assign hands the request to the member who will configure the vehicles. A
// fresh default config is written on first assignment.
func (s *TransportService) Assign(ctx context.Context, requestID, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if !user.Can(domain.CapManageTransport) {
		return domain.ErrForbidden
	}

	req, err := s.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get transport request: %w", err)
	}
	if req.Finalized() {
		return domain.ErrRequestFinalized
	}

	if err = s.transportRepo.Assign(ctx, requestID, userID); err != nil {
		return fmt.Errorf("assign transport request: %w", err)
	}

	if req.Config == nil {
		cfg := domain.NewTransportConfig()
		if err = s.transportRepo.SaveConfig(ctx, requestID, cfg, req.Version, domain.TransportStatusAssigned); err != nil {
			return fmt.Errorf("seed transport config: %w", err)
		}
	}

	s.logger.Info("transport request assigned",
		logger.String("request_id", requestID),
		logger.String("user_id", userID),
	)

	return nil
}

func (s *TransportService) List(ctx context.Context) ([]*domain.TransportRequest, error) {
	return s.transportRepo.List(ctx)
}

// GetDetails loads the request and recomputes the unassigned pool from the
// event's current confirmations.
func (s *TransportService) GetDetails(ctx context.Context, requestID string) (*TransportDetails, error) {
	req, err := s.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get transport request: %w", err)
	}

	details := &TransportDetails{Request: req}
	if req.Config == nil {
		return details, nil
	}

	confirmations, err := s.eventRepo.ListConfirmations(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("list confirmations: %w", err)
	}
	details.Unassigned = req.Config.UnassignedPool(confirmations)

	return details, nil
}

// SetVehicleCount grows or shrinks the fleet. Passengers seated in removed
// vehicles fall back into the pool on the next read.
func (s *TransportService) SetVehicleCount(ctx context.Context, requestID string, count int) error {
	return s.mutateConfig(ctx, requestID, func(cfg *domain.TransportConfig) error {
		released, err := cfg.SetVehicleCount(count)
		if err != nil {
			return err
		}
		if len(released) > 0 {
			s.logger.Info("passengers released by fleet shrink",
				logger.String("request_id", requestID),
				logger.Int("released", len(released)),
			)
		}
		return nil
	})
}

func (s *TransportService) ResizeVehicle(ctx context.Context, requestID string, vehicleIndex, capacity int) error {
	return s.mutateConfig(ctx, requestID, func(cfg *domain.TransportConfig) error {
		released, err := cfg.ResizeVehicle(vehicleIndex, capacity)
		if err != nil {
			return err
		}
		if len(released) > 0 {
			s.logger.Info("passengers released by vehicle resize",
				logger.String("request_id", requestID),
				logger.Int("vehicle_index", vehicleIndex),
				logger.Int("released", len(released)),
			)
		}
		return nil
	})
}

// SetCosts updates the request total and optional per-vehicle costs. A nil
// entry leaves that vehicle's cost untouched.
func (s *TransportService) SetCosts(ctx context.Context, requestID string, totalCost float64, vehicleCosts map[int]float64) error {
	if totalCost < 0 {
		return fmt.Errorf("%w: total cost must not be negative", domain.ErrValidation)
	}
	return s.mutateConfig(ctx, requestID, func(cfg *domain.TransportConfig) error {
		cfg.TotalCost = totalCost
		for vi, cost := range vehicleCosts {
			if vi < 0 || vi >= len(cfg.Vehicles) {
				return fmt.Errorf("%w: vehicle %d does not exist", domain.ErrValidation, vi)
			}
			if cost < 0 {
				return fmt.Errorf("%w: vehicle cost must not be negative", domain.ErrValidation)
			}
			cfg.Vehicles[vi].VehicleCost = cost
		}
		return nil
	})
}

// AssignSeat seats a passenger from the unassigned pool. Pool membership is
// validated against the event's current confirmations.
func (s *TransportService) AssignSeat(ctx context.Context, requestID string, vehicleIndex, seatIndex int, passengerName string) error {
	req, err := s.loadEditable(ctx, requestID)
	if err != nil {
		return err
	}

	confirmations, err := s.eventRepo.ListConfirmations(ctx, req.EventID)
	if err != nil {
		return fmt.Errorf("list confirmations: %w", err)
	}

	var passenger *domain.Passenger
	for _, p := range req.Config.UnassignedPool(confirmations) {
		if p.Name == passengerName {
			candidate := p
			passenger = &candidate
			break
		}
	}
	if passenger == nil {
		return domain.ErrPassengerNotInPool
	}

	if err = req.Config.Assign(vehicleIndex, seatIndex, *passenger); err != nil {
		return err
	}

	return s.saveConfig(ctx, req, domain.TransportStatusSaved)
}

func (s *TransportService) VacateSeat(ctx context.Context, requestID string, vehicleIndex, seatIndex int) error {
	req, err := s.loadEditable(ctx, requestID)
	if err != nil {
		return err
	}

	if _, err = req.Config.Vacate(vehicleIndex, seatIndex); err != nil {
		return err
	}

	return s.saveConfig(ctx, req, domain.TransportStatusSaved)
}

// Finalize freezes the configuration and issues one ticket per occupied seat.
// The status flip and the ticket batch commit together; finalizing twice
// fails with ErrRequestFinalized.
func (s *TransportService) Finalize(ctx context.Context, requestID string) ([]domain.Ticket, error) {
	req, err := s.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get transport request: %w", err)
	}
	if req.Finalized() {
		return nil, domain.ErrRequestFinalized
	}
	if req.Config == nil || req.Config.TotalOccupied() == 0 {
		return nil, fmt.Errorf("%w: no seats assigned", domain.ErrValidation)
	}

	tickets := req.Config.BuildTickets(req.ID, req.EventID)
	for i := range tickets {
		tickets[i].ID = uuid.New().String()
	}

	finalizedAt := time.Now().UTC()
	if err = s.transportRepo.Finalize(ctx, requestID, finalizedAt, tickets); err != nil {
		return nil, fmt.Errorf("finalize transport request: %w", err)
	}

	s.logger.Info("transport request finalized",
		logger.String("request_id", requestID),
		logger.String("event_id", req.EventID),
		logger.Int("tickets", len(tickets)),
	)

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		s.logger.Error("failed to get event for ticket notification",
			logger.String("event_id", req.EventID),
			logger.String("error", err.Error()),
		)
		return tickets, nil
	}

	go s.notifier.NotifyTicketsIssued(context.WithoutCancel(ctx), event, tickets)

	return tickets, nil
}

// MemberCost answers what one member owes for their seats and companions.
func (s *TransportService) MemberCost(ctx context.Context, requestID, userID string) (float64, error) {
	req, err := s.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return 0, fmt.Errorf("get transport request: %w", err)
	}
	if req.Config == nil {
		return 0, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get user: %w", err)
	}

	return req.Config.MemberCost(user.Name), nil
}

// Complete marks a finalized request done once the trip happened.
func (s *TransportService) Complete(ctx context.Context, requestID string) error {
	req, err := s.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get transport request: %w", err)
	}
	if req.Status != domain.TransportStatusConfigured {
		return fmt.Errorf("%w: only a finalized request can be completed", domain.ErrValidation)
	}

	if err = s.transportRepo.UpdateStatus(ctx, requestID, domain.TransportStatusCompleted); err != nil {
		return fmt.Errorf("complete transport request: %w", err)
	}

	s.logger.Info("transport request completed", logger.String("request_id", requestID))

	return nil
}

// RequestForEvent looks up the transport request attached to an event.
func (s *TransportService) RequestForEvent(ctx context.Context, eventID string) (*domain.TransportRequest, error) {
	return s.transportRepo.GetByEvent(ctx, eventID)
}

func (s *TransportService) Cancel(ctx context.Context, requestID string) error {
	req, err := s.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get transport request: %w", err)
	}
	if req.Finalized() {
		return domain.ErrRequestFinalized
	}

	if err = s.transportRepo.UpdateStatus(ctx, requestID, domain.TransportStatusCancelled); err != nil {
		return fmt.Errorf("cancel transport request: %w", err)
	}

	s.logger.Info("transport request cancelled", logger.String("request_id", requestID))

	return nil
}

func (s *TransportService) loadEditable(ctx context.Context, requestID string) (*domain.TransportRequest, error) {
	req, err := s.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get transport request: %w", err)
	}
	if req.Finalized() {
		return nil, domain.ErrRequestFinalized
	}
	if req.Config == nil {
		req.Config = domain.NewTransportConfig()
	}
	return req, nil
}

func (s *TransportService) mutateConfig(ctx context.Context, requestID string, mutate func(*domain.TransportConfig) error) error {
	req, err := s.loadEditable(ctx, requestID)
	if err != nil {
		return err
	}
	if err = mutate(req.Config); err != nil {
		return err
	}
	return s.saveConfig(ctx, req, domain.TransportStatusSaved)
}

func (s *TransportService) saveConfig(ctx context.Context, req *domain.TransportRequest, status domain.TransportStatus) error {
	req.Config.SavedAt = time.Now().UTC()
	if err := s.transportRepo.SaveConfig(ctx, req.ID, req.Config, req.Version, status); err != nil {
		return fmt.Errorf("save transport config: %w", err)
	}
	return nil
}
