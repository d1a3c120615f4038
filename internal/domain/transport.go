package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type TransportStatus string

const (
	TransportStatusPending    TransportStatus = "pendiente"
	TransportStatusAssigned   TransportStatus = "asignado"
	TransportStatusSaved      TransportStatus = "guardado"
	TransportStatusConfigured TransportStatus = "configurado"
	TransportStatusCompleted  TransportStatus = "completado"
	TransportStatusCancelled  TransportStatus = "cancelado"
)

func ValidTransportStatus(s TransportStatus) bool {
	switch s {
	case TransportStatusPending, TransportStatusAssigned, TransportStatusSaved,
		TransportStatusConfigured, TransportStatusCompleted, TransportStatusCancelled:
		return true
	}
	return false
}

type PassengerType string

const (
	PassengerMember    PassengerType = "Integrante"
	PassengerCompanion PassengerType = "Acompañante"
)

// DefaultVehicleSeats is the capacity of a newly added vehicle.
const DefaultVehicleSeats = 15

type Passenger struct {
	Name string        `json:"name"`
	Type PassengerType `json:"type"`
	// Attendee is the confirming member's name; for a companion it names
	// who brings them.
	Attendee string `json:"attendee"`
}

type Seat struct {
	Occupied      bool       `json:"occupied"`
	PassengerName string     `json:"passengerName"`
	Passenger     *Passenger `json:"passenger,omitempty"`
}

type Vehicle struct {
	TotalSeats    int     `json:"totalSeats"`
	OccupiedSeats int     `json:"occupiedSeats"`
	VehicleCost   float64 `json:"vehicleCost"`
	Seats         []Seat  `json:"seats"`
}

type TransportConfig struct {
	VehicleCount int       `json:"vehicleCount"`
	TotalCost    float64   `json:"totalCost"`
	Vehicles     []Vehicle `json:"vehicles"`
	SavedAt      time.Time `json:"savedAt"`
}

type TransportRequest struct {
	ID          string           `json:"id"`
	EventID     string           `json:"event_id"`
	Status      TransportStatus  `json:"status"`
	AssignedTo  string           `json:"assigned_to"`
	Config      *TransportConfig `json:"config"`
	Version     int              `json:"version"`
	FinalizedAt *time.Time       `json:"finalized_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Finalized reports whether the request no longer accepts seat changes.
func (r *TransportRequest) Finalized() bool {
	return r.Status == TransportStatusConfigured || r.Status == TransportStatusCompleted
}

func NewVehicle(capacity int) Vehicle {
	return Vehicle{
		TotalSeats: capacity,
		Seats:      make([]Seat, capacity),
	}
}

func NewTransportConfig() *TransportConfig {
	cfg := &TransportConfig{VehicleCount: 1}
	cfg.Vehicles = append(cfg.Vehicles, NewVehicle(DefaultVehicleSeats))
	return cfg
}

func companionLabel(attendee string, n int) string {
	return fmt.Sprintf("Acompañante de %s #%d", attendee, n)
}

// IsCompanionOf reports whether a passenger name is a companion label for the
// given member.
func IsCompanionOf(passengerName, member string) bool {
	return strings.HasPrefix(passengerName, "Acompañante de "+member+" #")
}

// DerivePassengers builds the assignable pool from an event's confirmations:
// one Integrante per attending member plus one Acompañante entry per declared
// companion, in confirmation order. Confirmations without a user name are
// skipped.
func DerivePassengers(confirmations []Confirmation) []Passenger {
	var pool []Passenger
	for _, c := range confirmations {
		if c.Response != ResponseAttending || c.UserName == "" {
			continue
		}
		pool = append(pool, Passenger{
			Name:     c.UserName,
			Type:     PassengerMember,
			Attendee: c.UserName,
		})
		for i := 0; i < c.Companions; i++ {
			pool = append(pool, Passenger{
				Name:     companionLabel(c.UserName, i+1),
				Type:     PassengerCompanion,
				Attendee: c.UserName,
			})
		}
	}
	return pool
}

// SeatedNames collects every passenger name currently occupying a seat.
func (c *TransportConfig) SeatedNames() map[string]struct{} {
	seated := make(map[string]struct{})
	for vi := range c.Vehicles {
		for si := range c.Vehicles[vi].Seats {
			seat := &c.Vehicles[vi].Seats[si]
			if seat.Occupied && seat.PassengerName != "" {
				seated[seat.PassengerName] = struct{}{}
			}
		}
	}
	return seated
}

// UnassignedPool derives the pool from the confirmations and removes everyone
// already seated. The pool is never stored; it is recomputed on every load.
func (c *TransportConfig) UnassignedPool(confirmations []Confirmation) []Passenger {
	seated := c.SeatedNames()
	all := DerivePassengers(confirmations)
	pool := make([]Passenger, 0, len(all))
	for _, p := range all {
		if _, ok := seated[p.Name]; !ok {
			pool = append(pool, p)
		}
	}
	return pool
}

// SetVehicleCount grows or shrinks the vehicle list. New vehicles start empty
// with the default capacity. Shrinking releases every passenger seated in a
// removed vehicle; the released passengers are returned so callers can show
// them back in the pool.
func (c *TransportConfig) SetVehicleCount(n int) ([]Passenger, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: vehicle count must be at least 1", ErrValidation)
	}
	var released []Passenger
	for len(c.Vehicles) < n {
		c.Vehicles = append(c.Vehicles, NewVehicle(DefaultVehicleSeats))
	}
	if len(c.Vehicles) > n {
		for _, v := range c.Vehicles[n:] {
			for _, seat := range v.Seats {
				if seat.Occupied && seat.Passenger != nil {
					released = append(released, *seat.Passenger)
				}
			}
		}
		c.Vehicles = c.Vehicles[:n]
	}
	c.VehicleCount = n
	return released, nil
}

// ResizeVehicle changes a vehicle's capacity. Growing appends free seats;
// shrinking truncates from the tail and releases any passenger whose seat
// falls in the removed range.
func (c *TransportConfig) ResizeVehicle(vehicleIndex, capacity int) ([]Passenger, error) {
	if vehicleIndex < 0 || vehicleIndex >= len(c.Vehicles) {
		return nil, fmt.Errorf("%w: vehicle %d does not exist", ErrValidation, vehicleIndex)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	v := &c.Vehicles[vehicleIndex]
	var released []Passenger
	for len(v.Seats) < capacity {
		v.Seats = append(v.Seats, Seat{})
	}
	if len(v.Seats) > capacity {
		for _, seat := range v.Seats[capacity:] {
			if seat.Occupied && seat.Passenger != nil {
				released = append(released, *seat.Passenger)
				v.OccupiedSeats--
			}
		}
		v.Seats = v.Seats[:capacity]
	}
	v.TotalSeats = capacity
	return released, nil
}

// Assign seats a passenger. The seat must be free; pool membership is checked
// by the caller against UnassignedPool.
func (c *TransportConfig) Assign(vehicleIndex, seatIndex int, p Passenger) error {
	seat, err := c.seat(vehicleIndex, seatIndex)
	if err != nil {
		return err
	}
	if seat.Occupied {
		return ErrSeatOccupied
	}
	seat.Occupied = true
	seat.PassengerName = p.Name
	passenger := p
	seat.Passenger = &passenger
	c.Vehicles[vehicleIndex].OccupiedSeats++
	return nil
}

// Vacate frees an occupied seat and returns the passenger that held it.
func (c *TransportConfig) Vacate(vehicleIndex, seatIndex int) (Passenger, error) {
	seat, err := c.seat(vehicleIndex, seatIndex)
	if err != nil {
		return Passenger{}, err
	}
	if !seat.Occupied || seat.Passenger == nil {
		return Passenger{}, ErrSeatNotOccupied
	}
	p := *seat.Passenger
	seat.Occupied = false
	seat.PassengerName = ""
	seat.Passenger = nil
	c.Vehicles[vehicleIndex].OccupiedSeats--
	return p, nil
}

func (c *TransportConfig) seat(vehicleIndex, seatIndex int) (*Seat, error) {
	if vehicleIndex < 0 || vehicleIndex >= len(c.Vehicles) {
		return nil, fmt.Errorf("%w: vehicle %d does not exist", ErrValidation, vehicleIndex)
	}
	v := &c.Vehicles[vehicleIndex]
	if seatIndex < 0 || seatIndex >= len(v.Seats) {
		return nil, fmt.Errorf("%w: seat %d does not exist", ErrValidation, seatIndex)
	}
	return &v.Seats[seatIndex], nil
}

// TotalOccupied counts occupied seats across all vehicles using the
// denormalized counters.
func (c *TransportConfig) TotalOccupied() int {
	total := 0
	for i := range c.Vehicles {
		total += c.Vehicles[i].OccupiedSeats
	}
	return total
}

// UnitCost is the per-passenger price for a vehicle. A vehicle with its own
// cost splits it across its occupied seats; vehicles without one share the
// leftover of the request's total cost uniformly.
func (c *TransportConfig) UnitCost(vehicleIndex int) float64 {
	if vehicleIndex < 0 || vehicleIndex >= len(c.Vehicles) {
		return 0
	}
	v := &c.Vehicles[vehicleIndex]
	if v.VehicleCost > 0 && v.OccupiedSeats > 0 {
		return RoundMoney(v.VehicleCost / float64(v.OccupiedSeats))
	}
	return c.sharedUnitCost()
}

// sharedUnitCost splits whatever the individually priced vehicles do not
// cover across the occupied seats of the unpriced vehicles.
func (c *TransportConfig) sharedUnitCost() float64 {
	priced := 0.0
	unpricedSeats := 0
	for i := range c.Vehicles {
		v := &c.Vehicles[i]
		if v.VehicleCost > 0 && v.OccupiedSeats > 0 {
			priced += v.VehicleCost
		} else {
			unpricedSeats += v.OccupiedSeats
		}
	}
	if unpricedSeats == 0 {
		return 0
	}
	remainder := c.TotalCost - priced
	if remainder < 0 {
		remainder = 0
	}
	return RoundMoney(remainder / float64(unpricedSeats))
}

// MemberCost sums the unit cost of every seat held by the member or one of
// their companions.
func (c *TransportConfig) MemberCost(userName string) float64 {
	total := 0.0
	for vi := range c.Vehicles {
		unit := c.UnitCost(vi)
		for _, seat := range c.Vehicles[vi].Seats {
			if !seat.Occupied || seat.PassengerName == "" {
				continue
			}
			if seat.PassengerName == userName || IsCompanionOf(seat.PassengerName, userName) {
				total += unit
			}
		}
	}
	return RoundMoney(total)
}

// BuildTickets materializes one ticket per occupied seat, priced at the
// seat's vehicle unit cost. Seat numbers are 1-based within each vehicle.
func (c *TransportConfig) BuildTickets(requestID, eventID string) []Ticket {
	var tickets []Ticket
	for vi := range c.Vehicles {
		unit := c.UnitCost(vi)
		for si, seat := range c.Vehicles[vi].Seats {
			if !seat.Occupied || seat.Passenger == nil {
				continue
			}
			tickets = append(tickets, Ticket{
				RequestID:     requestID,
				EventID:       eventID,
				PassengerName: seat.Passenger.Name,
				PassengerType: seat.Passenger.Type,
				VehicleIndex:  vi,
				SeatNumber:    si + 1,
				Price:         unit,
				PaymentStatus: PaymentStatusPending,
			})
		}
	}
	return tickets
}

// RoundMoney rounds to cents, half away from zero.
func RoundMoney(x float64) float64 {
	return math.Round(x*100) / 100
}
