package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attending(name string, companions int) Confirmation {
	return Confirmation{
		UserID:     "id-" + name,
		UserName:   name,
		Response:   ResponseAttending,
		Companions: companions,
	}
}

func occupiedCount(v Vehicle) int {
	n := 0
	for _, s := range v.Seats {
		if s.Occupied {
			n++
		}
	}
	return n
}

func TestDerivePassengers_Idempotent(t *testing.T) {
	confs := []Confirmation{
		attending("Ana", 2),
		{UserID: "u2", UserName: "Beto", Response: ResponseNotAttending},
		attending("Carla", 1),
	}

	first := DerivePassengers(confs)
	second := DerivePassengers(confs)

	assert.Equal(t, first, second)
}

func TestDerivePassengers_CompanionExpansion(t *testing.T) {
	pool := DerivePassengers([]Confirmation{attending("Ana", 3)})

	require.Len(t, pool, 4)
	assert.Equal(t, Passenger{Name: "Ana", Type: PassengerMember, Attendee: "Ana"}, pool[0])
	assert.Equal(t, "Acompañante de Ana #1", pool[1].Name)
	assert.Equal(t, "Acompañante de Ana #2", pool[2].Name)
	assert.Equal(t, "Acompañante de Ana #3", pool[3].Name)
	for _, p := range pool[1:] {
		assert.Equal(t, PassengerCompanion, p.Type)
		assert.Equal(t, "Ana", p.Attendee)
	}
}

func TestDerivePassengers_SkipsMaybeAndUnnamed(t *testing.T) {
	pool := DerivePassengers([]Confirmation{
		{UserID: "u1", UserName: "Ana", Response: ResponseMaybe, Companions: 2},
		{UserID: "u2", UserName: "", Response: ResponseAttending, Companions: 1},
		attending("Beto", 0),
	})

	require.Len(t, pool, 1)
	assert.Equal(t, "Beto", pool[0].Name)
}

func TestDerivePassengers_StableOrder(t *testing.T) {
	pool := DerivePassengers([]Confirmation{
		attending("Beto", 1),
		attending("Ana", 1),
	})

	require.Len(t, pool, 4)
	assert.Equal(t, []string{"Beto", "Acompañante de Beto #1", "Ana", "Acompañante de Ana #1"},
		[]string{pool[0].Name, pool[1].Name, pool[2].Name, pool[3].Name})
}

func TestTransportConfig_OccupancyInvariant(t *testing.T) {
	cfg := NewTransportConfig()
	pool := DerivePassengers([]Confirmation{attending("Ana", 2), attending("Beto", 1)})

	for i, p := range pool {
		require.NoError(t, cfg.Assign(0, i, p))
	}
	assert.Equal(t, occupiedCount(cfg.Vehicles[0]), cfg.Vehicles[0].OccupiedSeats)

	_, err := cfg.Vacate(0, 1)
	require.NoError(t, err)
	_, err = cfg.Vacate(0, 3)
	require.NoError(t, err)
	assert.Equal(t, occupiedCount(cfg.Vehicles[0]), cfg.Vehicles[0].OccupiedSeats)

	require.NoError(t, cfg.Assign(0, 1, pool[1]))
	assert.Equal(t, occupiedCount(cfg.Vehicles[0]), cfg.Vehicles[0].OccupiedSeats)
	assert.Equal(t, 4, cfg.TotalOccupied())
}

func TestTransportConfig_AssignVacateRoundTrip(t *testing.T) {
	cfg := NewTransportConfig()
	confs := []Confirmation{attending("Ana", 1)}
	before := cfg.UnassignedPool(confs)
	require.Len(t, before, 2)

	require.NoError(t, cfg.Assign(0, 0, before[0]))
	assert.Len(t, cfg.UnassignedPool(confs), 1)

	p, err := cfg.Vacate(0, 0)
	require.NoError(t, err)
	assert.Equal(t, before[0], p)
	assert.Equal(t, before, cfg.UnassignedPool(confs))
	assert.False(t, cfg.Vehicles[0].Seats[0].Occupied)
	assert.Equal(t, 0, cfg.Vehicles[0].OccupiedSeats)
}

func TestTransportConfig_AssignOccupiedSeat(t *testing.T) {
	cfg := NewTransportConfig()
	require.NoError(t, cfg.Assign(0, 0, Passenger{Name: "Ana", Type: PassengerMember, Attendee: "Ana"}))

	err := cfg.Assign(0, 0, Passenger{Name: "Beto", Type: PassengerMember, Attendee: "Beto"})
	assert.ErrorIs(t, err, ErrSeatOccupied)
	assert.Equal(t, "Ana", cfg.Vehicles[0].Seats[0].PassengerName)
}

func TestTransportConfig_VacateFreeSeat(t *testing.T) {
	cfg := NewTransportConfig()

	_, err := cfg.Vacate(0, 0)
	assert.ErrorIs(t, err, ErrSeatNotOccupied)
}

func TestTransportConfig_ResizeShrinkReleasesTail(t *testing.T) {
	cfg := NewTransportConfig()
	ana := Passenger{Name: "Ana", Type: PassengerMember, Attendee: "Ana"}
	beto := Passenger{Name: "Beto", Type: PassengerMember, Attendee: "Beto"}
	require.NoError(t, cfg.Assign(0, 0, ana))
	require.NoError(t, cfg.Assign(0, 14, beto))

	released, err := cfg.ResizeVehicle(0, 10)
	require.NoError(t, err)

	assert.Equal(t, []Passenger{beto}, released)
	assert.Len(t, cfg.Vehicles[0].Seats, 10)
	assert.Equal(t, 10, cfg.Vehicles[0].TotalSeats)
	assert.Equal(t, 1, cfg.Vehicles[0].OccupiedSeats)
	assert.Equal(t, occupiedCount(cfg.Vehicles[0]), cfg.Vehicles[0].OccupiedSeats)
}

func TestTransportConfig_ResizeGrowAppendsFreeSeats(t *testing.T) {
	cfg := NewTransportConfig()

	released, err := cfg.ResizeVehicle(0, 20)
	require.NoError(t, err)

	assert.Empty(t, released)
	assert.Len(t, cfg.Vehicles[0].Seats, 20)
	for _, s := range cfg.Vehicles[0].Seats {
		assert.False(t, s.Occupied)
	}
}

func TestTransportConfig_RemoveVehicleReturnsPassengers(t *testing.T) {
	cfg := NewTransportConfig()
	_, err := cfg.SetVehicleCount(2)
	require.NoError(t, err)

	ana := Passenger{Name: "Ana", Type: PassengerMember, Attendee: "Ana"}
	require.NoError(t, cfg.Assign(1, 0, ana))

	released, err := cfg.SetVehicleCount(1)
	require.NoError(t, err)

	assert.Equal(t, []Passenger{ana}, released)
	assert.Len(t, cfg.Vehicles, 1)
	assert.Equal(t, 1, cfg.VehicleCount)
}

func TestTransportConfig_UniformSplit(t *testing.T) {
	cfg := NewTransportConfig()
	cfg.TotalCost = 150
	for i, p := range DerivePassengers([]Confirmation{attending("Ana", 2)}) {
		require.NoError(t, cfg.Assign(0, i, p))
	}

	assert.InDelta(t, 50.00, cfg.UnitCost(0), 0.001)
	assert.InDelta(t, 150.00, cfg.MemberCost("Ana"), 0.001)
}

func TestTransportConfig_WeightedSplitWithFallback(t *testing.T) {
	cfg := NewTransportConfig()
	_, err := cfg.SetVehicleCount(2)
	require.NoError(t, err)
	cfg.TotalCost = 500
	cfg.Vehicles[0].VehicleCost = 300

	// Three seats in the priced vehicle, two in the unpriced one.
	names := []string{"Ana", "Beto", "Carla"}
	for i, n := range names {
		require.NoError(t, cfg.Assign(0, i, Passenger{Name: n, Type: PassengerMember, Attendee: n}))
	}
	for i, n := range []string{"Dora", "Elio"} {
		require.NoError(t, cfg.Assign(1, i, Passenger{Name: n, Type: PassengerMember, Attendee: n}))
	}

	assert.InDelta(t, 100.00, cfg.UnitCost(0), 0.001)
	// The unpriced vehicle absorbs the leftover 200 across its two seats.
	assert.InDelta(t, 100.00, cfg.UnitCost(1), 0.001)
	assert.InDelta(t, 100.00, cfg.MemberCost("Dora"), 0.001)
}

func TestTransportConfig_CostConservation(t *testing.T) {
	cfg := NewTransportConfig()
	_, err := cfg.SetVehicleCount(2)
	require.NoError(t, err)
	cfg.TotalCost = 1000
	cfg.Vehicles[0].VehicleCost = 700

	seated := 0
	for i := 0; i < 7; i++ {
		name := string(rune('A' + i))
		require.NoError(t, cfg.Assign(0, i, Passenger{Name: name, Type: PassengerMember, Attendee: name}))
		seated++
	}
	for i := 0; i < 3; i++ {
		name := string(rune('H' + i))
		require.NoError(t, cfg.Assign(1, i, Passenger{Name: name, Type: PassengerMember, Attendee: name}))
		seated++
	}

	sum := 0.0
	for vi := range cfg.Vehicles {
		sum += cfg.UnitCost(vi) * float64(cfg.Vehicles[vi].OccupiedSeats)
	}

	// Rounding each unit may drift up to a cent per seat.
	assert.InDelta(t, cfg.TotalCost, sum, 0.01*float64(seated))
}

func TestTransportConfig_MemberCostIncludesCompanions(t *testing.T) {
	cfg := NewTransportConfig()
	cfg.TotalCost = 90
	pool := DerivePassengers([]Confirmation{attending("Ana", 1), attending("Beto", 0)})
	for i, p := range pool {
		require.NoError(t, cfg.Assign(0, i, p))
	}

	assert.InDelta(t, 60.00, cfg.MemberCost("Ana"), 0.001)
	assert.InDelta(t, 30.00, cfg.MemberCost("Beto"), 0.001)
	assert.InDelta(t, 0, cfg.MemberCost("Carla"), 0.001)
}

func TestTransportConfig_BuildTickets(t *testing.T) {
	cfg := NewTransportConfig()
	_, err := cfg.SetVehicleCount(2)
	require.NoError(t, err)
	cfg.TotalCost = 250

	for i, n := range []string{"Ana", "Beto", "Carla"} {
		require.NoError(t, cfg.Assign(0, i, Passenger{Name: n, Type: PassengerMember, Attendee: n}))
	}
	for i, n := range []string{"Dora", "Elio"} {
		require.NoError(t, cfg.Assign(1, i, Passenger{Name: n, Type: PassengerMember, Attendee: n}))
	}

	tickets := cfg.BuildTickets("req-1", "ev-1")

	require.Len(t, tickets, 5)
	for _, tk := range tickets {
		assert.Equal(t, "req-1", tk.RequestID)
		assert.Equal(t, "ev-1", tk.EventID)
		assert.Equal(t, PaymentStatusPending, tk.PaymentStatus)
		assert.InDelta(t, 50.00, tk.Price, 0.001)
	}
	assert.Equal(t, 1, tickets[0].SeatNumber)
	assert.Equal(t, 0, tickets[0].VehicleIndex)
	assert.Equal(t, 1, tickets[3].VehicleIndex)
}

func TestConciertoAnualScenario(t *testing.T) {
	confs := []Confirmation{
		{UserID: "u1", UserName: "Ana", Response: ResponseAttending, Companions: 2},
		{UserID: "u2", UserName: "Beto", Response: ResponseNotAttending},
	}

	pool := DerivePassengers(confs)
	require.Len(t, pool, 3)
	assert.Equal(t, []string{"Ana", "Acompañante de Ana #1", "Acompañante de Ana #2"},
		[]string{pool[0].Name, pool[1].Name, pool[2].Name})

	cfg := NewTransportConfig()
	cfg.TotalCost = 150
	for i, p := range pool {
		require.NoError(t, cfg.Assign(0, i, p))
	}

	assert.Equal(t, 3, cfg.Vehicles[0].OccupiedSeats)
	assert.InDelta(t, 50.00, cfg.UnitCost(0), 0.001)
	assert.Empty(t, cfg.UnassignedPool(confs))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Confirmation{
		attending("Ana", 2),
		attending("Beto", 0),
		{UserID: "u3", UserName: "Carla", Response: ResponseMaybe, Companions: 3},
		{UserID: "u4", UserName: "Dino", Response: ResponseNotAttending},
	})

	assert.Equal(t, 2, s.Attending)
	assert.Equal(t, 1, s.NotAttending)
	assert.Equal(t, 1, s.Maybe)
	// Companions only count for confirmed attendees.
	assert.Equal(t, 2, s.Companions)
	assert.Equal(t, 4, s.Total)
}
