package pricing

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/srgjo27/eventflow/internal/core/domain"
)

// Price returns the price of any seat in row of event. Row 0 carries the
// largest multiplier; the value is rounded half up and never drops below 1.
func Price(event domain.Event, row int) float64 {
	multiplier := 1 + float64(event.Rows-row)*RowPremium
	price := math.Floor(event.BasePrice*multiplier + 0.5)
	if price < 1 {
		price = 1
	}
	return price
}

// PriceRange renders the cheapest and dearest row prices, e.g. "$55 - $125".
func PriceRange(event domain.Event) string {
	if event.Rows <= 0 {
		return ""
	}
	low := strconv.FormatFloat(Price(event, event.Rows-1), 'f', -1, 64)
	high := strconv.FormatFloat(Price(event, 0), 'f', -1, 64)
	return fmt.Sprintf("$%s - $%s", low, high)
}

// Generator builds seat maps. It is not safe for concurrent use.
type Generator struct {
	policy InventoryPolicy
	rng    *rand.Rand
}

// NewGenerator returns a generator drawing from src. A nil src uses a PCG
// stream seeded from policy.Seed, or from a random seed when that is zero.
func NewGenerator(policy InventoryPolicy, src rand.Source) *Generator {
	if src == nil {
		seed := policy.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		src = rand.NewPCG(seed, seed)
	}
	return &Generator{policy: policy, rng: rand.New(src)}
}

// Generate lays out Rows x Columns seats in row-major order, each reserved
// independently with the policy's probability.
func (g *Generator) Generate(event domain.Event) (*SeatMap, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	rng := g.rng
	if g.policy.StableMaps {
		rng = rand.New(rand.NewPCG(g.policy.Seed, eventSeed(event.ID)))
	}

	seats := make([]domain.Seat, 0, event.TotalSeats())
	for row := 0; row < event.Rows; row++ {
		price := Price(event, row)
		for col := 0; col < event.Columns; col++ {
			status := domain.SeatAvailable
			if rng.Float64() < g.policy.ReserveProbability {
				status = domain.SeatReserved
			}
			seats = append(seats, domain.Seat{
				Row:    row,
				Column: col,
				Status: status,
				Price:  price,
			})
		}
	}

	return &SeatMap{rows: event.Rows, columns: event.Columns, seats: seats}, nil
}

func eventSeed(id string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return h.Sum64()
}
