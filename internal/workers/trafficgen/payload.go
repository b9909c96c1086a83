package trafficgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"cooleradmin/internal/domain"
)

var (
	categories = []string{"beverages", "snacks", "dairy", "frozen", "household", "personal_care"}
	adjectives = []string{"Arctic", "Golden", "Crisp", "Smooth", "Bold", "Fresh", "Classic"}
	nouns      = []string{"Cola", "Chips", "Yogurt", "Pizza", "Detergent", "Shampoo", "Espresso"}
)

// Generator produces synthetic product submissions. Roughly one in ten is
// deliberately malformed so the upstream anomaly detectors have something
// to flag.
type Generator struct {
	rng         *rand.Rand
	customerIDs []string
}

// NewGenerator builds a generator submitting on behalf of the given
// customer ids. Nil customerIDs falls back to a single synthetic customer.
func NewGenerator(customerIDs []string) *Generator {
	if len(customerIDs) == 0 {
		customerIDs = []string{"cust_synthetic"}
	}
	return &Generator{
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		customerIDs: customerIDs,
	}
}

func (g *Generator) Next() domain.ProductSubmission {
	sub := domain.ProductSubmission{
		SubmissionID: uuid.New().String(),
		CustomerID:   g.customerIDs[g.rng.IntN(len(g.customerIDs))],
		SKU:          fmt.Sprintf("SKU-%06d", g.rng.IntN(1000000)),
		Name:         g.pick(adjectives) + " " + g.pick(nouns),
		Category:     g.pick(categories),
		PriceCents:   int64(g.rng.IntN(9900) + 100),
		WeightGrams:  g.rng.IntN(4950) + 50,
		Source:       "trafficgen",
		Confidence:   0.6 + g.rng.Float64()*0.4,
	}
	if g.rng.IntN(10) == 0 {
		g.corrupt(&sub)
	}
	return sub
}

// corrupt introduces one of the defect classes the anomaly pipeline looks
// for: missing SKU, implausible price, or an absurd weight.
func (g *Generator) corrupt(sub *domain.ProductSubmission) {
	switch g.rng.IntN(3) {
	case 0:
		sub.SKU = ""
	case 1:
		sub.PriceCents = -sub.PriceCents
	case 2:
		sub.WeightGrams = 1_000_000
	}
	sub.Confidence = g.rng.Float64() * 0.3
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.IntN(len(list))]
}
