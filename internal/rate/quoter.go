package rate

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"goldledger/internal/config"
)

// Quote is a price per 100 grams with the moment it was drawn. Successive
// quotes are independent; callers needing one consistent price for a
// computation must draw once and reuse it.
type Quote struct {
	Price decimal.Decimal
	At    time.Time
}

// Quoter produces the current gold price quote.
type Quoter interface {
	Quote() Quote
}

// Picker selects an index into a sample table of size n.
type Picker func(n int) int

// SampleQuoter draws from an immutable table of sample prices. The table is
// fixed at construction; only the picker decides which entry a call returns.
type SampleQuoter struct {
	samples []decimal.Decimal
	pick    Picker
	now     func() time.Time
}

// NewSampleQuoter builds a quoter from config. A nil picker defaults to a
// uniform random draw, matching the original behavior.
func NewSampleQuoter(cfg config.RatesConfig, pick Picker) *SampleQuoter {
	raw := cfg.Samples
	if len(raw) == 0 {
		raw = config.DefaultRateSamples()
	}
	samples := make([]decimal.Decimal, 0, len(raw))
	for _, p := range raw {
		d := decimal.NewFromFloat(p)
		if d.IsPositive() {
			samples = append(samples, d)
		}
	}
	if len(samples) == 0 {
		samples = []decimal.Decimal{decimal.NewFromFloat(config.DefaultRateSamples()[0])}
	}
	if pick == nil {
		pick = rand.Intn
	}
	return &SampleQuoter{
		samples: samples,
		pick:    pick,
		now:     time.Now,
	}
}

func (q *SampleQuoter) Quote() Quote {
	idx := q.pick(len(q.samples))
	if idx < 0 || idx >= len(q.samples) {
		idx = 0
	}
	return Quote{
		Price: q.samples[idx],
		At:    q.now().UTC(),
	}
}

// Fixed returns a quoter that always quotes the given price. Used by tests
// and anywhere a deterministic rate is needed.
func Fixed(price decimal.Decimal) Quoter {
	return fixedQuoter{price: price}
}

type fixedQuoter struct {
	price decimal.Decimal
}

func (q fixedQuoter) Quote() Quote {
	return Quote{Price: q.price, At: time.Now().UTC()}
}
