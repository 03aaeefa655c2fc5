package prediction

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/arifsetiawan/motocare/internal/domain/models"
)

// DefaultHorizonDays is the generation window used whenever the real dataset
// cannot be ingested.
const DefaultHorizonDays = 30

const (
	maxCustomersPerDay = 5
	minSpareParts      = 1
	maxSpareParts      = 3
	minAvgKmPerMonth   = 500.0
	maxAvgKmPerMonth   = 2000.0
)

// Generator produces synthetic maintenance predictions. The random source is
// injected so tests can seed it; content is random but the record shape is a
// fixed contract.
type Generator struct {
	rng    *rand.Rand
	now    func() time.Time
	logger *zap.Logger
}

// NewGenerator wires a generator instance. A nil rng gets a time-seeded source.
func NewGenerator(rng *rand.Rand, logger *zap.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{rng: rng, now: time.Now, logger: logger}
}

// Generate emits zero or more predictions per day for each date in
// [today, today+days). Customer count per day is uniform in [0,5].
func (g *Generator) Generate(days int) []models.PredictionRecord {
	records := make([]models.PredictionRecord, 0)
	today := g.now()

	for i := 0; i < days; i++ {
		dateStr := today.AddDate(0, 0, i).Format(models.DateLayout)
		numCustomers := g.rng.Intn(maxCustomersPerDay + 1)

		for j := 0; j < numCustomers; j++ {
			records = append(records, models.PredictionRecord{
				PhoneNumber:   models.SamplePhoneNumbers[g.rng.Intn(len(models.SamplePhoneNumbers))],
				Date:          dateStr,
				SpareParts:    g.SampleSpareParts(),
				AvgKmPerMonth: round2(minAvgKmPerMonth + g.rng.Float64()*(maxAvgKmPerMonth-minAvgKmPerMonth)),
			})
		}
	}

	g.logger.Info("sample predictions generated", zap.Int("days", days), zap.Int("records", len(records)))
	return records
}

// SampleSpareParts picks 1-3 distinct catalog entries without replacement,
// preserving selection order. The dataset loader uses this too since the
// dataset carries no spare-part data of its own.
func (g *Generator) SampleSpareParts() []models.SparePart {
	n := minSpareParts + g.rng.Intn(maxSpareParts-minSpareParts+1)
	parts := make([]models.SparePart, 0, n)
	for _, idx := range g.rng.Perm(len(models.SparePartCatalog))[:n] {
		parts = append(parts, models.SparePartCatalog[idx])
	}
	return parts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
