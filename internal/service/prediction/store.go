package prediction

import "github.com/arifsetiawan/motocare/internal/domain/models"

// Store is a frozen snapshot of prediction records built once at startup. It
// exposes no mutation path, so concurrent readers need no locking.
type Store struct {
	records []models.PredictionRecord
}

// NewStore copies the ingested records into an immutable snapshot.
func NewStore(records []models.PredictionRecord) *Store {
	snapshot := make([]models.PredictionRecord, len(records))
	copy(snapshot, records)
	return &Store{records: snapshot}
}

// GetAll returns every record in ingestion order.
func (s *Store) GetAll() []models.PredictionRecord {
	out := make([]models.PredictionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// GetByDate returns the records whose date matches exactly. The argument is
// compared as a string against the canonical YYYY-MM-DD form; no match means
// an empty slice, never an error.
func (s *Store) GetByDate(date string) []models.PredictionRecord {
	out := make([]models.PredictionRecord, 0)
	for _, record := range s.records {
		if record.Date == date {
			out = append(out, record)
		}
	}
	return out
}

// Len reports the snapshot size.
func (s *Store) Len() int {
	return len(s.records)
}
