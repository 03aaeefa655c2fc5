package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// CSVSource reads the dataset from a local CSV file, header row first.
type CSVSource struct {
	path   string
	logger *zap.Logger
}

// NewCSVSource builds a file-backed source for the given path.
func NewCSVSource(path string, logger *zap.Logger) *CSVSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVSource{path: path, logger: logger}
}

// Read opens and fully parses the CSV file. A missing file surfaces as an
// error wrapping os.ErrNotExist so callers can tell absence apart from
// corruption.
func (s *CSVSource) Read(ctx context.Context) ([]string, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dataset %s: %w", s.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse dataset %s: %w", s.path, err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("dataset %s has no header row", s.path)
	}

	s.logger.Debug("dataset file read", zap.String("path", s.path), zap.Int("rows", len(records)-1))
	return records[0], records[1:], nil
}
