package prediction

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arifsetiawan/motocare/internal/domain/models"
	"github.com/arifsetiawan/motocare/internal/repository/dataset"
)

// Loader turns the tabular dataset into prediction records, delegating to the
// sample generator whenever the dataset cannot yield a non-empty result.
type Loader struct {
	source    dataset.Source
	generator *Generator
	now       func() time.Time
	logger    *zap.Logger
}

// NewLoader wires a loader instance. A nil source means "no dataset
// configured" and always falls back to synthetic data.
func NewLoader(source dataset.Source, generator *Generator, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, generator: generator, now: time.Now, logger: logger}
}

type columnIndexes struct {
	date  int
	phone int
	avgKm int
}

// Load reads and normalizes the dataset. It never fails: every structural
// problem (source absent, unreadable, bad schema, zero usable rows) degrades
// to Generate(DefaultHorizonDays), each cause with its own diagnostic.
func (l *Loader) Load(ctx context.Context) []models.PredictionRecord {
	if l.source == nil {
		l.logger.Warn("no dataset source configured, using sample predictions")
		return l.generator.Generate(DefaultHorizonDays)
	}

	header, rows, err := l.source.Read(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("dataset not found, using sample predictions", zap.Error(err))
		} else {
			l.logger.Warn("dataset unreadable, using sample predictions", zap.Error(err))
		}
		return l.generator.Generate(DefaultHorizonDays)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		l.logger.Warn("dataset schema invalid, using sample predictions", zap.Error(err))
		return l.generator.Generate(DefaultHorizonDays)
	}

	today := truncateToDay(l.now())
	records := make([]models.PredictionRecord, 0, len(rows))

	for i, row := range rows {
		record, ok := l.parseRow(row, cols, today, i)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		l.logger.Warn("dataset yielded no usable rows, using sample predictions", zap.Int("rows_seen", len(rows)))
		return l.generator.Generate(DefaultHorizonDays)
	}

	l.logger.Info("dataset loaded", zap.Int("records", len(records)), zap.Int("rows_seen", len(rows)))
	return records
}

// parseRow maps one dataset row to a record. Any defect in the row yields
// (zero, false); a single bad row never aborts the load. Stale rows are
// dropped without logging, everything else logs its row index.
func (l *Loader) parseRow(row []string, cols columnIndexes, today time.Time, idx int) (models.PredictionRecord, bool) {
	reminderDate, err := parseReminderDate(cellAt(row, cols.date))
	if err != nil {
		l.logger.Warn("skip row with invalid reminder date", zap.Int("row", idx), zap.Error(err))
		return models.PredictionRecord{}, false
	}

	if reminderDate.Before(today) {
		// Stale entry; already serviced or missed.
		return models.PredictionRecord{}, false
	}

	phone := strings.TrimSpace(cellAt(row, cols.phone))
	if phone == "" {
		l.logger.Warn("skip row with empty phone number", zap.Int("row", idx))
		return models.PredictionRecord{}, false
	}
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	avgKm := 0.0
	if parsed, err := strconv.ParseFloat(strings.TrimSpace(cellAt(row, cols.avgKm)), 64); err == nil {
		avgKm = round2(parsed)
	}

	return models.PredictionRecord{
		PhoneNumber:   phone,
		Date:          reminderDate.Format(models.DateLayout),
		SpareParts:    l.generator.SampleSpareParts(),
		AvgKmPerMonth: avgKm,
	}, true
}

func resolveColumns(header []string) (columnIndexes, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.TrimSpace(name)] = i
	}

	cols := columnIndexes{}
	required := []struct {
		name string
		dst  *int
	}{
		{dataset.ColumnNextReminderDate, &cols.date},
		{dataset.ColumnPhoneNumber, &cols.phone},
		{dataset.ColumnAvgKmPerMonth, &cols.avgKm},
	}

	for _, col := range required {
		idx, ok := byName[col.name]
		if !ok {
			return columnIndexes{}, fmt.Errorf("missing required column %q", col.name)
		}
		*col.dst = idx
	}

	return cols, nil
}

// parseReminderDate accepts either a bare date or a combined date-time cell
// and keeps only the date portion. The result is anchored in the local zone
// so the staleness comparison against today's local midnight is
// apples-to-apples; parsing in UTC would drop rows dated today in any
// UTC-negative zone.
func parseReminderDate(value string) (time.Time, error) {
	str := strings.TrimSpace(value)
	if str == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(str) > 10 {
		str = str[:10]
	}
	return time.ParseInLocation(models.DateLayout, str, time.Local)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
