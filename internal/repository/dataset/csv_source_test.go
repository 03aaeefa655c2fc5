package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceRead(t *testing.T) {
	path := writeFile(t, "next_reminder_date,phone_number,avg_km_per_month\n"+
		"2031-01-15,62812345678,1200.5\n"+
		"2031-01-16,62823456789,900\n")

	header, rows, err := NewCSVSource(path, nil).Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{ColumnNextReminderDate, ColumnPhoneNumber, ColumnAvgKmPerMonth}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2031-01-15", "62812345678", "1200.5"}, rows[0])
}

func TestCSVSourceMissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), nil)

	_, _, err := source.Read(context.Background())

	// Absence must stay distinguishable from corruption for the loader's
	// diagnostics.
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVSourceMalformedFile(t *testing.T) {
	path := writeFile(t, "next_reminder_date,phone_number\n\"unterminated,62812345678\n")

	_, _, err := NewCSVSource(path, nil).Read(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
}

func TestCSVSourceEmptyFile(t *testing.T) {
	path := writeFile(t, "")

	_, _, err := NewCSVSource(path, nil).Read(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, os.ErrNotExist)
}
