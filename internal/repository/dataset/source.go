package dataset

import "context"

// Column names form the external contract with whoever produces the dataset;
// they must not be renamed.
const (
	ColumnNextReminderDate = "next_reminder_date"
	ColumnPhoneNumber      = "phone_number"
	ColumnAvgKmPerMonth    = "avg_km_per_month"
)

// Source delivers tabular prediction data as a header row plus string cells.
// Implementations must not retain the returned slices.
type Source interface {
	Read(ctx context.Context) (header []string, rows [][]string, err error)
}
