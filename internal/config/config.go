package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DatasetSourceKind selects which tabular backend feeds the prediction loader.
type DatasetSourceKind string

const (
	DatasetSourceCSV    DatasetSourceKind = "csv"
	DatasetSourceSheets DatasetSourceKind = "sheets"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Notif    NotifConfig
	Dataset  DatasetConfig
	Reminder ReminderConfig
	MongoDB  MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port       string
	StaticDir  string
	CORSOrigin string
}

// NotifConfig contains credentials and options for the messaging gateway.
// BaseURL is joined with the send path by plain string concatenation, so it
// must be supplied with a trailing slash (e.g. "https://gateway.example.com/").
type NotifConfig struct {
	APIKey         string
	BaseURL        string
	ImageURL       string
	TimeoutSeconds int
}

// DatasetConfig describes where prediction rows are read from.
type DatasetConfig struct {
	Source          DatasetSourceKind
	Path            string
	CredentialsPath string
	SpreadsheetID   string
	SheetRange      string
}

// ReminderConfig holds the optional scheduled-dispatch settings. An empty
// CronSchedule disables the scheduler entirely.
type ReminderConfig struct {
	CronSchedule string
}

// MongoDBConfig holds settings for the optional dispatch audit log. An empty
// URI disables it.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// defaultImageURL is the promotional image attached to every reminder message.
const defaultImageURL = "https://www.suarapemredkalbar.com/public/media/post/2021/01/12/728x528/1610461202_ayo_ke_ahass_konsumen_terbaik_astra_motor_bisa_menikmati_layanan_terbaik_servis_kendaraan.jpeg"

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	timeout, err := strconv.Atoi(getenvWithDefault("NOTIF_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("NOTIF_TIMEOUT_SECONDS must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       getenvWithDefault("APP_PORT", "8001"),
			StaticDir:  getenvWithDefault("STATIC_DIR", "static"),
			CORSOrigin: getenvWithDefault("CORS_ALLOW_ORIGIN", "http://localhost:3000"),
		},
		Notif: NotifConfig{
			APIKey:         os.Getenv("NOTIF_API_KEY"),
			BaseURL:        os.Getenv("NOTIF_BASE_URL"),
			ImageURL:       getenvWithDefault("NOTIF_IMAGE_URL", defaultImageURL),
			TimeoutSeconds: timeout,
		},
		Dataset: DatasetConfig{
			Source:          DatasetSourceKind(getenvWithDefault("DATASET_SOURCE", string(DatasetSourceCSV))),
			Path:            getenvWithDefault("DATASET_PATH", "model/dataset.csv"),
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATASET_ID"),
			SheetRange:      getenvWithDefault("DATASET_SHEET_RANGE", "Dataset!A:C"),
		},
		Reminder: ReminderConfig{
			CronSchedule: os.Getenv("REMINDER_CRON_SCHEDULE"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "motocare"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. The
// messaging credentials are deliberately not required here: the dispatcher
// reports ServiceUnavailable at call time when they are absent.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Notif.TimeoutSeconds <= 0 {
		return errors.New("NOTIF_TIMEOUT_SECONDS must be positive")
	}

	switch c.Dataset.Source {
	case DatasetSourceCSV:
		if c.Dataset.Path == "" {
			return errors.New("DATASET_PATH must be provided for the csv source")
		}
	case DatasetSourceSheets:
		if c.Dataset.CredentialsPath == "" {
			return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided for the sheets source")
		}
		if c.Dataset.SpreadsheetID == "" {
			return errors.New("GOOGLE_SHEET_DATASET_ID must be provided for the sheets source")
		}
		if c.Dataset.SheetRange == "" {
			return errors.New("DATASET_SHEET_RANGE must not be empty")
		}
	default:
		return fmt.Errorf("unsupported DATASET_SOURCE %q", c.Dataset.Source)
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
