package constants

const (
	AppName            = "healthlit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/healthlit/healthlit.db"
	Version            = "v0.3.0"

	// DateFormat is the ISO date layout every stored date uses (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the ISO time-of-day layout for measurements (HH:MM:SS)
	TimeFormat = "15:04:05"

	// ShortTimeFormat is accepted on input and widened to TimeFormat
	ShortTimeFormat = "15:04"

	// Environment variables
	EnvConfig           = "HEALTHLIT_CONFIG"
	EnvDebug            = "HEALTHLIT_DEBUG"
	EnvDBConnection     = "HEALTHLIT_DB_CONNECTION"
	EnvFileName         = ".env"
	PostgresKeyringHint = "postgres"

	// Table names
	TableDailyLogs    = "daily_logs"
	TableMeals        = "meals"
	TableMeasurements = "measurements"

	// Input bounds
	MinSleepQuality = 0
	MaxSleepQuality = 100

	// Chart defaults
	DefaultChartWidth  = 60
	DefaultChartHeight = 12
)
