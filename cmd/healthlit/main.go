package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/cli/logs"
	"github.com/julianstephens/healthlit/internal/cli/meals"
	"github.com/julianstephens/healthlit/internal/cli/measurements"
	"github.com/julianstephens/healthlit/internal/cli/system"
	"github.com/julianstephens/healthlit/internal/cli/views"
	"github.com/julianstephens/healthlit/internal/constants"
	apperrors "github.com/julianstephens/healthlit/internal/errors"
	"github.com/julianstephens/healthlit/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite path, .json path, PostgreSQL URL/DSN, or 'postgres' to use the keyring. PostgreSQL credentials must NOT be embedded in the connection string." type:"string" default:"${config}" env:"${env_config}"`
	Debug   bool   `help:"Log debug output to stderr." env:"${env_debug}"`

	Init   system.InitCmd   `cmd:"" help:"Initialize healthlit storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Reset  system.ResetCmd  `cmd:"" hidden:"" help:"Delete every record."`
	View   views.ViewCmd    `cmd:"" help:"Show filtered daily logs, meals and measurements."`
	Chart  views.ChartCmd   `cmd:"" help:"Chart glucose and uric acid for the filtered measurements."`
	Log    struct {
		Add    logs.LogAddCmd    `cmd:"" help:"Add a daily log."`
		List   logs.LogListCmd   `cmd:"" help:"List daily logs."`
		Show   logs.LogShowCmd   `cmd:"" help:"Show a daily log."`
		Edit   logs.LogEditCmd   `cmd:"" help:"Edit a daily log."`
		Delete logs.LogDeleteCmd `cmd:"" help:"Delete a daily log."`
	} `cmd:"" help:"Manage daily logs."`
	Meal struct {
		Add  meals.MealAddCmd  `cmd:"" help:"Add a meal to the latest daily log of its date."`
		List meals.MealListCmd `cmd:"" help:"List meals."`
	} `cmd:"" help:"Manage meals."`
	Measure struct {
		Add  measurements.MeasureAddCmd  `cmd:"" help:"Add a glucose and uric acid reading."`
		List measurements.MeasureListCmd `cmd:"" help:"List measurements."`
	} `cmd:"" help:"Manage measurements."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage PostgreSQL credentials in the OS keyring."`
}

func parserOptions() []kong.Option {
	return []kong.Option{
		kong.Name(constants.AppName),
		kong.Description("Personal health tracker: daily logs, meals, glucose and uric acid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"config":     constants.DefaultConfigPath,
			"env_config": constants.EnvConfig,
			"env_debug":  constants.EnvDebug,
		},
	}
}

// loadEnv reads an optional .env file. Variables already set win.
func loadEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
	}
}

func main() {
	loadEnv(constants.EnvFileName)

	ctx := kong.Parse(&CLI, parserOptions()...)

	configDir, err := cli.ConfigDir(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	loadEnv(filepath.Join(configDir, constants.EnvFileName))

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir,
		RunID:     uuid.NewString(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	logger.Debug("Starting", "command", ctx.Command(), "version", constants.Version)

	appCtx := &cli.Context{}
	command := ctx.Command()

	// Keyring commands manage the credentials a store would need, so they run without one.
	if !strings.HasPrefix(command, "keyring") {
		store, err := cli.NewProvider(CLI.Config)
		if err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
		appCtx.Store = store

		// init creates the store and doctor reports on loading it
		if command != "init" && command != "doctor" {
			if err := store.Load(); err != nil {
				store.Close()
				apperrors.Fatal(err)
			}
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		if appCtx.Store != nil {
			appCtx.Store.Close()
		}
		apperrors.Fatal(err)
	}
}
