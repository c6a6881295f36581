package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/logger"
	"github.com/julianstephens/healthlit/internal/models"
	"github.com/julianstephens/healthlit/internal/tracker"
	"github.com/julianstephens/healthlit/internal/validation"
)

type DoctorCmd struct {
	Verbose bool `short:"v" help:"List every problem found, not just the counts."`
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false

	// Check 1: DB reachable
	snap, err := checkDBReachable(ctx)
	dbReachable := err == nil
	if err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Database reachable: OK (%d daily logs, %d meals, %d measurements)\n",
			len(snap.DailyLogs), len(snap.Meals), len(snap.Measurements))
	}

	var result validation.ValidationResult
	if dbReachable {
		result = validation.CheckIntegrity(snap)
	}

	// Check 2: every record passes range validation
	if dbReachable {
		if n := result.Count(validation.ConflictInvalidRecord); n > 0 {
			ctx.Printf("❌ Record validation: FAIL\n")
			ctx.Printf("   %d record(s) out of range\n", n)
			hasError = true
		} else {
			ctx.Printf("✓ Record validation: OK\n")
		}
	} else {
		ctx.Printf("⊘ Record validation: SKIPPED (database not reachable)\n")
	}

	// Check 3: children still point at a daily log with the same date
	if dbReachable {
		orphans := result.Count(validation.ConflictOrphanedMeal) + result.Count(validation.ConflictOrphanedMeasurement)
		mismatches := result.Count(validation.ConflictDateMismatch)
		if orphans+mismatches > 0 {
			ctx.Printf("⚠ Parent links: WARNING\n")
			ctx.Printf("   %d orphaned record(s), %d date mismatch(es)\n", orphans, mismatches)
		} else {
			ctx.Printf("✓ Parent links: OK\n")
		}
	} else {
		ctx.Printf("⊘ Parent links: SKIPPED (database not reachable)\n")
	}

	// Check 4: dates with several daily logs
	if dbReachable {
		if n := result.Count(validation.ConflictSharedDate); n > 0 {
			ctx.Printf("ℹ Shared dates: %d date(s) have more than one daily log\n", n)
		} else {
			ctx.Printf("✓ Shared dates: OK\n")
		}
	} else {
		ctx.Printf("⊘ Shared dates: SKIPPED (database not reachable)\n")
	}

	// Check 5: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		ctx.Printf("❌ Clock/timezone: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Clock/timezone: OK\n")
	}

	if cmd.Verbose {
		if p := logger.Path(); p != "" {
			ctx.Printf("ℹ Log file: %s\n", p)
		}
		if result.HasConflicts() {
			ctx.Println()
			ctx.Printf("%s", result.FormatReport())
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Some checks failed. Please review the errors above.")
		return errors.New("diagnostics failed")
	}

	ctx.Println("All checks passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) (models.Snapshot, error) {
	if err := ctx.Store.Load(); err != nil {
		return models.Snapshot{}, err
	}
	return tracker.Reload(ctx.Store)
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock reports year %d", now.Year())
	}
	if _, err := time.LoadLocation("Local"); err != nil {
		return fmt.Errorf("failed to load local timezone: %w", err)
	}
	return nil
}
