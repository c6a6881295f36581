package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/storage"
)

// ResetCmd clears every table. Hidden from help; meant for development.
type ResetCmd struct {
	Soft bool `help:"Delete every row and keep the tables and id sequences (default)." xor:"mode"`
	Full bool `help:"Drop and recreate the tables instead of deleting rows." xor:"mode"`
	Yes  bool `short:"y" help:"Confirm the reset."`
}

func (c *ResetCmd) Validate() error {
	if c.Soft && c.Full {
		return errors.New("--soft and --full cannot be combined")
	}
	if !c.Yes {
		return errors.New("reset deletes every daily log, meal and measurement; pass --yes to confirm")
	}
	return nil
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	mode := storage.ResetSoft
	if c.Full {
		mode = storage.ResetFull
	}

	if err := ctx.Store.Reset(mode); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	ctx.Printf("✓ Storage reset (%s)\n", mode)
	return nil
}
