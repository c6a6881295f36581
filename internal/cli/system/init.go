package system

import (
	"fmt"

	"github.com/julianstephens/healthlit/internal/cli"
	"github.com/julianstephens/healthlit/internal/constants"
	"github.com/julianstephens/healthlit/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Drop and recreate all tables after initialization. Deletes every record."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Force {
		if err := ctx.Store.Reset(storage.ResetFull); err != nil {
			return fmt.Errorf("failed to reset existing storage: %w", err)
		}
		ctx.Println("Dropped existing tables")
	}

	ctx.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())
	return nil
}
