package cli

//
// maintenance.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/urfave/cli/v3"

	"gitlab.com/kabes/go-mygpo/internal/state"
)

func newMaintenanceCmd() *cli.Command {
	return &cli.Command{
		Name:   "maintenance",
		Usage:  "vacuum and optimize the state database",
		Action: wrap(maintenanceCmd),
	}
}

func maintenanceCmd(ctx context.Context, _ *cli.Command, injector do.Injector) error {
	store := do.MustInvoke[*state.Store](injector)

	if err := store.Maintenance(ctx); err != nil {
		return fmt.Errorf("maintenance error: %w", err)
	}

	//nolint:forbidigo
	fmt.Println("Done")

	return nil
}
