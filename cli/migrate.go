package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/cppla/blog/migrations"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list schema migrations",
		Long:      "Run the versioned schema migrations for the configured database driver. Defaults to up.",
		ValidArgs: []string{"up", "down", "status"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}
			return runMigrate(cmd, direction)
		},
	}
}

func runMigrate(cmd *cobra.Command, direction string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	out := log.New(cmd.OutOrStdout(), "", 0)

	switch direction {
	case "up":
		err = migrations.Up(sqlDB, cfg.DBDriver, out)
	case "down":
		err = migrations.Down(sqlDB, cfg.DBDriver, out)
	case "status":
		err = migrations.Status(sqlDB, cfg.DBDriver, out)
	}
	if err != nil {
		return err
	}

	version, err := migrations.Version(sqlDB, cfg.DBDriver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return nil
}
