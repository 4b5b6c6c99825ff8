// Package cli defines the cobra command tree for the blog server.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cppla/blog/config"
	"github.com/cppla/blog/utils"
)

var flagConfig string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blog",
		Short:         "Blog backend for posts and comments",
		Long:          "An HTTP backend to create, read, update and delete blog posts and the comments attached to them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "path to the JSON config file")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig reads the --config file and environment, then initialises the logger.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.AppConfig{}, err
	}
	if err := utils.InitLogger(cfg); err != nil {
		return config.AppConfig{}, fmt.Errorf("init logger: %w", err)
	}
	return cfg, nil
}

// openDB connects to the configured database; SQL logs go to the application logger.
func openDB(cfg config.AppConfig) (*gorm.DB, error) {
	return config.OpenDatabase(cfg, zap.NewStdLog(utils.Logger))
}

// closeDB closes the pool, logging any error.
func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		utils.Sugar.Warnf("closing database: %v", err)
	}
}
