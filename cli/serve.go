package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cppla/blog/config"
	"github.com/cppla/blog/migrations"
	"github.com/cppla/blog/models"
	"github.com/cppla/blog/routes"
	"github.com/cppla/blog/utils"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Open the database, bring the schema up to date and serve the blog API until SIGINT or SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides APP_PORT)")

	return cmd
}

func runServe(ctx context.Context, port string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.AppPort = port
	}
	defer func() { _ = utils.Logger.Sync() }()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := prepareSchema(db, cfg); err != nil {
		return err
	}

	r, err := routes.SetupRouter(db, cfg)
	if err != nil {
		return err
	}

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	srv := utils.NewServer(":"+cfg.AppPort, r, utils.DefaultReadTimeout, utils.DefaultWriteTimeout)
	if err := srv.ListenAndServe(ctx); err != nil {
		utils.Logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	return nil
}

// prepareSchema runs gorm AutoMigrate when DBAutoMigrate is set, goose migrations otherwise.
func prepareSchema(db *gorm.DB, cfg config.AppConfig) error {
	if cfg.DBAutoMigrate {
		return config.AutoMigrate(db, &models.Post{}, &models.Comment{})
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return migrations.Up(sqlDB, cfg.DBDriver, zap.NewStdLog(utils.Logger))
}
