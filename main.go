package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"barmaja/config"
	"barmaja/database"
	"barmaja/locks"
	"barmaja/logging"
	"barmaja/payment"
	"barmaja/routers"
	"barmaja/utils"

	"github.com/spf13/cobra"
)

func main() {
	rootCommand := &cobra.Command{
		Use:   "barmaja",
		Short: "Run the Barmaja Academy API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
			logging.Init(config.AppConfig.LogLevel, config.AppConfig.LogFormat)
			for _, warning := range config.Warnings() {
				logging.Warn().Msg(warning)
			}
			if err := database.ConnectDb(); err != nil {
				logging.Fatal().Err(err).Msg("failed to connect to the database")
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	}

	rootCommand.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database tables",
			Run: func(cmd *cobra.Command, args []string) {
				if err := database.RunMigrations(database.Database.Db); err != nil {
					logging.Fatal().Err(err).Msg("migration failed")
				}
				logging.Info().Msg("migrations complete")
			},
		},
		&cobra.Command{
			Use:   "sweep",
			Short: "Remove stale pending enrollments once and exit",
			Run: func(cmd *cobra.Command, args []string) {
				deps := buildDeps(cmd.Context())
				utils.SweepPendingEnrollments(cmd.Context(), routers.EnrollmentService(deps), config.AppConfig.PendingTTL)
			},
		},
	)

	if err := rootCommand.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func buildDeps(ctx context.Context) routers.Deps {
	cfg := config.AppConfig
	deps := routers.Deps{
		Config:  cfg,
		DB:      database.Database.Db,
		Gateway: payment.NewClient(cfg.PaymentApiURL, cfg.PaymentApiKey, cfg.PaymentTimeout),
	}

	if cfg.RedisURL != "" {
		locker, err := locks.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to connect to redis")
		}
		deps.Locker = locker
	} else {
		deps.Locker = locks.NewLocal()
	}

	var mailer utils.Mailer = utils.LogMailer{}
	if cfg.SendgridApiKey != "" {
		mailer = utils.NewSendGridMailer(cfg.SendgridApiKey, cfg.EmailSender, cfg.EmailSenderName)
	}
	deps.Notifier = utils.NewNotifier(mailer)
	return deps
}

func serve() {
	if err := database.RunMigrations(database.Database.Db); err != nil {
		logging.Fatal().Err(err).Msg("migration failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := buildDeps(ctx)
	app := routers.NewApp(deps)

	scheduler, err := utils.InitializeEnrollmentScheduler(config.AppConfig.SweeperSchedule, routers.EnrollmentService(deps), config.AppConfig.PendingTTL)
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid SWEEPER_SCHEDULE")
	}

	go func() {
		<-ctx.Done()
		logging.Info().Msg("shutting down")
		<-scheduler.Stop().Done()
		if err := app.Shutdown(); err != nil {
			logging.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logging.Info().Str("port", config.AppConfig.Port).Msg("server is running")
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}
