package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	api "tweetmood/cmd/api"
	authUsecase "tweetmood/internal/auth/usecase"
	reviewRepo "tweetmood/internal/review/repository"
	reviewUsecase "tweetmood/internal/review/usecase"
	sentimentUsecase "tweetmood/internal/sentiment/usecase"
	"tweetmood/pkg/config"
	"tweetmood/pkg/database"
	"tweetmood/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tweetmood",
		Short:        "Tweet sentiment web page with user reviews",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the reviews table if it does not exist",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "classify <text...>",
			Short: "Print the sentiment label of a piece of text",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runClassify,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close(db)

	// Initialize repositories
	reviewRepository := reviewRepo.NewGormReviewRepository(db)
	if err := reviewRepository.Migrate(cmd.Context()); err != nil {
		slog.Error("[Main] failed to migrate database", "error", err)
		return err
	}

	// Initialize use cases (dependency injection)
	authenticator, err := authUsecase.NewStaticAuthenticator(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	authUsecaseInstance := authUsecase.NewAuthUsecase(authenticator, cfg)
	reviewUsecaseInstance := reviewUsecase.NewReviewUsecase(reviewRepository)
	sentimentUsecaseInstance := sentimentUsecase.NewSentimentUsecase()

	// Initialize HTTP handler
	handler := api.NewHandler(sentimentUsecaseInstance, reviewUsecaseInstance, authUsecaseInstance, cfg)

	// Start server
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := handler.Run(ctx, cfg.Addr()); err != nil {
		slog.Error("[Main] server stopped with error", "error", err)
		return err
	}
	slog.Info("[Main] server stopped")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	_, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := reviewRepo.NewGormReviewRepository(db).Migrate(cmd.Context()); err != nil {
		slog.Error("[Main] failed to migrate database", "error", err)
		return err
	}
	slog.Info("[Main] reviews table ready")
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	label := sentimentUsecase.NewSentimentUsecase().Classify(strings.Join(args, " "))
	_, err := fmt.Fprintln(cmd.OutOrStdout(), label)
	return err
}

// bootstrap loads configuration, installs the logger and opens the database.
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	db, err := database.NewConnection(cfg)
	if err != nil {
		slog.Error("[Main] failed to connect to database", "error", err)
		return nil, nil, err
	}
	return cfg, db, nil
}
