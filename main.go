package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "starwars-api",
	Short:         "REST API for Star Wars characters, planets and user favorites",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default command)",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load users, characters and planets from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./service_conf.json)")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

func setup() (Config, *gorm.DB, error) {
	config, err := LoadConfig(configFile)

	if err != nil {
		return config, nil, err
	}

	SetupLogging(config.Log)

	db, err := SetupDatabaseConnection(config.Database)

	if err != nil {
		return config, nil, err
	}

	return config, db, nil
}

func closeDatabase(db *gorm.DB) {
	sqlDb, err := db.DB()

	if err != nil {
		return
	}

	if err := sqlDb.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, db, err := setup()

	if err != nil {
		return err
	}

	defer closeDatabase(db)

	app := NewApp(config, db)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	addr := fmt.Sprintf(":%d", config.Port)
	log.Info().Str("addr", addr).Msg("listening")

	return app.Listen(addr)
}

func runSeed(_ *cobra.Command, args []string) error {
	_, db, err := setup()

	if err != nil {
		return err
	}

	defer closeDatabase(db)

	s, err := LoadSeedFile(args[0])

	if err != nil {
		return err
	}

	if err := Seed(db, s); err != nil {
		return err
	}

	log.Info().
		Int("users", len(s.Users)).
		Int("characters", len(s.Characters)).
		Int("planets", len(s.Planets)).
		Msg("seed applied")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}
