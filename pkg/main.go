package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/cache"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/console"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/prefs"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/services"
)

// AppVersion follows the releases of the Chyrp Pro backend it talks to.
const AppVersion = "1.0.0"

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString("  ____ _                         ____\n / ___| |__  _   _ _ __ _ __    |  _ \\ _ __ ___\n| |   | '_ \\| | | | '__| '_ \\   | |_) | '__/ _ \\\n| |___| | | | |_| | |  | |_) |  |  __/| | | (_) |\n \\____|_| |_|\\__, |_|  | .__/   |_|   |_|  \\___/\n             |___/     |_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Chyrp Pro"), AppVersion)
	fmt.Printf("The terminal client for the Chyrp Pro blogging platform\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	_ = godotenv.Load()
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetDefault("backend.base_url", "http://localhost:8000")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("No settings file found, using defaults.")
	}

	// Prepare the in-process memoization store
	if err := cache.Initialize(); err != nil {
		log.Error().Err(err).Msg("An error occurred when initializing cache. Content rendering will not be memoized.")
	}

	gateway := api.NewClient(viper.GetString("backend.base_url"))
	session := services.NewSessionState(gateway)
	display := prefs.Load()

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 5m", func() { session.SweepExpired() })
	quartz.Start()

	app := console.New(gateway, session, display, os.Stdin, os.Stdout)
	app.Run(context.Background())

	quartz.Stop()
}
