package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/SpinWheel_Go/internal/config"
	"github.com/osse101/SpinWheel_Go/internal/discord"
	"github.com/osse101/SpinWheel_Go/internal/logger"
)

// DefaultHealthPort serves the bot's /healthz endpoint
const DefaultHealthPort = "8082"

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.NewConfig(
		getEnv("LOG_LEVEL", config.DefaultLogLevel),
		getEnv("LOG_FORMAT", config.DefaultLogFormat),
		"spinwheel-discord",
		os.Getenv("VERSION"),
		getEnv("ENVIRONMENT", config.DefaultEnvironment),
		false,
	))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	httpServer := discord.NewHTTPServer(getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort), bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Previously registered commands keep working
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig loads and validates Discord bot configuration from environment variables
func loadConfig() (discord.Config, error) {
	if err := config.ValidateBotEnv(); err != nil {
		return discord.Config{}, err
	}

	secret := os.Getenv("JWT_SECRET")
	if len(secret) < 32 {
		slog.Warn("JWT_SECRET is shorter than 32 bytes")
	}

	apiURL := getEnv("API_URL", config.DefaultAPIURL)
	slog.Info("Configured API URL", "url", apiURL)

	return discord.Config{
		Token:     os.Getenv("DISCORD_TOKEN"),
		AppID:     os.Getenv("DISCORD_APP_ID"),
		APIURL:    apiURL,
		JWTSecret: secret,
		JWTIssuer: getEnv("JWT_ISSUER", config.DefaultJWTIssuer),
	}, nil
}

// getCommandFactories returns every slash command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.SpinCommand,
		discord.CooldownCommand,
		discord.HistoryCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
