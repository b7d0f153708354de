package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hysteriagg/muster/internal/common/civiltime"
	"github.com/hysteriagg/muster/internal/common/clock"
	"github.com/hysteriagg/muster/internal/common/codegen"
	"github.com/hysteriagg/muster/internal/common/uuid"
	"github.com/hysteriagg/muster/internal/handlers/discord"
	auditRepo "github.com/hysteriagg/muster/internal/repositories/audit"
	ctaRepo "github.com/hysteriagg/muster/internal/repositories/cta"
	eventsRepo "github.com/hysteriagg/muster/internal/repositories/events"
	memberRepo "github.com/hysteriagg/muster/internal/repositories/member"
	ctaService "github.com/hysteriagg/muster/internal/services/cta"
	ledgerService "github.com/hysteriagg/muster/internal/services/ledger"
)

func main() {
	// Load .env when present, real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	ctas, err := ctaRepo.NewRedis(&ctaRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create CTA repository: %v", err)
	}

	members, err := memberRepo.NewRedis(&memberRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create member repository: %v", err)
	}

	events, err := eventsRepo.NewRedis(&eventsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create events repository: %v", err)
	}

	audits, err := auditRepo.NewRedis(&auditRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create audit repository: %v", err)
	}

	// Seed the starter event table on first run
	if err := events.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed event table: %v", err)
	}

	// Civil time formatting for history and audit labels
	civilTime, err := civiltime.New(getEnv("TIME_ZONE", ""))
	if err != nil {
		log.Fatalf("Failed to create civil time formatter: %v", err)
	}

	systemClock := &clock.DefaultClock{}
	uuidGenerator := uuid.New()
	codeGenerator := codegen.New(&codegen.Config{})

	// Initialize the CTA service
	ctaSvc, err := ctaService.New(&ctaService.Config{
		DefaultDuration: time.Duration(getEnvInt("DEFAULT_CTA_MINUTES", 3)) * time.Minute,
		CodeLength:      getEnvInt("CODE_LENGTH", 4),
		CTARepo:         ctas,
		MemberRepo:      members,
		EventRepo:       events,
		AuditRepo:       audits,
		CodeGenerator:   codeGenerator,
		Clock:           systemClock,
		UUIDGenerator:   uuidGenerator,
		CivilTime:       civilTime,
	})
	if err != nil {
		log.Fatalf("Failed to create CTA service: %v", err)
	}

	// Initialize the ledger service
	ledgerSvc, err := ledgerService.New(&ledgerService.Config{
		MemberRepo:    members,
		EventRepo:     events,
		AuditRepo:     audits,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
		CivilTime:     civilTime,
	})
	if err != nil {
		log.Fatalf("Failed to create ledger service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Get the role allowed to run administrative commands
	senateRoleID := getEnv("SENATE_ROLE_ID", "")
	if senateRoleID == "" {
		log.Println("SENATE_ROLE_ID not set, administrative commands are open to everyone")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: applicationID,
		GuildID:       guildID,
		SenateRoleID:  senateRoleID,
		CTAService:    ctaSvc,
		LedgerService: ledgerSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// The bot posts closure notices, wire it in before any window can close
	ctaSvc.SetNotifier(bot)

	// Pick up windows left over from a previous process
	if err := ctaSvc.Reconcile(ctx); err != nil {
		log.Fatalf("Failed to reconcile open CTA windows: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q, not an integer", key, value)
		return defaultValue
	}
	return parsed
}
