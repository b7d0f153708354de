package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hysteriagg/muster/internal/services/cta"
	"github.com/hysteriagg/muster/internal/services/ledger"
)

// Custom ID prefixes for the join flow components
const (
	// ButtonEnterCode prefixes the announcement button, the suffix is the
	// channel ID
	ButtonEnterCode = "cta:enter:"

	// ModalSubmitCode prefixes the code entry modal, the suffix is the
	// channel ID
	ModalSubmitCode = "cta:code:"

	// TextInputCode is the code field inside the modal
	TextInputCode = "cta_code"
)

// ClosedMessage is posted in the channel when a window stops taking joins
const ClosedMessage = "Event registration has closed."

// Bot represents the Discord bot instance
type Bot struct {
	session       *discordgo.Session
	commands      map[string]CommandHandler
	commandIDs    map[string]string // Maps command name to command ID
	ctaService    cta.Service
	ledgerService ledger.Service
	config        *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Role that may run administrative commands
	SenateRoleID string

	// CTA service
	CTAService cta.Service

	// Ledger service
	LedgerService ledger.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.CTAService == nil {
		return nil, errors.New("cta service cannot be nil")
	}

	if cfg.LedgerService == nil {
		return nil, errors.New("ledger service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:       session,
		commands:      make(map[string]CommandHandler),
		commandIDs:    make(map[string]string),
		ctaService:    cfg.CTAService,
		ledgerService: cfg.LedgerService,
		config:        cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		b.ctaCommand(),
		b.endCommand(),
		b.attendanceCommand(),
		b.registerCommand(),
		b.profileCommand(),
		b.pointsCommand(),
		b.leaderboardCommand(),
		b.listEventsCommand(),
		b.setEventCommand(),
		b.addPointsCommand(),
		b.addPointsBatchCommand(),
		b.resetPointsCommand(),
		b.exportPointsCommand(),
		b.auditLogCommand(),
	}

	for _, handler := range handlers {
		if err := b.RegisterCommand(handler); err != nil {
			return fmt.Errorf("failed to register %s command: %w", handler.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Register the command with Discord
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle the announcement button
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	case discordgo.InteractionModalSubmit:
		// Handle the code entry modal
		if err := b.handleModalSubmit(s, i); err != nil {
			log.Printf("Error handling modal submit: %v", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, ButtonEnterCode) {
		channelID := strings.TrimPrefix(customID, ButtonEnterCode)
		return b.handleEnterCodeButton(s, i, channelID)
	}

	return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
}

// handleModalSubmit handles modal submissions
func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.ModalSubmitData().CustomID

	if strings.HasPrefix(customID, ModalSubmitCode) {
		channelID := strings.TrimPrefix(customID, ModalSubmitCode)
		return b.handleCodeSubmit(s, i, channelID)
	}

	return RespondWithError(s, i, fmt.Sprintf("Unknown modal: %s", customID))
}

// isSenate reports whether the interacting member holds the senate role.
// With no role configured every member passes, which keeps development
// guilds usable.
func (b *Bot) isSenate(i *discordgo.InteractionCreate) bool {
	if b.config.SenateRoleID == "" {
		return true
	}
	if i.Member == nil {
		return false
	}
	for _, roleID := range i.Member.Roles {
		if roleID == b.config.SenateRoleID {
			return true
		}
	}
	return false
}

// requireSenate rejects non-senate members with an ephemeral reply.
// Returns true when the caller may proceed.
func (b *Bot) requireSenate(s *discordgo.Session, i *discordgo.InteractionCreate) (bool, error) {
	if b.isSenate(i) {
		return true, nil
	}
	return false, RespondWithEphemeralMessage(s, i, "This command is restricted to senate members.")
}

// CTAClosed retires the announcement message and posts the closure notice.
// Both edits are best effort, the window is already closed.
func (b *Bot) CTAClosed(ctx context.Context, notice *cta.ClosedNotice) error {
	if notice.MessageID != "" {
		emptyComponents := []discordgo.MessageComponent{}
		_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel:    notice.ChannelID,
			ID:         notice.MessageID,
			Components: &emptyComponents,
		})
		if err != nil {
			log.Printf("Failed to retire announcement %s in channel %s: %v",
				notice.MessageID, notice.ChannelID, err)
		}
	}

	if _, err := b.session.ChannelMessageSend(notice.ChannelID, ClosedMessage); err != nil {
		return fmt.Errorf("failed to post closure notice: %w", err)
	}

	return nil
}
