package discord

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hysteriagg/muster/internal/models"
	"github.com/hysteriagg/muster/internal/services/ledger"
)

// Discord caps embed descriptions at 4096 characters, longer reports go
// out as file attachments
const maxEmbedDescription = 4000

func (b *Bot) setEventCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "set_event",
			Description: "Set or update an event's point value",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "event",
					Description: "Event type",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "points",
					Description: "Point value, must be positive",
					Required:    true,
				},
			},
		},
		handler: b.handleSetEvent,
	}
}

func (b *Bot) addPointsCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "addpoints",
			Description: "Grant points to a member by IGN",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "nickname",
					Description: "The member's in-game name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "points",
					Description: "Points to grant, must be positive",
					Required:    true,
				},
			},
		},
		handler: b.handleAddPoints,
	}
}

func (b *Bot) addPointsBatchCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "addpoints_batch",
			Description: "Grant points from an ign,points CSV file",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Name:        "file",
					Description: "CSV file with ign,points lines",
					Required:    true,
				},
			},
		},
		handler: b.handleAddPointsBatch,
	}
}

func (b *Bot) resetPointsCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "reset_points",
			Description: "Remove member point records",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "scope",
					Description: "What to reset",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Everyone", Value: "all"},
						{Name: "One member", Value: "user"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The member, required when scope is user",
				},
			},
		},
		handler: b.handleResetPoints,
	}
}

func (b *Bot) exportPointsCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "export_points",
			Description: "Export the points ledger as a CSV file",
		},
		handler: b.handleExportPoints,
	}
}

func (b *Bot) auditLogCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "audit_log",
			Description: "Show administrative actions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Civil date filter, MM/DD/YYYY",
				},
			},
		},
		handler: b.handleAuditLog,
	}
}

func (b *Bot) handleSetEvent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	options := optionMap(i)
	eventName := options["event"].StringValue()
	points := int(options["points"].IntValue())

	err := b.ledgerService.SetEvent(context.Background(), &ledger.SetEventInput{
		EventName: eventName,
		Points:    points,
		ActorID:   i.Member.User.ID,
		ActorName: memberTag(i),
	})
	if err != nil {
		if err == ledger.ErrInvalidPoints {
			return RespondWithEphemeralMessage(s, i, "Point values must be positive.")
		}
		log.Printf("Error setting event points: %v", err)
		return RespondWithError(s, i, "Failed to set the event.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"**%s** now grants %d points.", models.NormalizeEventName(eventName), points))
}

func (b *Bot) handleAddPoints(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	options := optionMap(i)
	ign := options["nickname"].StringValue()
	points := int(options["points"].IntValue())

	output, err := b.ledgerService.AddPoints(context.Background(), &ledger.AddPointsInput{
		IGN:       ign,
		Points:    points,
		ActorID:   i.Member.User.ID,
		ActorName: memberTag(i),
	})
	if err != nil {
		switch err {
		case ledger.ErrInvalidPoints:
			return RespondWithEphemeralMessage(s, i, "Point values must be positive.")
		case ledger.ErrIGNNotFound:
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("No member with IGN `%s`.", strings.TrimSpace(ign)))
		case ledger.ErrIGNAmbiguous:
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("More than one member registered IGN `%s`.", strings.TrimSpace(ign)))
		default:
			log.Printf("Error granting points: %v", err)
			return RespondWithError(s, i, "Failed to grant points.")
		}
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Granted %d points to **%s**, now at %d.", points, output.DisplayName, output.TotalPoints))
}

func (b *Bot) handleAddPointsBatch(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	options := optionMap(i)
	attachmentID, ok := options["file"].Value.(string)
	if !ok {
		return RespondWithEphemeralMessage(s, i, "Attach a CSV file.")
	}

	attachment, ok := i.ApplicationCommandData().Resolved.Attachments[attachmentID]
	if !ok {
		return RespondWithEphemeralMessage(s, i, "Attach a CSV file.")
	}

	csvData, err := downloadAttachment(attachment.URL)
	if err != nil {
		log.Printf("Error downloading batch file: %v", err)
		return RespondWithError(s, i, "Failed to download the file.")
	}

	output, err := b.ledgerService.AddPointsBatch(context.Background(), &ledger.AddPointsBatchInput{
		CSVData:   csvData,
		ActorID:   i.Member.User.ID,
		ActorName: memberTag(i),
	})
	if err != nil {
		if err == ledger.ErrEmptyBatch {
			return RespondWithEphemeralMessage(s, i, "The file has no grant lines.")
		}
		log.Printf("Error applying batch grant: %v", err)
		return RespondWithError(s, i, "Failed to apply the batch.")
	}

	report := renderBatchReport(output)
	summary := fmt.Sprintf("Batch done, %d succeeded, %d failed.", output.Succeeded, output.Failed)

	if len(report) > maxEmbedDescription {
		return RespondWithFile(s, i, summary, "batch_report.txt", "text/plain", strings.NewReader(report))
	}
	return RespondWithEphemeralEmbed(s, i, summary, report, nil)
}

func (b *Bot) handleResetPoints(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	options := optionMap(i)
	scope := ledger.ResetScope(options["scope"].StringValue())

	input := &ledger.ResetPointsInput{
		Scope:     scope,
		ActorID:   i.Member.User.ID,
		ActorName: memberTag(i),
	}

	if scope == ledger.ResetScopeUser {
		opt, ok := options["user"]
		if !ok {
			return RespondWithEphemeralMessage(s, i, "Pick a member when scope is user.")
		}
		input.MemberID = opt.UserValue(s).ID
	}

	output, err := b.ledgerService.ResetPoints(context.Background(), input)
	if err != nil {
		switch err {
		case ledger.ErrMemberNotFound:
			return RespondWithEphemeralMessage(s, i, "That member has no record to reset.")
		case ledger.ErrInvalidScope, ledger.ErrMissingMemberID:
			return RespondWithEphemeralMessage(s, i, "Scope must be all or user, with a member for user.")
		default:
			log.Printf("Error resetting points: %v", err)
			return RespondWithError(s, i, "Failed to reset points.")
		}
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Reset complete, removed %d member record(s).", output.Removed))
}

func (b *Bot) handleExportPoints(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	output, err := b.ledgerService.ExportCSV(context.Background(), &ledger.ExportCSVInput{
		ActorID:   i.Member.User.ID,
		ActorName: memberTag(i),
	})
	if err != nil {
		log.Printf("Error exporting points: %v", err)
		return RespondWithError(s, i, "Failed to export the ledger.")
	}

	return RespondWithFile(s, i,
		fmt.Sprintf("Ledger export, %d member(s).", output.MemberCount),
		"points_export.csv", "text/csv", strings.NewReader(output.CSV))
}

func (b *Bot) handleAuditLog(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	input := &ledger.AuditLogInput{}
	if opt, ok := optionMap(i)["date"]; ok {
		input.Date = opt.StringValue()
	}

	output, err := b.ledgerService.AuditLog(context.Background(), input)
	if err != nil {
		log.Printf("Error reading audit log: %v", err)
		return RespondWithError(s, i, "Failed to read the audit log.")
	}

	if len(output.Entries) == 0 {
		return RespondWithEphemeralMessage(s, i, "No audit entries match.")
	}

	report := renderAuditEntries(output.Entries)
	if len(report) > maxEmbedDescription {
		return RespondWithFile(s, i,
			fmt.Sprintf("%d audit entries.", len(output.Entries)),
			"audit_log.txt", "text/plain", strings.NewReader(report))
	}
	return RespondWithEphemeralEmbed(s, i, "Audit log", report, nil)
}

func downloadAttachment(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("attachment fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read attachment: %w", err)
	}

	return string(data), nil
}

func renderBatchReport(output *ledger.AddPointsBatchOutput) string {
	var lines strings.Builder
	for _, result := range output.Results {
		if result.Err != "" {
			fmt.Fprintf(&lines, "line %d: `%s` failed, %s\n", result.Line, result.IGN, result.Err)
			continue
		}
		fmt.Fprintf(&lines, "line %d: **%s** +%d, now at %d\n",
			result.Line, result.IGN, result.Points, result.TotalPoints)
	}
	return lines.String()
}

func renderAuditEntries(entries []*models.AuditLogEntry) string {
	var lines strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&lines, "`%s` **%s** by %s: %s\n",
			entry.Timestamp, entry.Action, entry.PerformedByName, entry.Details)
	}
	return lines.String()
}
