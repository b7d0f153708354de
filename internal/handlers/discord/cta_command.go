package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/hysteriagg/muster/internal/models"
	"github.com/hysteriagg/muster/internal/services/cta"
)

func (b *Bot) ctaCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "cta",
			Description: "Open an attendance window for an event",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "event",
					Description: "Event type, or OTHERS for an ad-hoc event",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Name of the ad-hoc event (OTHERS only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "points",
					Description: "Point value of the ad-hoc event (OTHERS only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "duration",
					Description: "Window length in minutes",
				},
			},
		},
		handler: b.handleCTA,
	}
}

func (b *Bot) endCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "end",
			Description: "Close the attendance window in this channel",
		},
		handler: b.handleEnd,
	}
}

func (b *Bot) attendanceCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "cta_attendance",
			Description: "Look up who attended a past event",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "event",
					Description: "Event type",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Civil date, MM/DD/YYYY",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "timestamp",
					Description: "Exact window when several ran that day",
				},
			},
		},
		handler: b.handleAttendance,
	}
}

func (b *Bot) handleCTA(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	options := optionMap(i)

	input := &cta.OpenInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		CreatorID:   i.Member.User.ID,
		CreatorName: memberTag(i),
		EventName:   options["event"].StringValue(),
	}
	if opt, ok := options["description"]; ok {
		input.Description = opt.StringValue()
	}
	if opt, ok := options["points"]; ok {
		input.Points = int(opt.IntValue())
	}
	if opt, ok := options["duration"]; ok {
		input.Duration = time.Duration(opt.IntValue()) * time.Minute
	}

	ctx := context.Background()

	output, err := b.ctaService.Open(ctx, input)
	if err != nil {
		switch err {
		case cta.ErrUnknownEvent:
			return RespondWithEphemeralMessage(s, i,
				fmt.Sprintf("Unknown event `%s`. Use /list_events to see the table, or OTHERS for an ad-hoc event.",
					models.NormalizeEventName(input.EventName)))
		case cta.ErrMissingDescription, cta.ErrInvalidPoints:
			return RespondWithEphemeralMessage(s, i,
				"OTHERS events need a description and a positive point value.")
		case cta.ErrCTAAlreadyOpen:
			return RespondWithEphemeralMessage(s, i,
				"A CTA is already open in this channel. Use /end to close it first.")
		default:
			log.Printf("Error opening CTA: %v", err)
			return RespondWithError(s, i, "Failed to open the CTA.")
		}
	}

	window := output.CTA

	// The code goes only to the opener, members hear it in voice
	if err := RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"CTA for **%s** is open. Attendance code: **%s** (closes <t:%d:R>).",
		window.EventType, window.Code, window.ExpiresAt.Unix())); err != nil {
		return err
	}

	msg, err := s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title: fmt.Sprintf("%s muster call", window.EventType),
				Description: fmt.Sprintf(
					"Enter the attendance code before the window closes <t:%d:R> to be counted.",
					window.ExpiresAt.Unix()),
				Color: 0x00ff00, // Green color
				Fields: []*discordgo.MessageEmbedField{
					{
						Name:   "Points",
						Value:  fmt.Sprintf("%d", window.Points),
						Inline: true,
					},
				},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Enter Code",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonEnterCode + i.ChannelID,
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Error sending CTA announcement: %v", err)
		return nil
	}

	if err := b.ctaService.SetMessage(ctx, &cta.SetMessageInput{
		ChannelID: i.ChannelID,
		MessageID: msg.ID,
	}); err != nil {
		log.Printf("Error recording CTA announcement message: %v", err)
	}

	return nil
}

func (b *Bot) handleEnd(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if ok, err := b.requireSenate(s, i); !ok {
		return err
	}

	output, err := b.ctaService.Close(context.Background(), &cta.CloseInput{
		ChannelID:    i.ChannelID,
		ClosedBy:     i.Member.User.ID,
		ClosedByName: memberTag(i),
	})
	if err != nil {
		log.Printf("Error closing CTA: %v", err)
		return RespondWithError(s, i, "Failed to close the CTA.")
	}

	if !output.Closed {
		return RespondWithEphemeralMessage(s, i, "No active CTA in this channel.")
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Closed **%s** with %d attendees.",
		output.Entry.EventType, len(output.Entry.Attendees)))
}

func (b *Bot) handleAttendance(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i)

	input := &cta.AttendanceInput{
		EventName: options["event"].StringValue(),
		Date:      options["date"].StringValue(),
	}
	if opt, ok := options["timestamp"]; ok {
		input.Timestamp = opt.StringValue()
	}

	output, err := b.ctaService.Attendance(context.Background(), input)
	if err != nil {
		if err == cta.ErrNoAttendanceFound {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
				"No %s window found on %s.",
				models.NormalizeEventName(input.EventName), input.Date))
		}
		log.Printf("Error querying attendance: %v", err)
		return RespondWithError(s, i, "Failed to look up attendance.")
	}

	if output.Entry == nil {
		var lines strings.Builder
		for _, timestamp := range output.Timestamps {
			fmt.Fprintf(&lines, "- `%s`\n", timestamp)
		}
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
			"Several windows match. Re-run with one of these timestamps:\n%s",
			lines.String()))
	}

	return RespondWithEmbed(s, i,
		fmt.Sprintf("%s attendance", output.Entry.EventType),
		fmt.Sprintf("%s (%d points)", output.Entry.Timestamp, output.Entry.Points),
		[]*discordgo.MessageEmbedField{
			{
				Name:  fmt.Sprintf("Attendees (%d)", len(output.Entry.Attendees)),
				Value: renderAttendees(output.Entry.Attendees),
			},
		})
}

func renderAttendees(attendees []*models.HistoryAttendee) string {
	if len(attendees) == 0 {
		return "Nobody joined this window."
	}

	var lines strings.Builder
	for _, attendee := range attendees {
		name := attendee.Name
		if name == "" {
			name = attendee.MemberID
		}
		fmt.Fprintf(&lines, "**%s** (%s) — %s\n", attendee.IGN, attendee.Class, name)
	}
	return lines.String()
}

func (b *Bot) handleEnterCodeButton(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	return RespondWithModal(s, i, ModalSubmitCode+channelID, "Enter attendance code",
		[]discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  TextInputCode,
						Label:     "Attendance code",
						Style:     discordgo.TextInputShort,
						Required:  true,
						MaxLength: 16,
					},
				},
			},
		})
}

func (b *Bot) handleCodeSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	code := modalInputValue(i.ModalSubmitData(), TextInputCode)

	output, err := b.ctaService.Join(context.Background(), &cta.JoinInput{
		ChannelID:  channelID,
		MemberID:   i.Member.User.ID,
		MemberName: memberDisplayName(i),
		MemberTag:  memberTag(i),
		Code:       code,
	})
	if err != nil {
		// Rejections go back to the member privately, nothing is logged
		switch err {
		case cta.ErrCTANotActive:
			return RespondWithEphemeralMessage(s, i, "This CTA is no longer taking entries.")
		case cta.ErrNotRegistered:
			return RespondWithEphemeralMessage(s, i, "Register first with /register so attendance can be tracked.")
		case cta.ErrInvalidCode:
			return RespondWithEphemeralMessage(s, i, "That code is not right. Check it and try again.")
		case cta.ErrAlreadyJoined:
			return RespondWithEphemeralMessage(s, i, "You are already counted for this CTA.")
		default:
			log.Printf("Error joining CTA: %v", err)
			return RespondWithError(s, i, "Failed to record your attendance.")
		}
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"You are counted for **%s**! +%d points, %d total.",
		output.EventType, output.Points, output.TotalPoints))
}

// modalInputValue digs a text input's value out of a modal submission
func modalInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			input, ok := component.(*discordgo.TextInput)
			if !ok {
				continue
			}
			if input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
