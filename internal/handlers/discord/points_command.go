package discord

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/hysteriagg/muster/internal/services/ledger"
)

var classChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Melee", Value: "MELEE"},
	{Name: "Mage", Value: "MAGE"},
	{Name: "Ranger", Value: "RANGER"},
	{Name: "Spec", Value: "SPEC"},
}

func (b *Bot) registerCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "register",
			Description: "Register your in-game name and class",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "ign",
					Description: "Your in-game name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "class",
					Description: "Your class",
					Required:    true,
					Choices:     classChoices,
				},
			},
		},
		handler: b.handleRegister,
	}
}

func (b *Bot) profileCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "profile",
			Description: "Show your registered profile",
		},
		handler: b.handleProfile,
	}
}

func (b *Bot) pointsCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "points",
			Description: "Look up point standings",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "scope",
					Description: "Whose points to show",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Everyone", Value: "all"},
						{Name: "Me", Value: "me"},
						{Name: "One member by IGN", Value: "ign"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "ign",
					Description: "In-game name, required when scope is ign",
				},
			},
		},
		handler: b.handlePoints,
	}
}

func (b *Bot) leaderboardCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Show the top members by points",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "How many rows to show",
				},
			},
		},
		handler: b.handleLeaderboard,
	}
}

func (b *Bot) listEventsCommand() CommandHandler {
	return &command{
		BaseCommand: BaseCommand{
			Name:        "list_events",
			Description: "Show the event point table",
		},
		handler: b.handleListEvents,
	}
}

func (b *Bot) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i)

	output, err := b.ledgerService.Register(context.Background(), &ledger.RegisterInput{
		MemberID: i.Member.User.ID,
		Name:     memberDisplayName(i),
		Tag:      memberTag(i),
		IGN:      options["ign"].StringValue(),
		Class:    options["class"].StringValue(),
	})
	if err != nil {
		switch err {
		case ledger.ErrMissingIGN, ledger.ErrMissingClass:
			return RespondWithEphemeralMessage(s, i, "Both an IGN and a class are required.")
		default:
			log.Printf("Error registering member: %v", err)
			return RespondWithError(s, i, "Failed to register.")
		}
	}

	verb := "registered"
	if output.Updated {
		verb = "updated"
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
		"Profile %s: **%s** (%s).", verb, output.Profile.IGN, output.Profile.Class))
}

func (b *Bot) handleProfile(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := b.ledgerService.Profile(context.Background(), &ledger.ProfileInput{
		MemberID: i.Member.User.ID,
	})
	if err != nil {
		if err == ledger.ErrMemberNotFound {
			return RespondWithEphemeralMessage(s, i, "You are not registered yet. Use /register first.")
		}
		log.Printf("Error fetching profile: %v", err)
		return RespondWithError(s, i, "Failed to fetch your profile.")
	}

	return RespondWithEphemeralEmbed(s, i, "Your profile", "",
		[]*discordgo.MessageEmbedField{
			{Name: "IGN", Value: output.Profile.IGN, Inline: true},
			{Name: "Class", Value: output.Profile.Class, Inline: true},
			{Name: "Total points", Value: fmt.Sprintf("%d", output.TotalPoints), Inline: true},
			{Name: "Events attended", Value: fmt.Sprintf("%d", output.GrantCount), Inline: true},
		})
}

func (b *Bot) handlePoints(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i)
	scope := options["scope"].StringValue()

	switch scope {
	case "all":
		output, err := b.ledgerService.PointsAll(context.Background(), &ledger.PointsAllInput{})
		if err != nil {
			log.Printf("Error listing points: %v", err)
			return RespondWithError(s, i, "Failed to list points.")
		}
		if len(output.Standings) == 0 {
			return RespondWithEphemeralMessage(s, i, "Nobody has registered yet.")
		}
		return RespondWithEmbed(s, i, "Point standings", renderStandings(output.Standings), nil)

	case "me":
		output, err := b.ledgerService.Points(context.Background(), &ledger.PointsInput{
			MemberID: i.Member.User.ID,
		})
		if err != nil {
			if err == ledger.ErrMemberNotFound {
				return RespondWithEphemeralMessage(s, i, "You are not registered yet. Use /register first.")
			}
			log.Printf("Error looking up points: %v", err)
			return RespondWithError(s, i, "Failed to look up your points.")
		}
		return respondWithStanding(s, i, output)

	case "ign":
		opt, ok := options["ign"]
		if !ok || strings.TrimSpace(opt.StringValue()) == "" {
			return RespondWithEphemeralMessage(s, i, "Provide an IGN when scope is ign.")
		}

		output, err := b.ledgerService.PointsByIGN(context.Background(), &ledger.PointsByIGNInput{
			IGN: opt.StringValue(),
		})
		if err != nil {
			switch err {
			case ledger.ErrIGNNotFound:
				return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
					"No member with IGN `%s`.", strings.TrimSpace(opt.StringValue())))
			case ledger.ErrIGNAmbiguous:
				return RespondWithEphemeralMessage(s, i, fmt.Sprintf(
					"More than one member registered IGN `%s`.", strings.TrimSpace(opt.StringValue())))
			default:
				log.Printf("Error looking up points by IGN: %v", err)
				return RespondWithError(s, i, "Failed to look up points.")
			}
		}

		return respondWithStanding(s, i, output)

	default:
		return RespondWithEphemeralMessage(s, i, "Scope must be all or ign.")
	}
}

func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	input := &ledger.LeaderboardInput{}
	if opt, ok := optionMap(i)["limit"]; ok {
		input.Limit = int(opt.IntValue())
	}

	output, err := b.ledgerService.Leaderboard(context.Background(), input)
	if err != nil {
		log.Printf("Error building leaderboard: %v", err)
		return RespondWithError(s, i, "Failed to build the leaderboard.")
	}

	if len(output.Standings) == 0 {
		return RespondWithEphemeralMessage(s, i, "Nobody has registered yet.")
	}

	return RespondWithEmbed(s, i, "Leaderboard", renderStandings(output.Standings), nil)
}

func (b *Bot) handleListEvents(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := b.ledgerService.ListEvents(context.Background(), &ledger.ListEventsInput{})
	if err != nil {
		log.Printf("Error listing events: %v", err)
		return RespondWithError(s, i, "Failed to list events.")
	}

	names := make([]string, 0, len(output.Events))
	for name := range output.Events {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines strings.Builder
	for _, name := range names {
		fmt.Fprintf(&lines, "**%s** — %d points\n", name, output.Events[name])
	}

	return RespondWithEmbed(s, i, "Event point table", lines.String(), nil)
}

func respondWithStanding(s *discordgo.Session, i *discordgo.InteractionCreate, output *ledger.PointsOutput) error {
	return RespondWithEmbed(s, i,
		fmt.Sprintf("%s (%s)", output.Profile.IGN, output.Profile.Class),
		"",
		[]*discordgo.MessageEmbedField{
			{Name: "Total points", Value: fmt.Sprintf("%d", output.TotalPoints), Inline: true},
			{Name: "Rank", Value: fmt.Sprintf("#%d", output.Rank), Inline: true},
			{Name: "Last event", Value: renderLastGrant(output), Inline: false},
		})
}

func renderStandings(standings []*ledger.Standing) string {
	var lines strings.Builder
	for _, standing := range standings {
		fmt.Fprintf(&lines, "`#%d` **%s** (%s) — %d points\n",
			standing.Rank, standing.IGN, standing.DisplayName, standing.TotalPoints)
	}
	return lines.String()
}

func renderLastGrant(output *ledger.PointsOutput) string {
	if output.LastGrant == nil {
		return "None yet"
	}
	return fmt.Sprintf("%s (+%d) on %s",
		output.LastGrant.EventType, output.LastGrant.Points, output.LastGrant.Timestamp)
}
