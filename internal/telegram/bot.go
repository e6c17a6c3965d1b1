package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/sparkfolk/channelcast/internal/comparison"
	"github.com/sparkfolk/channelcast/internal/growth"
	"github.com/sparkfolk/channelcast/internal/migration"
	"github.com/sparkfolk/channelcast/internal/models"
	"github.com/sparkfolk/channelcast/internal/niche"
)

var errInvalidArgs = errors.New("could not parse the arguments")

// Bot answers calculator commands arriving over long polling.
type Bot struct {
	client *Client
}

// NewBot creates a Bot on top of an existing client.
func NewBot(client *Client) *Bot {
	return &Bot{client: client}
}

// Run consumes updates until the context is canceled. Non-command messages
// are ignored.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.client.bot.GetUpdatesChan(u)
	logrus.Infof("Telegram bot started as @%s", b.client.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.client.bot.StopReceivingUpdates()
			logrus.Info("Telegram bot stopped")
			return
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(update.Message)
		}
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	command := msg.Command()
	reply := Respond(command, msg.CommandArguments())

	if err := b.client.Send(msg.Chat.ID, reply); err != nil {
		logrus.Errorf("Failed to answer /%s: %v", command, err)
		return
	}
	logrus.Debugf("Answered /%s for chat %d", command, msg.Chat.ID)
}

// Respond maps one command and its argument string to a MarkdownV2 reply.
// Malformed arguments produce a usage reply, never an error.
func Respond(command, args string) string {
	switch command {
	case "growth":
		return growthReply(args)
	case "migrate":
		return migrateReply(args)
	case "compare":
		return compareReply(args)
	case "niches":
		return nichesReply()
	case "help", "start":
		return helpReply()
	default:
		return escapeMarkdownV2("Unknown command. Try /help.")
	}
}

func growthReply(args string) string {
	in, err := parseGrowthArgs(args)
	if err != nil {
		return usageGrowth(err)
	}

	report := growth.Analyze(in)
	return formatGrowthCard(in, report)
}

func migrateReply(args string) string {
	in, err := parseMigrateArgs(args)
	if err != nil {
		return usageMigrate(err)
	}

	plan := migration.Plan(in)
	return formatMigrationCard(in, plan)
}

func compareReply(args string) string {
	uc, _ := comparison.ParseUseCase(strings.TrimSpace(args))
	return formatComparisonCard(comparison.Compare(uc))
}

func nichesReply() string {
	var sb strings.Builder
	sb.WriteString("🎯 *Niche reference*\n\n")
	for _, p := range niche.All() {
		sb.WriteString(escapeMarkdownV2(p.ID))
		sb.WriteString(" · ")
		sb.WriteString(escapeMarkdownV2(p.Label))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(escapeMarkdownV2("Pass the ID as the optional last argument of /growth."))
	return sb.String()
}

func helpReply() string {
	return "*channelcast commands*\n\n" + escapeMarkdownV2(
		"/growth <followers> <posts_per_week> <engagement%> [niche] - 12 month growth projection\n"+
			"/migrate <subscribers> <overlap%> <daily|2-3x|weekly|monthly> - migration plan\n"+
			"/compare <creator|business|personal> - WhatsApp vs Telegram feature view\n"+
			"/niches - niche reference table\n"+
			"/help - this message")
}

// parseGrowthArgs parses "<followers> <posts_per_week> <engagement%> [niche]".
// A trailing % on the engagement argument is tolerated.
func parseGrowthArgs(args string) (models.GrowthInputs, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 || len(fields) > 4 {
		return models.GrowthInputs{}, errInvalidArgs
	}

	followers, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.GrowthInputs{}, errInvalidArgs
	}
	postsPerWeek, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return models.GrowthInputs{}, errInvalidArgs
	}
	engagement, err := strconv.ParseFloat(strings.TrimSuffix(fields[2], "%"), 64)
	if err != nil {
		return models.GrowthInputs{}, errInvalidArgs
	}

	nicheID := ""
	if len(fields) == 4 {
		nicheID = fields[3]
	}
	profile, _ := niche.Lookup(nicheID)

	in := models.GrowthInputs{
		Followers:             followers,
		PostsPerWeek:          postsPerWeek,
		EngagementRatePercent: engagement,
		Niche:                 profile,
	}
	if err := in.Validate(); err != nil {
		return models.GrowthInputs{}, err
	}
	return in, nil
}

// parseMigrateArgs parses "<subscribers> <overlap%> <frequency>".
func parseMigrateArgs(args string) (models.MigrationInputs, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return models.MigrationInputs{}, errInvalidArgs
	}

	subscribers, err := strconv.Atoi(fields[0])
	if err != nil {
		return models.MigrationInputs{}, errInvalidArgs
	}
	overlap, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "%"), 64)
	if err != nil {
		return models.MigrationInputs{}, errInvalidArgs
	}
	freq, err := models.ParsePostFrequency(fields[2])
	if err != nil {
		return models.MigrationInputs{}, err
	}

	in := models.MigrationInputs{
		SourceSubscribers: subscribers,
		OverlapPercent:    overlap,
		PostFrequency:     freq,
	}
	if err := in.Validate(); err != nil {
		return models.MigrationInputs{}, err
	}
	return in, nil
}
