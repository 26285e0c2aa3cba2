// ABOUTME: Telegram front-end for the water tracker.
// ABOUTME: Long-polling update loop dispatching commands and quick buttons.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/harperreed/waterlog/internal/tracker"
)

const pollTimeoutSeconds = 30

// Bot runs the Telegram transport on top of the tracker service.
type Bot struct {
	api    *tgbotapi.BotAPI
	svc    *tracker.Service
	logger *log.Logger
}

// New connects to the Telegram Bot API with the given token.
func New(token string, svc *tracker.Service, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect bot api: %w", err)
	}
	return &Bot{api: api, svc: svc, logger: logger}, nil
}

// Run polls for updates until the context is cancelled. Each update is
// one request cycle against the tracker: a single "now" is captured up
// front so every window-scoped query in the cycle agrees on the day.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("starting long polling", "bot", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("stopping")
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(upd)
		}
	}
}

func (b *Bot) handleUpdate(upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil {
		return
	}

	externalID := strconv.FormatInt(msg.From.ID, 10)
	now := time.Now().UTC()
	reqID := uuid.NewString()[:8]

	logger := b.logger.With("req", reqID, "user", externalID)

	var reply string
	var err error
	if msg.IsCommand() {
		reply, err = b.dispatchCommand(msg.Command(), msg.CommandArguments(), externalID, now)
		logger.Info("command", "name", msg.Command())
	} else {
		reply, err = b.dispatchText(msg.Text, externalID, now)
		logger.Info("text", "len", len(msg.Text))
	}
	if err != nil {
		logger.Error("request failed", "err", err)
		reply = errorText
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ReplyMarkup = mainKeyboard()
	if _, err := b.api.Send(out); err != nil {
		logger.Error("send failed", "err", err)
	}
}

func (b *Bot) dispatchCommand(name, args, externalID string, now time.Time) (string, error) {
	switch name {
	case "start":
		if _, _, err := b.svc.EnsureProfile(externalID, now); err != nil {
			return "", err
		}
		return startText, nil
	case "help":
		return helpText, nil
	case "goal":
		return b.handleGoal(args, externalID, now)
	case "stats":
		p, err := b.svc.Stats(externalID, now)
		if err != nil {
			return "", err
		}
		return statsMessage(p), nil
	case "undo":
		return b.handleUndo(externalID, now)
	default:
		return unknownText, nil
	}
}

func (b *Bot) dispatchText(text, externalID string, now time.Time) (string, error) {
	if amount, ok := quickAmount(text); ok {
		p, err := b.svc.Drink(externalID, amount, now)
		if err != nil {
			return "", err
		}
		return addedMessage(amount, p), nil
	}

	switch normalize(text) {
	case "stats":
		p, err := b.svc.Stats(externalID, now)
		if err != nil {
			return "", err
		}
		return statsMessage(p), nil
	case "undo":
		return b.handleUndo(externalID, now)
	default:
		return unknownText, nil
	}
}

func (b *Bot) handleGoal(args, externalID string, now time.Time) (string, error) {
	goalML, ok := parseGoal(args)
	if !ok {
		return goalUsageText, nil
	}
	p, err := b.svc.SetGoal(externalID, goalML, now)
	if err != nil {
		return "", err
	}
	return goalMessage(p), nil
}

func (b *Bot) handleUndo(externalID string, now time.Time) (string, error) {
	removed, undone, p, err := b.svc.Undo(externalID, now)
	if err != nil {
		return "", err
	}
	return undoMessage(removed, undone, p), nil
}
