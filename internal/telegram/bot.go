// Package telegram hosts the bot transport and the command handlers.
package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/alayeseke/vybebot/internal/auth"
	"github.com/alayeseke/vybebot/internal/reference"
	"github.com/alayeseke/vybebot/internal/report"
	"github.com/alayeseke/vybebot/internal/tokens"
	"github.com/alayeseke/vybebot/internal/vybe"
)

// Deps are the collaborators a Bot needs. Everything is injected; the
// bot holds no mutable state of its own.
type Deps struct {
	Vybe      *vybe.Client
	Registry  *tokens.Registry
	Resolver  *tokens.Resolver
	Reference *reference.Index
	Reports   *report.Aggregator
	Policy    *auth.PolicyService
	Log       *zap.Logger
}

// Bot represents the Telegram bot.
type Bot struct {
	bot       *bot.Bot
	vybe      *vybe.Client
	registry  *tokens.Registry
	resolver  *tokens.Resolver
	reference *reference.Index
	reports   *report.Aggregator
	policy    *auth.PolicyService
	log       *zap.Logger
}

// NewBot creates a new bot instance.
func NewBot(token string, deps Deps) (*Bot, error) {
	b := &Bot{
		vybe:      deps.Vybe,
		registry:  deps.Registry,
		resolver:  deps.Resolver,
		reference: deps.Reference,
		reports:   deps.Reports,
		policy:    deps.Policy,
		log:       deps.Log.Named("telegram"),
	}

	botAPI, err := bot.New(token, bot.WithDefaultHandler(b.handleUpdate))
	if err != nil {
		return nil, err
	}
	b.bot = botAPI
	return b, nil
}

// Start runs the update loop until ctx is canceled.
func (b *Bot) Start(ctx context.Context) {
	b.bot.Start(ctx)
}

// handleUpdate handles a Telegram update.
func (b *Bot) handleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	if !strings.HasPrefix(update.Message.Text, "/") {
		// Not a conversational bot; point the user at /help.
		b.send(ctx, update.Message.Chat.ID, "Send a command to get started. Try /help.")
		return
	}
	b.handleCommand(ctx, update.Message)
}

// handleCommand parses and dispatches one command message. Each command
// is independent and stateless: parse, fetch, format, reply.
func (b *Bot) handleCommand(ctx context.Context, message *models.Message) {
	chatID := message.Chat.ID
	var userID int64
	if message.From != nil {
		userID = message.From.ID
	}

	fields := strings.Fields(message.Text)
	command := strings.TrimPrefix(fields[0], "/")
	// Strip the @botname suffix used in group chats.
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}
	args := fields[1:]

	b.log.Info("received command",
		zap.Int64("chat", chatID),
		zap.Int64("user", userID),
		zap.String("command", command),
		zap.Int("args", len(args)))

	if b.policy != nil && !b.policy.IsAllowed(userID) {
		b.send(ctx, chatID, "Sorry, this bot is private.")
		return
	}

	typingDone := make(chan struct{})
	go b.sendContinuousTypingAction(ctx, chatID, typingDone)
	defer close(typingDone)

	var reply string
	switch command {
	case "start":
		reply = welcomeMessage
	case "help":
		reply = helpMessage
	case "pnl":
		reply = b.handlePnL(ctx, args)
	case "report":
		reply = b.handleReport(ctx, args)
	case "nfts":
		reply = b.handleNFTs(ctx, args)
	case "token_history":
		reply = b.handleTokenHistory(ctx, args)
	case "top_holders":
		reply = b.handleTopHolders(ctx, args)
	case "holder_portfolio":
		reply = b.handleHolderPortfolio(ctx, args)
	case "price":
		reply = b.handlePrice(ctx, args)
	case "market":
		reply = b.handleMarket(ctx, args)
	case "pair":
		reply = b.handlePair(ctx, args)
	case "program":
		reply = b.handleProgram(ctx, args)
	case "program_activity":
		reply = b.handleProgramActivity(ctx, args)
	case "program_tvl":
		reply = b.handleProgramTVL(ctx, args)
	case "transfers":
		reply = b.handleTransfers(ctx, args)
	case "trades":
		reply = b.handleTrades(ctx, args)
	case "stats":
		reply = b.handleStats(userID)
	default:
		reply = "Unknown command. Try /help to see available commands."
	}

	b.send(ctx, chatID, reply)
}

// send delivers a reply, splitting anything over the transport limit
// into ordered chunks.
func (b *Bot) send(ctx context.Context, chatID int64, text string) {
	for _, chunk := range Paginate(text, MaxMessageLength) {
		_, err := b.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      chunk,
			ParseMode: "Markdown",
		})
		if err != nil {
			b.log.Error("failed to send message chunk",
				zap.Int64("chat", chatID), zap.Error(err))
			// Markdown parse failures are recoverable as plain text.
			if _, err := b.bot.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   chunk,
			}); err != nil {
				b.log.Error("plain-text resend also failed",
					zap.Int64("chat", chatID), zap.Error(err))
				return
			}
		}
	}
}

// sendContinuousTypingAction keeps the typing indicator alive until the
// done channel closes. Telegram's typing status lasts about 5 seconds.
func (b *Bot) sendContinuousTypingAction(ctx context.Context, chatID int64, done chan struct{}) {
	b.bot.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
	ticker := time.NewTicker(4 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.bot.SendChatAction(ctx, &bot.SendChatActionParams{
				ChatID: chatID,
				Action: models.ChatActionTyping,
			})
		}
	}
}
