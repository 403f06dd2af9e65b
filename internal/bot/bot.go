// Package bot implements the Telegram transport: it parses free-text expense
// entries, drives the classifier and storage, and renders replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/evseev/kopilka/internal/common"
	"github.com/evseev/kopilka/internal/limits"
	"github.com/evseev/kopilka/internal/model"
	"github.com/evseev/kopilka/internal/service"
)

const welcomeText = `Finance Bot

Отправь трату в формате:
кофе 200 или магнит 450

Команды:
/limits — лимиты на месяц
/history — последние траты`

const historyLimit = 10

// sender is the subset of the Telegram API the bot uses. Narrowed for tests.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot wires Telegram updates to the classifier, storage and limits services.
type Bot struct {
	api        *tgbotapi.BotAPI
	out        sender
	classifier service.Classifier
	storage    service.Storage
	limits     service.Limits
	now        func() time.Time
}

// New creates a bot connected to the Telegram API with the given token.
func New(token string, classifier service.Classifier, storage service.Storage, limitsSvc service.Limits) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot: %w: token", common.ErrMissingConfig)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: failed to authenticate: %w", err)
	}

	return &Bot{
		api:        api,
		out:        api,
		classifier: classifier,
		storage:    storage,
		limits:     limitsSvc,
		now:        time.Now,
	}, nil
}

// Run processes updates via long polling until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	slog.Info("telegram bot started", "username", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			slog.Info("telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	var reply string
	var err error

	switch {
	case msg.IsCommand():
		reply, err = b.handleCommand(ctx, msg)
	default:
		reply, err = b.handleExpense(ctx, msg)
	}

	if err != nil {
		common.LogError(err, "failed to handle message", common.Fields{
			"user": msg.From.ID,
			"text": msg.Text,
		})

		var userErr *common.UserError
		if errors.As(err, &userErr) {
			reply = userErr.UserMessage
		} else {
			reply = "Ошибка обработки. Попробуй ещё раз."
		}
	}

	if reply == "" {
		return
	}
	if _, sendErr := b.out.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); sendErr != nil {
		common.LogError(sendErr, "failed to send reply", common.Fields{"chat": msg.Chat.ID})
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) (string, error) {
	switch msg.Command() {
	case "start":
		slog.Info("start command", "user", msg.From.ID)
		return welcomeText, nil
	case "limits":
		report, err := b.limits.MonthReport(ctx, msg.From.ID, b.now())
		if err != nil {
			return "", err
		}
		return limits.RenderReport(report), nil
	case "history":
		return b.renderHistory(ctx, msg.From.ID)
	default:
		return "Неизвестная команда. Попробуй /start", nil
	}
}

func (b *Bot) handleExpense(ctx context.Context, msg *tgbotapi.Message) (string, error) {
	description, amount, err := ParseExpenseMessage(msg.Text)
	if err != nil {
		return "", common.NewUserError(err.Error(), nil)
	}

	result, err := b.classifier.Classify(ctx, description)
	if err != nil {
		return "", fmt.Errorf("classify %q: %w", description, err)
	}

	expense := model.Expense{
		UserID:       msg.From.ID,
		Amount:       amount,
		Description:  description,
		CategoryCode: result.Category.Code(),
		CreatedAt:    b.now(),
	}
	if err := b.storage.SaveExpense(ctx, &expense); err != nil {
		return "", fmt.Errorf("save expense: %w", err)
	}

	slog.Info("expense recorded",
		"user", expense.UserID,
		"amount", expense.Amount,
		"category", expense.CategoryCode,
		"status", result.Status)

	return b.renderExpenseReply(ctx, expense, result)
}

func (b *Bot) renderExpenseReply(ctx context.Context, expense model.Expense, result model.Classification) (string, error) {
	var reply strings.Builder
	fmt.Fprintf(&reply, "Записано: %s %.0f₽\n", expense.Description, expense.Amount)
	fmt.Fprintf(&reply, "Категория: %s\n", expense.CategoryCode)

	if result.Category.IsUnknown() {
		reply.WriteString("Не удалось определить категорию — проверь запись вручную.")
		return reply.String(), nil
	}

	limit := b.limits.CategoryLimit(expense.CategoryCode)
	if limit <= 0 {
		return strings.TrimRight(reply.String(), "\n"), nil
	}

	summary, err := b.storage.GetMonthSummary(ctx, expense.UserID, b.now().Month(), b.now().Year())
	if err != nil {
		return "", fmt.Errorf("load month summary: %w", err)
	}
	spent := summary[expense.CategoryCode]
	remaining := limit - spent

	fmt.Fprintf(&reply, "По категории: %.0f/%.0f ₽\n", spent, limit)
	fmt.Fprintf(&reply, "Остаток: %.0f₽", remaining)
	return reply.String(), nil
}

func (b *Bot) renderHistory(ctx context.Context, userID int64) (string, error) {
	expenses, err := b.storage.GetLastExpenses(ctx, userID, historyLimit)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}
	if len(expenses) == 0 {
		return "История пуста", nil
	}

	var reply strings.Builder
	reply.WriteString("Последние траты:\n")
	for _, expense := range expenses {
		fmt.Fprintf(&reply, "• %s %s %.0f₽ (%s)\n",
			expense.CreatedAt.Format("02.01 15:04"),
			expense.Description,
			expense.Amount,
			expense.CategoryCode)
	}
	return strings.TrimRight(reply.String(), "\n"), nil
}
