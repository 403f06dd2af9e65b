package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evseev/kopilka/internal/limits"
	"github.com/evseev/kopilka/internal/model"
)

// fakeSender captures outgoing messages instead of hitting Telegram.
type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

// fakeClassifier returns a fixed classification per description.
type fakeClassifier struct {
	results map[string]model.Classification
	err     error
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (model.Classification, error) {
	if f.err != nil {
		return model.Classification{}, f.err
	}
	if result, ok := f.results[text]; ok {
		return result, nil
	}
	return model.Classification{
		Category: model.CategoryUnknown,
		Status:   model.StatusUnclassified,
	}, nil
}

// fakeStorage is an in-memory ledger good enough for handler tests.
type fakeStorage struct {
	expenses []model.Expense
	saveErr  error
}

func (f *fakeStorage) SaveExpense(_ context.Context, expense *model.Expense) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	expense.ID = int64(len(f.expenses) + 1)
	f.expenses = append(f.expenses, *expense)
	return nil
}

func (f *fakeStorage) GetMonthSummary(_ context.Context, userID int64, month time.Month, year int) (map[string]float64, error) {
	summary := make(map[string]float64)
	for _, e := range f.expenses {
		if e.UserID == userID && e.CreatedAt.Month() == month && e.CreatedAt.Year() == year {
			summary[e.CategoryCode] += e.Amount
		}
	}
	return summary, nil
}

func (f *fakeStorage) GetLastExpenses(_ context.Context, userID int64, limit int) ([]model.Expense, error) {
	var out []model.Expense
	for i := len(f.expenses) - 1; i >= 0 && len(out) < limit; i-- {
		if f.expenses[i].UserID == userID {
			out = append(out, f.expenses[i])
		}
	}
	return out, nil
}

func (f *fakeStorage) GetAllExpenses(_ context.Context) ([]model.Expense, error) {
	return f.expenses, nil
}

func (f *fakeStorage) UpdateExpenseCategory(_ context.Context, _ int64, _ string) error { return nil }
func (f *fakeStorage) Migrate(_ context.Context) error                                 { return nil }
func (f *fakeStorage) Close() error                                                    { return nil }

func newTestBot(classifier *fakeClassifier, storage *fakeStorage) (*Bot, *fakeSender) {
	out := &fakeSender{}
	now := time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)
	return &Bot{
		out:        out,
		classifier: classifier,
		storage:    storage,
		limits:     limits.NewService(storage, nil),
		now:        func() time.Time { return now },
	}, out
}

func message(userID int64, text string) *tgbotapi.Message {
	msg := &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID},
	}
	if len(text) > 0 && text[0] == '/' {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(firstToken(text))}}
	}
	return msg
}

func firstToken(text string) string {
	for i, r := range text {
		if r == ' ' {
			return text[:i]
		}
	}
	return text
}

func TestHandleExpense(t *testing.T) {
	classifier := &fakeClassifier{results: map[string]model.Classification{
		"кофе": {Category: model.CategoryFastfood, Status: model.StatusClassifiedByEmbedding, Confidence: 0.91},
	}}
	storage := &fakeStorage{}
	b, out := newTestBot(classifier, storage)

	b.handleMessage(context.Background(), message(42, "кофе 200"))

	require.Len(t, storage.expenses, 1)
	assert.Equal(t, "fun:fastfood", storage.expenses[0].CategoryCode)
	assert.InDelta(t, 200, storage.expenses[0].Amount, 1e-9)

	require.Len(t, out.sent, 1)
	reply := out.sent[0].Text
	assert.Contains(t, reply, "Записано: кофе 200₽")
	assert.Contains(t, reply, "Категория: fun:fastfood")
	assert.Contains(t, reply, "По категории: 200/2000 ₽")
	assert.Contains(t, reply, "Остаток: 1800₽")
}

func TestHandleExpenseUnknownCategory(t *testing.T) {
	classifier := &fakeClassifier{}
	storage := &fakeStorage{}
	b, out := newTestBot(classifier, storage)

	b.handleMessage(context.Background(), message(42, "зжжж 100"))

	// Unknown expenses are still persisted for manual review.
	require.Len(t, storage.expenses, 1)
	assert.Equal(t, "unknown:check_me", storage.expenses[0].CategoryCode)

	require.Len(t, out.sent, 1)
	assert.Contains(t, out.sent[0].Text, "проверь запись вручную")
}

func TestHandleExpenseParseError(t *testing.T) {
	classifier := &fakeClassifier{}
	storage := &fakeStorage{}
	b, out := newTestBot(classifier, storage)

	b.handleMessage(context.Background(), message(42, "кофе"))

	assert.Empty(t, storage.expenses)
	require.Len(t, out.sent, 1)
	assert.Contains(t, out.sent[0].Text, "Формат: описание сумма")
}

func TestHandleExpenseClassifierFailure(t *testing.T) {
	classifier := &fakeClassifier{err: errors.New("backend down")}
	storage := &fakeStorage{}
	b, out := newTestBot(classifier, storage)

	b.handleMessage(context.Background(), message(42, "кофе 200"))

	assert.Empty(t, storage.expenses)
	require.Len(t, out.sent, 1)
	assert.Contains(t, out.sent[0].Text, "Ошибка обработки")
}

func TestHandleCommands(t *testing.T) {
	classifier := &fakeClassifier{results: map[string]model.Classification{
		"кофе": {Category: model.CategoryFastfood, Status: model.StatusClassifiedByRule, Confidence: 1},
	}}
	storage := &fakeStorage{}
	b, out := newTestBot(classifier, storage)
	ctx := context.Background()

	b.handleMessage(ctx, message(42, "/start"))
	require.Len(t, out.sent, 1)
	assert.Contains(t, out.sent[0].Text, "Finance Bot")

	b.handleMessage(ctx, message(42, "/history"))
	require.Len(t, out.sent, 2)
	assert.Equal(t, "История пуста", out.sent[1].Text)

	b.handleMessage(ctx, message(42, "кофе 200"))
	b.handleMessage(ctx, message(42, "/history"))
	require.Len(t, out.sent, 4)
	assert.Contains(t, out.sent[3].Text, "Последние траты:")
	assert.Contains(t, out.sent[3].Text, "кофе 200₽ (fun:fastfood)")

	b.handleMessage(ctx, message(42, "/limits"))
	require.Len(t, out.sent, 5)
	assert.Contains(t, out.sent[4].Text, "Лимиты на 08.2026")
	assert.Contains(t, out.sent[4].Text, "fun:fastfood: потрачено 200 / 2000 ₽")

	b.handleMessage(ctx, message(42, "/bogus"))
	require.Len(t, out.sent, 6)
	assert.Contains(t, out.sent[5].Text, "Неизвестная команда")
}
