package bot

import (
	"context"
	"fmt"
	"slices"

	tg "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"

	"github.com/telepay/receiptbot/internal/verification"
)

// onUpdate is the single dispatch point for incoming updates, mirroring the
// reply-keyboard-driven menu: button labels arrive as plain message text.
func (a *App) onUpdate(ctx context.Context, _ *tg.Bot, update *tgmodels.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if msg.Document != nil {
		a.onDocument(ctx, msg)
		return
	}

	switch {
	case msg.Text == "/start":
		a.onStart(ctx, msg)
	case msg.Text == btnBuy:
		a.onBuy(ctx, msg)
	case msg.Text == btnSupport:
		a.onSupport(ctx, msg)
	case msg.Text == btnCancel:
		a.onCancel(ctx, msg)
	case slices.Contains(supportTopics, msg.Text):
		a.onSupportTopic(ctx, msg)
	default:
		a.onText(ctx, msg)
	}
}

func (a *App) onStart(ctx context.Context, msg *tgmodels.Message) {
	a.send(ctx, msg.Chat.ID, "Приветствие!", purchaseKeyboard())
}

func (a *App) onBuy(ctx context.Context, msg *tgmodels.Message) {
	text := fmt.Sprintf(
		"🔹 Оплатите *%s KZT* через Kaspi QR\n\n📎 %s\n\nПосле оплаты отправьте PDF-файл чека 📎",
		a.config.PaymentAmount, a.config.PaymentLink)

	_, err := a.tgbot.SendMessage(ctx, &tg.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        text,
		ParseMode:   tgmodels.ParseModeMarkdown,
		ReplyMarkup: paymentKeyboard(a.config.PaymentLink),
	})
	if err != nil {
		a.logger.Error(ctx, "send purchase instructions failed", "error", err)
	}
}

// onDocument feeds an uploaded document into the verification pipeline.
// Each submission runs in its own goroutine: rendering and OCR are slow and
// must not hold up unrelated submitters.
func (a *App) onDocument(ctx context.Context, msg *tgmodels.Message) {
	sub := verification.Submitter{UserID: msg.From.ID, Username: msg.From.Username}
	doc := verification.Document{FileID: msg.Document.FileID, MIMEType: msg.Document.MimeType}

	go a.pipeline.Run(ctx, sub, doc)
}

func (a *App) onSupport(ctx context.Context, msg *tgmodels.Message) {
	a.send(ctx, msg.Chat.ID, "🆘 Как мы можем вам помочь?", supportKeyboard())
}

func (a *App) onSupportTopic(ctx context.Context, msg *tgmodels.Message) {
	a.support.set(msg.Chat.ID, msg.Text)
	a.send(ctx, msg.Chat.ID, "Пожалуйста, напишите дополнительный текст для сообщения в поддержку.", nil)
}

func (a *App) onCancel(ctx context.Context, msg *tgmodels.Message) {
	a.support.clear(msg.Chat.ID)
	a.send(ctx, msg.Chat.ID, "✅ Операция отменена", purchaseKeyboard())
}

// onText handles free text. With a support topic pending it completes the
// ticket; otherwise the text is ignored.
func (a *App) onText(ctx context.Context, msg *tgmodels.Message) {
	topic, ok := a.support.take(msg.Chat.ID)
	if !ok {
		return
	}

	ticket := fmt.Sprintf(
		"📢 Запрос в поддержку\n\n🔹 Заголовок: %s\n🔹 Пользователь: @%s\n🔹 Сообщение: %s",
		topic, msg.From.Username, msg.Text)

	a.send(ctx, a.config.ReviewChatID, ticket, nil)
	a.send(ctx, msg.Chat.ID, "Ваше сообщение в поддержку отправлено.", purchaseKeyboard())
}
