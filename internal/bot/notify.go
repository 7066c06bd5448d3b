package bot

import (
	"context"
	"fmt"

	tg "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"

	"github.com/telepay/receiptbot/internal/verification"
)

const (
	msgApproved     = "✅ Оплата подтверждена!"
	msgThanks       = "🎉 Спасибо за покупку!"
	msgDuplicate    = "❌ Ошибка! Дубликат чека."
	msgMismatch     = "❌ Ошибка! Чек не распознан или содержит неверные данные."
	msgDownloadFail = "❌ Ошибка! Не удалось скачать PDF-файл."
	msgConvertFail  = "❌ Ошибка! Не удалось обработать PDF-файл."
	msgSystemFault  = "🚨 Произошла ошибка при проверке чека."
)

// Notify implements verification.Notifier: one human-readable status per
// verdict. An approval additionally delivers the product link.
func (a *App) Notify(ctx context.Context, sub verification.Submitter, verdict verification.Verdict) {
	switch verdict {
	case verification.VerdictApproved:
		a.send(ctx, sub.UserID, msgApproved, nil)
		a.send(ctx, sub.UserID, msgThanks, nil)
		if a.config.ProductLink != "" {
			a.send(ctx, sub.UserID, a.config.ProductLink, nil)
		}
	case verification.VerdictDuplicateRejected:
		a.send(ctx, sub.UserID, msgDuplicate, purchaseKeyboard())
	case verification.VerdictContentMismatchRejected:
		a.send(ctx, sub.UserID, msgMismatch, nil)
	case verification.VerdictAcquisitionFailed:
		a.send(ctx, sub.UserID, msgDownloadFail, purchaseKeyboard())
	case verification.VerdictConversionFailed:
		a.send(ctx, sub.UserID, msgConvertFail, purchaseKeyboard())
	default:
		a.send(ctx, sub.UserID, msgSystemFault, purchaseKeyboard())
	}
}

// Escalate implements verification.Escalator: forward the suspicious
// document to the review chat, naming the submitter.
func (a *App) Escalate(ctx context.Context, sub verification.Submitter, fileID string) error {
	_, err := a.tgbot.SendDocument(ctx, &tg.SendDocumentParams{
		ChatID:   a.config.ReviewChatID,
		Document: &tgmodels.InputFileString{Data: fileID},
		Caption:  fmt.Sprintf("⚠ Подозрительный чек от @%s!", sub.Username),
	})
	if err != nil {
		return fmt.Errorf("forward to review chat: %w", err)
	}
	return nil
}

func (a *App) send(ctx context.Context, chatID int64, text string, markup tgmodels.ReplyMarkup) {
	_, err := a.tgbot.SendMessage(ctx, &tg.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		a.logger.Error(ctx, "send message failed", "chatID", chatID, "error", err)
	}
}
