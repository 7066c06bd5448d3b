package bot

import (
	tgmodels "github.com/go-telegram/bot/models"
)

// Button labels double as routing keys: Telegram reply keyboards send the
// label back as plain message text.
const (
	btnBuy     = "🛒 Купить"
	btnSupport = "🆘 Запрос в поддержку"
	btnCancel  = "🚫 Отмена"
)

var supportTopics = []string{
	"❓ Чек не распознается",
	"❓ Я не получил ссылки",
	"❓ Другое",
}

func purchaseKeyboard() *tgmodels.ReplyKeyboardMarkup {
	return &tgmodels.ReplyKeyboardMarkup{
		Keyboard: [][]tgmodels.KeyboardButton{
			{{Text: btnBuy}},
			{{Text: btnSupport}},
		},
		ResizeKeyboard: true,
	}
}

func paymentKeyboard(paymentURL string) *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{{Text: "🛒 Купить через Kaspi", URL: paymentURL}},
		},
	}
}

func supportKeyboard() *tgmodels.ReplyKeyboardMarkup {
	rows := make([][]tgmodels.KeyboardButton, 0, len(supportTopics)+1)
	for _, topic := range supportTopics {
		rows = append(rows, []tgmodels.KeyboardButton{{Text: topic}})
	}
	rows = append(rows, []tgmodels.KeyboardButton{{Text: btnCancel}})

	return &tgmodels.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}
