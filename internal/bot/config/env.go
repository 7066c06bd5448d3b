package config

import (
	"os"
	"strconv"
	"strings"
)

// parseEnv overlays values from the environment. Variable names follow the
// deployment convention of the hosted bot (TOKEN, SELLER_BIN, ADMIN_ID...).
// Unset or empty variables leave the current value untouched.
func parseEnv(config *Config) {
	setString(&config.Token, "TOKEN")
	setString(&config.WebhookHost, "WEBHOOK_HOST")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.DownloadsDir, "DOWNLOADS_DIR")

	// Heroku-style: the platform hands out the port alone.
	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		config.ListenAddr = ":" + port
	}

	setString(&config.StoreName, "STORE_NAME")
	setString(&config.SellerTaxID, "SELLER_BIN")
	setString(&config.PaymentAmount, "PAYMENT_AMOUNT")
	setString(&config.PaymentLink, "KASPI_QR")
	setString(&config.ProductLink, "PRODUCT_LINK")
	setInt64(&config.ReviewChatID, "ADMIN_ID")

	setString(&config.MetadataProducer, "PDF_PRODUCER")
	setString(&config.MetadataTitle, "PDF_TITLE")

	if v, ok := os.LookupEnv("OCR_LANGUAGES"); ok && v != "" {
		langs := strings.Split(v, ",")
		for i := range langs {
			langs[i] = strings.TrimSpace(langs[i])
		}
		config.OCRLanguages = langs
	}

	setInt64(&config.MaxFileSize, "MAX_FILE_SIZE")
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}

func setInt64(dst *int64, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
