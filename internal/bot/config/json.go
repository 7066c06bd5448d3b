package config

import (
	"encoding/json"
	"os"

	"github.com/telepay/receiptbot/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, non-empty fields are copied
// into the runtime Config.
type JsonConfig struct {
	Token        string `json:"token"`
	WebhookHost  string `json:"webhook_host"`
	ListenAddr   string `json:"listen_addr"`
	DatabaseDSN  string `json:"database_dsn"`
	DownloadsDir string `json:"downloads_dir"`

	StoreName     string `json:"store_name"`
	SellerTaxID   string `json:"seller_tax_id"`
	PaymentAmount string `json:"payment_amount"`
	PaymentLink   string `json:"payment_link"`
	ProductLink   string `json:"product_link"`
	ReviewChatID  int64  `json:"review_chat_id"`

	MetadataProducer string   `json:"metadata_producer"`
	MetadataTitle    string   `json:"metadata_title"`
	OCRLanguages     []string `json:"ocr_languages"`

	MaxFileSize int64 `json:"max_file_size"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags. If no file is named, nothing is loaded. A file that
// cannot be read or parsed panics, matching flag-parsing behavior.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlayString(&config.Token, c.Token)
	overlayString(&config.WebhookHost, c.WebhookHost)
	overlayString(&config.ListenAddr, c.ListenAddr)
	overlayString(&config.DatabaseDSN, c.DatabaseDSN)
	overlayString(&config.DownloadsDir, c.DownloadsDir)
	overlayString(&config.StoreName, c.StoreName)
	overlayString(&config.SellerTaxID, c.SellerTaxID)
	overlayString(&config.PaymentAmount, c.PaymentAmount)
	overlayString(&config.PaymentLink, c.PaymentLink)
	overlayString(&config.ProductLink, c.ProductLink)
	overlayString(&config.MetadataProducer, c.MetadataProducer)
	overlayString(&config.MetadataTitle, c.MetadataTitle)

	if c.ReviewChatID != 0 {
		config.ReviewChatID = c.ReviewChatID
	}
	if len(c.OCRLanguages) > 0 {
		config.OCRLanguages = c.OCRLanguages
	}
	if c.MaxFileSize != 0 {
		config.MaxFileSize = c.MaxFileSize
	}
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
