package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("TOKEN", "123:abc")
	t.Setenv("STORE_NAME", "Kaspi Bank")
	t.Setenv("SELLER_BIN", "123456789012")
	t.Setenv("PAYMENT_AMOUNT", "5000")
	t.Setenv("ADMIN_ID", "990011")
	t.Setenv("PORT", "9100")
	t.Setenv("OCR_LANGUAGES", "rus, eng, kaz")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "123:abc", c.Token)
	assert.Equal(t, "Kaspi Bank", c.StoreName)
	assert.Equal(t, "123456789012", c.SellerTaxID)
	assert.Equal(t, "5000", c.PaymentAmount)
	assert.Equal(t, int64(990011), c.ReviewChatID)
	assert.Equal(t, ":9100", c.ListenAddr)
	assert.Equal(t, []string{"rus", "eng", "kaz"}, c.OCRLanguages)
}

func TestParseEnv_EmptyValuesKeepDefaults(t *testing.T) {
	t.Setenv("DOWNLOADS_DIR", "")
	t.Setenv("ADMIN_ID", "not-a-number")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "downloads", c.DownloadsDir)
	assert.Zero(t, c.ReviewChatID)
}
