package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldValidator_Valid(t *testing.T) {
	cfg := Config{
		StoreName:     "Kaspi Bank",
		SellerTaxID:   "123456789012",
		PaymentAmount: "5000",
	}
	v := NewFieldValidator(cfg)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "all literals present",
			text: "кассовый чек\nkaspi bank\nбин 123456789012\nсумма 5000 ₸",
			want: true,
		},
		{
			name: "order does not matter",
			text: "5000 • 123456789012 • kaspi bank",
			want: true,
		},
		{
			name: "missing amount",
			text: "kaspi bank бин 123456789012",
			want: false,
		},
		{
			name: "missing store name",
			text: "бин 123456789012 сумма 5000",
			want: false,
		},
		{
			name: "missing tax id",
			text: "kaspi bank сумма 5000",
			want: false,
		},
		{
			name: "empty text",
			text: "",
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Valid(tc.text))
		})
	}
}

func TestFieldValidator_StoreNameComparedLowercase(t *testing.T) {
	v := NewFieldValidator(Config{
		StoreName:     "KASPI BANK",
		SellerTaxID:   "1",
		PaymentAmount: "2",
	})

	// Pipeline text is always lowercased; the configured name must still match.
	assert.True(t, v.Valid("kaspi bank 1 2"))
}
