package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	text := "кассовый чек kaspi bank 5000"
	assert.Equal(t, Fingerprint(text), Fingerprint(text))
}

func TestFingerprint_KnownValue(t *testing.T) {
	// sha256("hello")
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		Fingerprint("hello"))
}

func TestFingerprint_NormalizesCase(t *testing.T) {
	assert.Equal(t, Fingerprint("KASPI Bank"), Fingerprint("kaspi bank"))
	assert.Equal(t, Fingerprint("ЧЕК"), Fingerprint("чек"))
}

func TestFingerprint_DistinctInputsDiffer(t *testing.T) {
	assert.NotEqual(t, Fingerprint("чек 5000"), Fingerprint("чек 5001"))
}
