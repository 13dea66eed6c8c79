package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "P-0001/2026", FormatNumber(1, 2026))
	assert.Equal(t, "P-0017/2026", FormatNumber(17, 2026))
	assert.Equal(t, "P-1234/2025", FormatNumber(1234, 2025))
	// Sequence values past four digits keep growing, the format is not capped
	assert.Equal(t, "P-10001/2026", FormatNumber(10001, 2026))
}

func TestChainBase(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"root number unchanged", "P-0042/2026", "P-0042/2026"},
		{"strips single-digit suffix", "P-0042/2026/v2", "P-0042/2026"},
		{"strips multi-digit suffix", "P-0042/2026/v17", "P-0042/2026"},
		{"strips uppercase suffix", "P-0042/2026/V3", "P-0042/2026"},
		{"does not strip mid-string", "P-0042/v2/2026", "P-0042/v2/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChainBase(tt.number))
		})
	}
}

func TestVersionNumber(t *testing.T) {
	base := "P-0042/2026"

	t.Run("version 1 never carries a suffix", func(t *testing.T) {
		assert.Equal(t, base, VersionNumber(base, 1))
		assert.Equal(t, base, VersionNumber(base+"/v3", 1))
	})

	t.Run("later versions append to the chain base", func(t *testing.T) {
		assert.Equal(t, base+"/v2", VersionNumber(base, 2))
		assert.Equal(t, base+"/v5", VersionNumber(base+"/v4", 5))
	})
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "P-0042-2026.pdf", SafeFileName("P-0042/2026"))
	assert.Equal(t, "P-0042-2026-v2.pdf", SafeFileName("P-0042/2026/v2"))
	assert.Equal(t, "a-b.pdf", SafeFileName(`a\b`))
}
