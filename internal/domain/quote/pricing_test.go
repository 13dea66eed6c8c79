package quote

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceLine(t *testing.T) {
	line := PriceLine(uuid.New(), "Namestitev senzorjev", "ura",
		decimal.NewFromInt(2), decimal.NewFromInt(45), decimal.NewFromInt(22))

	assert.True(t, line.NetTotal.Equal(decimal.NewFromInt(90)), "net = 45*2")
	assert.True(t, line.GrossTotal.Equal(decimal.NewFromFloat(109.8)), "gross = 90*1.22, got %s", line.GrossTotal)
}

func TestSummarize(t *testing.T) {
	lines := []PricedLine{
		PriceLine(uuid.New(), "a", "kos", decimal.NewFromInt(2), decimal.NewFromInt(45), decimal.NewFromInt(22)),
		PriceLine(uuid.New(), "b", "kos", decimal.NewFromInt(1), decimal.NewFromInt(100), decimal.NewFromFloat(9.5)),
	}

	t.Run("no discount", func(t *testing.T) {
		res := Summarize(lines, decimal.Zero)
		assert.True(t, res.NetTotal.Equal(decimal.NewFromInt(190)))
		assert.True(t, res.GrossTotal.Equal(decimal.NewFromFloat(219.3)), "got %s", res.GrossTotal)
		assert.True(t, res.TaxTotal.Equal(res.GrossTotal.Sub(res.NetTotal)))
		assert.True(t, res.DiscountedGrossTotal.Equal(res.GrossTotal))
	})

	t.Run("discount applies to the grand total only", func(t *testing.T) {
		res := Summarize(lines, decimal.NewFromFloat(0.1))
		assert.True(t, res.GrossTotal.Equal(decimal.NewFromFloat(219.3)), "lines stay undiscounted")
		assert.True(t, res.DiscountedGrossTotal.Equal(decimal.NewFromFloat(197.37)), "got %s", res.DiscountedGrossTotal)
	})

	t.Run("empty input yields zero totals", func(t *testing.T) {
		res := Summarize(nil, decimal.Zero)
		assert.True(t, res.NetTotal.IsZero())
		assert.True(t, res.GrossTotal.IsZero())
	})
}
