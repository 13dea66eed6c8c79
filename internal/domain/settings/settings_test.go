package settings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	def := Defaults()

	assert.Equal(t, "Inteligent d.o.o.", def.Company.Name)
	assert.NotEmpty(t, def.Note)
	assert.NotEmpty(t, def.Preview.Number)
	require.Len(t, def.Preview.Items, 3)
	for _, item := range def.Preview.Items {
		assert.True(t, item.UnitPrice.IsPositive())
		assert.True(t, item.TaxRatePercent.IsPositive())
	}
}

func TestNormalize(t *testing.T) {
	t.Run("empty input becomes defaults", func(t *testing.T) {
		out := Normalize(TemplateSettings{})
		def := Defaults()
		assert.Equal(t, def.Company, out.Company)
		assert.Equal(t, def.Note, out.Note)
		assert.Empty(t, out.Preview.Items, "items are not invented, only sanitized")
	})

	t.Run("submitted values win over defaults", func(t *testing.T) {
		out := Normalize(TemplateSettings{
			Company: Company{Name: "Acme d.o.o.", Email: "sales@acme.si"},
			Note:    "Velja 14 dni.",
		})
		assert.Equal(t, "Acme d.o.o.", out.Company.Name)
		assert.Equal(t, "sales@acme.si", out.Company.Email)
		assert.Equal(t, "Velja 14 dni.", out.Note)
		// Absent fields are still defaulted
		assert.Equal(t, Defaults().Company.Phone, out.Company.Phone)
	})

	t.Run("preview items are sanitized field by field", func(t *testing.T) {
		out := Normalize(TemplateSettings{
			Preview: Preview{Items: []PreviewItem{
				{Name: "Krmilnik", Quantity: decimal.NewFromInt(-3), UnitPrice: decimal.NewFromInt(-5)},
			}},
		})
		require.Len(t, out.Preview.Items, 1)
		item := out.Preview.Items[0]
		assert.Equal(t, "kos", item.Unit)
		assert.True(t, item.Quantity.Equal(decimal.NewFromInt(1)))
		assert.True(t, item.UnitPrice.IsZero())
		assert.True(t, item.TaxRatePercent.Equal(decimal.NewFromInt(22)))
	})
}
