package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inteligent/dashboard/internal/domain/settings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplates(t *testing.T, html, css string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, offerTemplateFile), []byte(html), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, offerStyleFile), []byte(css), 0o644))
	return dir
}

func sampleData() *OfferData {
	return &OfferData{
		Number: "P-0042/2026",
		Date:   "29. 08. 2026",
		Client: OfferParty{Name: "Kovinarstvo Novak d.o.o.", Address: "Podutiška cesta 15", TaxID: "SI12345678"},
		Rows: []OfferRow{
			{Name: "Krmilnik", Quantity: decimal.NewFromInt(2), Unit: "kos",
				UnitPrice: decimal.NewFromInt(45), TaxRatePercent: decimal.NewFromInt(22),
				GrossTotal: decimal.NewFromFloat(109.8)},
		},
		NetTotal: decimal.NewFromInt(90),
		TaxTotal: decimal.NewFromFloat(19.8),
		Total:    decimal.NewFromFloat(109.8),
		Note:     "Ponudba velja 30 dni.",
		Company:  settings.Defaults().Company,
	}
}

func TestComposer_Compose(t *testing.T) {
	dir := writeTemplates(t,
		`<html><head><style>{{.CSS}}</style></head><body>`+
			`<h1>{{.Number}}</h1><p>{{.Client.Name}}</p>`+
			`{{range .Rows}}<tr><td>{{.Name}}</td><td>{{money .GrossTotal}}</td></tr>{{end}}`+
			`<b>{{money .Total}}</b><i>{{.Note}}</i></body></html>`,
		`body { color: red; }`)
	c := NewComposer(dir)

	html, err := c.Compose(sampleData())
	require.NoError(t, err)

	assert.Contains(t, html, "P-0042/2026")
	assert.Contains(t, html, "Kovinarstvo Novak d.o.o.")
	assert.Contains(t, html, "body { color: red; }", "stylesheet is inlined unescaped")
	assert.Contains(t, html, "109,80", "totals formatted sl-SI")
	assert.NotContains(t, html, "{{", "no placeholder syntax leaks into output")
}

func TestComposer_EscapesFreeText(t *testing.T) {
	dir := writeTemplates(t, `<p>{{.Client.Name}}</p><p>{{.Note}}</p>`, ``)
	c := NewComposer(dir)

	data := sampleData()
	data.Client.Name = `Novak <script>alert("x")</script>`
	data.Note = `a < b & c`

	html, err := c.Compose(data)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &lt; b &amp; c")
}

func TestComposer_EmptyFieldsRenderEmpty(t *testing.T) {
	dir := writeTemplates(t, `[{{.Client.TaxID}}][{{.Note}}][{{.Company.Website}}]`, ``)
	c := NewComposer(dir)

	html, err := c.Compose(&OfferData{})
	require.NoError(t, err)
	assert.Equal(t, "[][][]", html)
}

func TestComposer_MissingTemplate(t *testing.T) {
	c := NewComposer(t.TempDir())
	_, err := c.Compose(sampleData())
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeTemplateFailed, renderErr.Code)
}

func TestFormatHelpers(t *testing.T) {
	c := NewComposer("")

	assert.Equal(t, "1.234,50 €", c.formatMoney(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "0,00 €", c.formatMoney(decimal.Zero))
	assert.Equal(t, "2,5", formatQuantity(decimal.NewFromFloat(2.5)))
	assert.Equal(t, "3", formatQuantity(decimal.NewFromInt(3)))
	assert.Equal(t, "9,5%", formatPercent(decimal.NewFromFloat(9.5)))
}
