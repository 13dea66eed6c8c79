package rendering

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"

	"github.com/inteligent/dashboard/internal/domain/settings"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// OfferParty is the document recipient block
type OfferParty struct {
	Name    string
	Address string
	TaxID   string
}

// OfferRow is one priced table row of the rendered document
type OfferRow struct {
	Name           string
	Quantity       decimal.Decimal
	Unit           string
	UnitPrice      decimal.Decimal
	TaxRatePercent decimal.Decimal
	GrossTotal     decimal.Decimal
}

// OfferData is the full view bound into the offer template. Every field has a
// sensible zero value; unset fields render as empty strings, never as leaked
// placeholder syntax.
type OfferData struct {
	Number   string
	Date     string
	Client   OfferParty
	Rows     []OfferRow
	NetTotal decimal.Decimal
	TaxTotal decimal.Decimal
	Total    decimal.Decimal
	Note     string
	Company  settings.Company
}

const (
	offerTemplateFile = "offer.html"
	offerStyleFile    = "style.css"
)

// Composer binds offer data into the HTML template. Template and stylesheet
// are read from disk on every call; they change rarely and a stale cached
// copy would be worse than the extra I/O.
type Composer struct {
	templateDir string
	printer     *message.Printer
}

// NewComposer creates a composer reading templates from the given directory
func NewComposer(templateDir string) *Composer {
	return &Composer{
		templateDir: templateDir,
		printer:     message.NewPrinter(language.Slovenian),
	}
}

// Compose renders the offer template into a complete HTML document with the
// stylesheet inlined. Free-text fields (client name, note, company info) are
// HTML-escaped by the template engine; numeric fields are formatted sl-SI.
func (c *Composer) Compose(data *OfferData) (string, error) {
	rawTemplate, err := os.ReadFile(filepath.Join(c.templateDir, offerTemplateFile))
	if err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to read offer template", err)
	}
	rawCSS, err := os.ReadFile(filepath.Join(c.templateDir, offerStyleFile))
	if err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to read offer stylesheet", err)
	}

	tmpl, err := template.New(offerTemplateFile).Funcs(c.funcMap()).Parse(string(rawTemplate))
	if err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to parse offer template", err)
	}

	view := struct {
		*OfferData
		CSS template.CSS
	}{
		OfferData: data,
		CSS:       template.CSS(rawCSS),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", NewRenderError(ErrCodeTemplateFailed, "failed to execute offer template", err)
	}

	return buf.String(), nil
}

func (c *Composer) funcMap() template.FuncMap {
	return template.FuncMap{
		"money":   c.formatMoney,
		"qty":     formatQuantity,
		"percent": formatPercent,
	}
}

// formatMoney renders a decimal as sl-SI currency, e.g. 1234.5 -> "1.234,50 €"
func (c *Composer) formatMoney(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return c.printer.Sprintf("%v €", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// formatQuantity trims trailing zeros, e.g. 2.50 -> "2,5", 3 -> "3"
func formatQuantity(v decimal.Decimal) string {
	s := v.String()
	// Quantities are entered with dot decimals but printed sl-SI
	return replaceDot(s)
}

// formatPercent renders a tax rate, e.g. 9.5 -> "9,5%"
func formatPercent(v decimal.Decimal) string {
	return replaceDot(v.String()) + "%"
}

func replaceDot(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] == '.' {
			out[i] = ','
		}
	}
	return string(out)
}
