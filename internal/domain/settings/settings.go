package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company holds the issuer block printed on every offer document
type Company struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline"`
	Address      string `json:"address"`
	TaxID        string `json:"taxId"`
	Registration string `json:"registration"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	LogoURL      string `json:"logoUrl"`
}

// PreviewClient is the sample recipient used by the template preview
type PreviewClient struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

// PreviewItem is a sample offer line with its own price and tax rate; the
// preview never touches the price list.
type PreviewItem struct {
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

// Preview holds the sample document rendered by the settings preview endpoint
type Preview struct {
	Number string        `json:"number"`
	Date   string        `json:"date"`
	Client PreviewClient `json:"client"`
	Items  []PreviewItem `json:"items"`
}

// TemplateSettings is the singleton offer-template configuration: company
// info, the note printed under the totals, and the preview sample document.
// It is replaced wholesale on update, never patched.
type TemplateSettings struct {
	Company Company `json:"company"`
	Note    string  `json:"note"`
	Preview Preview `json:"preview"`
}

// Defaults returns the built-in settings used when no configuration has been
// persisted yet, or when the persisted file cannot be parsed.
func Defaults() TemplateSettings {
	return TemplateSettings{
		Company: Company{
			Name:         "Inteligent d.o.o.",
			Tagline:      "Celovite rešitve avtomatizacije in digitalizacije",
			Address:      "Tržaška cesta 99, 1000 Ljubljana",
			TaxID:        "SI12345678",
			Registration: "8765432",
			Email:        "info@inteligent.si",
			Phone:        "+386 40 123 456",
			Website:      "www.inteligent.si",
			LogoURL:      "https://dummyimage.com/220x60/2563eb/ffffff&text=INTELIGENT",
		},
		Note: "Ponudba velja 30 dni od datuma izdaje. Montaža in konfiguracija niso vključene, razen če je drugače navedeno.",
		Preview: Preview{
			Number: "P-2025/0012",
			Date:   time.Now().Format("2006-01-02"),
			Client: PreviewClient{
				Name:    "Kovinarstvo Novak d.o.o.",
				Address: "Podutiška cesta 15, 1000 Ljubljana",
				TaxID:   "SI12345678",
			},
			Items: []PreviewItem{
				{Name: "Industrijski krmilnik X200", Unit: "kos", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(3450), TaxRatePercent: decimal.NewFromInt(22)},
				{Name: "IoT senzor paket", Unit: "kos", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(180), TaxRatePercent: decimal.NewFromInt(22)},
				{Name: "Implementacija in konfiguracija", Unit: "storitev", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(3800), TaxRatePercent: decimal.NewFromInt(22)},
			},
		},
	}
}

// Normalize fills every absent field of the submitted settings from the
// built-in defaults, field by field, and returns a fully-formed value ready
// for persistence.
func Normalize(in TemplateSettings) TemplateSettings {
	def := Defaults()

	out := in
	out.Company.Name = orDefault(in.Company.Name, def.Company.Name)
	out.Company.Tagline = orDefault(in.Company.Tagline, def.Company.Tagline)
	out.Company.Address = orDefault(in.Company.Address, def.Company.Address)
	out.Company.TaxID = orDefault(in.Company.TaxID, def.Company.TaxID)
	out.Company.Registration = orDefault(in.Company.Registration, def.Company.Registration)
	out.Company.Email = orDefault(in.Company.Email, def.Company.Email)
	out.Company.Phone = orDefault(in.Company.Phone, def.Company.Phone)
	out.Company.Website = orDefault(in.Company.Website, def.Company.Website)
	out.Company.LogoURL = orDefault(in.Company.LogoURL, def.Company.LogoURL)

	out.Note = orDefault(in.Note, def.Note)

	out.Preview.Number = orDefault(in.Preview.Number, def.Preview.Number)
	out.Preview.Date = orDefault(in.Preview.Date, def.Preview.Date)
	out.Preview.Client.Name = orDefault(in.Preview.Client.Name, def.Preview.Client.Name)
	out.Preview.Client.Address = orDefault(in.Preview.Client.Address, def.Preview.Client.Address)
	out.Preview.Client.TaxID = orDefault(in.Preview.Client.TaxID, def.Preview.Client.TaxID)

	items := make([]PreviewItem, 0, len(in.Preview.Items))
	for _, item := range in.Preview.Items {
		if item.Unit == "" {
			item.Unit = "kos"
		}
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			item.Quantity = decimal.NewFromInt(1)
		}
		if item.UnitPrice.IsNegative() {
			item.UnitPrice = decimal.Zero
		}
		if item.TaxRatePercent.LessThanOrEqual(decimal.Zero) {
			item.TaxRatePercent = decimal.NewFromInt(22)
		}
		items = append(items, item)
	}
	out.Preview.Items = items

	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
