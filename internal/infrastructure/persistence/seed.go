package persistence

import (
	"context"

	"github.com/inteligent/dashboard/internal/domain/catalog"
	"github.com/inteligent/dashboard/internal/domain/partner"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seed populates an empty database with a demo price list and demo clients so
// a fresh install has something to show. Tables that already hold data are
// left alone.
func Seed(ctx context.Context, items catalog.ItemRepository, clients partner.ClientRepository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	itemCount, err := items.Count(ctx)
	if err != nil {
		return err
	}
	if itemCount == 0 {
		demoItems := []struct {
			name  string
			unit  string
			price int64
		}{
			{"Industrijski krmilnik X200", "kos", 3450},
			{"IoT senzor paket", "kos", 180},
			{"Implementacija in konfiguracija", "storitev", 3800},
		}
		for _, d := range demoItems {
			item, err := catalog.NewItem(d.name, d.unit, decimal.NewFromInt(d.price), decimal.NewFromInt(22))
			if err != nil {
				return err
			}
			if err := items.Save(ctx, item); err != nil {
				return err
			}
		}
		logger.Info("seeded demo price list", zap.Int("items", len(demoItems)))
	}

	clientCount, err := clients.Count(ctx)
	if err != nil {
		return err
	}
	if clientCount == 0 {
		demoClients := []struct {
			name, company, taxNumber, email, phone, address string
			clientType                                      partner.ClientType
		}{
			{"Janez Novak", "Kovinarstvo Novak d.o.o.", "SI12345678", "janez@kovinarstvo-novak.si",
				"+386 40 111 222", "Podutiška cesta 15, 1000 Ljubljana", partner.ClientTypeCompany},
			{"Maja Kovač", "Pekarna Kovač d.o.o.", "SI87654321", "maja@pekarna-kovac.si",
				"+386 31 333 444", "Glavni trg 3, 2000 Maribor", partner.ClientTypeCompany},
			{"Peter Zupan", "", "", "peter.zupan@gmail.com",
				"+386 51 555 666", "Cesta v Gorice 8, 4000 Kranj", partner.ClientTypePerson},
		}
		for _, d := range demoClients {
			client, err := partner.NewClient(d.name, d.company, d.clientType, d.taxNumber, d.email, d.phone, d.address)
			if err != nil {
				return err
			}
			if err := clients.Save(ctx, client); err != nil {
				return err
			}
		}
		logger.Info("seeded demo clients", zap.Int("clients", len(demoClients)))
	}

	return nil
}
