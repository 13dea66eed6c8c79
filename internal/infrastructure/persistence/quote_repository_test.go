package persistence

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/inteligent/dashboard/internal/domain/quote"
	"github.com/inteligent/dashboard/internal/domain/shared"
	"github.com/inteligent/dashboard/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
// The database is named after the test so parallel tests stay isolated while
// pooled connections within one test still see the same data.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.ItemModel{},
		&models.ProjectModel{},
		&models.QuoteModel{},
		&models.NumberSequenceModel{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestQuote(t *testing.T, number string) *quote.Quote {
	t.Helper()
	q, err := quote.NewQuote(number, uuid.New(),
		[]quote.LineInput{{ItemID: uuid.New(), Quantity: decimal.NewFromInt(2)}},
		decimal.Zero)
	require.NoError(t, err)
	return q
}

func TestGormQuoteRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormQuoteRepository(db)
	ctx := context.Background()

	q := newTestQuote(t, "P-0001/2025")
	require.NoError(t, repo.Save(ctx, q))

	found, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.Number, found.Number)
	assert.Equal(t, q.ChainID, found.ChainID)
	assert.Equal(t, 1, found.Version)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, q.Lines[0].ItemID, found.Lines[0].ItemID)
	assert.True(t, found.Lines[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, found.Active)
}

func TestGormQuoteRepository_FindByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormQuoteRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormQuoteRepository_FindLatestInChain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormQuoteRepository(db)
	ctx := context.Background()

	root := newTestQuote(t, "P-0001/2025")
	require.NoError(t, repo.Save(ctx, root))

	v2, err := quote.NewVersionOf(root, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, v2))

	v3, err := quote.NewVersionOf(v2, 3)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, v3))

	// Deactivating the latest version does not change which one is latest.
	require.NoError(t, repo.SetActive(ctx, v3.ID, false))

	latest, err := repo.FindLatestInChain(ctx, root.ChainID)
	require.NoError(t, err)
	assert.Equal(t, v3.ID, latest.ID)
	assert.Equal(t, 3, latest.Version)
	assert.False(t, latest.Active)
}

func TestGormQuoteRepository_RejectsDuplicateChainVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormQuoteRepository(db)
	ctx := context.Background()

	root := newTestQuote(t, "P-0001/2025")
	require.NoError(t, repo.Save(ctx, root))

	// A second document claiming the same slot in the chain must be refused
	// by the database even with a distinct number.
	rival := newTestQuote(t, "P-0002/2025")
	rival.ChainID = root.ChainID
	rival.Version = root.Version

	assert.Error(t, repo.Save(ctx, rival))
}

func TestGormQuoteRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormQuoteRepository(db)
	ctx := context.Background()

	first := newTestQuote(t, "P-0001/2025")
	second := newTestQuote(t, "P-0002/2025")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.SetActive(ctx, first.ID, false))

	active, err := repo.ListActive(ctx, 10)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestGormQuoteRepository_UpdateContent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormQuoteRepository(db)
	ctx := context.Background()

	q := newTestQuote(t, "P-0001/2025")
	require.NoError(t, repo.Save(ctx, q))

	newItem := uuid.New()
	require.NoError(t, q.UpdateContent(q.ClientID,
		[]quote.LineInput{{ItemID: newItem, Quantity: decimal.NewFromInt(7)}},
		decimal.NewFromFloat(0.15)))
	require.NoError(t, repo.UpdateContent(ctx, q))

	found, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "P-0001/2025", found.Number)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, newItem, found.Lines[0].ItemID)
	assert.True(t, found.Discount.Equal(decimal.NewFromFloat(0.15)))
}

func TestGormQuoteRepository_UpdatePDFPath(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormQuoteRepository(db)
	ctx := context.Background()

	q := newTestQuote(t, "P-0001/2025")
	require.NoError(t, repo.Save(ctx, q))

	require.NoError(t, repo.UpdatePDFPath(ctx, q.ID, "ponudbe/P-0001-2025.pdf"))

	found, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "ponudbe/P-0001-2025.pdf", found.PDFPath)

	assert.ErrorIs(t, repo.UpdatePDFPath(ctx, uuid.New(), "x.pdf"), shared.ErrNotFound)
}

func TestGormNumberSequence_Next(t *testing.T) {
	db := setupTestDB(t)
	seq := NewGormNumberSequence(db)
	ctx := context.Background()

	first, err := seq.Next(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := seq.Next(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	// Years count independently.
	other, err := seq.Next(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestGormNumberSequence_NextConcurrent(t *testing.T) {
	db := setupTestDB(t)
	seq := NewGormNumberSequence(db)
	ctx := context.Background()

	const workers = 10
	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := seq.Next(ctx, 2025)
			if err != nil {
				results <- -1
				return
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for n := range results {
		require.Positive(t, n)
		assert.False(t, seen[n], "sequence value allocated twice")
		seen[n] = true
	}
	assert.Len(t, seen, workers)
}

func TestSeed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	items := NewGormItemRepository(db)
	clients := NewGormClientRepository(db)

	require.NoError(t, Seed(ctx, items, clients, nil))

	itemCount, err := items.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), itemCount)

	clientCount, err := clients.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), clientCount)

	// Seeding again is a no-op.
	require.NoError(t, Seed(ctx, items, clients, nil))
	itemCount, err = items.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), itemCount)
}
