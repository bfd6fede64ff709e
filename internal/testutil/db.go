package testutil

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anto251070/tdd-bdd-final-project/internal/model"
	"github.com/anto251070/tdd-bdd-final-project/pkg/config"
	"github.com/anto251070/tdd-bdd-final-project/pkg/database"
	"github.com/anto251070/tdd-bdd-final-project/prometheus"
)

var (
	initOnce sync.Once
	initErr  error
)

// SetupTestDB opens the shared test database on first use and empties the
// products table, so every test starts from a clean slate. Tests run
// against in-memory sqlite unless DATABASE_URI points at a real database.
func SetupTestDB(t *testing.T) {
	t.Helper()

	initOnce.Do(func() { initErr = initTestDB() })
	require.NoError(t, initErr, "test database bootstrap")

	require.NoError(t, database.GetDB().Exec("DELETE FROM products").Error)
}

func initTestDB() error {
	conf, err := config.Load("product-service")
	if err != nil {
		return err
	}
	prometheus.InitMetrics(conf)

	dbConf := conf.DB
	if os.Getenv("DATABASE_URI") == "" {
		dbConf.Driver = "sqlite"
		// The shared cache keeps the one in-memory database visible to
		// every test in the package.
		dbConf.URI = "file::memory:?cache=shared"
	}
	if _, err := database.InitDB(&dbConf); err != nil {
		return err
	}
	return database.MigrateModels(&model.Product{})
}
