package testutil

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/anto251070/tdd-bdd-final-project/internal/model"
)

var productNames = []string{
	"Hat", "Pants", "Shirt", "Apple", "Banana", "Pots",
	"Towels", "Ford", "Chevy", "Hammer", "Wrench",
}

var productDescriptions = []string{
	"A truly wonderful product",
	"Sturdy and reliable",
	"Limited edition",
	"A customer favorite",
	"An everyday essential",
}

// ProductFactory builds an unsaved product with randomized fields, shaped
// like live catalog data.
func ProductFactory() *model.Product {
	categories := model.Categories()
	return &model.Product{
		Name:        productNames[rand.Intn(len(productNames))],
		Description: productDescriptions[rand.Intn(len(productDescriptions))],
		Price:       randomPrice(),
		Available:   rand.Intn(2) == 1,
		Category:    categories[rand.Intn(len(categories))],
	}
}

// randomPrice returns a two-decimal price between 0.50 and 2000.00.
func randomPrice() decimal.Decimal {
	cents := rand.Int63n(200000-50+1) + 50
	return decimal.New(cents, -2)
}

// CreateBatch stores count factory products and returns them.
func CreateBatch(t *testing.T, count int) []*model.Product {
	t.Helper()

	products := make([]*model.Product, 0, count)
	for i := 0; i < count; i++ {
		product := ProductFactory()
		require.NoError(t, product.Create())
		products = append(products, product)
	}
	return products
}
