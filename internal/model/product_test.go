package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/anto251070/tdd-bdd-final-project/internal/model"
	"github.com/anto251070/tdd-bdd-final-project/internal/testutil"
)

func TestCreateAProduct(t *testing.T) {
	product := model.Product{
		Name:        "Fedora",
		Description: "A red hat",
		Price:       decimal.NewFromFloat(12.50),
		Available:   true,
		Category:    model.CategoryCloths,
	}

	assert.Zero(t, product.ID)
	assert.Equal(t, "Fedora", product.Name)
	assert.Equal(t, "A red hat", product.Description)
	assert.True(t, product.Available)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(12.50)))
	assert.Equal(t, model.CategoryCloths, product.Category)
}

func TestAddAProduct(t *testing.T) {
	testutil.SetupTestDB(t)

	products, err := model.All()
	require.NoError(t, err)
	assert.Empty(t, products)

	product := testutil.ProductFactory()
	require.NoError(t, product.Create())
	assert.NotZero(t, product.ID)

	products, err = model.All()
	require.NoError(t, err)
	require.Len(t, products, 1)

	stored := products[0]
	assert.Equal(t, product.Name, stored.Name)
	assert.Equal(t, product.Description, stored.Description)
	assert.True(t, stored.Price.Equal(product.Price),
		"stored price %s, want %s", stored.Price, product.Price)
	assert.Equal(t, product.Available, stored.Available)
	assert.Equal(t, product.Category, stored.Category)
}

func TestCreateResetsStaleID(t *testing.T) {
	testutil.SetupTestDB(t)

	product := testutil.ProductFactory()
	product.ID = 42
	require.NoError(t, product.Create())
	assert.NotEqual(t, uint(42), product.ID)

	products, err := model.All()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestReadAProduct(t *testing.T) {
	testutil.SetupTestDB(t)

	product := testutil.ProductFactory()
	require.NoError(t, product.Create())

	found, err := model.Find(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, product.Name, found.Name)
	assert.Equal(t, product.Description, found.Description)
	assert.True(t, found.Price.Equal(product.Price))
}

func TestReadMissingProduct(t *testing.T) {
	testutil.SetupTestDB(t)

	_, err := model.Find(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateAProduct(t *testing.T) {
	testutil.SetupTestDB(t)

	product := testutil.ProductFactory()
	require.NoError(t, product.Create())

	product.Description = "testing"
	originalID := product.ID
	require.NoError(t, product.Update())
	assert.Equal(t, originalID, product.ID)
	assert.Equal(t, "testing", product.Description)

	products, err := model.All()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, originalID, products[0].ID)
	assert.Equal(t, "testing", products[0].Description)
}

func TestUpdateWithoutID(t *testing.T) {
	product := testutil.ProductFactory()
	product.ID = 0

	err := product.Update()
	var dve *model.DataValidationError
	require.ErrorAs(t, err, &dve)
	assert.Contains(t, dve.Message, "empty ID field")
}

func TestDeleteAProduct(t *testing.T) {
	testutil.SetupTestDB(t)

	product := testutil.ProductFactory()
	require.NoError(t, product.Create())

	products, err := model.All()
	require.NoError(t, err)
	assert.Len(t, products, 1)

	require.NoError(t, product.Delete())

	products, err = model.All()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListAllProducts(t *testing.T) {
	testutil.SetupTestDB(t)

	products, err := model.All()
	require.NoError(t, err)
	assert.Empty(t, products)

	testutil.CreateBatch(t, 5)

	products, err = model.All()
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestFindByName(t *testing.T) {
	testutil.SetupTestDB(t)

	products := testutil.CreateBatch(t, 5)
	name := products[0].Name

	expected := 0
	for _, product := range products {
		if product.Name == name {
			expected++
		}
	}

	found, err := model.FindByName(name)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, product := range found {
		assert.Equal(t, name, product.Name)
	}
}

func TestFindByAvailability(t *testing.T) {
	testutil.SetupTestDB(t)

	products := testutil.CreateBatch(t, 10)
	available := products[0].Available

	expected := 0
	for _, product := range products {
		if product.Available == available {
			expected++
		}
	}

	found, err := model.FindByAvailability(available)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, product := range found {
		assert.Equal(t, available, product.Available)
	}
}

func TestFindByCategory(t *testing.T) {
	testutil.SetupTestDB(t)

	products := testutil.CreateBatch(t, 10)
	category := products[0].Category

	expected := 0
	for _, product := range products {
		if product.Category == category {
			expected++
		}
	}

	found, err := model.FindByCategory(category)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, product := range found {
		assert.Equal(t, category, product.Category)
	}
}

func TestFindByPrice(t *testing.T) {
	testutil.SetupTestDB(t)

	products := testutil.CreateBatch(t, 10)
	price := products[0].Price

	expected := 0
	for _, product := range products {
		if product.Price.Equal(price) {
			expected++
		}
	}

	found, err := model.FindByPrice(price)
	require.NoError(t, err)
	assert.Len(t, found, expected)
	for _, product := range found {
		assert.True(t, product.Price.Equal(price),
			"found price %s, want %s", product.Price, price)
	}
}

func TestSerializeAProduct(t *testing.T) {
	product := testutil.ProductFactory()
	product.ID = 7

	data := product.Serialize()
	assert.Equal(t, uint(7), data["id"])
	assert.Equal(t, product.Name, data["name"])
	assert.Equal(t, product.Description, data["description"])
	assert.Equal(t, product.Price.String(), data["price"])
	assert.Equal(t, product.Available, data["available"])
	assert.Equal(t, product.Category.String(), data["category"])
}

func TestDeserializeAProduct(t *testing.T) {
	product := testutil.ProductFactory()
	data := product.Serialize()

	var target model.Product
	require.NoError(t, target.Deserialize(data))
	assert.Zero(t, target.ID)
	assert.Equal(t, product.Name, target.Name)
	assert.Equal(t, product.Description, target.Description)
	assert.True(t, target.Price.Equal(product.Price))
	assert.Equal(t, product.Available, target.Available)
	assert.Equal(t, product.Category, target.Category)
}

func TestDeserializeNumericPrice(t *testing.T) {
	data := testutil.ProductFactory().Serialize()
	// JSON decoding hands numbers to the model as float64
	data["price"] = 12.5

	var product model.Product
	require.NoError(t, product.Deserialize(data))
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(12.5)))
}

func TestDeserializeMissingField(t *testing.T) {
	for _, key := range []string{"name", "description", "price", "available", "category"} {
		t.Run("missing "+key, func(t *testing.T) {
			data := testutil.ProductFactory().Serialize()
			delete(data, key)

			var product model.Product
			err := product.Deserialize(data)
			var dve *model.DataValidationError
			require.ErrorAs(t, err, &dve)
			assert.Contains(t, dve.Message, "missing "+key)
		})
	}
}

func TestDeserializeBadAvailable(t *testing.T) {
	data := testutil.ProductFactory().Serialize()
	data["available"] = "not-a-bool"

	var product model.Product
	err := product.Deserialize(data)
	var dve *model.DataValidationError
	require.ErrorAs(t, err, &dve)
	assert.Contains(t, dve.Message, "boolean [available]")
}

func TestDeserializeBadCategory(t *testing.T) {
	data := testutil.ProductFactory().Serialize()
	data["category"] = "SLEDGEHAMMER"

	var product model.Product
	err := product.Deserialize(data)
	var dve *model.DataValidationError
	require.ErrorAs(t, err, &dve)
	assert.Contains(t, dve.Message, "Invalid category")
}

func TestDeserializeBadPrice(t *testing.T) {
	data := testutil.ProductFactory().Serialize()
	data["price"] = "not-a-price"

	var product model.Product
	err := product.Deserialize(data)
	var dve *model.DataValidationError
	require.ErrorAs(t, err, &dve)
	assert.Contains(t, dve.Message, "Invalid price")
}

func TestDeserializeLeavesProductUntouchedOnError(t *testing.T) {
	product := testutil.ProductFactory()
	name := product.Name

	data := product.Serialize()
	data["name"] = "Changed"
	data["available"] = "not-a-bool"

	err := product.Deserialize(data)
	require.Error(t, err)
	assert.Equal(t, name, product.Name)
}
