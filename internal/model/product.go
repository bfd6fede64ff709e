package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/anto251070/tdd-bdd-final-project/pkg/database"
	"github.com/anto251070/tdd-bdd-final-project/pkg/logger"
)

// Product is a single item in the catalog. The ID is assigned by the
// database on create and identifies the row for every later operation.
type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:varchar(250)" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Available   bool            `gorm:"not null" json:"available"`
	Category    Category        `gorm:"type:varchar(32);default:'UNKNOWN'" json:"category"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// Create stores the product as a new row and fills in the generated ID.
// Any ID already on the struct is discarded so a stale value cannot turn
// the insert into an update.
func (p *Product) Create() error {
	logger.GetLogger().Debug("creating product", zap.String("name", p.Name))

	p.ID = 0
	if p.Category == "" {
		p.Category = CategoryUnknown
	}
	return database.GetDB().Create(p).Error
}

// Update writes the product's fields over its existing row. The product
// must have been created first so the ID says which row to replace.
func (p *Product) Update() error {
	logger.GetLogger().Debug("updating product",
		zap.Uint("id", p.ID), zap.String("name", p.Name))

	if p.ID == 0 {
		return dataValidationErrorf("Update called with empty ID field")
	}
	return database.GetDB().Save(p).Error
}

// Delete removes the product's row from the database.
func (p *Product) Delete() error {
	logger.GetLogger().Debug("deleting product",
		zap.Uint("id", p.ID), zap.String("name", p.Name))

	return database.GetDB().Delete(p).Error
}

// Serialize converts the product into the generic map form used by the
// REST layer. The price is rendered as a string so no precision is lost
// on the way through JSON.
func (p *Product) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from the generic map form, validating
// every field before any of them is applied. The ID is never taken from
// the payload.
func (p *Product) Deserialize(data map[string]interface{}) error {
	name, err := stringField(data, "name")
	if err != nil {
		return err
	}
	description, err := stringField(data, "description")
	if err != nil {
		return err
	}
	price, err := priceField(data)
	if err != nil {
		return err
	}
	rawAvailable, err := requireField(data, "available")
	if err != nil {
		return err
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return dataValidationErrorf("Invalid type for boolean [available]: %T", rawAvailable)
	}
	categoryName, err := stringField(data, "category")
	if err != nil {
		return err
	}
	category, err := ParseCategory(categoryName)
	if err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Available = available
	p.Category = category
	return nil
}

func requireField(data map[string]interface{}, key string) (interface{}, error) {
	v, ok := data[key]
	if !ok {
		return nil, dataValidationErrorf("Invalid product: missing %s", key)
	}
	return v, nil
}

func stringField(data map[string]interface{}, key string) (string, error) {
	v, err := requireField(data, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", dataValidationErrorf("Invalid type for string [%s]: %T", key, v)
	}
	return s, nil
}

// priceField accepts the price as a JSON number, a numeric string, or a
// decimal, since clients send whichever their JSON encoder produces.
func priceField(data map[string]interface{}) (decimal.Decimal, error) {
	raw, err := requireField(data, "price")
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, dataValidationErrorf("Invalid price: %s", v)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, dataValidationErrorf("Invalid price: %s", v)
		}
		return d, nil
	default:
		return decimal.Decimal{}, dataValidationErrorf("Invalid type for decimal [price]: %T", raw)
	}
}

// All returns every product in the database.
func All() ([]Product, error) {
	logger.GetLogger().Debug("processing all products")

	var products []Product
	if err := database.GetDB().Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Find looks up a single product by its ID. A miss reports
// gorm.ErrRecordNotFound.
func Find(id uint) (*Product, error) {
	logger.GetLogger().Debug("processing product lookup", zap.Uint("id", id))

	var product Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByName returns all products with the exact name.
func FindByName(name string) ([]Product, error) {
	logger.GetLogger().Debug("processing name query", zap.String("name", name))

	var products []Product
	if err := database.GetDB().Where("name = ?", name).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByAvailability returns all products with the given availability.
func FindByAvailability(available bool) ([]Product, error) {
	logger.GetLogger().Debug("processing availability query", zap.Bool("available", available))

	var products []Product
	if err := database.GetDB().Where("available = ?", available).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByCategory returns all products tagged with the given category.
func FindByCategory(category Category) ([]Product, error) {
	logger.GetLogger().Debug("processing category query", zap.String("category", category.String()))

	var products []Product
	if err := database.GetDB().Where("category = ?", category.String()).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByPrice returns all products whose price matches exactly. The
// comparison happens on the decimal column, so "12.5" and "12.50" match
// the same rows.
func FindByPrice(price decimal.Decimal) ([]Product, error) {
	logger.GetLogger().Debug("processing price query", zap.String("price", price.String()))

	var products []Product
	if err := database.GetDB().Where("price = ?", price).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
