package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/anto251070/tdd-bdd-final-project/internal/model"
	"github.com/anto251070/tdd-bdd-final-project/pkg/logger"
	"github.com/anto251070/tdd-bdd-final-project/prometheus"
)

// truthy values accepted for the available query filter
var truthyValues = []string{"true", "yes", "1"}

// ListProducts handles retrieving all products with optional filtering.
// Filters are exclusive and checked in order: name, category, available,
// price. With no filter the full list is returned.
func ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing products")

	defer prometheus.TrackDBOperation("query")(time.Now())

	var (
		products []model.Product
		err      error
	)

	switch {
	case c.QueryParam("name") != "":
		name := c.QueryParam("name")
		log.Info("Filtering products by name", zap.String("name", name))
		products, err = model.FindByName(name)

	case c.QueryParam("category") != "":
		raw := c.QueryParam("category")
		category, perr := model.ParseCategory(strings.ToUpper(raw))
		if perr != nil {
			log.Warn("Unknown category filter", zap.String("category", raw))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": perr.Error()})
		}
		log.Info("Filtering products by category", zap.String("category", category.String()))
		products, err = model.FindByCategory(category)

	case c.QueryParam("available") != "":
		raw := c.QueryParam("available")
		available := isTruthy(raw)
		log.Info("Filtering products by availability", zap.Bool("available", available))
		products, err = model.FindByAvailability(available)

	case c.QueryParam("price") != "":
		raw := c.QueryParam("price")
		price, perr := decimal.NewFromString(strings.Trim(raw, ` "`))
		if perr != nil {
			log.Warn("Invalid price filter", zap.String("price", raw))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": fmt.Sprintf("Invalid price: %s", raw),
			})
		}
		log.Info("Filtering products by price", zap.String("price", price.String()))
		products, err = model.FindByPrice(price)

	default:
		products, err = model.All()
	}

	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve products",
		})
	}

	results := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(results)))
	return c.JSON(http.StatusOK, results)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	rawID := c.Param("id")
	log.Info("Getting product by ID", zap.String("product_id", rawID))

	id, err := parseProductID(rawID)
	if err != nil {
		return productNotFound(c, rawID)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	product, err := model.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("Product not found", zap.String("product_id", rawID))
			return productNotFound(c, rawID)
		}
		log.Error("Failed to read product", zap.String("product_id", rawID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product",
		})
	}

	log.Info("Product retrieved successfully",
		zap.String("product_id", rawID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product.Serialize())
}

// CreateProduct handles creating a new product from a JSON payload
func CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Creating new product")

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		log.Warn("Unsupported media type", zap.String("content_type", contentType))
		return c.JSON(http.StatusUnsupportedMediaType, echo.Map{
			"error": "Content-Type must be application/json",
		})
	}

	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	var product model.Product
	if err := product.Deserialize(payload); err != nil {
		log.Warn("Product payload failed validation", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := product.Create(); err != nil {
		log.Error("Failed to create product",
			zap.String("name", product.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create product",
		})
	}
	prometheus.RecordProductOperation("create")

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name))

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/products/%d", product.ID))
	return c.JSON(http.StatusCreated, product.Serialize())
}

// UpdateProduct handles replacing an existing product with a JSON payload
func UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	rawID := c.Param("id")
	log.Info("Updating product", zap.String("product_id", rawID))

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		log.Warn("Unsupported media type", zap.String("content_type", contentType))
		return c.JSON(http.StatusUnsupportedMediaType, echo.Map{
			"error": "Content-Type must be application/json",
		})
	}

	id, err := parseProductID(rawID)
	if err != nil {
		return productNotFound(c, rawID)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	product, err := model.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("Product not found for update", zap.String("product_id", rawID))
			return productNotFound(c, rawID)
		}
		log.Error("Failed to read product for update",
			zap.String("product_id", rawID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product",
		})
	}

	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		log.Error("Invalid request data", zap.String("product_id", rawID), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	if err := product.Deserialize(payload); err != nil {
		log.Warn("Product payload failed validation",
			zap.String("product_id", rawID),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	if err := product.Update(); err != nil {
		log.Error("Failed to update product",
			zap.String("product_id", rawID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update product",
		})
	}
	prometheus.RecordProductOperation("update")

	log.Info("Product updated successfully",
		zap.String("product_id", rawID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product.Serialize())
}

// DeleteProduct handles deleting a product. Deleting an absent product is
// not an error, so the response is 204 either way.
func DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	rawID := c.Param("id")
	log.Info("Deleting product", zap.String("product_id", rawID))

	id, err := parseProductID(rawID)
	if err != nil {
		return productNotFound(c, rawID)
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())

	product, err := model.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Info("Product already gone", zap.String("product_id", rawID))
			return c.NoContent(http.StatusNoContent)
		}
		log.Error("Failed to read product for delete",
			zap.String("product_id", rawID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve product",
		})
	}

	if err := product.Delete(); err != nil {
		log.Error("Failed to delete product",
			zap.String("product_id", rawID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete product",
		})
	}
	prometheus.RecordProductOperation("delete")

	log.Info("Product deleted successfully", zap.String("product_id", rawID))
	return c.NoContent(http.StatusNoContent)
}

func parseProductID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func productNotFound(c echo.Context, id string) error {
	return c.JSON(http.StatusNotFound, echo.Map{
		"error": fmt.Sprintf("Product with id '%s' was not found.", id),
	})
}

func isTruthy(value string) bool {
	lowered := strings.ToLower(value)
	for _, v := range truthyValues {
		if lowered == v {
			return true
		}
	}
	return false
}
