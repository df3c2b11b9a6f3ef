// internal/dataset/csv.go
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"ecommerce-chatbot/internal/common/errors"
	"ecommerce-chatbot/internal/models"
)

// CSV file names expected in the dataset directory.
const (
	usersFile               = "users.csv"
	ordersFile              = "orders.csv"
	orderItemsFile          = "order_items.csv"
	productsFile            = "products.csv"
	distributionCentersFile = "distribution_centers.csv"
	inventoryItemsFile      = "inventory_items.csv"
)

// LoadCSV reads all six tables from dir and builds the immutable dataset
// snapshot. Any missing file or unparseable key column is fatal to startup.
func LoadCSV(dir string) (*models.Dataset, error) {
	var users []models.User
	if err := readTable(dir, usersFile, func(r row) error {
		id, err := r.intCol("id")
		if err != nil {
			return err
		}
		users = append(users, models.User{
			ID:            id,
			FirstName:     r.strCol("first_name"),
			LastName:      r.strCol("last_name"),
			Email:         r.strCol("email"),
			Age:           r.intColOrZero("age"),
			Gender:        r.strCol("gender"),
			State:         r.strCol("state"),
			City:          r.strCol("city"),
			Country:       r.strCol("country"),
			TrafficSource: r.strCol("traffic_source"),
			CreatedAt:     r.strCol("created_at"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := readTable(dir, ordersFile, func(r row) error {
		orderID, err := r.intCol("order_id")
		if err != nil {
			return err
		}
		userID, err := r.intCol("user_id")
		if err != nil {
			return err
		}
		orders = append(orders, models.Order{
			OrderID:     orderID,
			UserID:      userID,
			Status:      r.strCol("status"),
			CreatedAt:   r.strCol("created_at"),
			ShippedAt:   r.strCol("shipped_at"),
			DeliveredAt: r.strCol("delivered_at"),
			ReturnedAt:  r.strCol("returned_at"),
			NumOfItem:   r.intColOrZero("num_of_item"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	var orderItems []models.OrderItem
	if err := readTable(dir, orderItemsFile, func(r row) error {
		orderID, err := r.intCol("order_id")
		if err != nil {
			return err
		}
		productID, err := r.intCol("product_id")
		if err != nil {
			return err
		}
		orderItems = append(orderItems, models.OrderItem{
			ID:        r.intColOrZero("id"),
			OrderID:   orderID,
			UserID:    r.intColOrZero("user_id"),
			ProductID: productID,
			Status:    r.strCol("status"),
			SalePrice: r.floatColOrZero("sale_price"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := readTable(dir, productsFile, func(r row) error {
		id, err := r.intCol("id")
		if err != nil {
			return err
		}
		products = append(products, models.Product{
			ID:                   id,
			Name:                 r.strCol("name"),
			Brand:                r.strCol("brand"),
			Category:             r.strCol("category"),
			Department:           r.strCol("department"),
			RetailPrice:          r.floatColOrZero("retail_price"),
			Cost:                 r.floatColOrZero("cost"),
			SKU:                  r.strCol("sku"),
			DistributionCenterID: r.intColOrZero("distribution_center_id"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	var centers []models.DistributionCenter
	if err := readTable(dir, distributionCentersFile, func(r row) error {
		id, err := r.intCol("id")
		if err != nil {
			return err
		}
		centers = append(centers, models.DistributionCenter{
			ID:        id,
			Name:      r.strCol("name"),
			Latitude:  r.floatColOrZero("latitude"),
			Longitude: r.floatColOrZero("longitude"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	var inventory []models.InventoryItem
	if err := readTable(dir, inventoryItemsFile, func(r row) error {
		id, err := r.intCol("id")
		if err != nil {
			return err
		}
		inventory = append(inventory, models.InventoryItem{
			ID:                   id,
			ProductID:            r.intColOrZero("product_id"),
			CreatedAt:            r.strCol("created_at"),
			SoldAt:               r.strCol("sold_at"),
			Cost:                 r.floatColOrZero("cost"),
			ProductCategory:      r.strCol("product_category"),
			ProductName:          r.strCol("product_name"),
			ProductBrand:         r.strCol("product_brand"),
			DistributionCenterID: r.intColOrZero("product_distribution_center_id"),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	return models.NewDataset(users, orders, orderItems, products, centers, inventory), nil
}

// row gives header-indexed access to one CSV record.
type row struct {
	header map[string]int
	fields []string
}

func (r row) strCol(name string) string {
	idx, ok := r.header[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return r.fields[idx]
}

func (r row) intCol(name string) (int, error) {
	raw := r.strCol(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: parse %q as int: %w", name, raw, err)
	}
	return v, nil
}

func (r row) intColOrZero(name string) int {
	v, _ := r.intCol(name)
	return v
}

func (r row) floatColOrZero(name string) float64 {
	v, _ := strconv.ParseFloat(r.strCol(name), 64)
	return v
}

func readTable(dir, name string, scan func(row) error) error {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return errors.NewDatasetLoadFailedError(name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return errors.NewDatasetLoadFailedError(name, err)
	}
	if len(records) == 0 {
		return errors.NewDatasetLoadFailedError(name, fmt.Errorf("empty file, missing header"))
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[col] = i
	}

	for i, fields := range records[1:] {
		if err := scan(row{header: header, fields: fields}); err != nil {
			return errors.NewDatasetLoadFailedError(name, fmt.Errorf("row %d: %w", i+2, err))
		}
	}

	return nil
}
