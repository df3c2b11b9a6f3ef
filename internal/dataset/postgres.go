// internal/dataset/postgres.go
package dataset

import (
	"context"
	"database/sql"

	"ecommerce-chatbot/internal/common/errors"
	"ecommerce-chatbot/internal/models"
)

const (
	usersQuery = `SELECT id, first_name, last_name, email, age, gender, state, city, country, traffic_source, created_at FROM users`

	ordersQuery = `SELECT order_id, user_id, status, created_at, shipped_at, delivered_at, returned_at, num_of_item FROM orders`

	orderItemsQuery = `SELECT id, order_id, user_id, product_id, status, sale_price FROM order_items`

	productsQuery = `SELECT id, name, brand, category, department, retail_price, cost, sku, distribution_center_id FROM products`

	distributionCentersQuery = `SELECT id, name, latitude, longitude FROM distribution_centers`

	inventoryItemsQuery = `SELECT id, product_id, created_at, sold_at, cost, product_category, product_name, product_brand, product_distribution_center_id FROM inventory_items`
)

// LoadPostgres reads all six tables over one connection pool and builds the
// immutable dataset snapshot. Any failed query is fatal to startup, matching
// the CSV loader.
func LoadPostgres(ctx context.Context, db *sql.DB) (*models.Dataset, error) {
	users, err := loadUsers(ctx, db)
	if err != nil {
		return nil, errors.NewDatasetLoadFailedError("users", err)
	}
	orders, err := loadOrders(ctx, db)
	if err != nil {
		return nil, errors.NewDatasetLoadFailedError("orders", err)
	}
	orderItems, err := loadOrderItems(ctx, db)
	if err != nil {
		return nil, errors.NewDatasetLoadFailedError("order_items", err)
	}
	products, err := loadProducts(ctx, db)
	if err != nil {
		return nil, errors.NewDatasetLoadFailedError("products", err)
	}
	centers, err := loadDistributionCenters(ctx, db)
	if err != nil {
		return nil, errors.NewDatasetLoadFailedError("distribution_centers", err)
	}
	inventory, err := loadInventoryItems(ctx, db)
	if err != nil {
		return nil, errors.NewDatasetLoadFailedError("inventory_items", err)
	}

	return models.NewDataset(users, orders, orderItems, products, centers, inventory), nil
}

func loadUsers(ctx context.Context, db *sql.DB) ([]models.User, error) {
	rows, err := db.QueryContext(ctx, usersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Age, &u.Gender,
			&u.State, &u.City, &u.Country, &u.TrafficSource, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func loadOrders(ctx context.Context, db *sql.DB) ([]models.Order, error) {
	rows, err := db.QueryContext(ctx, ordersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var shipped, delivered, returned sql.NullString
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.Status, &o.CreatedAt,
			&shipped, &delivered, &returned, &o.NumOfItem); err != nil {
			return nil, err
		}
		o.ShippedAt = shipped.String
		o.DeliveredAt = delivered.String
		o.ReturnedAt = returned.String
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func loadOrderItems(ctx context.Context, db *sql.DB) ([]models.OrderItem, error) {
	rows, err := db.QueryContext(ctx, orderItemsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.UserID, &it.ProductID,
			&it.Status, &it.SalePrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func loadProducts(ctx context.Context, db *sql.DB) ([]models.Product, error) {
	rows, err := db.QueryContext(ctx, productsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.Department,
			&p.RetailPrice, &p.Cost, &p.SKU, &p.DistributionCenterID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func loadDistributionCenters(ctx context.Context, db *sql.DB) ([]models.DistributionCenter, error) {
	rows, err := db.QueryContext(ctx, distributionCentersQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centers []models.DistributionCenter
	for rows.Next() {
		var c models.DistributionCenter
		if err := rows.Scan(&c.ID, &c.Name, &c.Latitude, &c.Longitude); err != nil {
			return nil, err
		}
		centers = append(centers, c)
	}
	return centers, rows.Err()
}

func loadInventoryItems(ctx context.Context, db *sql.DB) ([]models.InventoryItem, error) {
	rows, err := db.QueryContext(ctx, inventoryItemsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		var soldAt sql.NullString
		if err := rows.Scan(&it.ID, &it.ProductID, &it.CreatedAt, &soldAt, &it.Cost,
			&it.ProductCategory, &it.ProductName, &it.ProductBrand, &it.DistributionCenterID); err != nil {
			return nil, err
		}
		it.SoldAt = soldAt.String
		items = append(items, it)
	}
	return items, rows.Err()
}
