// internal/dataset/postgres_test.go
package dataset

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectAllTables(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT id, first_name, last_name, email, age, gender, state, city, country, traffic_source, created_at FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email", "age", "gender",
			"state", "city", "country", "traffic_source", "created_at",
		}).AddRow(12, "Jane", "Doe", "jane@example.com", 34, "F",
			"Texas", "Houston", "United States", "Search", "2023-01-05"))

	mock.ExpectQuery(`SELECT order_id, user_id, status, created_at, shipped_at, delivered_at, returned_at, num_of_item FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{
			"order_id", "user_id", "status", "created_at",
			"shipped_at", "delivered_at", "returned_at", "num_of_item",
		}).AddRow(5, 12, "Shipped", "2023-03-01", "2023-03-02", nil, nil, 2))

	mock.ExpectQuery(`SELECT id, order_id, user_id, product_id, status, sale_price FROM order_items`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "user_id", "product_id", "status", "sale_price",
		}).AddRow(1, 5, 12, 1, "Shipped", 19.99).
			AddRow(2, 5, 12, 2, "Shipped", 29.99))

	mock.ExpectQuery(`SELECT id, name, brand, category, department, retail_price, cost, sku, distribution_center_id FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "brand", "category", "department",
			"retail_price", "cost", "sku", "distribution_center_id",
		}).AddRow(1, "Shirt", "Acme", "Tops", "Men", 19.99, 8.50, "SKU001", 1))

	mock.ExpectQuery(`SELECT id, name, latitude, longitude FROM distribution_centers`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude"}).
			AddRow(1, "Memphis TN", 35.1174, -89.9711))

	mock.ExpectQuery(`SELECT id, product_id, created_at, sold_at, cost, product_category, product_name, product_brand, product_distribution_center_id FROM inventory_items`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "product_id", "created_at", "sold_at", "cost",
			"product_category", "product_name", "product_brand", "product_distribution_center_id",
		}).AddRow(10, 1, "2023-01-01", nil, 8.50, "Tops", "Shirt", "Acme", 1))
}

func TestLoadPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectAllTables(mock)

	ds, err := LoadPostgres(context.Background(), db)
	require.NoError(t, err)

	assert.Len(t, ds.Users, 1)
	assert.Len(t, ds.Orders, 1)
	assert.Len(t, ds.OrderItems, 2)
	assert.Len(t, ds.Products, 1)
	assert.Len(t, ds.DistributionCenters, 1)
	assert.Len(t, ds.InventoryItems, 1)

	order := ds.OrderByID(5)
	require.NotNil(t, order)
	assert.Equal(t, "Shipped", order.Status)
	assert.Equal(t, "", order.DeliveredAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadPostgres_QueryFailureIsFatal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, first_name`).
		WillReturnError(fmt.Errorf("connection reset"))

	_, err = LoadPostgres(context.Background(), db)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATASET_LOAD_FAILED")
}
