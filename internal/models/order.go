// internal/models/order.go
package models

type Order struct {
	OrderID     int    `json:"orderId"`
	UserID      int    `json:"userId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	ShippedAt   string `json:"shippedAt"`
	DeliveredAt string `json:"deliveredAt"`
	ReturnedAt  string `json:"returnedAt"`
	NumOfItem   int    `json:"numOfItem"`
}

// OrderItem links an order to a product. Rows carry no unique key of their
// own; the same product may appear on several rows of one order.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"orderId"`
	UserID    int     `json:"userId"`
	ProductID int     `json:"productId"`
	Status    string  `json:"status"`
	SalePrice float64 `json:"salePrice"`
}
