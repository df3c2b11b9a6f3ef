// internal/models/dataset.go
package models

// Dataset is the immutable in-memory snapshot of all six tables. It is built
// once at startup and shared by every request without synchronization; no
// code mutates it after NewDataset returns.
type Dataset struct {
	Users               []User
	Orders              []Order
	OrderItems          []OrderItem
	Products            []Product
	DistributionCenters []DistributionCenter
	InventoryItems      []InventoryItem

	usersByID  map[int]*User
	ordersByID map[int]*Order
}

func NewDataset(
	users []User,
	orders []Order,
	orderItems []OrderItem,
	products []Product,
	distributionCenters []DistributionCenter,
	inventoryItems []InventoryItem,
) *Dataset {
	ds := &Dataset{
		Users:               users,
		Orders:              orders,
		OrderItems:          orderItems,
		Products:            products,
		DistributionCenters: distributionCenters,
		InventoryItems:      inventoryItems,
		usersByID:           make(map[int]*User, len(users)),
		ordersByID:          make(map[int]*Order, len(orders)),
	}

	for i := range users {
		ds.usersByID[users[i].ID] = &ds.Users[i]
	}
	for i := range orders {
		ds.ordersByID[orders[i].OrderID] = &ds.Orders[i]
	}

	return ds
}

// UserByID returns the user row for id, or nil when no row exists.
func (ds *Dataset) UserByID(id int) *User {
	return ds.usersByID[id]
}

// OrderByID returns the order row for id, or nil when no row exists.
func (ds *Dataset) OrderByID(id int) *Order {
	return ds.ordersByID[id]
}
