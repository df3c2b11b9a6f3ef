// internal/engine/aggregate/aggregate.go
package aggregate

import (
	"sort"

	"ecommerce-chatbot/internal/models"
)

// ProductSales is one row of the top-sellers view.
type ProductSales struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

// TopSellingProducts counts sales per product over the order items and
// left-joins product names on. A product id with no catalog row is kept with
// an empty name: sales count even when the catalog is incomplete. Rows are
// sorted by sales descending; ties keep first-encounter order. The result
// holds at most limit rows and is empty, never nil-deref or error, for empty
// data or limit <= 0.
func TopSellingProducts(ds *models.Dataset, limit int) []ProductSales {
	counts := make(map[int]int)
	var order []int
	for _, item := range ds.OrderItems {
		if _, seen := counts[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		counts[item.ProductID]++
	}

	namesByID := make(map[int]string, len(ds.Products))
	for _, p := range ds.Products {
		namesByID[p.ID] = p.Name
	}

	rows := make([]ProductSales, 0, len(order))
	for _, id := range order {
		rows = append(rows, ProductSales{
			Name:  namesByID[id],
			Sales: counts[id],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Sales > rows[j].Sales
	})

	if limit < 0 {
		limit = 0
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}

	return rows
}
