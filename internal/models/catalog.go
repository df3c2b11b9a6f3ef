// internal/models/catalog.go
package models

type Product struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Brand                string  `json:"brand"`
	Category             string  `json:"category"`
	Department           string  `json:"department"`
	RetailPrice          float64 `json:"retailPrice"`
	Cost                 float64 `json:"cost"`
	SKU                  string  `json:"sku"`
	DistributionCenterID int     `json:"distributionCenterId"`
}

type DistributionCenter struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type InventoryItem struct {
	ID                   int     `json:"id"`
	ProductID            int     `json:"productId"`
	CreatedAt            string  `json:"createdAt"`
	SoldAt               string  `json:"soldAt"`
	Cost                 float64 `json:"cost"`
	ProductCategory      string  `json:"productCategory"`
	ProductName          string  `json:"productName"`
	ProductBrand         string  `json:"productBrand"`
	DistributionCenterID int     `json:"distributionCenterId"`
}
