// internal/models/user.go
package models

type User struct {
	ID            int    `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	State         string `json:"state"`
	City          string `json:"city"`
	Country       string `json:"country"`
	TrafficSource string `json:"trafficSource"`
	CreatedAt     string `json:"createdAt"`
}
