// internal/engine/intent/models.go
package intent

// Tag identifies the category of user request a message resolved to.
type Tag string

const (
	TagTopProducts  Tag = "top_products_list"
	TagUserInfo     Tag = "user_info"
	TagTrackOrder   Tag = "track_order"
	TagProductInfo  Tag = "product_info"
	TagGeneralQuery Tag = "general_query"
)

// Result is one resolved intent: the human-readable context description fed
// into the generation prompt, the intent tag, and the structured payload
// behind the description.
type Result struct {
	Description string      `json:"description"`
	Tag         Tag         `json:"tag"`
	Payload     interface{} `json:"payload"`
}

// NotFound marks a lookup miss. The tag stays the same as a hit; the
// downstream generator is responsible for the polite not-found phrasing.
type NotFound struct {
	Entity string `json:"entity"`
	ID     int    `json:"id"`
}

// NoData is the fallback payload. It carries no dataset content.
type NoData struct{}
