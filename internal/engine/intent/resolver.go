// internal/engine/intent/resolver.go
package intent

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ecommerce-chatbot/internal/engine/aggregate"
	"ecommerce-chatbot/internal/models"
)

const topProductsLimit = 5

// topProductPhrases trigger the top-sellers intent when any of them occurs
// in the lower-cased message.
var topProductPhrases = []string{"top 5", "most sold", "best selling", "most popular"}

var (
	userPattern  = regexp.MustCompile(`\b(?:user|customer)\s*#?\s*(\d+)`)
	orderPattern = regexp.MustCompile(`\border\s*#?\s*(\d+)`)
)

// Resolver maps a free-text message to an intent and a structured payload by
// evaluating a fixed-priority rule list against an immutable dataset
// snapshot. It holds no per-request state; concurrent Resolve calls need no
// synchronization.
type Resolver struct {
	ds    *models.Dataset
	rules []rule
}

// rule is one predicate+extractor pair. match returns the resolved result
// and whether the rule fired; the first firing rule wins.
type rule struct {
	tag   Tag
	match func(lower string) (Result, bool)
}

func NewResolver(ds *models.Dataset) *Resolver {
	r := &Resolver{ds: ds}
	r.rules = []rule{
		{tag: TagTopProducts, match: r.matchTopProducts},
		{tag: TagUserInfo, match: r.matchUser},
		{tag: TagTrackOrder, match: r.matchOrder},
		{tag: TagProductInfo, match: r.matchProduct},
		{tag: TagGeneralQuery, match: r.matchFallback},
	}
	return r
}

// Resolve evaluates the rules in priority order and returns the first match.
// The fallback rule is unconditional, so Resolve always returns a Result.
func (r *Resolver) Resolve(message string) Result {
	lower := strings.ToLower(message)
	for _, rl := range r.rules {
		if res, ok := rl.match(lower); ok {
			return res
		}
	}
	// Unreachable: the fallback rule always fires.
	return Result{Description: "User is asking a general question. No specific data found.", Tag: TagGeneralQuery, Payload: NoData{}}
}

func (r *Resolver) matchTopProducts(lower string) (Result, bool) {
	for _, phrase := range topProductPhrases {
		if strings.Contains(lower, phrase) {
			top := aggregate.TopSellingProducts(r.ds, topProductsLimit)
			return Result{
				Description: fmt.Sprintf("User is asking for top selling products. Data: %s", toJSON(top)),
				Tag:         TagTopProducts,
				Payload:     top,
			}, true
		}
	}
	return Result{}, false
}

func (r *Resolver) matchUser(lower string) (Result, bool) {
	id, ok := extractID(userPattern, lower)
	if !ok {
		return Result{}, false
	}

	user := r.ds.UserByID(id)
	if user == nil {
		return Result{
			Description: fmt.Sprintf("Could not find data for user ID %d.", id),
			Tag:         TagUserInfo,
			Payload:     NotFound{Entity: "user", ID: id},
		}, true
	}

	return Result{
		Description: fmt.Sprintf("User is asking about customer #%d. Data: %s", id, toJSON(user)),
		Tag:         TagUserInfo,
		Payload:     user,
	}, true
}

func (r *Resolver) matchOrder(lower string) (Result, bool) {
	id, ok := extractID(orderPattern, lower)
	if !ok {
		return Result{}, false
	}

	order := r.ds.OrderByID(id)
	if order == nil {
		return Result{
			Description: fmt.Sprintf("Could not find data for order ID %d.", id),
			Tag:         TagTrackOrder,
			Payload:     NotFound{Entity: "order", ID: id},
		}, true
	}

	return Result{
		Description: fmt.Sprintf("User is asking about order #%d. Data: %s", id, toJSON(order)),
		Tag:         TagTrackOrder,
		Payload:     order,
	}, true
}

// matchProduct scans every catalog name for a case-insensitive substring hit
// in the message. The longest matching name wins; equal-length ties go to
// the lowest product id so the choice never depends on table order.
func (r *Resolver) matchProduct(lower string) (Result, bool) {
	var matched *models.Product
	matchedLen := 0
	for i := range r.ds.Products {
		p := &r.ds.Products[i]
		name := strings.ToLower(p.Name)
		if name == "" || !strings.Contains(lower, name) {
			continue
		}
		if matched == nil ||
			len(name) > matchedLen ||
			(len(name) == matchedLen && p.ID < matched.ID) {
			matched = p
			matchedLen = len(name)
		}
	}

	if matched == nil {
		return Result{}, false
	}

	return Result{
		Description: fmt.Sprintf("User is asking about a product. Data: %s", toJSON(matched)),
		Tag:         TagProductInfo,
		Payload:     matched,
	}, true
}

func (r *Resolver) matchFallback(string) (Result, bool) {
	return Result{
		Description: "User is asking a general question. No specific data found.",
		Tag:         TagGeneralQuery,
		Payload:     NoData{},
	}, true
}

// extractID pulls the first digit run captured by pattern. A run too large
// for int is treated like no usable id at all, which downstream reads as a
// not-found lookup rather than an error.
func extractID(pattern *regexp.Regexp, lower string) (int, bool) {
	m := pattern.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return -1, true
	}
	return id, true
}

func toJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
