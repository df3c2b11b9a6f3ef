// internal/common/validation/schema.go
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// chatRequestSchema is the wire contract for POST /chat. A missing or empty
// message is a client error, answered with HTTP 400.
const chatRequestSchema = `{
	"type": "object",
	"properties": {
		"message": {
			"type": "string",
			"minLength": 1
		}
	},
	"required": ["message"]
}`

var chatRequestLoader = gojsonschema.NewStringLoader(chatRequestSchema)

// ValidateChatRequest validates a raw JSON body against the chat request
// schema. Malformed JSON is reported as a validation failure, not an
// internal error.
func ValidateChatRequest(body []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(chatRequestLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("request validation failed: %v", errs)
	}

	return nil
}
