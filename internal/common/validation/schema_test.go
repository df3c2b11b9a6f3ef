// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateChatRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid message", body: `{"message": "hi"}`, wantErr: false},
		{name: "extra fields allowed", body: `{"message": "hi", "sessionId": "abc"}`, wantErr: false},
		{name: "missing message", body: `{}`, wantErr: true},
		{name: "empty message", body: `{"message": ""}`, wantErr: true},
		{name: "wrong type", body: `{"message": 42}`, wantErr: true},
		{name: "null message", body: `{"message": null}`, wantErr: true},
		{name: "malformed json", body: `{"message": `, wantErr: true},
		{name: "not an object", body: `"just a string"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChatRequest([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
