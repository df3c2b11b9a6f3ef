// internal/engine/prompt/prompt_test.go
package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	got := Build("User is asking about order #5. Data: {}", "where is order 5?")

	assert.Contains(t, got, "customer support assistant")
	assert.Contains(t, got, "Do not make up information.")
	assert.Contains(t, got, "CONTEXT: User is asking about order #5. Data: {}")
	assert.Contains(t, got, "USER'S QUESTION: where is order 5?")

	// Policy first, then context, then the question.
	assert.Less(t,
		strings.Index(got, "CONTEXT:"),
		strings.Index(got, "USER'S QUESTION:"),
	)
}

func TestBuild_OffersCapabilitiesWhenContextAbsent(t *testing.T) {
	got := Build("User is asking a general question. No specific data found.", "hi")

	assert.Contains(t, got, "tracking orders, product info, user info, top sellers")
}
