// internal/chat/service_test.go
package chat

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"ecommerce-chatbot/internal/common/database"
	"ecommerce-chatbot/internal/common/genai"
	"ecommerce-chatbot/internal/common/logger"
	"ecommerce-chatbot/internal/engine/intent"
	"ecommerce-chatbot/internal/models"
)

// stubGenerator implements Generator with a fixed reply or error.
type stubGenerator struct {
	configured bool
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (g *stubGenerator) Configured() bool { return g.configured }

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func testResolver() *intent.Resolver {
	ds := models.NewDataset(
		[]models.User{{ID: 12, FirstName: "Jane"}},
		[]models.Order{{OrderID: 5, Status: "Shipped"}},
		[]models.OrderItem{{ID: 1, OrderID: 5, ProductID: 1}},
		[]models.Product{{ID: 1, Name: "Shirt"}},
		nil, nil,
	)
	return intent.NewResolver(ds)
}

func TestService_Respond_Success(t *testing.T) {
	gen := &stubGenerator{configured: true, reply: "Order #5 is Shipped."}
	svc := NewService(testResolver(), gen, nil, 0, logger.NewTestLogger(t))

	text, tag := svc.Respond(context.Background(), "where is order 5?")

	assert.Equal(t, "Order #5 is Shipped.", text)
	assert.Equal(t, intent.TagTrackOrder, tag)
	assert.Contains(t, gen.lastPrompt, "USER'S QUESTION: where is order 5?")
	assert.Contains(t, gen.lastPrompt, "Shipped")
}

func TestService_Respond_UnconfiguredGenerator(t *testing.T) {
	gen := &stubGenerator{configured: false}
	svc := NewService(testResolver(), gen, nil, 0, logger.NewNoOpLogger())

	text, tag := svc.Respond(context.Background(), "hi there")

	assert.Equal(t, UnavailableMessage, text)
	assert.Equal(t, intent.TagGeneralQuery, tag)
	assert.Zero(t, gen.calls, "unconfigured generator must not be called")
}

func TestService_Respond_GeneratorFailureReturnsApology(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "timeout", err: genai.ErrTimeout, want: ApologyMessage},
		{name: "api error", err: genai.ErrGenerationFailed, want: ApologyMessage},
		{name: "unavailable mid-flight", err: genai.ErrUnavailable, want: UnavailableMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{configured: true, err: tt.err}
			svc := NewService(testResolver(), gen, nil, 0, logger.NewNoOpLogger())

			text, _ := svc.Respond(context.Background(), "where is order 5?")

			assert.Equal(t, tt.want, text)
		})
	}
}

func TestService_Respond_CacheHitSkipsGenerator(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewRedisCache(&database.RedisClient{Client: rdb})

	mock.ExpectGet("chat:response:where is order 5?").SetVal("cached reply")

	gen := &stubGenerator{configured: true, reply: "fresh reply"}
	svc := NewService(testResolver(), gen, cache, time.Minute, logger.NewNoOpLogger())

	text, tag := svc.Respond(context.Background(), "Where is Order 5?")

	assert.Equal(t, "cached reply", text)
	assert.Equal(t, intent.TagTrackOrder, tag)
	assert.Zero(t, gen.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Respond_CacheMissStoresResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewRedisCache(&database.RedisClient{Client: rdb})

	key := "chat:response:where is order 5?"
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, "fresh reply", time.Minute).SetVal("OK")

	gen := &stubGenerator{configured: true, reply: "fresh reply"}
	svc := NewService(testResolver(), gen, cache, time.Minute, logger.NewNoOpLogger())

	text, _ := svc.Respond(context.Background(), "where is order 5?")

	assert.Equal(t, "fresh reply", text)
	assert.Equal(t, 1, gen.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Respond_CacheErrorFallsThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cache := NewRedisCache(&database.RedisClient{Client: rdb})

	key := "chat:response:hello"
	mock.ExpectGet(key).SetErr(context.DeadlineExceeded)
	mock.ExpectSet(key, "reply", time.Minute).SetErr(context.DeadlineExceeded)

	gen := &stubGenerator{configured: true, reply: "reply"}
	svc := NewService(testResolver(), gen, cache, time.Minute, logger.NewNoOpLogger())

	text, _ := svc.Respond(context.Background(), "hello")

	assert.Equal(t, "reply", text)
	assert.Equal(t, 1, gen.calls)
}
