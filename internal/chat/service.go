// internal/chat/service.go
package chat

import (
	"context"
	"errors"
	"time"

	"ecommerce-chatbot/internal/common/genai"
	"ecommerce-chatbot/internal/common/logger"
	"ecommerce-chatbot/internal/common/metrics"
	"ecommerce-chatbot/internal/engine/intent"
	"ecommerce-chatbot/internal/engine/prompt"
)

// Fixed user-facing strings. Collaborator failures are absorbed here and
// never surface as HTTP 5xx.
const (
	UnavailableMessage = "Sorry, the AI service is currently unavailable. Please check the server logs."
	ApologyMessage     = "Sorry, I'm having trouble connecting to the AI service right now."
)

// Generator is the text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// Service orchestrates one chat turn: resolve the intent, build the prompt,
// call the generator. Each turn is stateless; the only shared state is the
// immutable dataset inside the resolver.
type Service struct {
	resolver  *intent.Resolver
	generator Generator
	cache     Cache // nil disables response caching
	cacheTTL  time.Duration
	logger    logger.Logger
}

func NewService(resolver *intent.Resolver, generator Generator, cache Cache, cacheTTL time.Duration, log logger.Logger) *Service {
	return &Service{
		resolver:  resolver,
		generator: generator,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger: log.With(map[string]interface{}{
			"component": "chat",
		}),
	}
}

// Respond answers one message. It always returns a user-facing string; the
// returned tag is the resolved intent, recorded for observability.
func (s *Service) Respond(ctx context.Context, message string) (string, intent.Tag) {
	res := s.resolver.Resolve(message)
	metrics.IntentResolutionsTotal.WithLabelValues(string(res.Tag)).Inc()

	if !s.generator.Configured() {
		metrics.GenAICallsTotal.WithLabelValues("unconfigured").Inc()
		return UnavailableMessage, res.Tag
	}

	key := cacheKey(message)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
			s.logger.Warn("response cache lookup failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else if cached != "" {
			metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			return cached, res.Tag
		} else {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	instruction := prompt.Build(res.Description, message)

	text, err := s.generator.Generate(ctx, instruction)
	if err != nil {
		switch {
		case errors.Is(err, genai.ErrUnavailable):
			metrics.GenAICallsTotal.WithLabelValues("unconfigured").Inc()
			return UnavailableMessage, res.Tag
		case errors.Is(err, genai.ErrTimeout):
			metrics.GenAICallsTotal.WithLabelValues("timeout").Inc()
		default:
			metrics.GenAICallsTotal.WithLabelValues("error").Inc()
		}
		s.logger.Error("generation call failed", map[string]interface{}{
			"intent": string(res.Tag),
			"error":  err.Error(),
		})
		return ApologyMessage, res.Tag
	}

	metrics.GenAICallsTotal.WithLabelValues("success").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
			s.logger.Warn("response cache write failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return text, res.Tag
}
