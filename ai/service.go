package ai

import (
	"context"
	"log"

	"github.com/nagulan1506/real-estate-app/models"
	"github.com/nagulan1506/real-estate-app/store"
)

// How many catalog entries the chat prompt may reference.
const chatContextLimit = 20

// Generator produces text for a prompt; the real one is GeminiClient.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service answers locality and chat questions, preferring the generative
// backend and degrading to the deterministic responder on any failure.
type Service struct {
	Gen     Generator
	catalog store.PropertyStore
}

func NewService(apiKey string, catalog store.PropertyStore) *Service {
	s := &Service{catalog: catalog}
	if apiKey != "" {
		s.Gen = NewGeminiClient(apiKey)
	}
	return s
}

func (s *Service) Insight(ctx context.Context, location string) string {
	if s.Gen == nil {
		log.Println("GEMINI_API_KEY is missing.")
		return LocalityFallback(location)
	}
	text, err := s.Gen.Generate(ctx, InsightPrompt(location))
	if err != nil {
		log.Printf("Gemini Locality Error: %v", err)
		return LocalityFallback(location)
	}
	return text
}

func (s *Service) Chat(ctx context.Context, message string) string {
	props := s.contextProperties(ctx)

	if s.Gen == nil {
		log.Println("GEMINI_API_KEY is missing for chat.")
		return ChatFallback(message, props)
	}
	text, err := s.Gen.Generate(ctx, ChatPrompt(PropertyContext(props), message))
	if err != nil {
		log.Printf("Gemini Chat Error: %v", err)
		return ChatFallback(message, props)
	}
	return text
}

func (s *Service) contextProperties(ctx context.Context) []models.Property {
	props, err := s.catalog.ListProperties(ctx, store.Filter{})
	if err != nil {
		log.Printf("chat context unavailable: %v", err)
		return nil
	}
	if len(props) > chatContextLimit {
		props = props[:chatContextLimit]
	}
	return props
}
