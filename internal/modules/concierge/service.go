package concierge

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Canned replies shown to the visitor whenever the model cannot answer. The
// widget renders them as normal concierge messages.
const (
	unavailableReply = "I'm sorry, my connection to the AI service is currently unavailable. Please contact our support team directly."
	troubleReply     = "I'm currently having trouble connecting. Please try again later or call our support line."
	emptyReply       = "I apologize, I couldn't process that request. How else can I help you?"
)

var ErrEmptyMessage = errors.New("message cannot be empty")

// Generator produces one reply for one visitor message. No conversation
// history crosses the boundary; every call is a single turn.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

type Service struct {
	generator Generator
	log       *zap.SugaredLogger
}

// NewService creates the concierge. A nil generator means the upstream API
// key is not configured; the service still answers, with the canned copy.
func NewService(generator Generator, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{generator: generator, log: log}
}

// Respond returns the concierge reply for one message. Upstream failures are
// logged server-side and replaced with the canned copy; the visitor never
// sees a raw error.
func (s *Service) Respond(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	if s.generator == nil {
		return unavailableReply, nil
	}

	reply, err := s.generator.Generate(ctx, message)
	if err != nil {
		s.log.Errorw("concierge generation failed", "error", err)
		return troubleReply, nil
	}
	if strings.TrimSpace(reply) == "" {
		return emptyReply, nil
	}
	return reply, nil
}
