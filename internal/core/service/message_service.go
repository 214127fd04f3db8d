package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/normalize"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// MessageService lists enquiry-thread messages. Messages are immutable; the
// only operation is the read.
type MessageService struct {
	api   ports.Marketplace
	store ports.SessionStore
	log   zerolog.Logger
}

func NewMessageService(api ports.Marketplace, store ports.SessionStore, log zerolog.Logger) *MessageService {
	return &MessageService{api: api, store: store, log: log}
}

func (s *MessageService) ListMessages(ctx context.Context, sess *domain.Session, enquiryID int64) ([]domain.Message, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	raw, err := s.api.Do(ctx, http.MethodGet, "messages/", sess.AccessToken, nil)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}

	messages := normalize.Slice(backend.List(raw), normalize.Message)
	if enquiryID == 0 {
		return messages, nil
	}

	thread := make([]domain.Message, 0, len(messages))
	for _, m := range messages {
		if m.EnquiryID == enquiryID {
			thread = append(thread, m)
		}
	}
	return thread, nil
}
