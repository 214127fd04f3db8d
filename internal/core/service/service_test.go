package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/session"
)

// call records one backend round-trip made through the stub.
type call struct {
	method string
	path   string
	token  string
	body   any
}

type stubReply struct {
	raw json.RawMessage
	err error
}

// stubMarketplace answers backend calls from a canned table keyed by
// "METHOD path" and records every call it receives.
type stubMarketplace struct {
	replies map[string]stubReply
	calls   []call
}

func newStubMarketplace() *stubMarketplace {
	return &stubMarketplace{replies: make(map[string]stubReply)}
}

func (s *stubMarketplace) reply(method, path, body string) {
	s.replies[method+" "+path] = stubReply{raw: json.RawMessage(body)}
}

func (s *stubMarketplace) fail(method, path string, err error) {
	s.replies[method+" "+path] = stubReply{err: err}
}

func (s *stubMarketplace) Do(_ context.Context, method, path, token string, body any) (json.RawMessage, error) {
	s.calls = append(s.calls, call{method: method, path: path, token: token, body: body})
	r, ok := s.replies[method+" "+path]
	if !ok {
		return nil, fmt.Errorf("no stubbed reply for %s %s", method, path)
	}
	return r.raw, r.err
}

func (s *stubMarketplace) lastCall(t *testing.T) call {
	t.Helper()
	if len(s.calls) == 0 {
		t.Fatal("no backend calls recorded")
	}
	return s.calls[len(s.calls)-1]
}

func testSession(t *testing.T, store *session.MemoryStore, role domain.Role) *domain.Session {
	t.Helper()
	sess := domain.Session{
		ID:           "sess-" + string(role),
		AccessToken:  "access-" + string(role),
		RefreshToken: "refresh-" + string(role),
		Role:         role,
	}
	if err := store.Set(context.Background(), sess); err != nil {
		t.Fatalf("seeding session: %v", err)
	}
	return &sess
}

func nopLog() zerolog.Logger { return zerolog.Nop() }
