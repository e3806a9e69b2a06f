package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
)

var (
	// ErrTokenRequired means the submission carried no token at all.
	ErrTokenRequired = errors.New("session token required")
	// ErrTokenInvalid means the token was never issued or was already consumed.
	// The two states are indistinguishable on purpose.
	ErrTokenInvalid = errors.New("invalid or expired session token")
)

const tokenBytes = 32

// Registry tracks game tokens that are still eligible for one score
// submission. Issue is the only way a token gets in; Consume is the only way
// out. Tokens have no TTL: an abandoned game leaves its token pending until
// the process restarts (Len exposes the backlog).
type Registry struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{pending: make(map[string]struct{})}
}

// Issue generates a fresh high-entropy token, registers it as pending and
// returns it. Called once per started game.
func (r *Registry) Issue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	r.mu.Lock()
	r.pending[token] = struct{}{}
	r.mu.Unlock()

	return token, nil
}

// Consume removes the token from the pending set and reports whether it was
// there. The check and the delete happen under one lock, so two submissions
// racing on the same token get exactly one true.
func (r *Registry) Consume(token string) bool {
	if token == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[token]; !ok {
		return false
	}
	delete(r.pending, token)
	return true
}

// Len returns the number of pending tokens.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
