package session

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestIssueConsumeLifecycle(t *testing.T) {
	r := NewRegistry()

	token, err := r.Issue()
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("Issue returned empty token")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d after issue; want 1", r.Len())
	}

	if !r.Consume(token) {
		t.Fatal("first Consume on issued token failed")
	}
	if r.Consume(token) {
		t.Fatal("second Consume on same token succeeded")
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d after consume; want 0", r.Len())
	}
}

func TestConsumeUnknownToken(t *testing.T) {
	r := NewRegistry()

	if r.Consume("deadbeef") {
		t.Fatal("Consume accepted never-issued token")
	}
	if r.Consume("") {
		t.Fatal("Consume accepted empty token")
	}
}

func TestIssueUniqueness(t *testing.T) {
	r := NewRegistry()
	seen := make(map[string]struct{})

	for i := 0; i < 10000; i++ {
		token, err := r.Issue()
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token after %d issues", i)
		}
		seen[token] = struct{}{}
	}
	if r.Len() != 10000 {
		t.Fatalf("Len = %d; want 10000", r.Len())
	}
}

// Race M > N concurrent consumers over N tokens (each token attacked twice):
// exactly N must win.
func TestConsumeConcurrentAtMostOnce(t *testing.T) {
	const n = 200

	r := NewRegistry()
	tokens := make([]string, n)
	for i := range tokens {
		token, err := r.Issue()
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		tokens[i] = token
	}

	var successes atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 2*n; i++ {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			<-start
			if r.Consume(token) {
				successes.Add(1)
			}
		}(tokens[i%n])
	}

	close(start)
	wg.Wait()

	if got := successes.Load(); got != n {
		t.Fatalf("%d successful consumes; want exactly %d", got, n)
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d after draining; want 0", r.Len())
	}
}
