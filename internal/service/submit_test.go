package service

import (
	"context"
	"errors"
	"testing"

	"tables_webapp/internal/domain"
	"tables_webapp/internal/game"
	"tables_webapp/internal/session"
)

type fakeScoreStore struct {
	created []*domain.Score
}

func (f *fakeScoreStore) Create(_ context.Context, s *domain.Score) error {
	f.created = append(f.created, s)
	return nil
}

type fakeSessionStore struct {
	created []*domain.GameSession
}

func (f *fakeSessionStore) Create(_ context.Context, gs *domain.GameSession) error {
	f.created = append(f.created, gs)
	return nil
}

type fakeProgressStore struct {
	xp    int64
	calls int
}

func (f *fakeProgressStore) AddXP(_ context.Context, userID, xp, gameScore int64) (*domain.UserProgress, error) {
	f.xp += xp
	f.calls++
	return &domain.UserProgress{UserID: userID, XP: f.xp, Level: 1}, nil
}

func newTestService() (*SubmitService, *session.Registry, *fakeScoreStore, *fakeSessionStore, *fakeProgressStore) {
	tokens := session.NewRegistry()
	scores := &fakeScoreStore{}
	sessions := &fakeSessionStore{}
	progress := &fakeProgressStore{}
	return NewSubmitService(tokens, scores, sessions, progress), tokens, scores, sessions, progress
}

func validRequest(token string) SubmitRequest {
	return SubmitRequest{
		Name:         "alice",
		Score:        45,
		Duration:     5,
		Tier:         game.TierStandard,
		SolvedCells:  12,
		TotalCells:   100,
		SessionToken: token,
	}
}

// Full game flow: start a session, score 7x7 and 5x5 at 10s remaining,
// submit once, then replay the same token.
func TestSubmitFullGameFlow(t *testing.T) {
	svc, tokens, scores, sessions, _ := newTestService()

	token, err := tokens.Issue()
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	total := game.ComputeScore(10, 7, 7, game.TierStandard) + game.ComputeScore(10, 5, 5, game.TierStandard)
	if total != 45 {
		t.Fatalf("expected cell scores 30+15=45, got %d", total)
	}

	req := validRequest(token)
	req.Score = int64(total)
	req.SolvedCells = 2

	res, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res.XPEarned != 45 {
		t.Errorf("XPEarned = %d; want 45", res.XPEarned)
	}
	if len(scores.created) != 1 || len(sessions.created) != 1 {
		t.Fatalf("persisted %d scores, %d sessions; want 1 and 1", len(scores.created), len(sessions.created))
	}

	// replay must fail as an authorization error, not a shape error
	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, session.ErrTokenInvalid) {
		t.Fatalf("replay error = %v; want ErrTokenInvalid", err)
	}
	if len(scores.created) != 1 {
		t.Fatal("replay persisted a second score")
	}
}

func TestSubmitMissingToken(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), validRequest(""))
	if !errors.Is(err, session.ErrTokenRequired) {
		t.Fatalf("error = %v; want ErrTokenRequired", err)
	}
}

func TestSubmitForgedToken(t *testing.T) {
	svc, _, scores, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), validRequest("never-issued"))
	if !errors.Is(err, session.ErrTokenInvalid) {
		t.Fatalf("error = %v; want ErrTokenInvalid", err)
	}
	if len(scores.created) != 0 {
		t.Fatal("forged submission was persisted")
	}
}

func TestSubmitValidationDoesNotBurnToken(t *testing.T) {
	svc, tokens, _, _, _ := newTestService()

	token, _ := tokens.Issue()

	cases := []struct {
		name   string
		mutate func(*SubmitRequest)
		want   error
	}{
		{"bad duration", func(r *SubmitRequest) { r.Duration = 4 }, ErrInvalidDuration},
		{"cells mismatch", func(r *SubmitRequest) { r.SolvedCells = 101 }, ErrCellsMismatch},
		{"implausible score", func(r *SubmitRequest) { r.Score = 10000; r.SolvedCells = 3 }, ErrScoreTooHigh},
	}

	for _, tc := range cases {
		req := validRequest(token)
		tc.mutate(&req)
		if _, err := svc.Submit(context.Background(), req); !errors.Is(err, tc.want) {
			t.Fatalf("%s: error = %v; want %v", tc.name, err, tc.want)
		}
	}

	// token survived all the rejected attempts
	if _, err := svc.Submit(context.Background(), validRequest(token)); err != nil {
		t.Fatalf("valid submission after rejections failed: %v", err)
	}
}

func TestSubmitGuestGetsDefaultName(t *testing.T) {
	svc, tokens, scores, _, progress := newTestService()

	token, _ := tokens.Issue()
	req := validRequest(token)
	req.Name = ""

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if scores.created[0].Name != "guest" {
		t.Errorf("guest name = %q; want %q", scores.created[0].Name, "guest")
	}
	if progress.calls != 0 {
		t.Error("guest submission credited XP")
	}
}

func TestSubmitAuthenticatedCreditsXP(t *testing.T) {
	svc, tokens, _, _, progress := newTestService()

	token, _ := tokens.Issue()
	userID := int64(7)
	req := validRequest(token)
	req.UserID = &userID

	res, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if progress.calls != 1 || progress.xp != 45 {
		t.Fatalf("progress calls=%d xp=%d; want 1 and 45", progress.calls, progress.xp)
	}
	if res.Progress == nil || res.Progress.XP != 45 {
		t.Fatalf("result progress = %+v; want XP 45", res.Progress)
	}
}

func TestSubmitSelectedTablesOnlyForAssisted(t *testing.T) {
	svc, tokens, scores, _, _ := newTestService()

	token, _ := tokens.Issue()
	req := validRequest(token)
	req.Tier = game.TierStandard
	req.SelectedTables = []int{3, 4, 5}

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if len(scores.created[0].TablesUsed) != 0 {
		t.Errorf("standard tier stored tables %v; want none", scores.created[0].TablesUsed)
	}

	token2, _ := tokens.Issue()
	req2 := validRequest(token2)
	req2.Tier = game.TierAssisted
	req2.SelectedTables = []int{3, 4, 5}

	if _, err := svc.Submit(context.Background(), req2); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if got := scores.created[1].TablesUsed; len(got) != 3 {
		t.Errorf("assisted tier stored tables %v; want [3 4 5]", got)
	}
}
