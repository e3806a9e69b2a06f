package service

import (
	"context"
	"errors"

	"tables_webapp/internal/domain"
	"tables_webapp/internal/game"
	"tables_webapp/internal/metrics"
	"tables_webapp/internal/session"
)

var (
	ErrInvalidDuration = errors.New("invalid game duration")
	ErrScoreTooHigh    = errors.New("score too high for solved cells")
	ErrCellsMismatch   = errors.New("solved cells exceed total cells")
)

// maxScorePerCell bounds what a single cell can plausibly be worth:
// the hardest fact (7x7, d=3.0) answered with a full 10s countdown left.
const maxScorePerCell = 30

var validDurations = map[int]bool{2: true, 3: true, 5: true}

type ScoreStore interface {
	Create(ctx context.Context, s *domain.Score) error
}

type GameSessionStore interface {
	Create(ctx context.Context, gs *domain.GameSession) error
}

type ProgressStore interface {
	AddXP(ctx context.Context, userID, xp, gameScore int64) (*domain.UserProgress, error)
}

// SubmitRequest is one finished game as reported by the client.
type SubmitRequest struct {
	UserID         *int64 // nil for guest submissions
	Name           string
	Score          int64
	Duration       int
	Tier           game.Tier
	SolvedCells    int
	TotalCells     int
	SelectedTables []int
	SessionToken   string
}

// SubmitResult is what an accepted submission produced.
type SubmitResult struct {
	Session  *domain.GameSession
	Entry    *domain.Score
	XPEarned int64
	Progress *domain.UserProgress
}

// SubmitService gates score submissions behind the one-shot token registry,
// sanity-checks the reported numbers and persists the result.
type SubmitService struct {
	tokens   *session.Registry
	scores   ScoreStore
	sessions GameSessionStore
	progress ProgressStore
}

func NewSubmitService(tokens *session.Registry, scores ScoreStore, sessions GameSessionStore, progress ProgressStore) *SubmitService {
	return &SubmitService{
		tokens:   tokens,
		scores:   scores,
		sessions: sessions,
		progress: progress,
	}
}

// Submit validates and persists one finished game.
//
// Order matters: the missing-token and shape checks run before the token is
// consumed, so a malformed request does not burn a token the client could
// still use with a corrected submission. Consumption happens exactly once,
// right before persistence.
func (s *SubmitService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if req.SessionToken == "" {
		metrics.ScoresRejected.WithLabelValues("token_missing").Inc()
		return nil, session.ErrTokenRequired
	}

	if !validDurations[req.Duration] {
		metrics.ScoresRejected.WithLabelValues("bad_duration").Inc()
		return nil, ErrInvalidDuration
	}
	if req.SolvedCells > req.TotalCells {
		metrics.ScoresRejected.WithLabelValues("cells_mismatch").Inc()
		return nil, ErrCellsMismatch
	}
	if req.Score > int64(req.SolvedCells)*maxScorePerCell {
		metrics.ScoresRejected.WithLabelValues("score_too_high").Inc()
		return nil, ErrScoreTooHigh
	}

	if !s.tokens.Consume(req.SessionToken) {
		metrics.ScoresRejected.WithLabelValues("token_invalid").Inc()
		return nil, session.ErrTokenInvalid
	}

	name := req.Name
	if name == "" {
		name = "guest"
	}

	// selected tables only mean something in assisted mode (standard always
	// plays the full grid)
	tables := []int{}
	if req.Tier == game.TierAssisted {
		tables = req.SelectedTables
	}

	xpEarned := req.Score

	gs := &domain.GameSession{
		UserID:      req.UserID,
		Name:        name,
		Score:       req.Score,
		XPEarned:    xpEarned,
		Duration:    req.Duration,
		Tier:        string(req.Tier),
		CellsSolved: req.SolvedCells,
		TotalCells:  req.TotalCells,
		TablesUsed:  tables,
	}
	if err := s.sessions.Create(ctx, gs); err != nil {
		return nil, err
	}

	entry := &domain.Score{
		UserID:      req.UserID,
		Name:        name,
		Score:       req.Score,
		Duration:    req.Duration,
		Tier:        string(req.Tier),
		CellsSolved: req.SolvedCells,
		TotalCells:  req.TotalCells,
		TablesUsed:  tables,
	}
	if err := s.scores.Create(ctx, entry); err != nil {
		return nil, err
	}

	res := &SubmitResult{
		Session:  gs,
		Entry:    entry,
		XPEarned: xpEarned,
	}

	if req.UserID != nil {
		progress, err := s.progress.AddXP(ctx, *req.UserID, xpEarned, req.Score)
		if err != nil {
			return nil, err
		}
		res.Progress = progress
	}

	metrics.ScoresAccepted.Inc()
	return res, nil
}
