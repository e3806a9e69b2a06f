package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TokensIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "game_tokens_issued_total",
			Help: "Game session tokens issued",
		},
	)
	ScoresAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "score_submissions_accepted_total",
			Help: "Score submissions that passed the token gate and validation",
		},
	)
	ScoresRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "score_submissions_rejected_total",
			Help: "Rejected score submissions by reason",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(TokensIssued)
	prometheus.MustRegister(ScoresAccepted)
	prometheus.MustRegister(ScoresRejected)
}

// RegisterPendingTokens exposes the size of the pending-token set as a gauge.
// Tokens never expire, so this is the one place the backlog is visible.
func RegisterPendingTokens(f func() float64) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "game_tokens_pending",
			Help: "Game session tokens issued but not yet consumed",
		},
		f,
	))
}
