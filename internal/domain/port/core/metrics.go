package core

// Redemption outcomes recorded by Metrics
const (
	OutcomeSuccess      = "success"
	OutcomeReplayed     = "replayed"
	OutcomeInsufficient = "insufficient_points"
	OutcomeCollision    = "code_collision"
	OutcomeFailed       = "failed"
)

// Metrics receives business counters from use cases
type Metrics interface {
	// PointsEarned records a committed credit
	PointsEarned(points int64)
	// Redemption records the outcome of a redemption attempt; points is zero unless it succeeded
	Redemption(outcome string, points int64)
	// RewardFulfilled records an admin fulfillment
	RewardFulfilled()
}
