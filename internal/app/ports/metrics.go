package ports

type ExploreMetrics interface {
	RecordSuccess(reward uint64)
	RecordExhausted()
	RecordOutOfBounds()
	RecordFailure()
}
