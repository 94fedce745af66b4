package inmemory

import "sync"

type Snapshot struct {
	ExploreTotal       uint64 `json:"explore_total"`
	ExploreSuccess     uint64 `json:"explore_success"`
	ExploreExhausted   uint64 `json:"explore_exhausted"`
	ExploreOutOfBounds uint64 `json:"explore_out_of_bounds"`
	ExploreFailure     uint64 `json:"explore_failure"`
	RewardTotal        uint64 `json:"reward_total"`
}

type Recorder struct {
	mu          sync.Mutex
	success     uint64
	exhausted   uint64
	outOfBounds uint64
	failure     uint64
	rewardTotal uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordSuccess(reward uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.rewardTotal += reward
}

func (r *Recorder) RecordExhausted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exhausted++
}

func (r *Recorder) RecordOutOfBounds() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outOfBounds++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		ExploreTotal:       r.success + r.exhausted + r.outOfBounds + r.failure,
		ExploreSuccess:     r.success,
		ExploreExhausted:   r.exhausted,
		ExploreOutOfBounds: r.outOfBounds,
		ExploreFailure:     r.failure,
		RewardTotal:        r.rewardTotal,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
