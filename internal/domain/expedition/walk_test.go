package expedition

import "testing"

const fixedNow = uint64(1700000000)

func squareBuffer() MoveBuffer {
	// 0xE1 decodes to up,left,down,right: a closed square every four moves.
	var buf MoveBuffer
	for i := 0; i < MoveBufferUsed; i++ {
		buf[i] = 0xE1
	}
	return buf
}

func TestExploreSquareWalkReturnsToStart(t *testing.T) {
	// Start tiles computed from the sha256 seed derivation: "player-1" at
	// nonce 0 begins on tile 2370, well inside the 50×50 boundary.
	svc := SimulationService{}
	cfg := DefaultGridConfig()
	stats := PlayerStats{PlayerID: "player-1"}

	out, err := svc.Explore(cfg, stats, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}
	if out.StartTile != 2370 {
		t.Fatalf("start tile: got %d, want 2370", out.StartTile)
	}
	if out.EndTile != out.StartTile {
		t.Fatalf("closed square walk must end on its start tile, got %d", out.EndTile)
	}
	if out.Reward != 235 {
		t.Fatalf("reward: got %d, want 235", out.Reward)
	}
	if out.UpdatedStats.Nonce != 1 || out.UpdatedStats.LastExploreTime != fixedNow || out.UpdatedStats.TotalReward != 235 {
		t.Fatalf("unexpected committed stats: %+v", out.UpdatedStats)
	}
}

func TestExploreIsDeterministic(t *testing.T) {
	svc := SimulationService{}
	cfg := DefaultGridConfig()
	stats := PlayerStats{PlayerID: "player-2", TotalReward: 10}

	first, err := svc.Explore(cfg, stats, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("first explore failed: %v", err)
	}
	second, err := svc.Explore(cfg, stats, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("second explore failed: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs must give identical outcomes: %+v vs %+v", first, second)
	}
}

func TestExploreNonceShiftsStartTile(t *testing.T) {
	svc := SimulationService{}
	cfg := DefaultGridConfig()

	out0, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-1"}, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("nonce 0 explore failed: %v", err)
	}
	out1, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-1", Nonce: 1}, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("nonce 1 explore failed: %v", err)
	}
	if out0.StartTile == out1.StartTile {
		t.Fatalf("nonce must diversify the start tile, both walks began on %d", out0.StartTile)
	}
	if out1.StartTile != 2078 {
		t.Fatalf("nonce 1 start tile: got %d, want 2078", out1.StartTile)
	}
}

func TestExploreAllZeroBufferWalksOffTheBottom(t *testing.T) {
	svc := SimulationService{}
	cfg := DefaultGridConfig()

	var buf MoveBuffer // 100 consecutive "down" moves
	_, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-1"}, buf, fixedNow)
	if err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestExploreEdgeStartFailsSquareWalk(t *testing.T) {
	// "player-42" at nonce 0 begins on tile 3, the top row: its first "up"
	// move leaves the grid immediately.
	svc := SimulationService{}
	cfg := DefaultGridConfig()

	_, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-42"}, squareBuffer(), fixedNow)
	if err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestExploreCooldownGate(t *testing.T) {
	svc := SimulationService{}
	cfg := DefaultGridConfig()

	out, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-1"}, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("first explore failed: %v", err)
	}

	_, err = svc.Explore(cfg, out.UpdatedStats, squareBuffer(), fixedNow)
	if err != ErrExhausted {
		t.Fatalf("immediate retry: expected ErrExhausted, got %v", err)
	}
	_, err = svc.Explore(cfg, out.UpdatedStats, squareBuffer(), fixedNow+cfg.CooldownSeconds-1)
	if err != ErrExhausted {
		t.Fatalf("one second early: expected ErrExhausted, got %v", err)
	}
	if _, err = svc.Explore(cfg, out.UpdatedStats, squareBuffer(), fixedNow+cfg.CooldownSeconds); err != nil {
		t.Fatalf("retry after cooldown failed: %v", err)
	}
}

func TestExploreZeroCooldownDisablesGate(t *testing.T) {
	svc := SimulationService{}
	cfg := DefaultGridConfig()
	cfg.CooldownSeconds = 0

	out, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-1"}, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("first explore failed: %v", err)
	}
	if _, err := svc.Explore(cfg, out.UpdatedStats, squareBuffer(), fixedNow); err != nil {
		t.Fatalf("zero cooldown retry failed: %v", err)
	}
}

func TestExploreRewardStaysWithinPerTileBound(t *testing.T) {
	svc := SimulationService{}
	cfg := DefaultGridConfig()
	cfg.LootChance = 99 // loot on every step

	out, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-2"}, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}
	if out.Reward < MovesPerWalk {
		t.Fatalf("with loot every step, each of the 100 rolls pays at least 1: got %d", out.Reward)
	}
	if max := uint64(MovesPerWalk) * cfg.MaxRewardPerTile; out.Reward > max {
		t.Fatalf("reward %d exceeds %d (100 steps × per-tile cap)", out.Reward, max)
	}
}

func TestExploreZeroLootChanceAwardsNothing(t *testing.T) {
	svc := SimulationService{}
	cfg := DefaultGridConfig()
	cfg.LootChance = 0

	out, err := svc.Explore(cfg, PlayerStats{PlayerID: "player-2"}, squareBuffer(), fixedNow)
	if err != nil {
		t.Fatalf("explore failed: %v", err)
	}
	if out.Reward != 0 {
		t.Fatalf("loot chance 0 must award nothing, got %d", out.Reward)
	}
	if out.UpdatedStats.Nonce != 1 {
		t.Fatalf("a rewardless walk still advances the nonce, got %d", out.UpdatedStats.Nonce)
	}
}

func TestStepEventVariesByStepOnSameTile(t *testing.T) {
	a := StepEvent(fixedNow, 100, 0)
	b := StepEvent(fixedNow, 100, 1)
	if a == b {
		t.Fatal("two steps on the same tile must roll independently")
	}
	if c := StepEvent(fixedNow+1, 100, 0); c == a {
		t.Fatal("rolls must vary across call times")
	}
}
