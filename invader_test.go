package main

import (
	"math"
	"testing"
)

func TestInvaderFormationLockstep(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)
	v := NewInvader(InvaderGrunt, 300, 100)

	v = v.Advanced(12.5, cfg)
	if v.X != 312.5 || v.Y != 100 {
		t.Errorf("formation position should be anchor plus offset, got (%f, %f)", v.X, v.Y)
	}

	v = v.Advanced(-8, cfg)
	if v.X != 292 {
		t.Errorf("offset change should apply immediately, got X=%f", v.X)
	}
}

func TestStartDiveSamplesPath(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)
	v := NewInvader(InvaderRaider, 300, 100)
	v = v.StartDive(cfg)

	if v.State != InvaderDiving {
		t.Fatal("invader should be diving")
	}
	if len(v.Path) != DivePathLen {
		t.Fatalf("expected %d path points, got %d", DivePathLen, len(v.Path))
	}
	if v.Path[0].X != 300 || v.Path[0].Y != 100 {
		t.Error("path should begin at the dive start position")
	}

	wantDepth := 100 + cfg.WorldHeight*DiveDepthFrac
	last := v.Path[len(v.Path)-1]
	if math.Abs(last.Y-wantDepth) > 1e-9 {
		t.Errorf("path should descend to %f, got %f", wantDepth, last.Y)
	}
}

func TestDiveSweepSideDependsOnScreenHalf(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)

	left := NewInvader(InvaderGrunt, 100, 100).StartDive(cfg)
	if left.Path[1].X <= 100 {
		t.Error("left-half diver should sweep right first")
	}

	right := NewInvader(InvaderGrunt, 700, 100).StartDive(cfg)
	if right.Path[1].X >= 700 {
		t.Error("right-half diver should sweep left first")
	}
}

func TestDiveTransitionsToReturning(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)
	v := NewInvader(InvaderGrunt, 300, 100)
	v = v.StartDive(cfg)

	ticks := 0
	for v.State == InvaderDiving && ticks < 1000 {
		v = v.Advanced(0, cfg)
		ticks++
	}
	if v.State != InvaderReturning {
		t.Fatalf("dive should end in returning, got state %d after %d ticks", v.State, ticks)
	}
	if v.Path != nil {
		t.Error("path should be released when the dive ends")
	}

	// progress 1.0 at DiveStep per tick
	want := int(math.Ceil(1.0 / DiveStep))
	if ticks != want {
		t.Errorf("expected dive to last %d ticks, got %d", want, ticks)
	}
}

func TestReturningSnapsExactlyOntoSlot(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)
	v := NewInvader(InvaderGrunt, 400, 100)
	v.State = InvaderReturning
	v.X = 250
	v.Y = 480

	const offset = 10.0
	ticks := 0
	for v.State == InvaderReturning && ticks < 10000 {
		v = v.Advanced(offset, cfg)
		ticks++
	}
	if v.State != InvaderFormation {
		t.Fatal("returning invader should rejoin the formation")
	}
	if v.X != 400+offset || v.Y != 100 {
		t.Errorf("rejoin must snap exactly onto the slot, got (%f, %f)", v.X, v.Y)
	}

	// ~430px at 120px/s should take around 215 ticks
	if ticks > 300 {
		t.Errorf("return took too long: %d ticks", ticks)
	}
}

func TestInvaderHPAndScoresByType(t *testing.T) {
	boss := NewInvader(InvaderBoss, 0, 0)
	grunt := NewInvader(InvaderGrunt, 0, 0)
	if boss.HP != 2 || grunt.HP != 1 {
		t.Errorf("expected boss 2 HP and grunt 1 HP, got %d and %d", boss.HP, grunt.HP)
	}
	if boss.Score() <= grunt.Score() {
		t.Error("boss should be worth more than a grunt")
	}
}

func TestSweepGroupReversesAtBound(t *testing.T) {
	offset, dir := sweepGroup(GroupSweepBound-0.1, 1)
	if dir != -1 {
		t.Errorf("sweep should reverse at the right bound, got dir %f", dir)
	}
	if offset > GroupSweepBound {
		t.Errorf("offset should be clamped to the bound, got %f", offset)
	}

	offset, dir = sweepGroup(-GroupSweepBound+0.1, -1)
	if dir != 1 {
		t.Errorf("sweep should reverse at the left bound, got dir %f", dir)
	}
	if offset < -GroupSweepBound {
		t.Errorf("offset should be clamped to the bound, got %f", offset)
	}

	offset, dir = sweepGroup(0, 1)
	if dir != 1 {
		t.Error("sweep should hold direction away from the bounds")
	}
	if offset <= 0 {
		t.Error("sweep should advance in the held direction")
	}
}
