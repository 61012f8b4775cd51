package main

import (
	"math"
	"testing"
)

func TestGenerateIDLength(t *testing.T) {
	for _, n := range []int{3, 4, 8} {
		id := GenerateID(n)
		if len(id) != n*2 {
			t.Errorf("GenerateID(%d) length = %d, want %d", n, len(id), n*2)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("in-range value should pass through")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("below min should clamp to min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("above max should clamp to max")
	}
}

func TestDistanceMatchesDistanceSq(t *testing.T) {
	d := Distance(1, 2, 4, 6)
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %f, want 5", d)
	}
	if math.Abs(DistanceSq(1, 2, 4, 6)-25) > 1e-9 {
		t.Error("DistanceSq should be the square of Distance")
	}
}

func TestRound1(t *testing.T) {
	if round1(1.26) != 1.3 {
		t.Errorf("round1(1.26) = %f", round1(1.26))
	}
	if round1(-1.24) != -1.2 {
		t.Errorf("round1(-1.24) = %f", round1(-1.24))
	}
}

func TestStatusNames(t *testing.T) {
	cases := map[Status]string{
		StatusReady:    "ready",
		StatusPlaying:  "playing",
		StatusPaused:   "paused",
		StatusGameOver: "game_over",
	}
	for status, want := range cases {
		if status.String() != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, status.String(), want)
		}
	}
}
