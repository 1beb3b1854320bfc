package jumper

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		score    int
		wantName string
		wantMult int
	}{
		{0, "Bronze", 1},
		{999, "Bronze", 1},
		{1000, "Silver", 1},
		{2499, "Silver", 1},
		{2500, "Gold", 2},
		{2600, "Gold", 2},
		{5000, "Sky", 3},
		{7999, "Sky", 3},
		{8000, "Star", 4},
		{1 << 20, "Star", 4},
	}

	for _, tc := range tests {
		tier := TierFor(tc.score)
		if tier.Name != tc.wantName {
			t.Errorf("TierFor(%d).Name = %q, want %q", tc.score, tier.Name, tc.wantName)
		}
		if tier.Multiplier != tc.wantMult {
			t.Errorf("TierFor(%d).Multiplier = %d, want %d", tc.score, tier.Multiplier, tc.wantMult)
		}
	}
}

func TestTierAtClampsIndex(t *testing.T) {
	if TierAt(-1) != TierAt(0) {
		t.Error("negative index should clamp to the first tier")
	}
	if TierAt(TierCount()) != TierAt(TierCount()-1) {
		t.Error("overflow index should clamp to the last tier")
	}
}

func TestCharacterByID(t *testing.T) {
	c, ok := CharacterByID("tank")
	if !ok || c.ID != "tank" {
		t.Errorf("CharacterByID(tank) = %+v, %v", c, ok)
	}

	// Unknown and empty ids fall back to the default character.
	def, ok := CharacterByID("")
	if ok {
		t.Error("empty id reported as a known character")
	}
	unknown, ok := CharacterByID("no-such")
	if ok {
		t.Error("unknown id reported as a known character")
	}
	if def.ID != unknown.ID {
		t.Errorf("fallback characters differ: %q vs %q", def.ID, unknown.ID)
	}
}

func TestCharactersHaveDistinctStats(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Characters() {
		if seen[c.ID] {
			t.Errorf("duplicate character id %q", c.ID)
		}
		seen[c.ID] = true
		if c.JumpImpulse >= 0 {
			t.Errorf("%s: jump impulse %v should be negative (upward)", c.ID, c.JumpImpulse)
		}
		if c.Gravity <= 0 || c.MoveSpeed <= 0 {
			t.Errorf("%s: gravity %v and move speed %v should be positive", c.ID, c.Gravity, c.MoveSpeed)
		}
	}
}
