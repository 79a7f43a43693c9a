package engine

import (
	"testing"
	"time"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/pet"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func newTestPet(t *testing.T, cat *catalog.Catalog) *pet.Pet {
	t.Helper()
	p, err := NewPet(cat, "sprout", "Nibble", time.Unix(0, 0))
	if err != nil {
		t.Fatalf("new pet: %v", err)
	}
	return p
}

func TestProcessGrowthTickAges(t *testing.T) {
	cat := mustCatalog(t)
	p := newTestPet(t, cat)

	res := ProcessGrowthTick(p, cat)
	if res.Growth.AgeTicks != 1 {
		t.Errorf("age = %d, want 1", res.Growth.AgeTicks)
	}
	if res.StageTransitioned || res.SubstageTransitioned {
		t.Error("unexpected transition on tick 1")
	}
}

func TestProcessGrowthTickSubstageTransition(t *testing.T) {
	cat := mustCatalog(t)
	p := newTestPet(t, cat)
	p.Growth.AgeTicks = 1919 // sprout baby substage length is 1920

	res := ProcessGrowthTick(p, cat)
	if !res.SubstageTransitioned {
		t.Fatal("expected substage transition at tick 1920")
	}
	if res.StageTransitioned {
		t.Error("substage transition must not report a stage transition")
	}
	if res.Growth.Substage != 2 {
		t.Errorf("substage = %d, want 2", res.Growth.Substage)
	}
	if res.Base != p.Base {
		t.Error("substage transition must not recompute base stats")
	}
}

func TestProcessGrowthTickStageTransition(t *testing.T) {
	cat := mustCatalog(t)
	p := newTestPet(t, cat)
	p.Growth.AgeTicks = 5759 // sprout juvenile threshold is 5760
	p.Growth.Substage = 3
	p.Trained = pet.BattleStats{Strength: 4}
	p.Bonus = pet.BattleStats{Vitality: 1}
	p.Battle = p.Base.Add(p.Trained).Add(p.Bonus)

	res := ProcessGrowthTick(p, cat)
	if !res.StageTransitioned {
		t.Fatal("expected stage transition at tick 5760")
	}
	if res.PreviousStage != pet.StageBaby || res.Growth.Stage != pet.StageJuvenile {
		t.Errorf("transition %s -> %s, want baby -> juvenile", res.PreviousStage, res.Growth.Stage)
	}
	if res.Growth.Substage != 1 {
		t.Errorf("substage = %d, want 1", res.Growth.Substage)
	}

	// Medium tier midpoints: str/def +3, agi +3, vit +4 over the baseline.
	wantBase := pet.BattleStats{Strength: 11, Defense: 11, Agility: 13, Vitality: 16}
	if res.Base != wantBase {
		t.Errorf("base = %+v, want %+v", res.Base, wantBase)
	}
	wantBattle := wantBase.Add(p.Trained).Add(p.Bonus)
	if res.Battle != wantBattle {
		t.Errorf("battle = %+v, want %+v (trained and bonus must carry over)", res.Battle, wantBattle)
	}
}
