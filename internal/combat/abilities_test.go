package combat

import (
	"testing"

	"github.com/samdwyer/warriortower/internal/entity"
	"github.com/samdwyer/warriortower/internal/world"
)

// transcript collects narration for assertions.
type transcript struct {
	lines []string
}

func (tr *transcript) record(u *entity.Unit, message string) {
	tr.lines = append(tr.lines, u.String()+" "+message)
}

func (tr *transcript) last() string {
	if len(tr.lines) == 0 {
		return ""
	}
	return tr.lines[len(tr.lines)-1]
}

type arena struct {
	floor   *world.Floor
	warrior *entity.Unit
	sludge  *entity.Unit
	log     *transcript
}

// newArena builds the beginner fixture: an 8x1 floor with the warrior at 0
// facing east and a sludge at sludgeX facing west.
func newArena(t *testing.T, sludgeX int) *arena {
	t.Helper()
	floor, err := world.NewFloor(8, 1, world.Pt(7, 0))
	if err != nil {
		t.Fatal(err)
	}
	log := &transcript{}

	warrior, err := entity.New(entity.Config{
		Character: "@",
		MaxHealth: 20,
		Warrior:   true,
		Narrator:  entity.NarratorFunc(log.record),
		Abilities: []entity.AbilityEntry{
			{Name: AbilityWalk, Factory: Walk()},
			{Name: AbilityAttack, Factory: Attack(NewDamageTable(5, 3))},
			{Name: AbilityFeel, Factory: Feel()},
			{Name: AbilityLook, Factory: Look()},
			{Name: AbilityHealth, Factory: Health()},
			{Name: AbilityRest, Factory: Rest(10)},
			{Name: AbilityPivot, Factory: Pivot()},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := warrior.Place(floor, world.Pt(0, 0), world.East); err != nil {
		t.Fatal(err)
	}

	sludge, err := entity.New(entity.Config{
		Name:      "Sludge",
		Character: "s",
		MaxHealth: 12,
		Narrator:  entity.NarratorFunc(log.record),
		PlayTurn:  Melee,
		Abilities: []entity.AbilityEntry{
			{Name: AbilityAttack, Factory: Attack(NewDamageTable(3, 2))},
			{Name: AbilityFeel, Factory: Feel()},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := sludge.Place(floor, world.Pt(sludgeX, 0), world.West); err != nil {
		t.Fatal(err)
	}

	return &arena{floor: floor, warrior: warrior, sludge: sludge, log: log}
}

func TestDamageTable(t *testing.T) {
	tests := []struct {
		forward, backward int
		wantF, wantB      int
	}{
		{5, 3, 5, 3},
		{3, 2, 3, 2},
		{3, 7, 3, 3}, // backward never exceeds forward
		{-1, -1, 0, 0},
	}

	for _, tt := range tests {
		table := NewDamageTable(tt.forward, tt.backward)
		if table.Amount(world.Forward) != tt.wantF || table.Amount(world.Backward) != tt.wantB {
			t.Errorf("NewDamageTable(%d, %d) = %+v, want {%d %d}", tt.forward, tt.backward, table, tt.wantF, tt.wantB)
		}
		for _, rel := range world.RelativeDirections {
			if table.Amount(rel) > table.Amount(world.Forward) {
				t.Errorf("Amount(%s) exceeds forward damage", rel)
			}
		}
	}
}

func TestDamageTableSides(t *testing.T) {
	table := NewDamageTable(5, 3)
	if table.Amount(world.Left) != 5 || table.Amount(world.Right) != 5 {
		t.Error("side blows should deal forward damage")
	}
}

func TestDefaultBackward(t *testing.T) {
	tests := []struct{ forward, expected int }{
		{5, 3},
		{3, 2},
		{0, 0},
		{1, 1},
	}
	for _, tt := range tests {
		if got := DefaultBackward(tt.forward); got != tt.expected {
			t.Errorf("DefaultBackward(%d) = %d, want %d", tt.forward, got, tt.expected)
		}
	}
}

func TestWalk(t *testing.T) {
	a := newArena(t, 2)
	w := a.warrior

	w.PrepareTurn()
	if _, err := w.Perform(AbilityWalk, ""); err != nil {
		t.Fatal(err)
	}
	if w.Position() != world.Pt(1, 0) {
		t.Errorf("Position() = %v, want (1,0)", w.Position())
	}
	if a.log.last() != "Warrior walks forward" {
		t.Errorf("narration = %q, want %q", a.log.last(), "Warrior walks forward")
	}

	// Bumping into the sludge spends the turn without moving
	w.PrepareTurn()
	if _, err := w.Perform(AbilityWalk, ""); err != nil {
		t.Fatal(err)
	}
	if w.Position() != world.Pt(1, 0) {
		t.Errorf("Position() after bump = %v, want (1,0)", w.Position())
	}
	if a.log.last() != "Warrior bumps into Sludge" {
		t.Errorf("narration = %q, want bump", a.log.last())
	}
	if !w.ActionTaken() {
		t.Error("a bump should still spend the action")
	}
}

func TestWalkIntoWall(t *testing.T) {
	a := newArena(t, 4)
	w := a.warrior

	w.PrepareTurn()
	if _, err := w.Perform(AbilityWalk, world.Backward); err != nil {
		t.Fatal(err)
	}
	if w.Position() != world.Pt(0, 0) {
		t.Errorf("Position() = %v, want (0,0)", w.Position())
	}
	if a.log.last() != "Warrior bumps into wall" {
		t.Errorf("narration = %q, want wall bump", a.log.last())
	}
}

func TestAttackForwardAndBackward(t *testing.T) {
	a := newArena(t, 1)

	a.warrior.PrepareTurn()
	if _, err := a.warrior.Perform(AbilityAttack, ""); err != nil {
		t.Fatal(err)
	}
	if a.sludge.Health() != 7 {
		t.Errorf("sludge Health() = %d, want 7 after a forward blow", a.sludge.Health())
	}

	// Turn the sludge around so the warrior is behind it.
	_ = a.sludge.Pivot(world.Backward)
	a.sludge.PrepareTurn()
	if _, err := a.sludge.Perform(AbilityAttack, world.Backward); err != nil {
		t.Fatal(err)
	}
	if a.warrior.Health() != 18 {
		t.Errorf("warrior Health() = %d, want 18 after a backward blow", a.warrior.Health())
	}
}

func TestAttackAbsoluteDirectionUsesFacing(t *testing.T) {
	a := newArena(t, 1)

	// West of the sludge is the warrior and the sludge faces west: forward.
	a.sludge.PrepareTurn()
	if _, err := a.sludge.Perform(AbilityAttack, world.West); err != nil {
		t.Fatal(err)
	}
	if a.warrior.Health() != 17 {
		t.Errorf("warrior Health() = %d, want 17", a.warrior.Health())
	}
}

func TestAttackNothing(t *testing.T) {
	a := newArena(t, 4)

	a.warrior.PrepareTurn()
	if _, err := a.warrior.Perform(AbilityAttack, ""); err != nil {
		t.Fatal(err)
	}
	if a.log.last() != "Warrior attacks forward and hits nothing" {
		t.Errorf("narration = %q", a.log.last())
	}
	if a.sludge.Health() != 12 {
		t.Error("missed attack should not damage anything")
	}
}

func TestAttackKillsAndScores(t *testing.T) {
	a := newArena(t, 1)
	for i := 0; i < 3; i++ {
		a.warrior.PrepareTurn()
		if _, err := a.warrior.Perform(AbilityAttack, ""); err != nil {
			t.Fatal(err)
		}
	}
	if a.sludge.IsAlive() {
		t.Fatal("sludge should be dead after 15 damage")
	}
	if a.warrior.Score() != 12 {
		t.Errorf("Score() = %d, want 12", a.warrior.Score())
	}
	space, _ := FeelSpace(a.warrior, world.Forward)
	if !space.IsEmpty() || space.Character() != " " {
		t.Error("dead sludge's cell should be blank and empty")
	}
}

func TestFeelMatchesOccupancy(t *testing.T) {
	for x := 1; x < 8; x++ {
		a := newArena(t, x)
		space, err := FeelSpace(a.warrior, world.Forward)
		if err != nil {
			t.Fatal(err)
		}
		occupied := a.floor.UnitAt(world.Pt(1, 0)) != nil
		if space.IsEmpty() == occupied {
			t.Errorf("sludge at %d: feel IsEmpty() = %v, occupied = %v", x, space.IsEmpty(), occupied)
		}
		if a.warrior.ActionTaken() {
			t.Error("feel should not spend the action")
		}
	}
}

func TestLook(t *testing.T) {
	a := newArena(t, 2)
	res, err := a.warrior.Perform(AbilityLook, "")
	if err != nil {
		t.Fatal(err)
	}
	spaces, ok := res.([]world.Space)
	if !ok || len(spaces) != 3 {
		t.Fatalf("look returned %v, want 3 spaces", res)
	}
	if !spaces[0].IsEmpty() || !spaces[1].IsEnemy() || !spaces[2].IsEmpty() {
		t.Errorf("look = [%s %s %s], want [nothing Sludge nothing]", spaces[0], spaces[1], spaces[2])
	}
}

func TestHealthAndRest(t *testing.T) {
	a := newArena(t, 4)
	w := a.warrior

	w.PrepareTurn()
	_, _ = w.Perform(AbilityRest, "")
	if a.log.last() != "Warrior is already fit as a fiddle" {
		t.Errorf("narration = %q", a.log.last())
	}

	w.TakeDamage(10)
	w.PrepareTurn()
	_, _ = w.Perform(AbilityRest, "")
	res, err := w.Perform(AbilityHealth, "")
	if err != nil {
		t.Fatal(err)
	}
	if res != 12 {
		t.Errorf("health = %v, want 12 after resting", res)
	}
}

func TestPivotDefaultsBackward(t *testing.T) {
	a := newArena(t, 4)
	a.warrior.PrepareTurn()
	if _, err := a.warrior.Perform(AbilityPivot, ""); err != nil {
		t.Fatal(err)
	}
	if a.warrior.Facing() != world.West {
		t.Errorf("Facing() = %s, want west", a.warrior.Facing())
	}
}

func TestMelee(t *testing.T) {
	a := newArena(t, 1)

	a.sludge.PrepareTurn()
	if err := Melee(a.sludge); err != nil {
		t.Fatal(err)
	}
	if a.warrior.Health() != 17 {
		t.Errorf("warrior Health() = %d, want 17", a.warrior.Health())
	}
	if a.log.lines[0] != "Sludge attacks forward and hits Warrior" {
		t.Errorf("narration = %q", a.log.lines[0])
	}
}

func TestMeleeIdleWhenAlone(t *testing.T) {
	a := newArena(t, 4)
	a.sludge.PrepareTurn()
	if err := Melee(a.sludge); err != nil {
		t.Fatal(err)
	}
	if a.sludge.ActionTaken() || len(a.log.lines) != 0 {
		t.Error("sludge should not act when the warrior is not adjacent")
	}
}

func TestMeleeBehindUsesBackwardDamage(t *testing.T) {
	a := newArena(t, 1)
	_ = a.sludge.Pivot(world.Backward) // now faces east, warrior behind it

	a.sludge.PrepareTurn()
	if err := Melee(a.sludge); err != nil {
		t.Fatal(err)
	}
	if a.warrior.Health() != 18 {
		t.Errorf("warrior Health() = %d, want 18", a.warrior.Health())
	}
}
