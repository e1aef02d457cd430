package team

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/anl2026/anl-api/internal/player"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Team{}, &player.Player{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func fullSquadInput() []SquadPlayerInput {
	inputs := make([]SquadPlayerInput, 0, player.SquadSize)
	positions := []string{"GK", "GK", "GK",
		"DF", "DF", "DF", "DF", "DF", "DF", "DF",
		"MD", "MD", "MD", "MD", "MD", "MD", "MD", "MD",
		"AT", "AT", "AT", "AT", "AT"}
	for i, position := range positions {
		inputs = append(inputs, SquadPlayerInput{
			Name:            "Player " + string(rune('A'+i%26)) + string(rune('a'+i%26)),
			NaturalPosition: position,
		})
	}
	return inputs
}

func TestBuildSquadAutoFill(t *testing.T) {
	tc := NewTeamController(nil, rand.New(rand.NewSource(9)))

	squad, err := tc.buildSquad(&CreateTeamRequest{AutoFill: true})
	if err != nil {
		t.Fatalf("buildSquad: %v", err)
	}
	if len(squad) != player.SquadSize {
		t.Fatalf("squad size = %d, want %d", len(squad), player.SquadSize)
	}

	captains := 0
	for _, entry := range squad {
		if entry.IsCaptain {
			captains++
		}
	}
	if captains != 1 {
		t.Errorf("captains = %d, want 1", captains)
	}
}

func TestBuildSquadFromProvidedPlayers(t *testing.T) {
	tc := NewTeamController(nil, rand.New(rand.NewSource(9)))
	inputs := fullSquadInput()
	inputs[4].IsCaptain = true

	squad, err := tc.buildSquad(&CreateTeamRequest{Players: inputs})
	if err != nil {
		t.Fatalf("buildSquad: %v", err)
	}

	for i, entry := range squad {
		if entry.SquadIndex != i {
			t.Errorf("player %d squadIndex = %d", i, entry.SquadIndex)
		}
		if entry.Overall <= 0 {
			t.Errorf("player %d has no generated overall", i)
		}
		if (i == 4) != entry.IsCaptain {
			t.Errorf("player %d captain = %v", i, entry.IsCaptain)
		}
	}
}

func TestBuildSquadRejectsWrongSizeAndPositions(t *testing.T) {
	tc := NewTeamController(nil, rand.New(rand.NewSource(9)))

	short := fullSquadInput()[:10]
	if _, err := tc.buildSquad(&CreateTeamRequest{Players: short}); err == nil {
		t.Error("short squad must be rejected")
	}

	invalid := fullSquadInput()
	invalid[0].NaturalPosition = "ST"
	if _, err := tc.buildSquad(&CreateTeamRequest{Players: invalid}); err == nil {
		t.Error("invalid position must be rejected")
	}
}

func TestNormalizeCaptains(t *testing.T) {
	none := []SquadPlayerInput{{Name: "A"}, {Name: "B"}}
	none = normalizeCaptains(none)
	if !none[0].IsCaptain || none[1].IsCaptain {
		t.Errorf("no captain case: %+v", none)
	}

	several := []SquadPlayerInput{{Name: "A", IsCaptain: true}, {Name: "B", IsCaptain: true}}
	several = normalizeCaptains(several)
	if !several[0].IsCaptain || several[1].IsCaptain {
		t.Errorf("several captains case: %+v", several)
	}
}

func TestSanitizeSquadDropsMalformedEntries(t *testing.T) {
	inputs := []SquadPlayerInput{
		{Name: "  Kofi Abebe  ", NaturalPosition: "GK"},
		{Name: "   ", NaturalPosition: "DF"},
		{Name: "No Position"},
	}

	out := sanitizeSquad(inputs)
	if len(out) != 1 {
		t.Fatalf("sanitized size = %d, want 1", len(out))
	}
	if out[0].Name != "Kofi Abebe" || strings.Contains(out[0].Name, " Kofi") {
		t.Errorf("name not trimmed: %q", out[0].Name)
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewTeamRepository(db)
	rng := rand.New(rand.NewSource(3))

	squad := player.GenerateSquad(rng)
	created := &Team{
		Country:       "Cameroon",
		ManagerName:   "Samuel Biya",
		ContactEmail:  "cameroon@example.test",
		OwnerID:       1,
		AverageRating: player.SquadAverage(squad),
		Players:       squad,
	}
	if err := repo.CreateTeamWithSquad(created); err != nil {
		t.Fatalf("create: %v", err)
	}

	registered, err := repo.HasTeamForOwner(1)
	if err != nil || !registered {
		t.Fatalf("HasTeamForOwner = %v, %v", registered, err)
	}

	loaded, err := repo.GetTeamWithPlayers(created.ID)
	if err != nil {
		t.Fatalf("GetTeamWithPlayers: %v", err)
	}
	if len(loaded.Players) != player.SquadSize {
		t.Fatalf("loaded squad size = %d", len(loaded.Players))
	}
	for i, entry := range loaded.Players {
		if entry.SquadIndex != i {
			t.Fatalf("players not in squad order at %d", i)
		}
	}

	missing, err := repo.GetTeamByID(9999)
	if err != nil || missing != nil {
		t.Errorf("missing team = %v, %v; want nil, nil", missing, err)
	}

	if err := repo.DeleteTeam(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := repo.GetTeamByID(created.ID)
	if err != nil || gone != nil {
		t.Errorf("deleted team still loads: %v, %v", gone, err)
	}
}

func TestReplaceSquadRebuildsPlayersAndRating(t *testing.T) {
	db := setupDB(t)
	repo := NewTeamRepository(db)
	rng := rand.New(rand.NewSource(5))

	created := &Team{
		Country:      "Togo",
		ManagerName:  "Mensah Ade",
		ContactEmail: "togo@example.test",
		OwnerID:      2,
	}
	if err := repo.CreateTeamWithSquad(created); err != nil {
		t.Fatalf("create: %v", err)
	}

	squad := player.GenerateSquad(rng)
	average := player.SquadAverage(squad)
	if err := repo.ReplaceSquad(created.ID, squad, average); err != nil {
		t.Fatalf("ReplaceSquad: %v", err)
	}

	loaded, err := repo.GetTeamWithPlayers(created.ID)
	if err != nil {
		t.Fatalf("GetTeamWithPlayers: %v", err)
	}
	if len(loaded.Players) != player.SquadSize {
		t.Errorf("rebuilt squad size = %d", len(loaded.Players))
	}
	if loaded.AverageRating != average {
		t.Errorf("averageRating = %v, want %v", loaded.AverageRating, average)
	}
}
