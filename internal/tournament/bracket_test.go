package tournament

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/anl2026/anl-api/internal/engine"
	"github.com/anl2026/anl-api/internal/player"
	"github.com/anl2026/anl-api/internal/team"
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
	if err := db.AutoMigrate(&team.Team{}, &player.Player{}, &Match{}, &MatchArchive{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTeams(t *testing.T, db *gorm.DB, ratings ...float64) []team.Team {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	teams := make([]team.Team, len(ratings))
	for i, rating := range ratings {
		teams[i] = team.Team{
			Country:       "Nation " + string(rune('A'+i)),
			ManagerName:   "Manager " + string(rune('A'+i)),
			ContactEmail:  "manager@example.test",
			OwnerID:       uint(i + 1),
			AverageRating: rating,
			Players:       player.GenerateSquad(rng),
		}
		if err := db.Create(&teams[i]).Error; err != nil {
			t.Fatalf("create team: %v", err)
		}
	}
	return teams
}

func matchesByRound(matches []Match) map[Round][]Match {
	grouped := make(map[Round][]Match)
	for _, m := range matches {
		grouped[m.Round] = append(grouped[m.Round], m)
	}
	return grouped
}

func TestStartBracketCreatesKnockoutTree(t *testing.T) {
	db := setupDB(t)
	repo := NewTournamentRepository(db)
	service := NewBracketService(repo)
	teams := seedTeams(t, db, 100, 90, 80, 70, 60, 50, 40, 30)

	if _, err := service.StartBracket(teams); err != nil {
		t.Fatalf("StartBracket: %v", err)
	}

	matches, err := repo.GetMatches()
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if len(matches) != 7 {
		t.Fatalf("expected 7 matches, got %d", len(matches))
	}

	grouped := matchesByRound(matches)
	if len(grouped[RoundQuarterFinal]) != 4 || len(grouped[RoundSemiFinal]) != 2 || len(grouped[RoundFinal]) != 1 {
		t.Fatalf("round distribution QF=%d SF=%d F=%d",
			len(grouped[RoundQuarterFinal]), len(grouped[RoundSemiFinal]), len(grouped[RoundFinal]))
	}

	final := grouped[RoundFinal][0]
	if final.Status != StatusWaiting || final.Team1ID != nil || final.Team2ID != nil {
		t.Errorf("final should start empty and waiting, got %+v", final)
	}
	if final.AdvancesToMatchID != nil {
		t.Errorf("final must not advance anywhere")
	}

	semis := grouped[RoundSemiFinal]
	for _, semi := range semis {
		if semi.Status != StatusWaiting {
			t.Errorf("semi-final %d status = %s, want waiting", semi.Slot, semi.Status)
		}
		if semi.AdvancesToMatchID == nil || *semi.AdvancesToMatchID != final.ID {
			t.Errorf("semi-final %d must feed the final", semi.Slot)
		}
		if semi.AdvancesToSlot == nil || *semi.AdvancesToSlot != semi.Slot {
			t.Errorf("semi-final %d must feed final slot %d", semi.Slot, semi.Slot)
		}
	}

	semiBySlot := map[int]Match{semis[0].Slot: semis[0], semis[1].Slot: semis[1]}
	wantPairs := [4][2]uint{
		{teams[0].ID, teams[7].ID},
		{teams[1].ID, teams[6].ID},
		{teams[2].ID, teams[5].ID},
		{teams[3].ID, teams[4].ID},
	}
	for _, quarter := range grouped[RoundQuarterFinal] {
		if quarter.Status != StatusPending {
			t.Errorf("quarter-final %d status = %s, want pending", quarter.Slot, quarter.Status)
		}
		want := wantPairs[quarter.Slot-1]
		if quarter.Team1ID == nil || quarter.Team2ID == nil ||
			*quarter.Team1ID != want[0] || *quarter.Team2ID != want[1] {
			t.Errorf("quarter-final %d teams = %v vs %v, want %d vs %d",
				quarter.Slot, quarter.Team1ID, quarter.Team2ID, want[0], want[1])
		}

		wantSemiSlot := (quarter.Slot-1)/2 + 1
		wantTargetSlot := (quarter.Slot-1)%2 + 1
		targetSemi := semiBySlot[wantSemiSlot]
		if quarter.AdvancesToMatchID == nil || *quarter.AdvancesToMatchID != targetSemi.ID {
			t.Errorf("quarter-final %d must feed semi-final %d", quarter.Slot, wantSemiSlot)
		}
		if quarter.AdvancesToSlot == nil || *quarter.AdvancesToSlot != wantTargetSlot {
			t.Errorf("quarter-final %d must feed slot %d", quarter.Slot, wantTargetSlot)
		}
	}

	if _, err := service.StartBracket(teams); !errors.Is(err, ErrAlreadySeeded) {
		t.Fatalf("second start: expected ErrAlreadySeeded, got %v", err)
	}
}

func TestAssignSlotIsIdempotentAndFlipsStatus(t *testing.T) {
	db := setupDB(t)
	repo := NewTournamentRepository(db)

	semi := Match{Round: RoundSemiFinal, Slot: 1, Status: StatusWaiting}
	if err := repo.CreateMatch(&semi); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.AssignSlot(semi.ID, 1, 11); err != nil {
		t.Fatalf("assign slot 1: %v", err)
	}
	loaded, _ := repo.GetMatchByID(semi.ID)
	if loaded.Status != StatusWaiting {
		t.Errorf("status after one slot = %s, want waiting", loaded.Status)
	}
	if loaded.Team1ID == nil || *loaded.Team1ID != 11 {
		t.Errorf("team1 = %v, want 11", loaded.Team1ID)
	}

	// Re-applying the same winner changes nothing.
	if err := repo.AssignSlot(semi.ID, 1, 11); err != nil {
		t.Fatalf("repeat assign: %v", err)
	}
	loaded, _ = repo.GetMatchByID(semi.ID)
	if loaded.Team1ID == nil || *loaded.Team1ID != 11 || loaded.Status != StatusWaiting {
		t.Errorf("repeat assign mutated the match: %+v", loaded)
	}

	if err := repo.AssignSlot(semi.ID, 2, 22); err != nil {
		t.Fatalf("assign slot 2: %v", err)
	}
	loaded, _ = repo.GetMatchByID(semi.ID)
	if loaded.Status != StatusPending {
		t.Errorf("status with both slots = %s, want pending", loaded.Status)
	}
	if loaded.Team2ID == nil || *loaded.Team2ID != 22 {
		t.Errorf("team2 = %v, want 22", loaded.Team2ID)
	}
}

func completedResult(winnerID uint) *engine.Result {
	return &engine.Result{
		Score:       engine.Score{Team1: 2, Team2: 1},
		Resolution:  engine.ResolutionRegular,
		WinnerID:    winnerID,
		Goalscorers: []engine.Goal{},
	}
}

func TestCompleteMatchRecordsResultExactlyOnce(t *testing.T) {
	db := setupDB(t)
	repo := NewTournamentRepository(db)

	team1, team2 := uint(1), uint(2)
	match := Match{Round: RoundQuarterFinal, Slot: 1, Team1ID: &team1, Team2ID: &team2, Status: StatusPending}
	if err := repo.CreateMatch(&match); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.CompleteMatch(match.ID, completedResult(team1), "commentary", CommentaryQuickSim); err != nil {
		t.Fatalf("complete: %v", err)
	}

	loaded, _ := repo.GetMatchByID(match.ID)
	if loaded.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", loaded.Status)
	}
	if loaded.WinnerID == nil || *loaded.WinnerID != team1 {
		t.Errorf("winner = %v, want %d", loaded.WinnerID, team1)
	}
	if loaded.Score == nil || loaded.Score.Team1 != 2 || loaded.Score.Team2 != 1 {
		t.Errorf("score = %+v, want 2-1", loaded.Score)
	}
	if loaded.CompletedAt == nil {
		t.Error("completedAt not set")
	}
	if loaded.CommentaryType != CommentaryQuickSim {
		t.Errorf("commentaryType = %q", loaded.CommentaryType)
	}

	err := repo.CompleteMatch(match.ID, completedResult(team2), "again", CommentaryQuickSim)
	if !errors.Is(err, ErrMatchAlreadyCompleted) {
		t.Fatalf("second complete: expected ErrMatchAlreadyCompleted, got %v", err)
	}
	loaded, _ = repo.GetMatchByID(match.ID)
	if *loaded.WinnerID != team1 {
		t.Errorf("second attempt overwrote the winner")
	}
}

func TestCompleteMatchRejectsWaitingAndMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewTournamentRepository(db)

	waiting := Match{Round: RoundSemiFinal, Slot: 1, Status: StatusWaiting}
	if err := repo.CreateMatch(&waiting); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.CompleteMatch(waiting.ID, completedResult(1), "", CommentaryQuickSim); !errors.Is(err, ErrMatchNotReady) {
		t.Fatalf("waiting match: expected ErrMatchNotReady, got %v", err)
	}
	if err := repo.CompleteMatch(9999, completedResult(1), "", CommentaryQuickSim); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("missing match: expected ErrMatchNotFound, got %v", err)
	}
}

func TestFullTournamentCrownsChampion(t *testing.T) {
	db := setupDB(t)
	repo := NewTournamentRepository(db)
	service := NewBracketService(repo)
	teams := seedTeams(t, db, 95, 88, 84, 77, 71, 64, 58, 51)

	if _, err := service.StartBracket(teams); err != nil {
		t.Fatalf("StartBracket: %v", err)
	}

	contexts := make(map[uint]engine.TeamContext, len(teams))
	for _, entry := range teams {
		contexts[entry.ID] = engine.TeamContext{
			ID:            entry.ID,
			Name:          entry.Country,
			Players:       entry.Players,
			AverageRating: entry.AverageRating,
		}
	}

	sim := engine.New(rand.New(rand.NewSource(42)))
	for played := 0; played < 7; played++ {
		matches, err := repo.GetMatches()
		if err != nil {
			t.Fatalf("GetMatches: %v", err)
		}

		var next *Match
		for i := range matches {
			if matches[i].Status == StatusPending {
				next = &matches[i]
				break
			}
		}
		if next == nil {
			t.Fatalf("no pending match after %d played", played)
		}

		result := sim.Simulate(contexts[*next.Team1ID], contexts[*next.Team2ID])
		if err := repo.CompleteMatch(next.ID, &result, "summary", CommentaryQuickSim); err != nil {
			t.Fatalf("complete match %d: %v", next.ID, err)
		}
		next.WinnerID = &result.WinnerID
		if err := service.AdvanceWinner(next); err != nil {
			t.Fatalf("advance winner of match %d: %v", next.ID, err)
		}
	}

	matches, _ := repo.GetMatches()
	var final *Match
	for i := range matches {
		if matches[i].Status != StatusCompleted {
			t.Errorf("match %d still %s after full run", matches[i].ID, matches[i].Status)
		}
		if matches[i].Round == RoundFinal {
			final = &matches[i]
		}
	}
	if final == nil || final.WinnerID == nil {
		t.Fatal("final has no winner")
	}
	if _, known := contexts[*final.WinnerID]; !known {
		t.Fatalf("champion %d is not a seeded team", *final.WinnerID)
	}
	if final.WinnerID == nil || final.Team1ID == nil || final.Team2ID == nil {
		t.Fatal("final slots not filled by advancement")
	}
	if *final.WinnerID != *final.Team1ID && *final.WinnerID != *final.Team2ID {
		t.Errorf("champion %d did not play the final", *final.WinnerID)
	}
}

func TestArchiveAndResetClearsBracket(t *testing.T) {
	db := setupDB(t)
	repo := NewTournamentRepository(db)
	service := NewBracketService(repo)
	teams := seedTeams(t, db, 90, 85, 80, 75, 70, 65, 60, 55)

	if _, err := service.StartBracket(teams); err != nil {
		t.Fatalf("StartBracket: %v", err)
	}
	if err := service.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	remaining, err := repo.CountMatches()
	if err != nil {
		t.Fatalf("CountMatches: %v", err)
	}
	if remaining != 0 {
		t.Errorf("matches after reset = %d, want 0", remaining)
	}

	var archived int64
	if err := db.Model(&MatchArchive{}).Count(&archived).Error; err != nil {
		t.Fatalf("count archive: %v", err)
	}
	if archived != 7 {
		t.Errorf("archived matches = %d, want 7", archived)
	}

	// A fresh bracket can be seeded again after the reset.
	if _, err := service.StartBracket(teams); err != nil {
		t.Fatalf("restart after reset: %v", err)
	}
}
