package rank

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/sriraghavi22/career-catalyst-project/internal/domain/match"
)

func resultWith(score, experience float64, id string) match.Result {
	return match.Result{
		StudentID:       uuid.MustParse(id),
		MatchScore:      score,
		ExperienceScore: experience,
	}
}

func TestOrder_DescendingByMatchScore(t *testing.T) {
	pool := []match.Result{
		resultWith(40, 0, "00000000-0000-0000-0000-000000000001"),
		resultWith(90, 0, "00000000-0000-0000-0000-000000000002"),
		resultWith(70, 0, "00000000-0000-0000-0000-000000000003"),
	}

	ordered := Order(pool)
	want := []float64{90, 70, 40}
	for i, r := range ordered {
		if r.MatchScore != want[i] {
			t.Fatalf("position %d score = %v, want %v", i, r.MatchScore, want[i])
		}
	}
}

func TestOrder_TieBreaks(t *testing.T) {
	pool := []match.Result{
		resultWith(70, 20, "00000000-0000-0000-0000-00000000000b"),
		resultWith(70, 50, "00000000-0000-0000-0000-00000000000c"),
		resultWith(70, 20, "00000000-0000-0000-0000-00000000000a"),
	}

	ordered := Order(pool)
	// higher experience first, equal experience in student-id order
	wantIDs := []string{
		"00000000-0000-0000-0000-00000000000c",
		"00000000-0000-0000-0000-00000000000a",
		"00000000-0000-0000-0000-00000000000b",
	}
	for i, r := range ordered {
		if r.StudentID.String() != wantIDs[i] {
			t.Fatalf("position %d id = %s, want %s", i, r.StudentID, wantIDs[i])
		}
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	pool := []match.Result{
		resultWith(40, 0, "00000000-0000-0000-0000-000000000001"),
		resultWith(90, 0, "00000000-0000-0000-0000-000000000002"),
	}
	snapshot := make([]match.Result, len(pool))
	copy(snapshot, pool)

	Order(pool)
	if !reflect.DeepEqual(pool, snapshot) {
		t.Fatal("input slice was reordered")
	}
}

func TestOrder_Deterministic(t *testing.T) {
	pool := []match.Result{
		resultWith(70, 20, "00000000-0000-0000-0000-000000000002"),
		resultWith(70, 20, "00000000-0000-0000-0000-000000000001"),
		resultWith(90, 10, "00000000-0000-0000-0000-000000000003"),
	}

	first := Order(pool)
	for i := 0; i < 10; i++ {
		if !reflect.DeepEqual(first, Order(pool)) {
			t.Fatal("ordering diverged across runs")
		}
	}
}

func TestTopN(t *testing.T) {
	pool := []match.Result{
		resultWith(40, 0, "00000000-0000-0000-0000-000000000001"),
		resultWith(90, 0, "00000000-0000-0000-0000-000000000002"),
		resultWith(70, 0, "00000000-0000-0000-0000-000000000003"),
	}

	top := TopN(pool, 2)
	if len(top) != 2 || top[0].MatchScore != 90 || top[1].MatchScore != 70 {
		t.Fatalf("top 2 = %+v", top)
	}
	if got := TopN(pool, 10); len(got) != 3 {
		t.Fatalf("n past pool size returned %d results", len(got))
	}
	if got := TopN(pool, 0); len(got) != 0 {
		t.Fatalf("n=0 returned %d results", len(got))
	}
	if got := TopN(pool, -1); len(got) != 0 {
		t.Fatalf("n=-1 returned %d results", len(got))
	}
}

func TestAscending(t *testing.T) {
	pool := []match.Result{
		resultWith(40, 0, "00000000-0000-0000-0000-000000000001"),
		resultWith(90, 0, "00000000-0000-0000-0000-000000000002"),
		resultWith(70, 0, "00000000-0000-0000-0000-000000000003"),
	}

	asc := Ascending(pool)
	want := []float64{40, 70, 90}
	for i, r := range asc {
		if r.MatchScore != want[i] {
			t.Fatalf("position %d score = %v, want %v", i, r.MatchScore, want[i])
		}
	}
}
