package crm

import (
	"testing"
	"time"
)

func snapshotNow() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func openDeal(name string, amount float64, ageDays int) Deal {
	return Deal{
		Name:      name,
		Stage:     StagePresentationScheduled,
		Amount:    amount,
		CreatedAt: snapshotNow().AddDate(0, 0, -ageDays),
		Owner:     "alex",
	}
}

func TestSnapshotExcludesClosedDeals(t *testing.T) {
	closed := snapshotNow()
	deals := []Deal{
		openDeal("open", 100, 3),
		{Name: "closed", Stage: StageClosedWon, Amount: 900, CreatedAt: snapshotNow().AddDate(0, 0, -10), ClosedAt: &closed},
	}

	rows := Snapshot(deals, snapshotNow(), 8)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Deal != "open" {
		t.Errorf("expected open deal, got %q", rows[0].Deal)
	}
}

func TestSnapshotSortsByAmountDescending(t *testing.T) {
	deals := []Deal{
		openDeal("small", 10, 1),
		openDeal("big", 1000, 1),
		openDeal("mid", 500, 1),
	}

	rows := Snapshot(deals, snapshotNow(), 8)
	want := []string{"big", "mid", "small"}
	for i, name := range want {
		if rows[i].Deal != name {
			t.Errorf("row %d = %q, want %q", i, rows[i].Deal, name)
		}
	}
}

func TestSnapshotTruncatesToLimit(t *testing.T) {
	var deals []Deal
	for i := 0; i < 12; i++ {
		deals = append(deals, openDeal(string(rune('a'+i)), float64(i*100), 1))
	}

	rows := Snapshot(deals, snapshotNow(), 8)
	if len(rows) != 8 {
		t.Errorf("expected 8 rows, got %d", len(rows))
	}
}

func TestSnapshotAgeDays(t *testing.T) {
	rows := Snapshot([]Deal{openDeal("aged", 100, 42)}, snapshotNow(), 8)
	if rows[0].AgeDays != 42 {
		t.Errorf("age = %d, want 42", rows[0].AgeDays)
	}
}

func TestSnapshotEmptyInput(t *testing.T) {
	rows := Snapshot(nil, snapshotNow(), 8)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
