package history

import (
	"context"
	"testing"
)

func TestMemoryRepoAppendAndList(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		id, err := repo.Append(ctx, Record{PlayerID: "100", Game: "slots", Bet: 10, Payout: int64(i)})
		if err != nil || id == "" {
			t.Fatalf("append: id=%q err=%v", id, err)
		}
	}
	if _, err := repo.Append(ctx, Record{PlayerID: "200", Game: "crash", Bet: 5}); err != nil {
		t.Fatal(err)
	}

	records, err := repo.List(ctx, "100", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("listed %d records, want 5", len(records))
	}
	// newest first
	if records[0].Payout != 4 {
		t.Fatalf("first record payout = %d, want 4", records[0].Payout)
	}

	records, err = repo.List(ctx, "100", 2)
	if err != nil || len(records) != 2 {
		t.Fatalf("limited list: n=%d err=%v", len(records), err)
	}

	records, err = repo.List(ctx, "nobody", 10)
	if err != nil || len(records) != 0 {
		t.Fatalf("unknown player list: n=%d err=%v", len(records), err)
	}
}
