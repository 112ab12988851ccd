package leaderboard

import (
	"context"
	"testing"
)

func TestMemoryStoreRanking(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Record(ctx, "a", 50)
	s.Record(ctx, "b", -100)
	s.Record(ctx, "c", 200)
	s.Record(ctx, "a", 100)

	top, err := s.Top(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Fatalf("len = %d", len(top))
	}
	if top[0].PlayerID != "c" || top[0].Profit != 200 {
		t.Fatalf("first = %+v", top[0])
	}
	if top[1].PlayerID != "a" || top[1].Profit != 150 {
		t.Fatalf("second = %+v", top[1])
	}

	top, _ = s.Top(ctx, 10)
	if len(top) != 3 || top[2].PlayerID != "b" {
		t.Fatalf("full ranking = %+v", top)
	}
}
