package rank

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestLeaderboardRanksByPoints(t *testing.T) {
	lb := NewLeaderboardWithClient(testClient(t))
	bg := context.Background()

	if err := lb.AddPoints(bg, "alice", 120); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	if err := lb.AddPoints(bg, "bob", 80); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	if err := lb.AddPoints(bg, "alice", 30); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}

	top, err := lb.Top(bg, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].UserID != "alice" || top[0].Points != 150 {
		t.Errorf("expected alice on top with 150, got %+v", top[0])
	}
	if top[1].UserID != "bob" || top[1].Points != 80 {
		t.Errorf("expected bob second with 80, got %+v", top[1])
	}
}

func TestLeaderboardRebuild(t *testing.T) {
	lb := NewLeaderboardWithClient(testClient(t))
	bg := context.Background()

	if err := lb.AddPoints(bg, "stale", 999); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	err := lb.Rebuild(bg, []Entry{
		{UserID: "carol", Points: 50},
		{UserID: "dave", Points: 75},
	})
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	top, err := lb.Top(bg, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 || top[0].UserID != "dave" {
		t.Errorf("rebuild did not replace ranking: %+v", top)
	}
}

func TestSubmissionLimiter(t *testing.T) {
	client := testClient(t)
	rl := NewSubmissionLimiterWithClient(client, 3, time.Minute)
	bg := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow(bg, "user1")
		if err != nil {
			t.Fatalf("Allow: %v", err)
		}
		if !ok {
			t.Fatalf("submission %d should be allowed", i+1)
		}
	}

	ok, err := rl.Allow(bg, "user1")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ok {
		t.Errorf("fourth submission in window should be blocked")
	}

	// A different user has their own window.
	ok, err = rl.Allow(bg, "user2")
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if !ok {
		t.Errorf("other users should not share the window")
	}
}
