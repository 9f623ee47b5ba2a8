package chat_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	chat "github.com/pfhealth/vitality-engine/internal/service/chat"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	first := svc.Create(ctx, "hi", "alice")
	second := svc.Create(ctx, "yo", "bob")

	if first.ID != "msg_1" {
		t.Fatalf("expected msg_1, got %s", first.ID)
	}
	if second.ID != "msg_2" {
		t.Fatalf("expected msg_2, got %s", second.ID)
	}
	if second.Timestamp.Before(first.Timestamp) {
		t.Fatalf("timestamps must be non-decreasing")
	}

	messages := svc.List(ctx)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Content != "hi" || messages[0].Sender != "alice" {
		t.Fatalf("first message fields mismatch: %+v", messages[0])
	}
	if messages[1].Content != "yo" || messages[1].Sender != "bob" {
		t.Fatalf("second message fields mismatch: %+v", messages[1])
	}
}

func TestListIsIdempotent(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	svc.Create(ctx, "hello", "alice")

	first := svc.List(ctx)
	second := svc.List(ctx)

	if len(first) != len(second) {
		t.Fatalf("list lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("list contents differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	svc.Create(ctx, "hello", "alice")

	leaked := svc.List(ctx)
	leaked[0].Content = "tampered"

	if got := svc.List(ctx)[0].Content; got != "hello" {
		t.Fatalf("store was mutated through a returned slice: %s", got)
	}
}

func TestConcurrentCreatesProduceGaplessIDs(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			svc.Create(ctx, fmt.Sprintf("message %d", i), "tester")
		}(i)
	}
	wg.Wait()

	messages := svc.List(ctx)
	if len(messages) != n {
		t.Fatalf("expected %d messages, got %d", n, len(messages))
	}

	seen := make(map[string]bool, n)
	for _, msg := range messages {
		seen[msg.ID] = true
	}
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("msg_%d", i)
		if !seen[id] {
			t.Fatalf("missing id %s", id)
		}
	}
}

func TestCreateSurvivesSubscriberChurn(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	done := make(chan struct{})
	var wg sync.WaitGroup

	const writers = 8
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					svc.Create(ctx, "churn", "tester")
				}
			}
		}()
	}

	// Subscribers come and go while creates are in flight; a create must
	// never hit a closed feed channel.
	for i := 0; i < 5000; i++ {
		key, feed := svc.Subscribe()
		select {
		case <-feed:
		default:
		}
		svc.Unsubscribe(key)
	}

	close(done)
	wg.Wait()

	messages := svc.List(ctx)
	for i, msg := range messages {
		if want := fmt.Sprintf("msg_%d", i+1); msg.ID != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, msg.ID)
		}
	}
}

func TestSubscribeReceivesNewMessages(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	key, feed := svc.Subscribe()
	defer svc.Unsubscribe(key)

	created := svc.Create(ctx, "live", "alice")

	select {
	case got := <-feed:
		if got.ID != created.ID {
			t.Fatalf("expected %s on feed, got %s", created.ID, got.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for feed message")
	}
}

func TestUnsubscribeClosesFeed(t *testing.T) {
	svc := chat.NewService()

	key, feed := svc.Subscribe()
	svc.Unsubscribe(key)

	select {
	case _, ok := <-feed:
		if ok {
			t.Fatal("expected closed feed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("feed channel not closed")
	}
}
