package applet

import (
	"sync"
	"testing"
	"time"

	"github.com/chris14257/winston/internal/input/key"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	for _, r := range "abc" {
		q.Push(key.NewRuneEvent(r, key.ModNone))
	}
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	for _, want := range "abc" {
		ev, ok := q.Pop(time.Second)
		if !ok {
			t.Fatalf("Pop() timed out waiting for %q", want)
		}
		if ev.Rune() != want {
			t.Errorf("Pop() = %q, want %q", ev.Rune(), want)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestQueue_PopTimesOut(t *testing.T) {
	q := NewQueue()

	start := time.Now()
	_, ok := q.Pop(20 * time.Millisecond)
	elapsed := time.Since(start)

	if ok {
		t.Fatal("Pop() = true on an empty queue")
	}
	if elapsed < 20*time.Millisecond {
		t.Errorf("Pop() returned after %v, want at least 20ms", elapsed)
	}
}

func TestQueue_PopWakesOnPush(t *testing.T) {
	q := NewQueue()

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.Push(key.NewRuneEvent('x', key.ModNone))
	}()

	ev, ok := q.Pop(time.Second)
	if !ok {
		t.Fatal("Pop() timed out waiting for pushed event")
	}
	if ev.Rune() != 'x' {
		t.Errorf("Pop() = %q, want 'x'", ev.Rune())
	}
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				q.Push(key.NewRuneEvent('x', key.ModNone))
			}
		}()
	}
	wg.Wait()

	if q.Len() != producers*perProducer {
		t.Errorf("Len() = %d, want %d", q.Len(), producers*perProducer)
	}
	for i := 0; i < producers*perProducer; i++ {
		if _, ok := q.Pop(time.Second); !ok {
			t.Fatalf("Pop() timed out at event %d", i)
		}
	}
}
