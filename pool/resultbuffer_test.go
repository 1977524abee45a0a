package pool_test

import (
	"testing"

	"github.com/momentics/hioload-fractal/pool"
)

// recordingSink counts Set calls per coordinate.
type recordingSink struct {
	writes map[[2]int]uint16
	calls  int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{writes: make(map[[2]int]uint16)}
}

func (s *recordingSink) Set(x, y int, v uint16) {
	s.writes[[2]int{x, y}] = v
	s.calls++
}

func TestResultBuffer_AppendAndDrain(t *testing.T) {
	buf := pool.NewResultBuffer(8)
	buf.Append(1, 2, 100)
	buf.Append(3, 4, 1000)
	if buf.Len() != 2 {
		t.Fatalf("Len = %d, want 2", buf.Len())
	}

	sink := newRecordingSink()
	buf.DrainInto(sink)

	if buf.Len() != 0 {
		t.Errorf("Len after drain = %d, want 0", buf.Len())
	}
	if sink.calls != 2 {
		t.Errorf("sink received %d writes, want 2", sink.calls)
	}
	if got := sink.writes[[2]int{3, 4}]; got != 1000 {
		t.Errorf("cell (3,4) = %d, want 1000", got)
	}
}

func TestResultBuffer_StorageReusedAfterDrain(t *testing.T) {
	buf := pool.NewResultBuffer(4)
	sink := newRecordingSink()

	for round := 0; round < 3; round++ {
		for i := 0; i < buf.Cap(); i++ {
			buf.Append(i, round, uint16(round))
		}
		buf.DrainInto(sink)
	}
	if sink.calls != 12 {
		t.Errorf("sink received %d writes across rounds, want 12", sink.calls)
	}
	if got := sink.writes[[2]int{0, 2}]; got != 2 {
		t.Errorf("latest round not visible: cell (0,2) = %d, want 2", got)
	}
}

func TestResultBuffer_OverflowFailsFast(t *testing.T) {
	buf := pool.NewResultBuffer(1)
	buf.Append(0, 0, 1)
	defer func() {
		if recover() == nil {
			t.Error("Append past capacity did not panic")
		}
	}()
	buf.Append(0, 1, 2)
}

func TestSyncPool_ReusesBuffers(t *testing.T) {
	p := pool.NewSyncPool(func() *pool.ResultBuffer {
		return pool.NewResultBuffer(16)
	})
	b := p.Get()
	if b.Cap() != 16 {
		t.Fatalf("Cap = %d, want 16", b.Cap())
	}
	b.Append(1, 1, 1)
	b.DrainInto(newRecordingSink())
	p.Put(b)

	if again := p.Get(); again.Len() != 0 {
		t.Errorf("pooled buffer not drained: Len = %d", again.Len())
	}
}
