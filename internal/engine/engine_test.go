package engine

import (
	"fmt"
	"sync"
	"testing"

	"github.com/momentics/hioload-fractal/core/fractal"
)

const (
	testWidth  = 170
	testHeight = 118
)

func newTestEngine(t *testing.T, batchSize int, opts ...Option) *Engine {
	t.Helper()
	kernel := fractal.NewEscapeKernel(1000, 4.0)
	e, err := New(testWidth, testHeight, batchSize, fractal.ClassicViewport(), kernel, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

// sequentialReference computes the same grid with no concurrency at all.
func sequentialReference(width, height int) []uint16 {
	kernel := fractal.NewEscapeKernel(1000, 4.0)
	mapper := fractal.NewMapper(width, height, fractal.ClassicViewport())
	out := make([]uint16, width*height)
	for i := 0; i < mapper.Area(); i++ {
		x, y := mapper.PositionFromIndex(i)
		out[y*width+x] = kernel.Iterate(mapper.ScaleX(x), mapper.ScaleY(y))
	}
	return out
}

func TestEngine_ParallelMatchesSequential(t *testing.T) {
	want := sequentialReference(testWidth, testHeight)

	e := newTestEngine(t, 1024)
	if !e.Start(8) {
		t.Fatal("Start returned false on a fresh engine")
	}
	e.WaitToFinish()

	g := e.Grid()
	for y := 0; y < testHeight; y++ {
		for x := 0; x < testWidth; x++ {
			if got := g.At(x, y); got != want[y*testWidth+x] {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want[y*testWidth+x])
			}
		}
	}
}

func TestEngine_DeterministicAcrossWorkerCountsAndBatchSizes(t *testing.T) {
	want := sequentialReference(testWidth, testHeight)

	for _, workers := range []int{1, 2, 24} {
		for _, batchSize := range []int{97, 1000, 20000} {
			e := newTestEngine(t, batchSize)
			if !e.Start(workers) {
				t.Fatalf("Start(%d) returned false", workers)
			}
			e.WaitToFinish()
			g := e.Grid()
			for y := 0; y < testHeight; y++ {
				for x := 0; x < testWidth; x++ {
					if got := g.At(x, y); got != want[y*testWidth+x] {
						t.Fatalf("workers=%d batch=%d: cell (%d,%d) = %d, want %d",
							workers, batchSize, x, y, got, want[y*testWidth+x])
					}
				}
			}
		}
	}
}

// countingSink forwards to the real grid while counting writes per cell.
type countingSink struct {
	mu     sync.Mutex
	grid   *ResultGrid
	writes map[[2]int]int
}

func (s *countingSink) Set(x, y int, v uint16) {
	s.mu.Lock()
	s.writes[[2]int{x, y}]++
	s.mu.Unlock()
	s.grid.Set(x, y, v)
}

func TestEngine_EveryCellWrittenExactlyOnce(t *testing.T) {
	const batchSize = 512
	totalArea := testWidth * testHeight

	for _, workers := range []int{1, 4, totalArea/batchSize + 1} {
		sink := &countingSink{
			grid:   NewResultGrid(testWidth, testHeight),
			writes: make(map[[2]int]int),
		}
		e := newTestEngine(t, batchSize, WithCellSink(sink))
		if !e.Start(workers) {
			t.Fatalf("Start(%d) returned false", workers)
		}
		e.WaitToFinish()

		if len(sink.writes) != totalArea {
			t.Fatalf("workers=%d: %d distinct cells written, want %d", workers, len(sink.writes), totalArea)
		}
		for coord, n := range sink.writes {
			if n != 1 {
				t.Fatalf("workers=%d: cell %v written %d times", workers, coord, n)
			}
		}
	}
}

func TestEngine_StartWhileRunningFails(t *testing.T) {
	e := newTestEngine(t, 256)
	if !e.Start(4) {
		t.Fatal("first Start returned false")
	}
	if e.Start(4) {
		t.Error("second Start succeeded while running")
	}
	e.WaitToFinish()

	// A joined engine may be started again for an independent run.
	if !e.Start(2) {
		t.Error("Start after join returned false")
	}
	e.WaitToFinish()
}

func TestEngine_WaitToFinishIsIdempotent(t *testing.T) {
	e := newTestEngine(t, 256)
	e.Start(4)
	e.WaitToFinish()
	// Second and third joins must return without blocking or panicking.
	e.WaitToFinish()
	if err := e.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestEngine_WaitWithoutStartIsNoop(t *testing.T) {
	e := newTestEngine(t, 256)
	e.WaitToFinish()
}

func TestEngine_BatchLargerThanAreaSingleBatch(t *testing.T) {
	totalArea := testWidth * testHeight
	want := sequentialReference(testWidth, testHeight)

	e := newTestEngine(t, totalArea+5000)
	if !e.Start(6) {
		t.Fatal("Start returned false")
	}
	e.WaitToFinish()

	if got := e.Metrics().BatchesClaimed.Load(); got != 1 {
		t.Errorf("batches claimed = %d, want exactly 1", got)
	}
	g := e.Grid()
	for y := 0; y < testHeight; y++ {
		for x := 0; x < testWidth; x++ {
			if got := g.At(x, y); got != want[y*testWidth+x] {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want[y*testWidth+x])
			}
		}
	}
}

func TestEngine_StateTransitions(t *testing.T) {
	e := newTestEngine(t, 256)
	if got := e.State().String(); got != "not-started" {
		t.Errorf("fresh engine state = %q", got)
	}
	e.Start(2)
	e.WaitToFinish()
	if got := e.State().String(); got != "joined" {
		t.Errorf("state after join = %q", got)
	}
}

func TestEngine_MetricsAccounting(t *testing.T) {
	e := newTestEngine(t, 1000)
	e.Start(8)
	e.WaitToFinish()

	m := e.Metrics()
	totalArea := uint64(testWidth * testHeight)
	if got := m.CellsMerged.Load(); got != totalArea {
		t.Errorf("cells merged = %d, want %d", got, totalArea)
	}
	wantBatches := uint64((testWidth*testHeight + 999) / 1000)
	if got := m.BatchesClaimed.Load(); got != wantBatches {
		t.Errorf("batches claimed = %d, want %d", got, wantBatches)
	}
	if m.Merges.Load() == 0 {
		t.Error("merges counter never advanced")
	}
}

func TestEngine_RejectsBadGeometry(t *testing.T) {
	kernel := fractal.NewEscapeKernel(1000, 4.0)
	if _, err := New(0, 10, 100, fractal.ClassicViewport(), kernel); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := New(10, 10, 0, fractal.ClassicViewport(), kernel); err == nil {
		t.Error("zero batch size accepted")
	}
}

func BenchmarkEngine_Run(b *testing.B) {
	kernel := fractal.NewEscapeKernel(1000, 4.0)
	for _, workers := range []int{1, 2, 4, 8, 24} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				e, err := New(testWidth, testHeight, 20000, fractal.ClassicViewport(), kernel)
				if err != nil {
					b.Fatal(err)
				}
				e.Start(workers)
				e.WaitToFinish()
			}
		})
	}
}
