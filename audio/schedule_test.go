package audio

import (
	"context"
	"testing"
)

func TestGraphQueuePushDrain(t *testing.T) {
	q := newGraphQueue(8)
	a, b := &graph{end: 1}, &graph{end: 2}
	if !q.push(a) || !q.push(b) {
		t.Fatal("push into an empty queue failed")
	}

	var got []*graph
	q.drain(func(g *graph) { got = append(got, g) })
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("want the two pushed graphs in order, got %v", got)
	}

	got = nil
	q.drain(func(g *graph) { got = append(got, g) })
	if len(got) != 0 {
		t.Errorf("drained queue should be empty, got %v", got)
	}
}

func TestGraphQueueFull(t *testing.T) {
	q := newGraphQueue(4)
	for i := 0; i < 4; i++ {
		if !q.push(&graph{}) {
			t.Fatalf("push %d should fit", i)
		}
	}
	if q.push(&graph{}) {
		t.Error("push into a full queue should report false")
	}
	q.drain(func(*graph) {})
	if !q.push(&graph{}) {
		t.Error("push after drain should fit again")
	}
}

func TestGraphQueueSizePowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a non power of 2 size")
		}
	}()
	newGraphQueue(6)
}

func TestGraphQueueConcurrent(t *testing.T) {
	q := newGraphQueue(8)

	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	var graphs []*graph
	go func() {
		for {
			select {
			case <-ctx.Done():
				q.drain(func(g *graph) { graphs = append(graphs, g) })
				done <- struct{}{}
				return
			default:
				q.drain(func(g *graph) { graphs = append(graphs, g) })
			}
		}
	}()

	const numGraphs = 1_000_000
	for n := 0; n < numGraphs; n++ {
		g := &graph{end: uint64(n)}
		for !q.push(g) {
		}
	}

	cancel()
	<-done

	if len(graphs) != numGraphs {
		t.Fatalf("wrong number of graphs: want %v, got %v", numGraphs, len(graphs))
	}
	prev := -1
	for _, g := range graphs {
		if want, got := prev+1, int(g.end); want != got {
			t.Fatalf("discontinuous graph order: want %v, got %v", want, got)
		}
		prev++
	}
}
