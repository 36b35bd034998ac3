package tasks

import (
	"context"
	"errors"
	"io"
	"log"
	"sync/atomic"
	"testing"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestQueue_RunsSubmittedJobs(t *testing.T) {
	t.Parallel()

	q := New(3, 16)
	var ran int64
	for i := 0; i < 10; i++ {
		if !q.Submit("count", func(context.Context) error {
			atomic.AddInt64(&ran, 1)
			return nil
		}) {
			t.Fatal("submit rejected with free capacity")
		}
	}
	q.Close()

	if ran != 10 {
		t.Fatalf("ran=%d, expected 10", ran)
	}
}

func TestQueue_IsolatesFailures(t *testing.T) {
	t.Parallel()

	q := New(1, 8)
	var ok bool
	q.Submit("boom", func(context.Context) error { return errors.New("boom") })
	q.Submit("after", func(context.Context) error { ok = true; return nil })
	q.Close()

	if !ok {
		t.Fatal("job after a failing one did not run")
	}
}

func TestQueue_DropsWhenFull(t *testing.T) {
	t.Parallel()

	q := New(1, 1)
	block := make(chan struct{})

	// First job occupies the single worker, second fills the buffer.
	q.Submit("hold", func(context.Context) error { <-block; return nil })
	q.Submit("buffered", func(context.Context) error { return nil })

	dropped := false
	for i := 0; i < 20; i++ {
		if !q.Submit("extra", func(context.Context) error { return nil }) {
			dropped = true
			break
		}
	}
	close(block)
	q.Close()

	if !dropped {
		t.Fatal("queue never reported a drop under sustained overflow")
	}
}
