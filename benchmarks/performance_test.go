// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-ring components.

package benchmarks

import (
	"context"
	"testing"

	"github.com/momentics/hioload-ring/concurrency"
	"github.com/momentics/hioload-ring/ring"
)

// BenchmarkBufferPutGet measures the single-goroutine hot path of the
// unsynchronized circular buffer.
func BenchmarkBufferPutGet(b *testing.B) {
	buf, err := ring.New[int](1024, ring.WithPageSize(1024))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buf.Put(i); err != nil {
			b.Fatal(err)
		}
		if _, err := buf.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBufferWraparound keeps the buffer nearly full so both cursors
// wrap constantly.
func BenchmarkBufferWraparound(b *testing.B) {
	buf, err := ring.New[int](64, ring.WithPageSize(64))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 60; i++ {
		if err := buf.Put(i); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buf.Get(); err != nil {
			b.Fatal(err)
		}
		if err := buf.Put(i); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBufferTryVariants measures the boolean fast path.
func BenchmarkBufferTryVariants(b *testing.B) {
	buf, err := ring.New[int](1024, ring.WithPageSize(1024))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !buf.TryPut(i) {
			b.Fatal("TryPut failed")
		}
		if _, ok := buf.TryGet(); !ok {
			b.Fatal("TryGet failed")
		}
	}
}

// BenchmarkSPSCThroughput pushes items through the lock-free ring with one
// producer and one consumer goroutine.
func BenchmarkSPSCThroughput(b *testing.B) {
	r := concurrency.NewSPSC[int](1024)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < b.N; i++ {
			if _, err := r.GetContext(ctx); err != nil {
				b.Error(err)
				return
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.PutContext(ctx, i); err != nil {
			b.Fatal(err)
		}
	}
	<-done
}

// BenchmarkBlockingHandoff measures the channel-backed buffer under
// parallel producers and consumers.
func BenchmarkBlockingHandoff(b *testing.B) {
	buf := concurrency.NewBlocking[int](1024)
	ctx := context.Background()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if !buf.TryPut(i) {
				buf.TryGet()
				_ = buf.Put(ctx, i)
			}
			i++
		}
	})
}
