// Package bbqueue provides a lock-free single-producer/single-consumer
// bipartite byte queue ("bip-buffer").
//
// Unlike a classical ring buffer, which hands back wrapped data as two
// separate slices, a bip-buffer always hands back a single contiguous
// slice: producers get a writable region to fill in place, and consumers
// get a readable region to parse in place. Internally it does this by
// letting the write cursor "invert" — wrap back to offset 0 — while an
// end-marker (last) tracks the true upper bound of the not-yet-wrapped
// tail until the reader drains it.
//
// # Thread Safety
//
// The queue is only safe for single-producer/single-consumer use. After
// Split, the Producer half must only be driven from the producer
// goroutine and the Consumer half only from the consumer goroutine;
// cross-party synchronization is carried entirely by the atomics inside
// Queue. Calling Producer methods from two goroutines concurrently (or
// Consumer methods from two goroutines concurrently) is a data race.
//
// # Basic usage
//
//	q := bbqueue.New(make([]byte, 1024))
//	prod, cons := q.Split()
//
//	// Producer side
//	g, err := prod.Grant(5)
//	if err == nil {
//	    copy(g.Bytes(), []byte("hello"))
//	    prod.Commit(5, g)
//	}
//
//	// Consumer side
//	r, err := cons.Read()
//	if err == nil {
//	    process(r.Bytes())
//	    cons.Release(len(r.Bytes()), r)
//	}
//
// # Zero-copy and io.Reader/io.Writer usage
//
// Stream wraps a Queue's Producer and Consumer behind the familiar
// io.Reader/io.Writer contract, plus a zero-copy Peek/Consume pair for
// code that wants direct access to the contiguous readable region without
// copying it first.
package bbqueue
