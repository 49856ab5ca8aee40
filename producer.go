package bbqueue

// Producer is the write-side handle of a split Queue. Its methods must
// only be called from a single goroutine (the producer); it is not safe
// to share a Producer across goroutines.
type Producer struct {
	q *Queue

	// noCopy makes `go vet` flag accidental copies of Producer by value,
	// the way sync.WaitGroup does: the copy would alias the same Queue
	// but silently duplicate which goroutine is considered "the" producer.
	noCopy noCopy
}

// Grant requests a writable, contiguous region of exactly sz bytes. sz
// must be greater than zero; a zero-size grant is rejected as
// ErrInsufficientSize rather than handing back a meaningless empty token.
//
// Grant fails with ErrGrantInProgress if a previous grant from this
// Producer was never committed, and with ErrInsufficientSize if no
// contiguous region of sz bytes is currently available — including when
// the grant would leave write == read while inverted, a state that could
// not be told apart from an empty queue.
func (p *Producer) Grant(sz int) (*WriteGrant, error) {
	if sz <= 0 {
		return nil, ErrInsufficientSize
	}

	q := p.q
	write := int(q.write.Load())
	if q.reserve != write {
		return nil, ErrGrantInProgress
	}

	read := int(q.read.Load())
	n := len(q.buf)
	alreadyInverted := write < read

	var start int
	switch {
	case alreadyInverted:
		// Must stay strictly inside (write, read): write must never
		// reach read while inverted, or empty and full become
		// indistinguishable.
		if write+sz < read {
			start = write
		} else {
			return nil, ErrInsufficientSize
		}
	case write+sz <= n:
		start = write
	case sz < read:
		// Not inverted, doesn't fit at the tail: invert into the head.
		start = 0
	default:
		return nil, ErrInsufficientSize
	}

	q.reserve = start + sz
	return &WriteGrant{buf: q.buf[start : start+sz : start+sz], queue: q}, nil
}

// GrantMax requests a writable, contiguous region of up to sz bytes. If
// fewer than sz (but more than zero) bytes are available, the grant is
// sized to whatever is available; GrantMax only fails with
// ErrInsufficientSize when zero bytes can be granted.
func (p *Producer) GrantMax(sz int) (*WriteGrant, error) {
	if sz <= 0 {
		return nil, ErrInsufficientSize
	}

	q := p.q
	write := int(q.write.Load())
	if q.reserve != write {
		return nil, ErrGrantInProgress
	}

	read := int(q.read.Load())
	n := len(q.buf)
	alreadyInverted := write < read

	var start int
	switch {
	case alreadyInverted:
		remain := read - write - 1
		if remain <= 0 {
			return nil, ErrInsufficientSize
		}
		sz = min(sz, remain)
		start = write
	case write != n:
		sz = min(sz, n-write)
		start = write
	case read > 1:
		sz = min(sz, read-1)
		start = 0
	default:
		return nil, ErrInsufficientSize
	}

	q.reserve = start + sz
	return &WriteGrant{buf: q.buf[start : start+sz : start+sz], queue: q}, nil
}

// Commit finalizes a grant returned by Grant or GrantMax, making the
// first used bytes of it available to Consumer.Read. used must be no
// greater than len(g.Bytes()); violating that, committing a grant from a
// different queue, or committing an already-committed grant is a
// programmer error and panics rather than returning a recoverable error
// (see spec §7).
func (p *Producer) Commit(used int, g *WriteGrant) {
	if g == nil || g.queue != p.q {
		panic("bbqueue: commit of a grant not issued by this producer's queue")
	}
	if g.consumed {
		panic("bbqueue: commit of an already-committed grant")
	}
	ln := len(g.buf)
	if used < 0 || used > ln {
		panic("bbqueue: commit used exceeds grant size")
	}
	g.consumed = true

	q := p.q
	write := int(q.write.Load())
	q.reserve -= ln - used

	n := len(q.buf)
	if q.reserve < write && write != n {
		// The writer has just started filling from offset 0 while valid
		// data still occupies [write, n): move the end-marker back to
		// the true tail before publishing the new write cursor.
		q.last.Store(uint64(write))
	}

	q.write.Store(uint64(q.reserve))
}

// Available reports the size of the largest contiguous region a call to
// Grant could currently obtain. It is a point-in-time snapshot: by the
// time the caller acts on it, the consumer may have advanced read and
// changed the answer. It does not reserve anything and never fails.
func (p *Producer) Available() int {
	q := p.q
	write := int(q.write.Load())
	if q.reserve != write {
		return 0
	}
	read := int(q.read.Load())
	n := len(q.buf)

	if write < read {
		remain := read - write - 1
		return max(remain, 0)
	}
	// Not inverted: append at the tail, or invert into [0, read-1).
	return max(n-write, read-1, 0)
}
