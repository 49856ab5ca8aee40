package bbqueue

import "io"

// Stream wraps a Queue's Producer and Consumer behind the familiar
// io.Reader/io.Writer contract, for callers that want byte-copying,
// all-or-nothing semantics instead of driving the grant/commit/read/
// release protocol directly.
//
// Like Producer and Consumer, a Stream's Write method must only be
// called from the producer goroutine and its Read method only from the
// consumer goroutine — Stream does not add any synchronization beyond
// what Queue already provides.
type Stream struct {
	prod *Producer
	cons *Consumer

	// pending holds the outstanding zero-copy read grant between Peek
	// and Consume, if any.
	pending *ReadGrant
}

// NewStream takes ownership of buf and returns a ready-to-use Stream. It
// is equivalent to splitting a Queue and keeping both halves together
// for single-caller, copy-based use.
func NewStream(buf []byte) *Stream {
	q := New(buf)
	prod, cons := q.Split()
	return &Stream{prod: prod, cons: cons}
}

// Write implements io.Writer. Unlike a classical ring buffer, Write here
// does not fall back to a partial or wrapped write: it either commits
// all of data as one contiguous grant or writes nothing and returns
// ErrInsufficientSize.
func (s *Stream) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	g, err := s.prod.Grant(len(data))
	if err != nil {
		return 0, err
	}
	copy(g.Bytes(), data)
	s.prod.Commit(len(data), g)
	return len(data), nil
}

// Read implements io.Reader. It reads as many bytes as are currently
// available, up to len(p), copying them out of the queue's backing
// buffer and releasing the grant before returning. If no bytes are
// available it returns (0, ErrInsufficientSize), analogous to io.EOF for
// a stream that may still produce more data later.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	g, err := s.cons.Read()
	if err != nil {
		return 0, err
	}
	n := copy(p, g.Bytes())
	s.cons.Release(n, g)
	return n, nil
}

// AvailableWrite reports how many bytes a Write of exactly that size would
// currently succeed in committing contiguously. See Producer.Available.
func (s *Stream) AvailableWrite() int {
	return s.prod.Available()
}

// AvailableRead reports how many bytes a Read would currently be able to
// return in one contiguous grant. See Consumer.Available.
func (s *Stream) AvailableRead() int {
	return s.cons.Available()
}

// Peek returns the currently readable contiguous region without copying
// it or consuming it. Call Consume with the number of bytes actually
// processed to release them. Peek fails with ErrGrantInProgress if a
// previous Peek was never Consumed, mirroring Consumer.Read.
func (s *Stream) Peek() ([]byte, error) {
	g, err := s.cons.Read()
	if err != nil {
		return nil, err
	}
	s.pending = g
	return g.Bytes(), nil
}

// Consume releases n bytes of the region returned by the most recent
// Peek. Calling Consume without an outstanding Peek panics.
func (s *Stream) Consume(n int) {
	if s.pending == nil {
		panic("bbqueue: Consume without a preceding Peek")
	}
	g := s.pending
	s.pending = nil
	s.cons.Release(n, g)
}

var (
	_ io.Reader = (*Stream)(nil)
	_ io.Writer = (*Stream)(nil)
)
