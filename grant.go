package bbqueue

// WriteGrant is a writable, contiguous slice of the queue's backing
// buffer, borrowed until the holder calls Producer.Commit. It is
// constructible only by Producer.Grant / Producer.GrantMax and is
// single-use: committing it marks it consumed, so a second Commit of the
// same grant panics rather than silently corrupting the queue.
type WriteGrant struct {
	buf      []byte
	queue    *Queue
	consumed bool
}

// Bytes returns the writable slice backing this grant. The slice is
// valid only until Commit is called with this grant.
func (g *WriteGrant) Bytes() []byte {
	return g.buf
}

// ReadGrant is an immutable, contiguous slice of committed bytes,
// borrowed until the holder calls Consumer.Release. It is constructible
// only by Consumer.Read and is single-use in the same sense as
// WriteGrant.
type ReadGrant struct {
	buf      []byte
	queue    *Queue
	consumed bool
}

// Bytes returns the readable slice backing this grant. Treat it as
// read-only: the producer may begin overwriting this memory once Release
// has been called with this grant, and writing through the returned
// slice yourself would race with the producer even before that.
func (g *ReadGrant) Bytes() []byte {
	return g.buf
}
