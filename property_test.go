package bbqueue

import (
	"testing"

	"pgregory.net/rapid"
)

// TestPropertyRoundTrip drives randomized grant/commit/read/release
// sequences (spec §8: "check under randomized sequences") and checks
// that the byte stream round-trips exactly and that the I1–I5 invariants
// never break, using a plain byte-slice FIFO as the reference model.
func TestPropertyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		capacity := rapid.IntRange(1, 64).Draw(t, "capacity")
		q := New(make([]byte, capacity))
		prod, cons := q.Split()

		var model []byte   // bytes committed but not yet released
		var produced []byte // everything ever committed
		var observed []byte // everything ever released

		var openWrite *WriteGrant
		var openWriteLen int
		var openRead *ReadGrant

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			action := rapid.SampledFrom([]string{"grant", "grantMax", "commit", "read", "release"}).Draw(t, "action")

			switch action {
			case "grant":
				if openWrite != nil {
					continue
				}
				sz := rapid.IntRange(1, capacity).Draw(t, "grantSize")
				g, err := prod.Grant(sz)
				if err == nil {
					if len(g.Bytes()) != sz {
						t.Fatalf("contiguity: grant returned %d bytes, asked for exactly %d", len(g.Bytes()), sz)
					}
					for j := range g.Bytes() {
						g.Bytes()[j] = byte(len(produced) + j)
					}
					openWrite = g
					openWriteLen = sz
				}

			case "grantMax":
				if openWrite != nil {
					continue
				}
				sz := rapid.IntRange(1, capacity*2).Draw(t, "grantMaxSize")
				g, err := prod.GrantMax(sz)
				if err == nil {
					n := len(g.Bytes())
					if n < 1 || n > sz {
						t.Fatalf("contiguity: grantMax returned %d bytes, wanted 1..%d", n, sz)
					}
					for j := range g.Bytes() {
						g.Bytes()[j] = byte(len(produced) + j)
					}
					openWrite = g
					openWriteLen = n
				}

			case "commit":
				if openWrite == nil {
					continue
				}
				used := rapid.IntRange(0, openWriteLen).Draw(t, "used")
				committed := append([]byte{}, openWrite.Bytes()[:used]...)
				prod.Commit(used, openWrite)
				produced = append(produced, committed...)
				model = append(model, committed...)
				openWrite = nil

			case "read":
				if openRead != nil {
					continue
				}
				r, err := cons.Read()
				if err == nil {
					openRead = r
				}

			case "release":
				if openRead == nil {
					continue
				}
				used := rapid.IntRange(0, len(openRead.Bytes())).Draw(t, "releaseUsed")
				released := append([]byte{}, openRead.Bytes()[:used]...)
				cons.Release(used, openRead)
				observed = append(observed, released...)
				if len(released) > len(model) || string(released) != string(model[:len(released)]) {
					t.Fatalf("round-trip law violated: released %v, front of model is %v", released, model)
				}
				model = model[len(released):]
				openRead = nil
			}

			checkRapidInvariants(t, q)

			write, read, last := int(q.write.Load()), int(q.read.Load()), int(q.last.Load())
			if (q.reserve != write) != (openWrite != nil) {
				t.Fatalf("I4 violated: reserve=%d write=%d with open grant %v", q.reserve, write, openWrite != nil)
			}
			unread := write - read
			if write < read {
				unread = (last - read) + write
			}
			if unread != len(model) {
				t.Fatalf("I5 violated: cursors hold %d unread bytes, model holds %d", unread, len(model))
			}
		}

		if string(observed) != string(produced[:len(observed)]) {
			t.Fatalf("final round-trip mismatch: observed %v is not a prefix match of produced %v", observed, produced)
		}
	})
}

func checkRapidInvariants(t *rapid.T, q *Queue) {
	write := int(q.write.Load())
	read := int(q.read.Load())
	last := int(q.last.Load())
	n := len(q.buf)

	if !(read >= 0 && read <= last && last <= n) {
		t.Fatalf("I1 violated: read=%d last=%d n=%d", read, last, n)
	}
	if !(write >= 0 && write <= n) {
		t.Fatalf("I1 violated: write=%d n=%d", write, n)
	}
	if write >= read && last != n {
		t.Fatalf("I2 violated: linear but last=%d != n=%d", last, n)
	}
	if write < read && write == read {
		t.Fatalf("I3 violated: inverted with write==read")
	}
	if q.reserve < write {
		t.Fatalf("I4 violated: reserve=%d < write=%d", q.reserve, write)
	}
}
