package bbqueue

// noCopy is embedded in Producer and Consumer so `go vet`'s copylocks
// check flags accidental pass-by-value, the same trick sync.WaitGroup
// and sync.Mutex use. It has no behavior of its own.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
