package spanfeed

// chunk is one fixed-size byte block in the stream's pool. writeOffset is
// how much of data has been written so far; pendingStart is where the
// currently-uncommitted span (if any) began. A chunk whose writeOffset
// equals its capacity and whose owning Stream.stateBuffer entry has
// dropped back to zero is free for reuse: the next producer that needs a
// chunk resets writeOffset (and pendingStart) to 0 and writes over it.
type chunk struct {
	data         []byte
	writeOffset  int
	pendingStart int
}

func newChunk(size int) *chunk {
	return &chunk{data: make([]byte, size)}
}

func (c *chunk) capacity() int { return len(c.data) }
func (c *chunk) room() int     { return len(c.data) - c.writeOffset }
func (c *chunk) full() bool    { return c.writeOffset >= len(c.data) }

func (c *chunk) reset() {
	c.writeOffset = 0
	c.pendingStart = 0
}
