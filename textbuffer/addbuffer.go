package textbuffer

// addBufferCapacity bounds how many bytes accumulate in one add-buffer
// slab before a fresh one is registered. Existing rope leaves keep
// referencing the old slab's mem-id; only new writes move to the new one.
const addBufferCapacity = 4096

type addBuffer struct {
	id  uint8
	len int
}

// ensureAddBuffer returns the current add-buffer's mem-id and its length
// before the coming write, registering a fresh slab first if none exists
// yet or the current one doesn't have room for need more bytes.
func (b *Buffer) ensureAddBuffer(need int) (id uint8, offset int, err error) {
	if b.addBuf != nil && b.addBuf.len+need <= addBufferCapacity {
		return b.addBuf.id, b.addBuf.len, nil
	}
	capacity := addBufferCapacity
	if need > capacity {
		capacity = need
	}
	slab := make([]byte, 0, capacity)
	newID, err := b.mem.Register(slab, true)
	if err != nil {
		return 0, 0, err
	}
	b.addBuf = &addBuffer{id: newID, len: 0}
	return newID, 0, nil
}

// appendToAddBuffer copies data onto the end of the current add-buffer
// slab (switching to a new one first if it wouldn't fit), and returns the
// mem-id and the byte range data now occupies within it.
func (b *Buffer) appendToAddBuffer(data []byte) (id uint8, start, end int, err error) {
	id, start, err = b.ensureAddBuffer(len(data))
	if err != nil {
		return 0, 0, 0, err
	}
	cur, err := b.mem.Get(id)
	if err != nil {
		return 0, 0, 0, err
	}
	grown := append(cur, data...)
	if err := b.mem.Replace(id, grown); err != nil {
		return 0, 0, 0, err
	}
	b.addBuf.len = len(grown)
	return id, start, len(grown), nil
}
