package corpus

import "fmt"

// Buffer is a materialized corpus read by absolute index.
type Buffer struct {
	data   []byte
	start  uint64
	cursor uint64
}

func NewBuffer(data []byte, start uint64) *Buffer {
	return &Buffer{data: data, start: start, cursor: start}
}

func (b *Buffer) Advance(distance uint64) (byte, error) {
	idx := b.cursor + distance
	if idx < b.cursor || idx >= uint64(len(b.data)) {
		return 0, fmt.Errorf("%w: index %d, corpus size %d", ErrOutOfRange, idx, len(b.data))
	}
	b.cursor = idx
	return b.data[idx], nil
}

func (b *Buffer) Rewind() error {
	b.cursor = b.start
	return nil
}

func (b *Buffer) Position() uint64 {
	return b.cursor
}

func (b *Buffer) Len() int {
	return len(b.data)
}

// MappedFile is a read-only corpus file held in memory.
type MappedFile struct {
	*Buffer
	release func() error
}

// OpenMapped maps the corpus at path read-only. Close releases it.
func OpenMapped(path string, start uint64) (*MappedFile, error) {
	data, release, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read the corpus file %s: %w", path, err)
	}
	return &MappedFile{Buffer: NewBuffer(data, start), release: release}, nil
}

func (m *MappedFile) Close() error {
	if m.release == nil {
		return nil
	}
	err := m.release()
	m.release = nil
	return err
}
