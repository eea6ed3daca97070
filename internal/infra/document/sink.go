package document

import "sync"

// Sink receives the finished document. Save is the only required outcome of a render.
type Sink interface {
	Save(fileName string, data []byte) error
}

// MemorySink keeps the saved document in memory so a handler can stream it as a download.
type MemorySink struct {
	mu       sync.Mutex
	fileName string
	data     []byte
	saves    int
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Save(fileName string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fileName = fileName
	m.data = data
	m.saves++
	return nil
}

func (m *MemorySink) Document() (string, []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fileName, m.data
}

func (m *MemorySink) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
