package collection

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPort is a map-backed Port that can be told to fail writes.
type memPort struct {
	mu       sync.Mutex
	records  map[string][]byte
	writes   int
	failNext error
}

func newMemPort() *memPort { return &memPort{records: map[string][]byte{}} }

func (p *memPort) Read(_ context.Context, key string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, ok := p.records[key]
	if !ok {
		return nil, ErrNoRecord
	}
	return append([]byte(nil), data...), nil
}

func (p *memPort) Write(_ context.Context, key string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext != nil {
		err := p.failNext
		p.failNext = nil
		return err
	}
	p.writes++
	p.records[key] = append([]byte(nil), data...)
	return nil
}

func (p *memPort) raw(key string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return string(p.records[key])
}

func TestLoadCleansRecord(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   []int
	}{
		{name: "missing", stored: "", want: []int{}},
		{name: "empty", stored: `{"ids":[]}`, want: []int{}},
		{name: "ordered", stored: `{"ids":[4,1,9]}`, want: []int{4, 1, 9}},
		{name: "duplicates", stored: `{"ids":[4,4,1,4]}`, want: []int{4, 1}},
		{name: "non-positive", stored: `{"ids":[0,-2,3]}`, want: []int{3}},
		{name: "null ids", stored: `{"ids":null}`, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := newMemPort()
			if tt.stored != "" {
				port.records["k"] = []byte(tt.stored)
			}
			got, err := load(context.Background(), port, "k")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	port := newMemPort()
	port.records["k"] = []byte("not json")
	_, err := load(context.Background(), port, "k")
	assert.ErrorContains(t, err, "decode k")
}

func TestLoadReadError(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := load(context.Background(), failingReader{err: boom}, "k")
	assert.ErrorIs(t, err, boom)
}

type failingReader struct{ err error }

func (f failingReader) Read(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingReader) Write(context.Context, string, []byte) error  { return nil }
