package axis

import "errors"

// Sentinel errors for axis operations.
var (
	// ErrNegativeSize indicates a size or default size below zero.
	ErrNegativeSize = errors.New("axis: size must be >= 0")
	// ErrIndexOutOfRange indicates an index outside [0, count).
	ErrIndexOutOfRange = errors.New("axis: index out of range")
)

// Model is the cumulative-offset table for one dimension (rows or
// columns) of a grid. The zero value is not usable; construct with New.
type Model struct {
	count       int
	size        []int64
	prefix      []int64 // len count+1; prefix[0] == 0
	defaultSize int64
	eager       bool
	dirtyFrom   int // lowest index whose prefix suffix needs repair; count+1 means clean
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithDefaultSize sets the size assigned to indices that have never had
// SetSize called on them. Default is 0.
func WithDefaultSize(size int64) Option {
	return func(m *Model) {
		m.defaultSize = size
	}
}

// WithEager switches SetSize to immediately repair the prefix suffix in
// O(count-index) instead of deferring repair to the next query.
func WithEager() Option {
	return func(m *Model) {
		m.eager = true
	}
}

// New constructs a Model of count elements, each initialized to the
// configured default size (0 unless WithDefaultSize is given).
func New(count int, opts ...Option) *Model {
	if count < 0 {
		count = 0
	}

	m := &Model{
		count:     count,
		size:      make([]int64, count),
		prefix:    make([]int64, count+1),
		dirtyFrom: count + 1, // clean: nothing dirty
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.defaultSize != 0 {
		for i := range m.size {
			m.size[i] = m.defaultSize
		}
		m.repairFrom(0)
	}

	return m
}
