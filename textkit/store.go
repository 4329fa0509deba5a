package textkit

import "fmt"

const (
	initialCapacity = 16
	growthSlack     = 32
)

// Store is an append-only byte buffer with a predictable growth policy:
// capacity grows by half, or to the required size plus a little slack when
// half is not enough. The zero value is an empty Store ready to use.
type Store struct {
	buf  []byte // len(buf) is the capacity
	n    int    // logical length
	line int    // offset just past the last '\n' written
}

// NewStore returns an empty Store with the default initial capacity.
func NewStore() *Store {
	return &Store{buf: make([]byte, initialCapacity)}
}

// grow makes room for extra more bytes.
func (s *Store) grow(extra int) {
	need := s.n + extra
	if need <= len(s.buf) {
		return
	}
	c := len(s.buf) + len(s.buf)/2
	if need > c {
		c = need + growthSlack
	}
	buf := make([]byte, c)
	copy(buf, s.buf[:s.n])
	s.buf = buf
}

// AppendByte appends c.
func (s *Store) AppendByte(c byte) {
	s.grow(1)
	s.buf[s.n] = c
	s.n++
	if c == '\n' {
		s.line = s.n
	}
}

// Append appends str.
func (s *Store) Append(str string) {
	s.grow(len(str))
	copy(s.buf[s.n:], str)
	s.track(s.n, len(str))
	s.n += len(str)
}

// AppendStore appends the written region of o. o may be s itself.
func (s *Store) AppendStore(o *Store) {
	m := o.n
	s.grow(m)
	copy(s.buf[s.n:], o.buf[:m])
	s.track(s.n, m)
	s.n += m
}

// track moves the line mark past the last newline in buf[from:from+m].
func (s *Store) track(from, m int) {
	for i := from + m - 1; i >= from; i-- {
		if s.buf[i] == '\n' {
			s.line = i + 1
			return
		}
	}
}

// Write implements io.Writer. It never fails.
func (s *Store) Write(p []byte) (int, error) {
	s.grow(len(p))
	copy(s.buf[s.n:], p)
	s.track(s.n, len(p))
	s.n += len(p)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (s *Store) WriteString(str string) (int, error) {
	s.Append(str)
	return len(str), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (s *Store) WriteByte(c byte) error {
	s.AppendByte(c)
	return nil
}

// Len returns the number of bytes written.
func (s *Store) Len() int { return s.n }

// Cap returns the current capacity.
func (s *Store) Cap() int { return len(s.buf) }

// At returns the byte at offset i. It panics with a range Fault if i is
// outside [0, Len()).
func (s *Store) At(i int) byte {
	if i < 0 || i >= s.n {
		panic(s.fault(KindRange, i, "offset %d outside [0, %d)", i, s.n))
	}
	return s.buf[i]
}

// String returns a copy of the written region.
func (s *Store) String() string {
	return string(s.buf[:s.n])
}

// Bytes returns a copy of the written region.
func (s *Store) Bytes() []byte {
	out := make([]byte, s.n)
	copy(out, s.buf[:s.n])
	return out
}

// Truncate discards everything from offset n on.
func (s *Store) Truncate(n int) {
	if n < 0 || n > s.n {
		panic(s.fault(KindRange, n, "truncate to %d outside [0, %d]", n, s.n))
	}
	s.n = n
	if s.line > n {
		s.line = 0
		s.track(0, n)
	}
}

// Reset empties the store, keeping its capacity.
func (s *Store) Reset() {
	s.n = 0
	s.line = 0
}

// LastIndexByte returns the offset of the last c, or -1.
func (s *Store) LastIndexByte(c byte) int {
	for i := s.n - 1; i >= 0; i-- {
		if s.buf[i] == c {
			return i
		}
	}
	return -1
}

// Count returns how many times c occurs in the written region.
func (s *Store) Count(c byte) int {
	count := 0
	for _, b := range s.buf[:s.n] {
		if b == c {
			count++
		}
	}
	return count
}

// lineLen returns the number of bytes written since the last newline.
func (s *Store) lineLen() int { return s.n - s.line }

func (s *Store) fault(kind Kind, offset int, format string, args ...interface{}) *Fault {
	return &Fault{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Text:    s.String(),
		Offset:  offset,
	}
}
