package sim

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var ErrCorruptData = errors.New("corrupt data")

// Serialize writes data in little endian. data must have a fixed size, which
// is a programming error to get wrong, so Serialize panics if it doesn't.
func Serialize(w io.Writer, data any) {
	if err := binary.Write(w, binary.LittleEndian, data); err != nil {
		panic(err)
	}
}

// SerializeSlice writes the length of the slice followed by its elements.
func SerializeSlice[T any](w io.Writer, s []T) {
	Serialize(w, int64(len(s)))
	Serialize(w, s)
}

// decoder reads values written by Serialize. The first error sticks and
// every read after it is skipped, so a whole structure can be read and the
// error checked once at the end.
type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) read(data any) {
	if d.err != nil {
		return
	}
	if err := binary.Read(d.r, binary.LittleEndian, data); err != nil {
		d.err = fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
}

// Not part of the decoder because methods can't have type parameters.
func readSlice[T any](d *decoder, s *[]T) {
	var n int64
	d.read(&n)
	if d.err != nil {
		return
	}
	// Each element is at least one byte, so a length past what's left is a
	// lie and would only make us allocate a huge slice.
	if buf, ok := d.r.(*bytes.Reader); ok && (n < 0 || n > int64(buf.Len())) {
		d.err = fmt.Errorf("%w: slice of length %d", ErrCorruptData, n)
		return
	}
	if n == 0 {
		*s = nil
		return
	}
	*s = make([]T, n)
	d.read(*s)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w := gzip.NewWriter(buf)
	// Writing to a bytes.Buffer doesn't fail.
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func Unzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	defer func() { _ = r.Close() }()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}
	return out, nil
}
