package util

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const defaultBufSize = 1 << 14

var ErrInvalidUTF8 = errors.New("invalid utf-8")

// BufReader is a big-endian cursor over a seekable source. It keeps its own
// absolute position so that callers never need to query the source.
type BufReader struct {
	reader io.ReadSeeker
	buf    *bufio.Reader
	pos    int64
	size   int64
}

func NewBufReaderWithBufLen(reader io.ReadSeeker, bufLen int) (r *BufReader, err error) {
	r = &BufReader{reader: reader}
	if r.pos, err = reader.Seek(0, io.SeekCurrent); err != nil {
		return nil, err
	}
	if r.size, err = reader.Seek(0, io.SeekEnd); err != nil {
		return nil, err
	}
	if _, err = reader.Seek(r.pos, io.SeekStart); err != nil {
		return nil, err
	}
	r.buf = bufio.NewReaderSize(reader, bufLen)
	return
}

func NewBufReader(reader io.ReadSeeker) (*BufReader, error) {
	return NewBufReaderWithBufLen(reader, defaultBufSize)
}

// Pos returns the absolute offset of the next byte to be read.
func (r *BufReader) Pos() int64 {
	return r.pos
}

// Size returns the total length of the underlying source.
func (r *BufReader) Size() int64 {
	return r.size
}

func (r *BufReader) Remaining() int64 {
	return r.size - r.pos
}

func (r *BufReader) IsEmpty() (bool, error) {
	if _, err := r.buf.Peek(1); err != nil {
		if err == io.EOF {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (r *BufReader) ReadNto(n int, to []byte) (err error) {
	var nn int
	nn, err = io.ReadFull(r.buf, to[:n])
	r.pos += int64(nn)
	return
}

func (r *BufReader) ReadByte() (b byte, err error) {
	if b, err = r.buf.ReadByte(); err == nil {
		r.pos++
	} else if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return
}

func (r *BufReader) ReadBE16() (num uint16, err error) {
	var b [2]byte
	if err = r.ReadNto(2, b[:]); err == nil {
		num = binary.BigEndian.Uint16(b[:])
	}
	return
}

func (r *BufReader) ReadBE32() (num uint32, err error) {
	var b [4]byte
	if err = r.ReadNto(4, b[:]); err == nil {
		num = binary.BigEndian.Uint32(b[:])
	}
	return
}

func (r *BufReader) ReadBE64() (num uint64, err error) {
	var b [8]byte
	if err = r.ReadNto(8, b[:]); err == nil {
		num = binary.BigEndian.Uint64(b[:])
	}
	return
}

func (r *BufReader) ReadI8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (r *BufReader) ReadI16() (int16, error) {
	num, err := r.ReadBE16()
	return int16(num), err
}

func (r *BufReader) ReadI32() (int32, error) {
	num, err := r.ReadBE32()
	return int32(num), err
}

func (r *BufReader) ReadI64() (int64, error) {
	num, err := r.ReadBE64()
	return int64(num), err
}

func (r *BufReader) ReadBytes(n int) (buf []byte, err error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read %d", n)
	}
	buf = make([]byte, n)
	err = r.ReadNto(n, buf)
	return
}

// ReadString reads n bytes and requires them to be valid UTF-8.
func (r *BufReader) ReadString(n int) (s string, err error) {
	var buf []byte
	if buf, err = r.ReadBytes(n); err != nil {
		return
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: % x", ErrInvalidUTF8, buf)
	}
	return string(buf), nil
}

func (r *BufReader) ReadToEnd() (buf []byte, err error) {
	buf, err = io.ReadAll(r.buf)
	r.pos += int64(len(buf))
	return
}

// Skip advances n bytes. It fails instead of clamping when fewer than n
// bytes remain.
func (r *BufReader) Skip(n int64) (err error) {
	if n < 0 {
		return fmt.Errorf("negative skip %d", n)
	}
	if n > r.Remaining() {
		return io.ErrUnexpectedEOF
	}
	if buffered := int64(r.buf.Buffered()); n <= buffered {
		_, err = r.buf.Discard(int(n))
		r.pos += n
		return
	}
	if _, err = r.reader.Seek(r.pos+n, io.SeekStart); err != nil {
		return
	}
	r.buf.Reset(r.reader)
	r.pos += n
	return
}

func (r *BufReader) SkipToEnd() error {
	return r.Skip(r.Remaining())
}
