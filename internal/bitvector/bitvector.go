package bitvector

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidArgument is returned when a vector is created with a non-positive capacity.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned when a position outside [0, capacity) is addressed.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// BitVector is a byte-packed bit array with a fixed capacity.
// It is not safe for concurrent mutation.
type BitVector struct {
	data     []byte
	capacity int
}

// New creates a BitVector addressing capacity positions, every bit set to initial.
func New(capacity int, initial bool) (*BitVector, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}

	data := make([]byte, cells(capacity))
	if initial {
		for i := range data {
			data[i] = 0xFF
		}
	}

	return &BitVector{
		data:     data,
		capacity: capacity,
	}, nil
}

// Len returns the number of addressable positions.
func (b *BitVector) Len() int {
	return b.capacity
}

// Get returns the bit at index.
func (b *BitVector) Get(index int) (bool, error) {
	if err := b.check(index); err != nil {
		return false, err
	}
	cell, pos := locate(index)
	return (b.data[cell]>>pos)&1 == 1, nil
}

// Set replaces the bit at index with value. Other bits of the same byte are untouched.
func (b *BitVector) Set(index int, value bool) error {
	if err := b.check(index); err != nil {
		return err
	}
	cell, pos := locate(index)

	var v byte
	if value {
		v = 1
	}
	b.data[cell] = b.data[cell]&^(1<<pos) | v<<pos
	return nil
}

// Count returns the number of positions that are on.
func (b *BitVector) Count() int {
	n := 0
	full := b.capacity / 8
	for _, c := range b.data[:full] {
		n += bits.OnesCount8(c)
	}
	if rem := b.capacity % 8; rem != 0 {
		n += bits.OnesCount8(b.data[full] & (1<<rem - 1))
	}
	return n
}

func (b *BitVector) check(index int) error {
	if index < 0 || index >= b.capacity {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, b.capacity)
	}
	return nil
}

// cells returns ceil(capacity/8) for capacity > 0 without overflowing near MaxInt.
func cells(capacity int) int {
	return (capacity-1)/8 + 1
}

func locate(index int) (cell int, pos uint) {
	return index / 8, uint(index % 8)
}
