package model

import (
	"errors"
	"fmt"
)

var (
	ErrConversion    = errors.New("model conversion failed")
	ErrOutOfRange    = fmt.Errorf("%w: value out of range", ErrConversion)
	ErrInvalidHash   = fmt.Errorf("%w: invalid hash", ErrConversion)
	ErrUnknownChain  = fmt.Errorf("%w: unknown chain", ErrConversion)
	ErrAmount        = fmt.Errorf("%w: invalid amount", ErrConversion)
	ErrInvalidHex    = fmt.Errorf("%w: invalid hex", ErrConversion)
	ErrInvalidStatus = fmt.Errorf("%w: invalid softfork status", ErrConversion)
)

// ToU32 converts a wire integer that must fit in a uint32.
func ToU32(v int64, field string) (uint32, error) {
	if v < 0 || v > int64(^uint32(0)) {
		return 0, fmt.Errorf("%w: %s=%d", ErrOutOfRange, field, v)
	}
	return uint32(v), nil
}

// ToU32Ptr is ToU32 for optional fields.
func ToU32Ptr(v *int64, field string) (*uint32, error) {
	if v == nil {
		return nil, nil
	}
	u, err := ToU32(*v, field)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ToU64 converts a wire integer that must not be negative.
func ToU64(v int64, field string) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %s=%d", ErrOutOfRange, field, v)
	}
	return uint64(v), nil
}
