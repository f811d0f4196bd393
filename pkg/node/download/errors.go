package download

import "github.com/pkg/errors"

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrChecksumMismatch    = errors.New("checksum mismatch")
	ErrNoChecksum          = errors.New("archive not listed in SHA256SUMS")
	ErrNotInArchive        = errors.New("bitcoind not found in archive")
	ErrHTTP                = errors.New("unexpected http status")
	ErrCacheMiss           = errors.New("binary not cached")
)
