// Package download fetches Bitcoin Core release archives, verifies them against the release's
// SHA256SUMS file and caches the extracted bitcoind binary per version and platform.
package download
