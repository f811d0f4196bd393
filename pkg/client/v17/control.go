package v17

import (
	"context"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// GetMemoryInfoStats is the result of getmemoryinfo in "stats" mode.
type GetMemoryInfoStats struct {
	Locked LockedMemory `json:"locked"`
}

// LockedMemory is the locked pool usage in bytes.
type LockedMemory struct {
	Used       int64 `json:"used"`
	Free       int64 `json:"free"`
	Total      int64 `json:"total"`
	Locked     int64 `json:"locked"`
	ChunksUsed int64 `json:"chunks_used"`
	ChunksFree int64 `json:"chunks_free"`
}

// Logging maps each logging category to whether it is enabled.
type Logging map[string]bool

// Stop asks the daemon to shut down and returns its farewell message.
func (c *Client) Stop(ctx context.Context) (string, error) {
	return client.Do[string](ctx, c.Base, "stop")
}

// Uptime is the daemon uptime in seconds.
func (c *Client) Uptime(ctx context.Context) (int64, error) {
	return client.Do[int64](ctx, c.Base, "uptime")
}

// GetMemoryInfoStats returns the locked memory pool statistics.
func (c *Client) GetMemoryInfoStats(ctx context.Context) (GetMemoryInfoStats, error) {
	return client.Do[GetMemoryInfoStats](ctx, c.Base, "getmemoryinfo", "stats")
}

// Logging returns every debug category and whether it is enabled.
func (c *Client) Logging(ctx context.Context) (Logging, error) {
	return client.Do[Logging](ctx, c.Base, "logging")
}

// SetLogging enables the include categories and disables the exclude ones.
func (c *Client) SetLogging(ctx context.Context, include, exclude []string) (Logging, error) {
	if include == nil {
		include = []string{}
	}
	if exclude == nil {
		exclude = []string{}
	}
	return client.Do[Logging](ctx, c.Base, "logging", include, exclude)
}
