package node

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/node/download"
)

// Fetcher is the download collaborator. *download.Downloader implements it.
type Fetcher interface {
	Cached(v client.Version, p download.Platform) (string, error)
	Download(ctx context.Context, v client.Version, p download.Platform) (string, error)
}

// Resolver finds the bitcoind to run, trying in order: the explicit path, the download cache,
// a fresh download, and finally bitcoind on PATH.
type Resolver struct {
	Env     Env
	Fetcher Fetcher
	// Platform defaults to the running one.
	Platform download.Platform
}

// Resolve returns an executable path for v. explicit, when set, wins over Env.Exe.
func (r Resolver) Resolve(ctx context.Context, v client.Version, explicit string) (string, error) {
	if explicit == "" {
		explicit = r.Env.Exe
	}
	if explicit != "" {
		if err := checkExecutable(explicit); err != nil {
			return "", fmt.Errorf("%w: %w", ErrBinaryNotFound, err)
		}
		return explicit, nil
	}

	var errs []error
	platform := r.Platform
	if platform == "" {
		p, err := download.CurrentPlatform()
		if err != nil {
			errs = append(errs, err)
		}
		platform = p
	}

	if r.Fetcher != nil && platform != "" {
		bin, err := r.Fetcher.Cached(v, platform)
		if err == nil {
			return bin, nil
		}
		errs = append(errs, err)

		if !r.Env.SkipDownload {
			bin, err := r.Fetcher.Download(ctx, v, platform)
			if err == nil {
				return bin, nil
			}
			// A corrupt download is never papered over by a PATH lookup.
			if errors.Is(err, download.ErrChecksumMismatch) {
				return "", fmt.Errorf("%w: %w", ErrResolution, err)
			}
			errs = append(errs, err)
		}
	}

	bin, err := exec.LookPath("bitcoind")
	if err == nil {
		return bin, nil
	}
	errs = append(errs, err)
	return "", fmt.Errorf("%w: %s: %w", ErrBinaryNotFound, v, errors.Join(errs...))
}

func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}
