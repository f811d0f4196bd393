package download

import (
	"archive/tar"
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/rust-bitcoin/corepc/pkg/client"
	"github.com/rust-bitcoin/corepc/pkg/log"
)

// DefaultEndpoint serves the official release archives.
const DefaultEndpoint = "https://bitcoincore.org"

// Downloader fetches and caches bitcoind binaries. The zero value is not usable; use New.
type Downloader struct {
	endpoint string
	cacheDir string
	http     *http.Client
	lg       log.Logger

	// One in-flight download per cache entry.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithHTTPClient replaces the default client, which has no overall timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Downloader) { d.http = c }
}

func WithLogger(lg log.Logger) Option {
	return func(d *Downloader) { d.lg = lg }
}

// New returns a Downloader fetching from endpoint into cacheDir. An empty endpoint means
// DefaultEndpoint and an empty cacheDir means the user cache directory.
func New(endpoint, cacheDir string, opts ...Option) (*Downloader, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.Wrap(err, "locate user cache dir")
		}
		cacheDir = filepath.Join(base, "corepc-node")
	}
	d := &Downloader{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		cacheDir: cacheDir,
		http:     &http.Client{Timeout: 10 * time.Minute},
		lg:       log.NewNoopLogger(),
		locks:    make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// CacheDir is the root directory of the cache.
func (d *Downloader) CacheDir() string {
	return d.cacheDir
}

func (d *Downloader) entryDir(v client.Version, p Platform) string {
	return filepath.Join(d.cacheDir, v.Release()+"-"+string(p))
}

func (d *Downloader) entryLock(dir string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.locks[dir]
	if !ok {
		l = &sync.Mutex{}
		d.locks[dir] = l
	}
	return l
}

// Cached returns the cached binary for v on p. It fails with ErrCacheMiss when there is no
// entry and with ErrChecksumMismatch when the binary no longer matches its manifest.
func (d *Downloader) Cached(v client.Version, p Platform) (string, error) {
	dir := d.entryDir(v, p)
	m, err := readManifest(dir)
	if errors.Is(err, os.ErrNotExist) {
		return "", errors.Wrapf(ErrCacheMiss, "%s %s", v, p)
	}
	if err != nil {
		return "", err
	}

	bin := filepath.Join(dir, m.Binary)
	sum, err := fileSHA256(bin)
	if errors.Is(err, os.ErrNotExist) {
		return "", errors.Wrapf(ErrCacheMiss, "%s listed in manifest but missing", bin)
	}
	if err != nil {
		return "", err
	}
	if sum != m.BinarySHA256 {
		return "", errors.Wrapf(ErrChecksumMismatch, "cached %s: manifest %s, file %s", bin, m.BinarySHA256, sum)
	}
	return bin, nil
}

// Download returns a verified bitcoind for v on p, fetching it when the cache has none.
func (d *Downloader) Download(ctx context.Context, v client.Version, p Platform) (string, error) {
	dir := d.entryDir(v, p)
	lock := d.entryLock(dir)
	lock.Lock()
	defer lock.Unlock()

	if bin, err := d.Cached(v, p); err == nil {
		return bin, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		d.lg.Warn("discarding cache entry", "dir", dir, "error", err)
	}

	archive, err := ArchiveName(v, p)
	if err != nil {
		return "", err
	}
	base := d.endpoint + "/" + ReleaseDir(v) + "/"

	lg := d.lg.WithKV("version", v.String()).WithKV("archive", archive)
	lg.Info("downloading bitcoind", "url", base+archive)
	started := time.Now()

	sums, err := d.fetchSums(ctx, base+SumsName(v))
	if err != nil {
		return "", err
	}
	want, ok := sums[archive]
	if !ok {
		return "", errors.Wrapf(ErrNoChecksum, "%s in %s", archive, SumsName(v))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create cache dir")
	}
	tmp, err := os.CreateTemp(dir, archive+".*.part")
	if err != nil {
		return "", errors.Wrap(err, "create archive file")
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	got, err := d.fetchTo(ctx, base+archive, tmp)
	if err != nil {
		return "", err
	}
	if got != want {
		return "", errors.Wrapf(ErrChecksumMismatch, "%s: expected %s, got %s", archive, want, got)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "rewind archive")
	}
	binName := "bitcoind"
	bin := filepath.Join(dir, binName)
	binSum, err := extractBitcoind(tmp, bin)
	if err != nil {
		return "", errors.Wrapf(err, "extract %s", archive)
	}

	m := Manifest{
		Version:       v.String(),
		Release:       v.Release(),
		Platform:      p,
		Archive:       archive,
		ArchiveSHA256: got,
		Binary:        binName,
		BinarySHA256:  binSum,
		DownloadedAt:  time.Now().UTC(),
	}
	if err := writeManifest(dir, m); err != nil {
		return "", err
	}
	lg.Info("bitcoind cached", "path", bin, "elapsed", time.Since(started))
	return bin, nil
}

func (d *Downloader) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Wrapf(ErrHTTP, "get %s: %s", url, resp.Status)
	}
	return resp, nil
}

func (d *Downloader) fetchSums(ctx context.Context, url string) (map[string]string, error) {
	resp, err := d.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	sums, err := ParseSums(resp.Body)
	return sums, errors.Wrapf(err, "read %s", url)
}

func (d *Downloader) fetchTo(ctx context.Context, url string, w io.Writer) (string, error) {
	resp, err := d.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(w, h), resp.Body); err != nil {
		return "", errors.Wrapf(err, "read %s", url)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ParseSums reads "<sha256>  <file>" lines. Other lines, such as a PGP envelope, are skipped.
func ParseSums(r io.Reader) (map[string]string, error) {
	sums := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 || len(fields[0]) != sha256.Size*2 {
			continue
		}
		if _, err := hex.DecodeString(fields[0]); err != nil {
			continue
		}
		sums[strings.TrimPrefix(fields[1], "*")] = strings.ToLower(fields[0])
	}
	return sums, sc.Err()
}

// extractBitcoind copies bitcoin-<release>/bin/bitcoind out of a .tar.gz into dst.
func extractBitcoind(archive io.Reader, dst string) (string, error) {
	gz, err := gzip.NewReader(archive)
	if err != nil {
		return "", errors.Wrap(err, "open gzip")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return "", ErrNotInArchive
		}
		if err != nil {
			return "", errors.Wrap(err, "read tar")
		}
		if hdr.Typeflag != tar.TypeReg || path.Base(hdr.Name) != "bitcoind" || path.Base(path.Dir(hdr.Name)) != "bin" {
			continue
		}
		return writeExecutable(tr, dst)
	}
}

func writeExecutable(r io.Reader, dst string) (string, error) {
	tmp := dst + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o755)
	if err != nil {
		return "", errors.Wrap(err, "create binary")
	}
	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(f, h), r); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", errors.Wrap(err, "write binary")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", errors.Wrap(err, "close binary")
	}
	if err := os.Rename(tmp, dst); err != nil {
		return "", errors.Wrap(err, "install binary")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func fileSHA256(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "hash %s", name)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
