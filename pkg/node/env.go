package node

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/rust-bitcoin/corepc/pkg/node/download"
)

// Env is the environment surface of the supervisor.
type Env struct {
	// Exe is an explicit bitcoind path, used when Conf.Executable is empty.
	Exe string `env:"BITCOIND_EXE"`
	// SkipDownload forbids fetching a release when nothing local resolves.
	SkipDownload     bool   `env:"BITCOIND_SKIP_DOWNLOAD"`
	DownloadEndpoint string `env:"BITCOIND_DOWNLOAD_ENDPOINT" env-default:"https://bitcoincore.org"`
	CacheDir         string `env:"BITCOIND_CACHE_DIR"`
	TempDirRoot      string `env:"TEMPDIR_ROOT"`
}

// LoadEnv reads the optional dotenv file, then the process environment.
func LoadEnv(dotenvPath string) (Env, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return Env{}, fmt.Errorf("read node env: %w", err)
	}
	return env, nil
}

// Downloader builds the download collaborator the environment describes.
func (e Env) Downloader(opts ...download.Option) (*download.Downloader, error) {
	return download.New(e.DownloadEndpoint, e.CacheDir, opts...)
}
