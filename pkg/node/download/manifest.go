package download

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const manifestFile = "manifest.yaml"

// Manifest records what a cache entry holds. BinarySHA256 is re-checked before a cached
// binary is trusted.
type Manifest struct {
	Version       string    `yaml:"version"`
	Release       string    `yaml:"release"`
	Platform      Platform  `yaml:"platform"`
	Archive       string    `yaml:"archive"`
	ArchiveSHA256 string    `yaml:"archive_sha256"`
	Binary        string    `yaml:"binary"`
	BinarySHA256  string    `yaml:"binary_sha256"`
	DownloadedAt  time.Time `yaml:"downloaded_at"`
}

func readManifest(dir string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, errors.Wrap(err, "decode manifest")
	}
	return m, nil
}

func writeManifest(dir string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "encode manifest")
	}
	tmp := filepath.Join(dir, manifestFile+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write manifest")
	}
	return errors.Wrap(os.Rename(tmp, filepath.Join(dir, manifestFile)), "install manifest")
}
