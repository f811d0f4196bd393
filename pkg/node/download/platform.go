package download

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

// Platform is the target triple part of a release archive name.
type Platform string

const (
	LinuxAMD64  Platform = "x86_64-linux-gnu"
	LinuxARM64  Platform = "aarch64-linux-gnu"
	DarwinAMD64 Platform = "x86_64-apple-darwin"
	DarwinARM64 Platform = "arm64-apple-darwin"
)

// CurrentPlatform maps the running GOOS/GOARCH to a release platform.
func CurrentPlatform() (Platform, error) {
	return PlatformFor(runtime.GOOS, runtime.GOARCH)
}

// PlatformFor maps a GOOS/GOARCH pair to a release platform.
func PlatformFor(goos, goarch string) (Platform, error) {
	switch goos + "/" + goarch {
	case "linux/amd64":
		return LinuxAMD64, nil
	case "linux/arm64":
		return LinuxARM64, nil
	case "darwin/amd64":
		return DarwinAMD64, nil
	case "darwin/arm64":
		return DarwinARM64, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedPlatform, "%s/%s", goos, goarch)
	}
}

// ArchiveName is the file name of the release archive for v on p, e.g.
// "bitcoin-28.1-x86_64-linux-gnu.tar.gz". Up to v21 macOS builds were named osx64, and native
// arm64 macOS builds start at v23.
func ArchiveName(v client.Version, p Platform) (string, error) {
	if !v.Valid() {
		return "", errors.Wrapf(client.ErrUnknownVersion, "%d", int(v))
	}
	suffix := string(p)
	switch p {
	case LinuxAMD64, LinuxARM64:
	case DarwinAMD64:
		if v <= client.V21 {
			suffix = "osx64"
		}
	case DarwinARM64:
		if v < client.V23 {
			return "", errors.Wrapf(ErrUnsupportedPlatform, "%s has no %s build", v, p)
		}
	default:
		return "", errors.Wrapf(ErrUnsupportedPlatform, "%q", p)
	}
	return fmt.Sprintf("bitcoin-%s-%s.tar.gz", v.Release(), suffix), nil
}

// SumsName is the checksum file published next to the archives. Releases before v22 shipped
// it clearsigned.
func SumsName(v client.Version) string {
	if v <= client.V21 {
		return "SHA256SUMS.asc"
	}
	return "SHA256SUMS"
}

// ReleaseDir is the directory on the endpoint holding the archives of v.
func ReleaseDir(v client.Version) string {
	return "bin/bitcoin-core-" + v.Release()
}
