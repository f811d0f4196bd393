package client

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a supported Bitcoin Core major version. The values are ordered.
type Version int

const (
	V17 Version = 17 + iota
	V18
	V19
	V20
	V21
	V22
	V23
	V24
	V25
	V26
	V27
	V28
	V29
	V30
)

const (
	Oldest = V17
	Latest = V30
)

type release struct {
	name     string
	expected []int
}

// Releases pinned per major version. expected holds every getnetworkinfo.version this client
// accepts from a daemon.
var releases = map[Version]release{
	V17: {name: "0.17.2", expected: []int{170000, 170100, 170200}},
	V18: {name: "0.18.1", expected: []int{180000, 180100}},
	V19: {name: "0.19.1", expected: []int{190000, 190100}},
	V20: {name: "0.20.2", expected: []int{200000, 200100, 200200}},
	V21: {name: "0.21.2", expected: []int{210000, 210100, 210200}},
	V22: {name: "22.1", expected: []int{220000, 220100}},
	V23: {name: "23.2", expected: []int{230000, 230100, 230200}},
	V24: {name: "24.2", expected: []int{240000, 240100, 240200}},
	V25: {name: "25.2", expected: []int{250000, 250100, 250200}},
	V26: {name: "26.2", expected: []int{260000, 260100, 260200}},
	V27: {name: "27.2", expected: []int{270000, 270100, 270200}},
	V28: {name: "28.1", expected: []int{280000, 280100, 280200}},
	V29: {name: "29.0", expected: []int{290000, 290100}},
	V30: {name: "30.0", expected: []int{300000}},
}

// Versions lists every supported version, oldest first.
func Versions() []Version {
	out := make([]Version, 0, Latest-Oldest+1)
	for v := Oldest; v <= Latest; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is a supported version.
func (v Version) Valid() bool {
	return v >= Oldest && v <= Latest
}

func (v Version) String() string {
	return "v" + strconv.Itoa(int(v))
}

// Release is the point release downloaded and tested for v, e.g. "0.17.2" or "28.1".
func (v Version) Release() string {
	return releases[v].name
}

// ExpectedServerVersions are the getnetworkinfo.version values a v daemon may report.
func (v Version) ExpectedServerVersions() []int {
	return append([]int(nil), releases[v].expected...)
}

// Accepts reports whether a daemon reporting serverVersion belongs to v.
func (v Version) Accepts(serverVersion int) bool {
	for _, e := range releases[v].expected {
		if e == serverVersion {
			return true
		}
	}
	return false
}

// AtLeast reports whether v is other or newer.
func (v Version) AtLeast(other Version) bool {
	return v >= other
}

// ParseVersion accepts "v28", "28", "28.1", "0.17" and "0.17.2".
func ParseVersion(s string) (Version, error) {
	in := strings.TrimPrefix(strings.TrimSpace(s), "v")
	in = strings.TrimPrefix(in, "0.")
	major, _, _ := strings.Cut(in, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
	v := Version(n)
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
	return v, nil
}

// VersionFromServer maps a getnetworkinfo.version number such as 280100 to its major version.
func VersionFromServer(serverVersion int) (Version, error) {
	v := Version(serverVersion / 10000)
	if !v.Valid() {
		return 0, fmt.Errorf("%w: server version %d", ErrUnknownVersion, serverVersion)
	}
	return v, nil
}

func (v Version) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText accepts the forms ParseVersion does.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// SetValue lets cleanenv read a Version from the environment.
func (v *Version) SetValue(s string) error {
	return v.UnmarshalText([]byte(s))
}
