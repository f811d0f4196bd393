package node

import (
	"bufio"
	"fmt"
	"go/build/constraint"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rust-bitcoin/corepc/pkg/client"
)

func clientFileConstraints(t *testing.T) map[client.Version]constraint.Expr {
	t.Helper()

	exprs := make(map[client.Version]constraint.Expr)
	for _, v := range client.Versions() {
		f, err := os.Open(fmt.Sprintf("client_%s.go", v))
		require.NoError(t, err)
		line, err := bufio.NewReader(f).ReadString('\n')
		f.Close()
		require.NoError(t, err)

		expr, err := constraint.Parse(strings.TrimSpace(line))
		require.NoError(t, err, "client_%s.go", v)
		exprs[v] = expr
	}
	return exprs
}

// selected returns the versions whose client file builds under tags.
func selected(exprs map[client.Version]constraint.Expr, tags map[string]bool) []client.Version {
	var out []client.Version
	for _, v := range client.Versions() {
		if exprs[v].Eval(func(tag string) bool { return tags[tag] }) {
			out = append(out, v)
		}
	}
	return out
}

func TestClientBuildTags(t *testing.T) {
	exprs := clientFileConstraints(t)

	tcs := []struct {
		tags []string
		want client.Version
	}{
		{tags: nil, want: client.V30},
		{tags: []string{"corepc_v30"}, want: client.V30},
		{tags: []string{"corepc_v17"}, want: client.V17},
		{tags: []string{"corepc_v17", "corepc_v30"}, want: client.V30},
		{tags: []string{"corepc_v29", "corepc_v30"}, want: client.V30},
		{tags: []string{"corepc_v17", "corepc_v29"}, want: client.V29},
		{tags: []string{"corepc_v23", "corepc_v19", "unrelated"}, want: client.V23},
	}
	for _, tc := range tcs {
		tags := make(map[string]bool)
		for _, tag := range tc.tags {
			tags[tag] = true
		}
		assert.Equal(t, []client.Version{tc.want}, selected(exprs, tags), "tags %v", tc.tags)
	}
}

// Every combination of version tags builds exactly one client, the highest requested.
func TestClientBuildTagsExhaustive(t *testing.T) {
	exprs := clientFileConstraints(t)
	versions := client.Versions()

	for mask := 0; mask < 1<<len(versions); mask++ {
		tags := make(map[string]bool)
		want := client.Latest
		for i, v := range versions {
			if mask&(1<<i) != 0 {
				tags["corepc_"+v.String()] = true
				want = v
			}
		}
		got := selected(exprs, tags)
		if !assert.Equal(t, []client.Version{want}, got, "tags %v", tags) {
			return
		}
	}
}
