package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Stylesheet sources shared by the loader tests.
const (
	simpleSource    = "#main { width: 100px; }"
	multilineSource = "$color: red;\n#main {\n  color: $color;\n}"
)

var (
	_ Loader = (*FromString)(nil)
	_ Loader = (*FromDisk)(nil)
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
