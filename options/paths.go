package options

import (
	"fmt"
	"strings"
)

// PathSeparator joins include paths in the form libsass expects.
const PathSeparator = ':'

// JoinIncludePaths joins paths with PathSeparator, preserving order. An
// empty slice joins to the empty string.
func JoinIncludePaths(paths []string) string {
	return strings.Join(paths, string(PathSeparator))
}

// SplitIncludePaths splits a joined include path string. A segment is only
// emitted when at least one character was seen since the previous
// separator, so leading, trailing and doubled separators never produce
// empty entries: ":/a" yields ["/a"].
func SplitIncludePaths(joined string) []string {
	paths := []string{}
	start := 0
	for i := 0; i <= len(joined); i++ {
		if i < len(joined) && joined[i] != PathSeparator {
			continue
		}
		if i > start {
			paths = append(paths, joined[start:i])
		}
		start = i + 1
	}
	return paths
}

// joinIncludePathsValue accepts either a pre-joined string or a sequence of
// strings and returns the joined form.
func joinIncludePathsValue(v any) (string, error) {
	switch paths := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: include_paths must not be nil", ErrType)
	case string:
		return paths, nil
	case []string:
		return JoinIncludePaths(paths), nil
	case []any:
		strs := make([]string, 0, len(paths))
		for i, item := range paths {
			s, ok := item.(string)
			if !ok {
				return "", fmt.Errorf(
					"%w: include_paths must consist of only strings, but #%d is not a string (%T)",
					ErrType, i, item)
			}
			strs = append(strs, s)
		}
		return JoinIncludePaths(strs), nil
	default:
		return "", fmt.Errorf(
			"%w: include_paths must be a string or a sequence of strings, got %T", ErrType, v)
	}
}
