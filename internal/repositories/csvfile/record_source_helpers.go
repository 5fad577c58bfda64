package csvfile

import (
	"os/user"
	"path/filepath"
	"strings"
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(path string) string {
	usr, err := user.Current()
	if err != nil {
		return path // Fallback if user/home directory cannot be determined
	}
	homeDir := usr.HomeDir

	if !strings.HasPrefix(path, homeDir) {
		return path // Path is not under home directory
	}

	if path == homeDir {
		return "~"
	}

	relPath, err := filepath.Rel(homeDir, path)
	if err != nil {
		return path // Fallback in case of an unexpected error with Rel
	}
	return filepath.Join("~", relPath)
}
