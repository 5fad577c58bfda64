package csvfile

import (
	"os/user"
	"path/filepath"
	"testing"
)

func TestToUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil {
		t.Fatalf("Failed to get current user: %v", err)
	}
	homeDir := currentUser.HomeDir

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "path under home directory",
			path: filepath.Join(homeDir, "exports", "input_data.csv"),
			want: filepath.Join("~", "exports", "input_data.csv"),
		},
		{
			name: "home directory itself",
			path: homeDir,
			want: "~",
		},
		{
			name: "path outside home directory",
			path: "/var/exports/input_data.csv",
			want: "/var/exports/input_data.csv",
		},
		{
			name: "relative path is returned unchanged",
			path: "input_data.csv",
			want: "input_data.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toUserFriendlyPath(tt.path); got != tt.want {
				t.Errorf("toUserFriendlyPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
