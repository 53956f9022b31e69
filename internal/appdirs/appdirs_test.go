package appdirs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestApplicationDirs(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		override []string
		want     []string
	}{
		{
			name:     "Override keeps order",
			override: []string{"/usr/share/applications", "/usr/local/share/applications"},
			want:     []string{"/usr/share/applications", "/usr/local/share/applications"},
		},
		{
			name:     "Duplicates and trailing slashes",
			override: []string{"/usr/share/applications/", "/usr/share/applications", ""},
			want:     []string{"/usr/share/applications"},
		},
		{
			name:     "Relative path",
			override: []string{"apps"},
			want:     []string{filepath.Join(wd, "apps")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplicationDirs(tt.override); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApplicationDirs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplicationDirsDefault(t *testing.T) {
	got := ApplicationDirs(nil)
	if len(got) == 0 {
		t.Fatal("ApplicationDirs() returned no directories")
	}
	for _, dir := range got {
		if !filepath.IsAbs(dir) {
			t.Errorf("ApplicationDirs() returned relative path %q", dir)
		}
	}
}
