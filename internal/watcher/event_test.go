package watcher

import (
	"reflect"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func Test_translate(t *testing.T) {
	isRoot := func(path string) bool {
		return path == "/apps"
	}

	tests := []struct {
		name   string
		source fsnotify.Event
		want   []Notification
	}{
		{
			name:   "Create",
			source: fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Create},
			want: []Notification{
				{Kind: FileChanged, Path: "/apps/a.desktop"},
				{Kind: DirChanged, Path: "/apps"},
			},
		},
		{
			name:   "Write",
			source: fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Write},
			want: []Notification{
				{Kind: FileChanged, Path: "/apps/a.desktop"},
			},
		},
		{
			name:   "Remove",
			source: fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Remove},
			want: []Notification{
				{Kind: FileChanged, Path: "/apps/a.desktop"},
			},
		},
		{
			name:   "Rename",
			source: fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Rename},
			want: []Notification{
				{Kind: FileChanged, Path: "/apps/a.desktop"},
			},
		},
		{
			name:   "Rename target",
			source: fsnotify.Event{Name: "/apps/b.desktop", Op: fsnotify.Create},
			want: []Notification{
				{Kind: FileChanged, Path: "/apps/b.desktop"},
				{Kind: DirChanged, Path: "/apps"},
			},
		},
		{
			name:   "Chmod only",
			source: fsnotify.Event{Name: "/apps/a.desktop", Op: fsnotify.Chmod},
			want:   nil,
		},
		{
			name:   "Outside of roots",
			source: fsnotify.Event{Name: "/other/a.desktop", Op: fsnotify.Create},
			want:   nil,
		},
		{
			name:   "Empty name",
			source: fsnotify.Event{Name: "", Op: fsnotify.Create},
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translate(tt.source, isRoot); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
