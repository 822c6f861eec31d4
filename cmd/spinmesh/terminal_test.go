package main

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/spinmesh/pkg/frame"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   uv.Event
		want frame.Event
		ok   bool
	}{
		{"resize", uv.WindowSizeEvent{Width: 80, Height: 24}, frame.Event{Kind: frame.Resize, Width: 80, Height: 24}, true},
		{"ctrl+c", uv.KeyPressEvent{Code: 'c', Mod: uv.ModCtrl}, frame.Event{Kind: frame.Close}, true},
		{"escape", uv.KeyPressEvent{Code: uv.KeyEscape}, frame.Event{Kind: frame.KeyDown, Key: frame.KeyQuit}, true},
		{"q", uv.KeyPressEvent{Code: 'q', Text: "q"}, frame.Event{Kind: frame.KeyDown, Key: frame.KeyQuit}, true},
		{"up arrow", uv.KeyPressEvent{Code: uv.KeyUp}, frame.Event{Kind: frame.KeyDown, Key: frame.KeyCloser}, true},
		{"w", uv.KeyPressEvent{Code: 'w', Text: "w"}, frame.Event{Kind: frame.KeyDown, Key: frame.KeyCloser}, true},
		{"k", uv.KeyPressEvent{Code: 'k', Text: "k"}, frame.Event{Kind: frame.KeyDown, Key: frame.KeyCloser}, true},
		{"down arrow", uv.KeyPressEvent{Code: uv.KeyDown}, frame.Event{Kind: frame.KeyDown, Key: frame.KeyFarther}, true},
		{"j", uv.KeyPressEvent{Code: 'j', Text: "j"}, frame.Event{Kind: frame.KeyDown, Key: frame.KeyFarther}, true},
		{"release w", uv.KeyReleaseEvent{Code: 'w', Text: "w"}, frame.Event{Kind: frame.KeyUp, Key: frame.KeyCloser}, true},
		{"release s", uv.KeyReleaseEvent{Code: 's', Text: "s"}, frame.Event{Kind: frame.KeyUp, Key: frame.KeyFarther}, true},
		{"unbound key", uv.KeyPressEvent{Code: 'x', Text: "x"}, frame.Event{}, false},
		{"ctrl+c release", uv.KeyReleaseEvent{Code: 'c', Mod: uv.ModCtrl}, frame.Event{}, false},
		{"focus", uv.FocusEvent{}, frame.Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := translate(tc.ev)
			if ok != tc.ok {
				t.Fatalf("translate ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("translate = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name string
		want frame.Key
		ok   bool
	}{
		{"escape", frame.KeyQuit, true},
		{"q", frame.KeyQuit, true},
		{"up", frame.KeyCloser, true},
		{"w", frame.KeyCloser, true},
		{"k", frame.KeyCloser, true},
		{"down", frame.KeyFarther, true},
		{"s", frame.KeyFarther, true},
		{"j", frame.KeyFarther, true},
		{"space", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			match := func(names ...string) bool {
				for _, n := range names {
					if n == tc.name {
						return true
					}
				}
				return false
			}
			got, ok := keyFor(match)
			if ok != tc.ok || got != tc.want {
				t.Errorf("keyFor(%q) = %v, %v; want %v, %v", tc.name, got, ok, tc.want, tc.ok)
			}
		})
	}
}
