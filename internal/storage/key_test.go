package storage

import "testing"

func TestObjectKey(t *testing.T) {
	testCases := []struct {
		prefix, name, want string
	}{
		{"", "out.zip", "out.zip"},
		{"builds", "out.zip", "builds/out.zip"},
		{"builds/", "out.zip", "builds/out.zip"},
		{"/web/nightly/", "game.zip", "web/nightly/game.zip"},
	}

	for _, tc := range testCases {
		if got := ObjectKey(tc.prefix, tc.name); got != tc.want {
			t.Errorf("ObjectKey(%q, %q) = %q, want %q", tc.prefix, tc.name, got, tc.want)
		}
	}
}
