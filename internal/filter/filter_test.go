package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultExclude(t *testing.T) {
	set, err := Compile("", DefaultExclude)
	require.NoError(t, err)

	entries := []string{"vendor/lib.php", "src/app.php", "logo.png", "README.md"}

	require.Equal(t, []string{"src/app.php", "README.md"}, set.Apply(entries))
}

func TestDefaultExcludeCoverage(t *testing.T) {
	set, err := Compile("", DefaultExclude)
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		excluded bool
	}{
		{name: "vendor root dir", path: "vendor/autoload.php", excluded: true},
		{name: "vendor bare", path: "vendor", excluded: true},
		{name: "vendor-like name survives", path: "vendors/file.go", excluded: false},
		{name: "nested vendor survives", path: "src/vendor/file.go", excluded: false},
		{name: "gitignore", path: ".gitignore", excluded: true},
		{name: "nested gitignore", path: "docs/.gitignore", excluded: true},
		{name: "license md", path: "LICENSE.md", excluded: true},
		{name: "plain license survives", path: "LICENSE", excluded: false},
		{name: "mo file", path: "locale/de.mo", excluded: true},
		{name: "composer manifest", path: "composer.json", excluded: true},
		{name: "package manifest", path: "package-lock.json", excluded: true},
		{name: "htaccess", path: ".htaccess", excluded: true},
		{name: "favicon", path: "favicon.ico", excluded: true},
		{name: "jpeg image", path: "assets/photo.jpeg", excluded: true},
		{name: "case sensitive extension", path: "assets/photo.PNG", excluded: false},
		{name: "extension not at end", path: "notes/png.txt", excluded: false},
		{name: "video", path: "media/intro.mp4", excluded: true},
		{name: "source file", path: "cmd/main.go", excluded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := set.Apply([]string{tt.path})

			if tt.excluded {
				require.Empty(t, got)
			} else {
				require.Equal(t, []string{tt.path}, got)
			}
		})
	}
}

func TestExcludeThenInclude(t *testing.T) {
	set, err := Compile(`\.go$`, `_test\.go$`)
	require.NoError(t, err)

	entries := []string{"main.go", "main_test.go", "README.md", "cmd/run.go"}

	require.Equal(t, []string{"main.go", "cmd/run.go"}, set.Apply(entries))
}

func TestZeroSurvivorsIsNotAnError(t *testing.T) {
	set, err := Compile(`\.rs$`, "")
	require.NoError(t, err)

	got := set.Apply([]string{"main.go", "lib.py"})
	require.Empty(t, got)
}

func TestOrderIsStable(t *testing.T) {
	set, err := Compile("", `\.md$`)
	require.NoError(t, err)

	entries := []string{"z.go", "a.go", "m.md", "b.go"}

	require.Equal(t, []string{"z.go", "a.go", "b.go"}, set.Apply(entries))
}

func TestSearchSemantics(t *testing.T) {
	// unanchored patterns match anywhere in the path
	set, err := Compile("", "internal")
	require.NoError(t, err)

	got := set.Apply([]string{"internal/core/run.go", "pkg/internals.go", "main.go"})
	require.Equal(t, []string{"main.go"}, got)
}

func TestInvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		include string
		exclude string
	}{
		{name: "bad exclude", exclude: "[unclosed"},
		{name: "bad include", include: "(?P<broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.include, tt.exclude)
			require.Error(t, err)

			var invalid *InvalidPatternError

			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestEmptyPatternsPassEverything(t *testing.T) {
	set, err := Compile("", "")
	require.NoError(t, err)

	entries := []string{"a", "b", "c"}

	require.Equal(t, entries, set.Apply(entries))
}
