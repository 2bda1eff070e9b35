package cli

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/catalyst-forge-libs/gitstatus"
)

func TestRenderStatus_PlainMarkers(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	cfg := defaultConfig()

	assert.Equal(t, "--", renderStatus(cfg, gitstatus.Status{}))
	assert.Equal(t, "-N", renderStatus(cfg, gitstatus.Status{Unstaged: gitstatus.New}))
	assert.Equal(t, "MM", renderStatus(cfg, gitstatus.Status{
		Staged:   gitstatus.Modified,
		Unstaged: gitstatus.Modified,
	}))
}

func TestRenderStatus_MarkerOverrides(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	cfg := defaultConfig()
	cfg.Markers = map[string]string{"new": "+"}

	assert.Equal(t, "-+", renderStatus(cfg, gitstatus.Status{Unstaged: gitstatus.New}))
}

func TestMarker_FallsBackToRune(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "D", marker(cfg, gitstatus.Deleted))
	assert.Equal(t, "I", marker(cfg, gitstatus.Ignored))
}

func TestArgsOrCwd(t *testing.T) {
	assert.Equal(t, []string{"."}, argsOrCwd(nil))
	assert.Equal(t, []string{"a", "b"}, argsOrCwd([]string{"a", "b"}))
}
