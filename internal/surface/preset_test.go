package surface

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storm.yaml")

	p := Defaults()
	p.WavesElevation = 0.6
	p.SmallWavesIterations = 2
	p.SurfaceColor = MustParseHex("#ffffff")
	require.NoError(t, p.SavePreset(path, 3))

	got, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, float32(0.6), got.WavesElevation)
	assert.Equal(t, int32(2), got.SmallWavesIterations)
	assert.Equal(t, Color{1, 1, 1}, got.SurfaceColor)
}

func TestLoadPresetBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth_color: \"#12\"\n"), 0o644))

	_, err := LoadPreset(path)
	assert.ErrorContains(t, err, "depth color")
}

func TestLoadPresetMissing(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
