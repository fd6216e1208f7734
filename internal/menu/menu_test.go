package menu

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScalesToDisplay(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		for y := 0; y < 4; y++ {
			src.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "menu.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := Load(path, 64, 48)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	px := img.RGBAAt(32, 24)
	assert.InDelta(t, 200, int(px.R), 2)
	assert.InDelta(t, 255, int(px.A), 2)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), 10, 10)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = Load(path, 10, 10)
	assert.Error(t, err)
}

func TestHelpCard(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	entries := []Entry{{Key: "m", Action: "menu"}, {Key: "escape", Action: "quit"}}

	img := HelpCard(1920, 1080, "BLUEPRINT", entries, white, black)
	require.Equal(t, image.Rect(0, 0, 1920, 1080), img.Bounds())
	assert.Equal(t, white, img.RGBAAt(0, 0))

	var inked bool
	for y := 0; y < 1080 && !inked; y += 2 {
		for x := 0; x < 1920; x += 2 {
			if img.RGBAAt(x, y) != white {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "help card should contain text")
}

func TestHelpCardTinyDisplay(t *testing.T) {
	img := HelpCard(2, 2, "x", nil, color.White, color.Black)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
}
