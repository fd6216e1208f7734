// Package menu produces the full-screen menu overlay image.
package menu

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"
)

// cardScale is the ratio between the display and the composed help card;
// basicfont glyphs are 7x13 and unreadable at native full-screen size.
const cardScale = 4

// Entry is one line of the help card
type Entry struct {
	Key    string
	Action string
}

// Load decodes the image at path and scales it to exactly width x height
func Load(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open menu image")
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode menu image %s", path)
	}

	return Scale(src, width, height, xdraw.CatmullRom), nil
}

// Scale resamples src to width x height
func Scale(src image.Image, width, height int, scaler xdraw.Scaler) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// HelpCard composes a menu listing the key bindings, sized to the display
func HelpCard(width, height int, title string, entries []Entry, bg, fg color.Color) *image.RGBA {
	cw, ch := width/cardScale, height/cardScale
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	card := image.NewRGBA(image.Rect(0, 0, cw, ch))
	xdraw.Draw(card, card.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 2
	d := &font.Drawer{
		Dst:  card,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	y := lineHeight * 2
	drawCentered(d, cw, y, title)
	y += lineHeight * 2

	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Action < sorted[j].Action })
	for _, e := range sorted {
		drawCentered(d, cw, y, e.Action+"  ["+e.Key+"]")
		y += lineHeight
	}

	return Scale(card, width, height, xdraw.NearestNeighbor)
}

func drawCentered(d *font.Drawer, width, y int, text string) {
	w := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(width) - w) / 2,
		Y: fixed.I(y),
	}
	d.DrawString(text)
}
