package app

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/blueprint/internal/builder"
	"github.com/philipparndt/blueprint/internal/shape"
	"github.com/philipparndt/blueprint/pkg/geometry"
)

const (
	lineThickness = 2
	markerRadius  = 3
	textPadding   = 4
)

// raylibRenderer implements render.Renderer on top of raylib. ClearFrame
// opens the raylib drawing pass and Present closes it.
type raylibRenderer struct {
	width         int32
	height        int32
	font          rl.Font
	fontSize      float32
	curveSegments int
	textures      map[image.Image]rl.Texture2D
}

func newRaylibRenderer(width, height int, font rl.Font, fontSize float32, curveSegments int) *raylibRenderer {
	return &raylibRenderer{
		width:         int32(width),
		height:        int32(height),
		font:          font,
		fontSize:      fontSize,
		curveSegments: curveSegments,
		textures:      make(map[image.Image]rl.Texture2D),
	}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func toVector(p geometry.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

func (r *raylibRenderer) ClearFrame(c color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(c))
}

// DrawGridLines draws the interior grid lines; the display edges are
// implied by the window border.
func (r *raylibRenderer) DrawGridLines(cellSize int, c color.RGBA) {
	if cellSize <= 0 {
		return
	}
	col := toColor(c)
	step := int32(cellSize)
	for x := step; x < r.width; x += step {
		rl.DrawLine(x, 0, x, r.height, col)
	}
	for y := step; y < r.height; y += step {
		rl.DrawLine(0, y, r.width, y, col)
	}
}

func (r *raylibRenderer) DrawShape(s shape.Shape, c color.RGBA) {
	col := toColor(c)
	switch sh := s.(type) {
	case shape.Line:
		rl.DrawLineEx(toVector(sh.Start), toVector(sh.End), lineThickness, col)
	case shape.Circle:
		rl.DrawCircleLines(int32(sh.Center.X), int32(sh.Center.Y), float32(sh.Radius), col)
	case shape.Bezier:
		r.drawCurve(sh.ControlPoints(), col)
	}
}

// DrawPreview sketches the pending element as if the cursor were its next
// point.
func (r *raylibRenderer) DrawPreview(p builder.Pending, cursor geometry.Point, c color.RGBA) {
	anchor, ok := p.Anchor()
	if !ok {
		return
	}
	col := toColor(c)

	switch p.Kind {
	case shape.KindLine:
		rl.DrawLineEx(toVector(anchor), toVector(cursor), lineThickness, col)
	case shape.KindCircle:
		rl.DrawCircleLines(int32(anchor.X), int32(anchor.Y), float32(geometry.Distance(anchor, cursor)), col)
	case shape.KindBezier:
		ctrl := append(append([]geometry.Point(nil), p.Points...), cursor)
		for i := 1; i < len(ctrl); i++ {
			rl.DrawLineV(toVector(ctrl[i-1]), toVector(ctrl[i]), rl.Fade(col, 0.35))
		}
		for _, pt := range p.Points {
			rl.DrawCircle(int32(pt.X), int32(pt.Y), markerRadius, col)
		}
		r.drawCurve(ctrl, col)
	}
}

func (r *raylibRenderer) drawCurve(ctrl []geometry.Point, col rl.Color) {
	samples := geometry.FlattenBezier(ctrl, r.curveSegments)
	for i := 1; i < len(samples); i++ {
		a := rl.Vector2{X: float32(samples[i-1].X), Y: float32(samples[i-1].Y)}
		b := rl.Vector2{X: float32(samples[i].X), Y: float32(samples[i].Y)}
		rl.DrawLineEx(a, b, lineThickness, col)
	}
}

// DrawText draws text with its top-left corner at pos. A fully transparent
// background skips the backing box.
func (r *raylibRenderer) DrawText(text string, pos geometry.Point, fg, bg color.RGBA) {
	if text == "" {
		return
	}
	at := toVector(pos)
	if bg.A > 0 {
		size := rl.MeasureTextEx(r.font, text, r.fontSize, 1)
		rl.DrawRectangle(int32(at.X), int32(at.Y), int32(size.X)+textPadding, int32(size.Y), toColor(bg))
	}
	rl.DrawTextEx(r.font, text, at, r.fontSize, 1, toColor(fg))
}

// DrawImage blits img, uploading it as a texture the first time it is seen
func (r *raylibRenderer) DrawImage(img image.Image, pos geometry.Point) {
	tex, ok := r.textures[img]
	if !ok {
		cpu := rl.NewImageFromImage(img)
		tex = rl.LoadTextureFromImage(cpu)
		rl.UnloadImage(cpu)
		r.textures[img] = tex
	}
	rl.DrawTexture(tex, int32(pos.X), int32(pos.Y), rl.White)
}

func (r *raylibRenderer) Present() {
	rl.EndDrawing()
}

// Forget releases the texture uploaded for img
func (r *raylibRenderer) Forget(img image.Image) {
	if tex, ok := r.textures[img]; ok {
		rl.UnloadTexture(tex)
		delete(r.textures, img)
	}
}

// Close releases every uploaded texture
func (r *raylibRenderer) Close() {
	for img := range r.textures {
		r.Forget(img)
	}
}
