package assets

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/tiltmaze/common"
	log "github.com/sirupsen/logrus"
)

const cell = 64

var (
	wallColor     = color.RGBA{R: 0x6b, G: 0x4f, B: 0x3a, A: 0xff}
	wallEdge      = color.RGBA{R: 0x3e, G: 0x2c, B: 0x20, A: 0xff}
	starColor     = color.RGBA{R: 0xff, G: 0xd7, B: 0x3a, A: 0xff}
	vortexColor   = color.RGBA{R: 0x9b, G: 0x4d, B: 0xe0, A: 0xff}
	finishColor   = color.RGBA{R: 0x3a, G: 0xd6, B: 0x6b, A: 0xff}
	teleportColor = color.RGBA{R: 0x3a, G: 0xb8, B: 0xff, A: 0xff}
	playerColor   = color.RGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff}
	gridColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10}
	missingColor  = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
)

var painters = map[string]func() *ebiten.Image{
	"block":      drawBlock,
	"star":       drawStar,
	"vortex":     drawVortex,
	"finish":     drawFinish,
	"teleport":   drawTeleport,
	"player":     drawPlayer,
	"background": drawBackground,
}

var (
	mu    sync.Mutex
	cache = map[string]*ebiten.Image{}
)

// Image returns the sprite registered under name, drawing it on first use.
// Unknown names get a placeholder square.
func Image(name string) *ebiten.Image {
	mu.Lock()
	defer mu.Unlock()

	if img, ok := cache[name]; ok {
		return img
	}
	paint, ok := painters[name]
	if !ok {
		log.WithField("sprite", name).Warn("unknown sprite, using placeholder")
		paint = drawMissing
	}
	img := paint()
	cache[name] = img
	return img
}

// Names lists every sprite the package can draw.
func Names() []string {
	out := make([]string, 0, len(painters))
	for name := range painters {
		out = append(out, name)
	}
	return out
}

func drawBlock() *ebiten.Image {
	img := ebiten.NewImage(cell, cell)
	vector.FillRect(img, 0, 0, cell, cell, wallColor, false)
	vector.StrokeRect(img, 1, 1, cell-2, cell-2, 2, wallEdge, false)
	vector.StrokeLine(img, 0, cell/2, cell, cell/2, 1, wallEdge, false)
	vector.StrokeLine(img, cell/2, 0, cell/2, cell/2, 1, wallEdge, false)
	return img
}

func drawStar() *ebiten.Image {
	img := ebiten.NewImage(cell, cell)
	cx, cy := float32(cell/2), float32(cell/2)
	outer, inner := float64(28), float64(11)

	var pts [10][2]float32
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		pts[i] = [2]float32{cx + float32(r*math.Cos(a)), cy + float32(r*math.Sin(a))}
	}
	for i := range pts {
		next := pts[(i+1)%len(pts)]
		vector.StrokeLine(img, pts[i][0], pts[i][1], next[0], next[1], 3, starColor, true)
		vector.StrokeLine(img, cx, cy, pts[i][0], pts[i][1], 3, starColor, true)
	}
	vector.FillCircle(img, cx, cy, float32(inner), starColor, true)
	return img
}

func drawVortex() *ebiten.Image {
	img := ebiten.NewImage(cell, cell)
	cx, cy := float32(cell/2), float32(cell/2)
	vector.FillCircle(img, cx, cy, 28, color.RGBA{R: 0x2a, G: 0x12, B: 0x40, A: 0xff}, true)
	// three spiral arms
	for arm := 0; arm < 3; arm++ {
		base := float64(arm) * 2 * math.Pi / 3
		var px, py float32 = cx, cy
		for step := 1; step <= 24; step++ {
			t := float64(step) / 24
			a := base + t*2.5*math.Pi
			r := 28 * t
			x := cx + float32(r*math.Cos(a))
			y := cy + float32(r*math.Sin(a))
			vector.StrokeLine(img, px, py, x, y, 3, vortexColor, true)
			px, py = x, y
		}
	}
	return img
}

func drawFinish() *ebiten.Image {
	img := ebiten.NewImage(cell, cell)
	cx, cy := float32(cell/2), float32(cell/2)
	vector.FillCircle(img, cx, cy, 28, finishColor, true)
	vector.StrokeCircle(img, cx, cy, 20, 3, color.White, true)
	vector.FillCircle(img, cx, cy, 8, color.White, true)
	return img
}

func drawTeleport() *ebiten.Image {
	img := ebiten.NewImage(cell, cell)
	cx, cy := float32(cell/2), float32(cell/2)
	for i, r := range []float32{28, 20, 12} {
		c := teleportColor
		c.A = uint8(0xff - i*0x40)
		vector.StrokeCircle(img, cx, cy, r, 3, c, true)
	}
	vector.FillCircle(img, cx, cy, 5, teleportColor, true)
	return img
}

func drawPlayer() *ebiten.Image {
	img := ebiten.NewImage(48, 48)
	vector.FillCircle(img, 24, 24, 24, playerColor, true)
	vector.FillCircle(img, 17, 17, 6, color.White, true)
	return img
}

// drawBackground is a faint cell grid drawn over the tuning background
// color.
func drawBackground() *ebiten.Image {
	img := ebiten.NewImage(common.ScreenWidth, common.ScreenHeight)
	for x := 0; x <= common.ScreenWidth; x += cell {
		vector.StrokeLine(img, float32(x), 0, float32(x), common.ScreenHeight, 1, gridColor, false)
	}
	for y := 0; y <= common.ScreenHeight; y += cell {
		vector.StrokeLine(img, 0, float32(y), common.ScreenWidth, float32(y), 1, gridColor, false)
	}
	return img
}

func drawMissing() *ebiten.Image {
	img := ebiten.NewImage(cell, cell)
	img.Fill(missingColor)
	return img
}
