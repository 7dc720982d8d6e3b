package scene

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tiltmaze/maze"
	"golang.org/x/image/font/basicfont"
)

const (
	promptWidth   = 400
	promptHeight  = 200
	buttonWidth   = 200
	buttonHeight  = 50
	promptOpacity = 204
)

// newPromptUI builds the end-of-level panel: the score summary, a hint,
// and a button that calls onStart.
func newPromptUI(p maze.Prompt, onStart func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: promptOpacity})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x2e, G: 0xb8, B: 0x4b, A: 0xff})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x8a, B: 0x38, A: 0xff})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text(p.Title(), &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	message := widget.NewText(
		widget.TextOpts.Text(p.Message(), &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	start := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnImg, Pressed: btnPressed}),
		widget.ButtonOpts.Text(p.Button(), &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(buttonWidth, buttonHeight)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onStart()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(promptWidth, promptHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(message)
	panel.AddChild(start)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// startPressed reports Enter or a gamepad Start press this frame.
func startPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
