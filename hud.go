package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/marblemaze/ecs/system"
	"github.com/milk9111/marblemaze/prefabs"
)

// HUD shows the score in the top-right corner and the end of level choices
// in a centred panel. It implements system.Presenter.
type HUD struct {
	ui      *ebitenui.UI
	face    ebtext.Face
	score   *widget.Text
	modal   *widget.Container
	title   *widget.Text
	buttons *widget.Container

	buttonImage     *widget.ButtonImage
	buttonTextColor *widget.ButtonTextColor
}

var _ system.Presenter = (*HUD)(nil)

func NewHUD(spec prefabs.MazeSpec) *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	textColor := spec.HUD.TextColor.RGBA
	panelImg := imageui.NewNineSliceColor(spec.HUD.PanelColor.RGBA)
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff})
	pad := spec.HUD.Padding

	h := &HUD{
		face:            face,
		buttonImage:     &widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg},
		buttonTextColor: &widget.ButtonTextColor{Idle: textColor},
	}

	h.score = widget.NewText(
		widget.TextOpts.Text(scoreLabel(0), &h.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	scorePanel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(pad)),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionEnd,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	scorePanel.AddChild(h.score)

	h.title = widget.NewText(
		widget.TextOpts.Text("", &h.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.buttons = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(pad/2),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.modal = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(pad),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 2 * pad, Bottom: 2 * pad, Left: 3 * pad, Right: 3 * pad}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(spec.Scene.Width)/3, int(spec.Scene.Height)/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	h.modal.AddChild(h.title)
	h.modal.AddChild(h.buttons)
	h.modal.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(pad)),
		)),
	)
	root.AddChild(scorePanel)
	root.AddChild(h.modal)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) ShowScore(score int) {
	h.score.Label = scoreLabel(score)
}

// ShowChoices replaces the panel's buttons and shows it. Picking a choice
// hides the panel before running the choice.
func (h *HUD) ShowChoices(title string, choices []system.Choice) {
	h.title.Label = title
	h.buttons.RemoveChildren()
	for _, choice := range choices {
		h.buttons.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(h.buttonImage),
			widget.ButtonOpts.Text(choice.Label, &h.face, h.buttonTextColor),
			widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(8)),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			})),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				h.Hide()
				if choice.OnSelect != nil {
					choice.OnSelect()
				}
			}),
		))
	}
	h.modal.GetWidget().Visibility = widget.Visibility_Show
}

func (h *HUD) Hide() {
	h.modal.GetWidget().Visibility = widget.Visibility_Hide
}

// Open reports whether the choices panel is showing.
func (h *HUD) Open() bool {
	return h.modal.GetWidget().Visibility == widget.Visibility_Show
}

func (h *HUD) UI() *ebitenui.UI { return h.ui }

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
