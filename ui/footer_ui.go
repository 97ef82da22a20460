package ui

import (
	"bytes"

	cfg "github.com/automoto/skeeter/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FooterUI is the hint strip under the canvas.
type FooterUI struct {
	UI    *ebitenui.UI
	Label *widget.Text

	// stored as interface for ebitenui compatibility
	face text.Face
}

// NewFooterUI builds the footer with the configured hint text.
func NewFooterUI() (*FooterUI, error) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}

	f := &FooterUI{
		face: &text.GoTextFace{
			Source: fontSource,
			Size:   cfg.Footer.FontSize,
		},
	}
	f.buildUI()
	return f, nil
}

func (f *FooterUI) buildUI() {
	// Root fills the screen but draws nothing; only the strip is painted
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(cfg.Footer.Padding)
	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Footer.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, cfg.C.FooterHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	f.Label = widget.NewText(
		widget.TextOpts.Text(cfg.Footer.Text, &f.face, cfg.Footer.TextColor),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.MaxWidth(float64(cfg.C.Width-2*cfg.Footer.Padding)),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	strip.AddChild(f.Label)
	rootContainer.AddChild(strip)

	f.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}
