package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/arcadebit/pegfall/editor"
	"github.com/arcadebit/pegfall/obj"
)

// toolEntry maps a toolbar button to the full tool it activates, including
// the variant defaults for placement tools.
type toolEntry struct {
	label string
	tool  editor.Tool
}

func toolEntries() []toolEntry {
	return []toolEntry{
		{"Peg", editor.Tool{Category: editor.ToolPeg, PegType: obj.PegRound, PegSize: obj.SizeBase, PegColor: obj.ColorBlue}},
		{"Shape", editor.Tool{Category: editor.ToolShape, ShapeType: obj.ShapeLine}},
		{"Zone", editor.Tool{Category: editor.ToolCharacteristic, CharShape: obj.CharCircle, BounceType: obj.BounceNormal}},
		{"Spacer", editor.Tool{Category: editor.ToolSpacer, SpacerWidth: 1, SpacerHeight: 1}},
		{"Move", editor.Tool{Category: editor.ToolMove}},
		{"Rotate", editor.Tool{Category: editor.ToolRotate}},
		{"Resize", editor.Tool{Category: editor.ToolResize}},
		{"Copy", editor.Tool{Category: editor.ToolCopy}},
		{"Erase", editor.Tool{Category: editor.ToolEraser}},
	}
}

type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func solidNineSlice(c color.Color) *uiimage.NineSlice {
	return uiimage.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.RGBA{40, 40, 40, 255}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}

// BuildUI assembles the toolbar strip along the top edge.
func BuildUI(onToolSelected func(t editor.Tool)) (*ebitenui.UI, *ToolBar) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("editor: load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	entries := toolEntries()
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenWidth, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	var toolButtons []*widget.Button
	for _, e := range entries {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(e.label, &fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 40),
			),
		)
		toolButtons = append(toolButtons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil {
				return
			}
			for idx, b := range toolButtons {
				if args.Active == b {
					onToolSelected(entries[idx].tool)
					return
				}
			}
		}),
	)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(toolbar)
	ui.Container = root

	group.SetActive(toolButtons[0])

	return ui, &ToolBar{group: group, buttons: toolButtons}
}
