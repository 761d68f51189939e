package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ConnectForm is what the player typed on the connect screen.
type ConnectForm struct {
	Name string
	Host string
	Port string
	Tank string
}

// Address validates the form and joins host and port. An empty host means
// localhost.
func (f ConnectForm) Address() (string, error) {
	host := strings.TrimSpace(f.Host)
	if host == "" {
		host = "localhost"
	}
	port, err := strconv.Atoi(strings.TrimSpace(f.Port))
	if err != nil || port <= 0 || port > 65535 {
		return "", fmt.Errorf("invalid port %q", f.Port)
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), nil
}

// PortNumber returns the port as an int, or 0 if it does not parse.
func (f ConnectForm) PortNumber() int {
	p, _ := strconv.Atoi(strings.TrimSpace(f.Port))
	return p
}

// PlayerName trims the name and falls back to "player".
func (f ConnectForm) PlayerName() string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return "player"
	}
	return name
}

// NextTank returns the tank after current in tanks, wrapping around.
func NextTank(tanks []string, current string) string {
	if len(tanks) == 0 {
		return current
	}
	i := slices.Index(tanks, current)
	return tanks[(i+1)%len(tanks)]
}

type ConnectUI struct {
	UI *ebitenui.UI

	OnConnect  func(form ConnectForm)
	OnPractice func(form ConnectForm)

	tanks []string
	tank  string

	nameInput   *widget.TextInput
	hostInput   *widget.TextInput
	portInput   *widget.TextInput
	tankButton  *widget.Button
	connectBtn  *widget.Button
	practiceBtn *widget.Button
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewConnectUI builds the connect screen prefilled with initial. tanks is the
// list the tank button cycles through.
func NewConnectUI(initial ConnectForm, tanks []string, onConnect, onPractice func(ConnectForm)) (*ConnectUI, error) {
	ui := &ConnectUI{
		OnConnect:  onConnect,
		OnPractice: onPractice,
		tanks:      tanks,
		tank:       initial.Tank,
	}
	if ui.tank == "" && len(tanks) > 0 {
		ui.tank = tanks[0]
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI()
	ui.nameInput.SetText(initial.Name)
	ui.hostInput.SetText(initial.Host)
	ui.portInput.SetText(initial.Port)
	return ui, nil
}

func (ui *ConnectUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (ui *ConnectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 28, 20, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TANKS", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	ui.nameInput = ui.newInput("player", 180)
	content.AddChild(ui.formRow("Name:", ui.nameInput))
	ui.hostInput = ui.newInput("localhost", 180)
	content.AddChild(ui.formRow("Server:", ui.hostInput))
	ui.portInput = ui.newInput("2137", 80)
	content.AddChild(ui.formRow("Port:", ui.portInput))

	ui.tankButton = ui.newButton("Tank: "+ui.tank, 180, color.RGBA{60, 60, 80, 255}, func() {
		ui.tank = NextTank(ui.tanks, ui.tank)
		if t := ui.tankButton.Text(); t != nil {
			t.Label = "Tank: " + ui.tank
		}
	})
	content.AddChild(ui.tankButton)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	content.AddChild(ui.statusLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	ui.connectBtn = ui.newButton("Connect", 120, color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnConnect != nil {
			ui.OnConnect(ui.Form())
		}
	})
	buttons.AddChild(ui.connectBtn)
	ui.practiceBtn = ui.newButton("Practice", 120, color.RGBA{90, 80, 40, 255}, func() {
		if ui.OnPractice != nil {
			ui.OnPractice(ui.Form())
		}
	})
	buttons.AddChild(ui.practiceBtn)
	content.AddChild(buttons)

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ConnectUI) formRow(label string, input *widget.TextInput) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%-8s", label), &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(input)
	return row
}

func (ui *ConnectUI) newInput(placeholder string, width int) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 60, 50, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 45, 40, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (ui *ConnectUI) newButton(label string, width int, base color.RGBA, onClick func()) *widget.Button {
	lighter := color.RGBA{base.R + 20, base.G + 40, base.B + 20, 255}
	darker := color.RGBA{base.R - 10, base.G - 20, base.B - 10, 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(base),
			Hover:    image.NewNineSliceColor(lighter),
			Pressed:  image.NewNineSliceColor(darker),
			Disabled: image.NewNineSliceColor(color.RGBA{45, 45, 45, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 255, 220, 255},
			Pressed:  color.RGBA{180, 200, 180, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Form returns the current field values.
func (ui *ConnectUI) Form() ConnectForm {
	return ConnectForm{
		Name: ui.nameInput.GetText(),
		Host: ui.hostInput.GetText(),
		Port: ui.portInput.GetText(),
		Tank: ui.tank,
	}
}

func (ui *ConnectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

// SetConnecting locks the form while a connection attempt is running.
func (ui *ConnectUI) SetConnecting(connecting bool) {
	for _, b := range []*widget.Button{ui.connectBtn, ui.practiceBtn, ui.tankButton} {
		if b != nil {
			b.GetWidget().Disabled = connecting
		}
	}
	for _, in := range []*widget.TextInput{ui.nameInput, ui.hostInput, ui.portInput} {
		if in != nil {
			in.GetWidget().Disabled = connecting
		}
	}
}

func (ui *ConnectUI) Update() {
	ui.UI.Update()
}
