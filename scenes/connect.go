package scenes

import (
	"image/color"
	"strconv"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/distracted-programming/tanks/assets"
	cfg "github.com/distracted-programming/tanks/config"
	"github.com/distracted-programming/tanks/network"
	"github.com/distracted-programming/tanks/shared/logging"
	"github.com/distracted-programming/tanks/shared/netconfig"
	"github.com/distracted-programming/tanks/systems"
	"github.com/distracted-programming/tanks/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ConnectScene asks for a name, a server and a tank, then joins the server
// or starts a practice battle.
type ConnectScene struct {
	sceneChanger SceneChanger
	connectUI    *ui.ConnectUI
	netClient    *network.Client
	once         sync.Once

	status   string
	waited   float64 // seconds spent in the current connection attempt
	practice bool

	log zerolog.Logger
}

// NewConnectScene creates the connect screen. status is shown until the
// player does something, e.g. why the last battle ended.
func NewConnectScene(sc SceneChanger, status string) *ConnectScene {
	return &ConnectScene{
		sceneChanger: sc,
		status:       status,
		log:          logging.For("connect"),
	}
}

func (s *ConnectScene) Update() {
	s.once.Do(s.configure)
	if s.connectUI == nil {
		return
	}

	s.connectUI.Update()

	if s.practice {
		s.practice = false
		s.sceneChanger.ChangeScene(NewBattleScene(s.sceneChanger, nil))
		return
	}

	if s.netClient == nil {
		return
	}

	switch s.netClient.State() {
	case network.StateJoinedGame:
		s.connectUI.SetStatus("Joined! Loading battle...")
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewBattleScene(s.sceneChanger, client))
		return

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.abort(errMsg)
		return

	case network.StateConnecting:
		s.connectUI.SetStatus("Connecting...")

	case network.StateConnected:
		s.connectUI.SetStatus("Connected, joining battle...")

	case network.StateDisconnected:
		s.abort("Disconnected")
		return
	}

	s.waited += 1 / float64(ebiten.TPS())
	if s.waited > cfg.Network.ConnectTimeout {
		s.log.Warn().Float64("seconds", s.waited).Msg("connection timed out")
		s.abort("Connection timed out")
	}
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 28, 20, 255})

	if s.connectUI == nil {
		return
	}

	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) configure() {
	initial := ui.ConnectForm{
		Name: cfg.Network.PlayerName,
		Host: cfg.Network.Host,
		Port: strconv.Itoa(cfg.Network.Port),
		Tank: cfg.Game.Tank,
	}
	connectUI, err := ui.NewConnectUI(initial, assets.TankNames(), s.onConnect, s.onPractice)
	if err != nil {
		s.log.Error().Err(err).Msg("could not build connect screen")
		return
	}
	s.connectUI = connectUI
	s.connectUI.SetStatus(s.status)
}

func (s *ConnectScene) onConnect(form ui.ConnectForm) {
	addr, err := form.Address()
	if err != nil {
		s.connectUI.SetStatus(err.Error())
		return
	}
	applyForm(form)

	if s.netClient != nil {
		s.netClient.Disconnect()
	}

	s.connectUI.SetStatus("Connecting...")
	s.connectUI.SetConnecting(true)
	s.waited = 0

	s.log.Info().Str("address", addr).Str("tank", form.Tank).Msg("connecting")
	s.netClient = network.NewClient(cfg.Network.EventBuffer)
	s.netClient.Connect(addr, netconfig.GameVersion, cfg.Network.PlayerName, cfg.Game.Tank)
}

func (s *ConnectScene) onPractice(form ui.ConnectForm) {
	applyForm(form)
	s.practice = true
}

func (s *ConnectScene) abort(msg string) {
	s.connectUI.SetStatus(msg)
	s.connectUI.SetConnecting(false)
	s.netClient.Disconnect()
	s.netClient = nil
}

// applyForm copies the form into the configuration and persists it.
func applyForm(form ui.ConnectForm) {
	cfg.Network.PlayerName = form.PlayerName()
	if form.Host != "" {
		cfg.Network.Host = form.Host
	}
	if p := form.PortNumber(); p > 0 {
		cfg.Network.Port = p
	}
	if form.Tank != "" {
		cfg.Game.Tank = form.Tank
	}
	systems.SaveCurrentSettings()
}
