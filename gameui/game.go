// Package gameui holds the application screens built on the widget core and the
// controller that moves the player between them
package gameui

import (
	"fmt"
	"log"

	"github.com/lixenwraith/cellui/mapfile"
	"github.com/lixenwraith/cellui/screen"
	"github.com/lixenwraith/cellui/terminal"
	"github.com/lixenwraith/cellui/widget"
)

const (
	formWidth   = 50
	defaultName = "stranger"
)

// Scene is the screen the game currently shows
type Scene uint8

const (
	SceneMenu Scene = iota
	SceneForm
	SceneMap
	SceneQuit
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneForm:
		return "form"
	case SceneMap:
		return "map"
	case SceneQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Sounds is the audible feedback the game asks for; audio.SoundManager satisfies it
type Sounds interface {
	PlayKey()
	PlayCommit()
	PlayReject()
}

type silence struct{}

func (silence) PlayKey()    {}
func (silence) PlayCommit() {}
func (silence) PlayReject() {}

// Options configures NewGame
type Options struct {
	Title     string
	Border    widget.Border
	Fields    []string     // Character form labels; the first is the name
	Map       *mapfile.Map // Nil generates a number field twice the view size
	QuitKey   terminal.Key // KeyNone disables the binding
	BorderKey terminal.Key
	Sounds    Sounds // Nil plays nothing
}

// Game routes input to the active scene and swaps scenes on their outputs
type Game struct {
	screen *screen.Screen
	opts   Options
	scene  Scene
	player string

	menu   *StartMenu
	form   *CharacterForm
	view   *MapView
	status *StatusBar
}

// NewGame builds every scene on s and opens the start menu
func NewGame(s *screen.Screen, opts Options) (*Game, error) {
	if opts.Sounds == nil {
		opts.Sounds = silence{}
	}
	if len(opts.Fields) == 0 {
		opts.Fields = []string{"Name"}
	}
	t := s.Tree()

	menu, err := NewStartMenu(t, opts.Border, opts.Title)
	if err != nil {
		return nil, fmt.Errorf("start menu: %w", err)
	}
	if err := menu.AlignCenters(s); err != nil {
		return nil, fmt.Errorf("start menu: %w", err)
	}

	form, err := NewCharacterForm(t, 0, 0, min(s.Cols(), formWidth), opts.Fields)
	if err != nil {
		return nil, fmt.Errorf("character form: %w", err)
	}
	if err := form.AlignCenters(s); err != nil {
		return nil, fmt.Errorf("character form: %w", err)
	}

	view, err := NewMapView(t, 0, 0, s.Rows()-2, s.Cols(), opts.Border)
	if err != nil {
		return nil, fmt.Errorf("map view: %w", err)
	}
	status := NewStatusBar(t, s.Rows()-2, 0, s.Cols())

	if opts.Map == nil {
		ch, cw := view.ContentSize()
		opts.Map, err = mapfile.NumberField(max(ch*2, 1), max(cw*2, 2))
		if err != nil {
			return nil, fmt.Errorf("map: %w", err)
		}
	} else if err := opts.Map.CheckPoints(); err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}

	g := &Game{
		screen: s,
		opts:   opts,
		menu:   menu,
		form:   form,
		view:   view,
		status: status,
	}
	g.enter(SceneMenu)
	return g, nil
}

func (g *Game) Scene() Scene { return g.scene }
func (g *Game) Player() string { return g.player }
func (g *Game) Menu() *StartMenu { return g.menu }
func (g *Game) Form() *CharacterForm { return g.form }
func (g *Game) View() *MapView { return g.view }
func (g *Game) Status() *StatusBar { return g.status }
func (g *Game) Screen() *screen.Screen { return g.screen }
func (g *Game) Map() *mapfile.Map { return g.opts.Map }
func (g *Game) SetSounds(s Sounds) { g.opts.Sounds = s }

// Update feeds one event to the active scene and reports whether the game is over
func (g *Game) Update(ev terminal.Event) (quit bool) {
	if g.opts.QuitKey != terminal.KeyNone && ev.IsKey(g.opts.QuitKey) {
		g.enter(SceneQuit)
		return true
	}

	switch g.scene {
	case SceneMenu:
		g.updateMenu(ev)
	case SceneForm:
		g.updateForm(ev)
	case SceneMap:
		g.updateMap(ev)
	}
	return g.scene == SceneQuit
}

func (g *Game) updateMenu(ev terminal.Event) {
	if !g.menu.HandleEvent(ev) {
		g.reject(ev)
		return
	}
	choice, err := g.menu.Take()
	if err != nil {
		g.opts.Sounds.PlayKey()
		return
	}

	g.opts.Sounds.PlayCommit()
	switch choice {
	case ChoiceNewGame:
		g.enter(SceneForm)
	case ChoiceLoadMap:
		g.player = defaultName
		g.enter(SceneMap)
	default:
		g.enter(SceneQuit)
	}
}

func (g *Game) updateForm(ev terminal.Event) {
	if ev.IsKey(terminal.KeyEscape) {
		g.enter(SceneMenu)
		return
	}
	if !g.form.HandleEvent(ev) {
		g.reject(ev)
		return
	}
	out, err := g.form.Take()
	if err != nil {
		g.opts.Sounds.PlayKey()
		return
	}

	g.opts.Sounds.PlayCommit()
	g.player = g.form.Name(out)
	if g.player == "" {
		g.player = defaultName
	}
	g.enter(SceneMap)
}

func (g *Game) updateMap(ev terminal.Event) {
	switch {
	case ev.IsKey(terminal.KeyEscape):
		g.enter(SceneMenu)
		return
	case g.view.AtFinish() && ev.IsKey(terminal.KeyEnter):
		g.opts.Sounds.PlayCommit()
		g.enter(SceneMenu)
		return
	case g.opts.BorderKey != terminal.KeyNone && ev.IsKey(g.opts.BorderKey):
		if err := g.view.ToggleFrame(); err != nil {
			log.Printf("game: toggle frame: %v", err)
			g.reject(ev)
			return
		}
		g.opts.Sounds.PlayKey()
		return
	}

	if !g.view.HandleEvent(ev) {
		g.reject(ev)
		return
	}
	if g.view.AtFinish() {
		g.opts.Sounds.PlayCommit()
	} else {
		g.opts.Sounds.PlayKey()
	}
	g.updateStatus()
}

// reject sounds for refused keys only; mouse, resize and wakeups pass silently
func (g *Game) reject(ev terminal.Event) {
	if ev.Type == terminal.EventKey {
		g.opts.Sounds.PlayReject()
	}
}

func (g *Game) updateStatus() {
	p := g.view.Player()
	left := fmt.Sprintf("%s  %d,%d", g.player, p.Y, p.X)
	right := fmt.Sprintf("moves %d", g.view.Moves())
	if g.view.AtFinish() {
		right = "exit reached, Enter for menu"
	}
	g.status.Set(left, right)
}

// enter swaps the registered roots for the scene's widgets
func (g *Game) enter(s Scene) {
	for _, w := range []screen.Widget{g.menu, g.form, g.view, g.status} {
		g.screen.RemoveWidget(w)
	}

	switch s {
	case SceneMenu:
		g.menu.Reset()
		g.screen.AddWidget(g.menu)
	case SceneForm:
		g.form.Reset()
		g.screen.AddWidget(g.form)
	case SceneMap:
		g.view.Load(g.opts.Map)
		g.updateStatus()
		g.screen.AddWidget(g.view)
		g.screen.AddWidget(g.status)
	}

	log.Printf("game: %s -> %s", g.scene, s)
	g.scene = s
}
