package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kuramoto/internal/colormap"
	"github.com/san-kum/kuramoto/internal/kuramoto"
	"github.com/san-kum/kuramoto/internal/render"
)

const (
	width       = 48
	height      = 24
	graphWidth  = 32
	graphHeight = 6
)

type TickMsg time.Time

// ExportMsg reports the outcome of a GIF export started with the g key.
type ExportMsg struct {
	Path   string
	Frames int
	Err    error
}

// Model plays the scenes of an ensemble on a Braille canvas.
type Model struct {
	ens        *kuramoto.Ensemble
	opts       render.Options
	scenes     []render.Scene
	order      []float64
	phase      []float64
	colors     []string
	frame      int
	running    bool
	canvas     *Canvas
	theme      Theme
	exportPath string
	status     string
	exporting  bool
	showHelp   bool
}

// NewModel prepares playback of ens. exportPath is where the G key writes
// the rendered animation.
func NewModel(ens *kuramoto.Ensemble, opts render.Options, theme Theme, exportPath string) (Model, error) {
	scenes, err := render.BuildScenes(ens, opts)
	if err != nil {
		return Model{}, err
	}

	r, psi := ens.Positions().OrderParameter()
	order := make([]float64, len(scenes))
	phase := make([]float64, len(scenes))
	for i, sc := range scenes {
		order[i] = r[sc.Timestep]
		phase[i] = psi[sc.Timestep]
	}

	var colors []string
	if ens.HasFrequencies() {
		colors = make([]string, ens.Oscillators())
		for i, m := range scenes[0].Markers {
			colors[i] = colormap.Hex(m.Color)
		}
	}

	return Model{
		ens:        ens,
		opts:       opts,
		scenes:     scenes,
		order:      order,
		phase:      phase,
		colors:     colors,
		running:    true,
		canvas:     NewCanvas(width, height),
		theme:      theme,
		exportPath: exportPath,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.frame = 0
		case "[":
			m.running = false
			m.step(-1)
		case "]":
			m.running = false
			m.step(1)
		case "t":
			m.theme = NextTheme(m.theme)
		case "g":
			if m.exportPath == "" {
				m.status = "no export path set"
				break
			}
			if m.exporting {
				break
			}
			m.exporting = true
			m.status = "exporting to " + m.exportPath + "..."
			return m, m.export()
		case "?":
			m.showHelp = !m.showHelp
		}
	case ExportMsg:
		m.exporting = false
		if msg.Err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.Err)
		} else {
			m.status = fmt.Sprintf("saved %d frames to %s", msg.Frames, msg.Path)
		}
	case TickMsg:
		if m.running {
			m.step(1)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step(d int) {
	n := len(m.scenes)
	m.frame = ((m.frame+d)%n + n) % n
}

// Frame returns the index of the frame on screen.
func (m Model) Frame() int { return m.frame }

// Running reports whether playback is advancing.
func (m Model) Running() bool { return m.running }

// export renders the animation off the update loop and reports back with
// an ExportMsg.
func (m Model) export() tea.Cmd {
	ens, opts := m.ens, m.opts
	opts.Output = m.exportPath
	return func() tea.Msg {
		anim, err := render.Render(ens, opts)
		if err != nil {
			return ExportMsg{Path: opts.Output, Err: err}
		}
		return ExportMsg{Path: opts.Output, Frames: anim.FrameCount()}
	}
}

// draw paints the current scene onto the canvas.
func (m Model) draw() {
	c := m.canvas
	c.Clear()

	side := c.SubWidth()
	if h := c.SubHeight(); h < side {
		side = h
	}
	ox := (c.SubWidth() - side) / 2
	oy := (c.SubHeight() - side) / 2
	scale := float64(side-1) / 2.4

	toSub := func(x, y float64) (int, int) {
		px := ox + int(math.Round((x+1.2)*scale))
		py := oy + int(math.Round((1.2-y)*scale))
		return px, py
	}

	cx, cy := toSub(0, 0)
	c.DrawCircle(cx, cy, int(math.Round(scale)), string(m.theme.Circle))

	sc := m.scenes[m.frame]
	for i, mk := range sc.Markers {
		color := string(m.theme.Marker)
		if m.colors != nil {
			color = m.colors[i]
		}
		px, py := toSub(mk.X, mk.Y)
		c.DrawDot(px, py, color)
	}
	if sc.Mean != nil {
		px, py := toSub(sc.Mean.X, sc.Mean.Y)
		c.DrawCross(px, py, 2, string(m.theme.Mean))
	}
}

func (m Model) View() string {
	m.draw()
	sc := m.scenes[m.frame]

	title := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("KURAMOTO")
	status := StatusRunning.Render("▶ playing")
	if !m.running {
		status = StatusPaused.Render("❚❚ paused")
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	var stats strings.Builder
	stats.WriteString(title + "  " + status + "\n\n")
	stats.WriteString(row("oscillators", fmt.Sprintf("%d", len(sc.Markers))) + "\n")
	stats.WriteString(row("frame", fmt.Sprintf("%d / %d", m.frame+1, len(m.scenes))) + "\n")
	stats.WriteString(row("timestep", fmt.Sprintf("%d", sc.Timestep)) + "\n")
	stats.WriteString(row("r", fmt.Sprintf("%.4f", m.order[m.frame])) + "  " + SyncLabel(m.order[m.frame]) + "\n")
	stats.WriteString(row("psi", fmt.Sprintf("%+.4f", m.phase[m.frame])) + "\n\n")
	stats.WriteString(ProgressBar(float64(m.frame+1)/float64(len(m.scenes)), graphWidth) + "\n\n")

	history := m.order[:m.frame+1]
	if len(history) < 2 {
		history = m.order[:min(2, len(m.order))]
	}
	stats.WriteString(asciigraph.Plot(history,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Caption("order parameter r"),
	))

	if m.status != "" {
		stats.WriteString("\n\n" + lipgloss.NewStyle().Foreground(m.theme.Accent).Render(m.status))
	}

	help := "space pause · [ ] step · r restart · t theme · g gif · ? help · q quit"
	if m.showHelp {
		help = strings.Join([]string{
			"space  pause / resume playback",
			"[ ]    step one frame back / forward",
			"r      restart from frame 0",
			"t      cycle theme (" + strings.Join(ThemeNames(), ", ") + ")",
			"g      export animation to " + m.exportPath,
			"q      quit",
		}, "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.Render()),
		statsStyle.Render(stats.String()),
	)
	return body + "\n" + helpStyle.Render(help) + "\n"
}

// RunPreview plays ens in the terminal until the user quits.
func RunPreview(ens *kuramoto.Ensemble, opts render.Options, theme Theme, exportPath string) error {
	m, err := NewModel(ens, opts, theme, exportPath)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
