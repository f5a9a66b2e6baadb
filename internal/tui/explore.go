package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantmix/adstock/internal/adstock"
	"github.com/quantmix/adstock/internal/prior"
	"github.com/quantmix/adstock/internal/viz"
)

const (
	stateMenu = iota
	stateTune
)

var transformInfo = map[string]string{
	"geometric":   "constant-rate decay",
	"delayed":     "delayed-peak decay",
	"weibull":     "weibull density kernel",
	"weibull-pdf": "weibull density kernel",
	"weibull-cdf": "weibull survival kernel",
}

type model struct {
	state  int
	cursor int

	reg   *adstock.Registry
	names []string

	selected    string
	transform   adstock.Transformation
	params      adstock.Params
	paramNames  []string
	paramCursor int

	lMax      int
	normalize bool
	mode      adstock.ConvMode

	err error
}

func newModel() *model {
	reg := adstock.NewRegistry()
	return &model{
		state:     stateMenu,
		reg:       reg,
		names:     reg.List(),
		lMax:      adstock.DefaultLMax,
		normalize: true,
		mode:      adstock.ConvAfter,
	}
}

// Run starts the interactive curve explorer.
func Run() error {
	_, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateMenu:
		return m.menuKey(key)
	default:
		return m.tuneKey(key)
	}
}

func (m *model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.names[m.cursor]
		m.rebuild()
		m.state, m.paramCursor = stateTune, 0
	}
	return m, nil
}

func (m *model) tuneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "n":
		m.normalize = !m.normalize
		m.rebuild()
	case "m":
		switch m.mode {
		case adstock.ConvAfter:
			m.mode = adstock.ConvBefore
		case adstock.ConvBefore:
			m.mode = adstock.ConvOverlap
		default:
			m.mode = adstock.ConvAfter
		}
		m.rebuild()
	case "[":
		if m.lMax > 2 {
			m.lMax--
			m.rebuild()
		}
	case "]":
		if m.lMax < 52 {
			m.lMax++
			m.rebuild()
		}
	}
	return m, nil
}

// rebuild reconstructs the transformation after an option change,
// keeping current parameter values where they carry over.
func (m *model) rebuild() {
	tr, err := m.reg.Get(m.selected, adstock.Options{
		LMax:      m.lMax,
		Normalize: m.normalize,
		Mode:      m.mode,
	})
	if err != nil {
		m.err = err
		return
	}

	m.transform = tr
	m.paramNames = tr.ParamNames()

	params := make(adstock.Params, len(m.paramNames))
	priors := tr.Priors()
	for _, name := range m.paramNames {
		if v, ok := m.params[name]; ok {
			params[name] = v
			continue
		}
		mean, err := prior.Mean(priors[name])
		if err != nil {
			mean = 0.5
		}
		params[name] = m.clamp(name, mean)
	}
	m.params = params
	m.err = nil
}

func (m *model) nudge(dir float64) {
	if len(m.paramNames) == 0 {
		return
	}
	name := m.paramNames[m.paramCursor]

	step := 0.05
	if name == "theta" || name == "lam" || name == "k" {
		step = 0.25
	}
	m.params[name] = m.clamp(name, m.params[name]+dir*step)
}

func (m *model) clamp(name string, v float64) float64 {
	switch name {
	case "alpha":
		if v < 0 {
			return 0
		}
		if v > 0.99 {
			return 0.99
		}
	case "theta":
		if v < 0 {
			return 0
		}
		if max := float64(m.lMax) - 1; v > max {
			return max
		}
	case "lam", "k":
		if v < 0.05 {
			return 0.05
		}
	}
	return v
}

func (m *model) View() string {
	if m.state == stateMenu {
		return m.menuView()
	}
	return m.tuneView()
}

func (m *model) menuView() string {
	var b strings.Builder
	b.WriteString(viz.Title.Render("adstock explorer") + "\n\n")

	for i, name := range m.names {
		line := fmt.Sprintf("  %-12s %s", name, viz.Subtle.Render(transformInfo[name]))
		if i == m.cursor {
			line = viz.Selected.Render("> " + line[2:])
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render("j/k move · enter select · q quit"))
	return b.String()
}

func (m *model) tuneView() string {
	if m.err != nil {
		return viz.Panel.Render("error: "+m.err.Error()) + "\n" + viz.KeyHint.Render("esc back · q quit")
	}

	w, err := m.transform.Weights(m.params)
	if err != nil {
		return viz.Panel.Render("error: "+err.Error()) + "\n" + viz.KeyHint.Render("esc back · q quit")
	}

	var b strings.Builder
	b.WriteString(viz.Title.Render(m.transform.Name()) + "\n\n")

	for i, name := range m.paramNames {
		marker := "  "
		if i == m.paramCursor {
			marker = viz.Selected.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n",
			marker,
			viz.ParamLabel.Render(fmt.Sprintf("%-6s", name)),
			viz.ParamValue.Render(fmt.Sprintf("%.2f", m.params[name])),
		))
	}

	b.WriteString(fmt.Sprintf("\n%s %s   %s %s   %s %s\n\n",
		viz.ParamLabel.Render("l_max"), viz.ParamValue.Render(fmt.Sprintf("%d", m.lMax)),
		viz.ParamLabel.Render("mode"), viz.ParamValue.Render(string(m.mode)),
		viz.ParamLabel.Render("normalize"), viz.ParamValue.Render(fmt.Sprintf("%v", m.normalize)),
	))

	caption := viz.KernelCaption(m.transform.Name(), adstock.HalfLife(w), adstock.MeanLag(w))
	b.WriteString(viz.CurvePlot(w, caption) + "\n\n")
	b.WriteString(viz.KeyHint.Render("j/k param · h/l adjust · [/] l_max · m mode · n normalize · esc back · q quit"))
	return b.String()
}
