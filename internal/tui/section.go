package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"webhook-lab/internal/catalog"
	"webhook-lab/internal/config"
	"webhook-lab/internal/sched"
	"webhook-lab/internal/sim"
)

// section is the model of one mounted tab. Sections are only touched from
// the bubbletea update loop.
type section interface {
	// bindings returns the section keys with their enabled state refreshed.
	bindings() []key.Binding
	handleKey(tea.KeyMsg)
	view(frame viewFrame) string
}

// env is what a section is built from. group is owned by the shell and
// stopped when the section is unmounted.
type env struct {
	group   *sched.Group
	cfg     *config.LabConfig
	catalog *catalog.Catalog
	tracer  *sim.Tracer
}

// viewFrame carries render-time context from the shell.
type viewFrame struct {
	width   int
	height  int
	spinner string
}

type tabDef struct {
	title string
	build func(env) section
}

var tabs = []tabDef{
	{"Concept", newConceptSection},
	{"Lifecycle", newLifecycleSection},
	{"Anatomy", newAnatomySection},
	{"Security", newSecuritySection},
	{"Architecture", newArchitectureSection},
	{"Quiz", newQuizSection},
}
