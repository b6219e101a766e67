package carousel

import "github.com/ekozhina/bridgeway/internal/layout"

// Manager holds the carousels of the optional page sections. Sections absent
// from the markup simply never get registered; Get then returns nil, and
// every Carousel method no-ops on a nil receiver, so callers do not need to
// special-case missing sections.
type Manager struct {
	breakpoints layout.Breakpoints
	sections    map[string]*Carousel
}

// NewManager creates an empty manager using the given breakpoints for every
// registered section.
func NewManager(bp layout.Breakpoints) *Manager {
	return &Manager{
		breakpoints: bp,
		sections:    make(map[string]*Carousel),
	}
}

// Register creates the carousel for a section present in the markup.
func (m *Manager) Register(section string, width int) *Carousel {
	c := New(width, m.breakpoints)
	m.sections[section] = c
	return c
}

// Get returns the section's carousel, or nil when the section is absent.
func (m *Manager) Get(section string) *Carousel {
	return m.sections[section]
}

// ResizeAll pushes a new width to every registered section. It returns the
// names of sections whose viewport class actually changed.
func (m *Manager) ResizeAll(width int) []string {
	var changed []string
	for name, c := range m.sections {
		if c.Resize(width) {
			changed = append(changed, name)
		}
	}
	return changed
}
