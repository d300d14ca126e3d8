package core

import tea "github.com/charmbracelet/bubbletea/v2"

// SizeableBase tracks the size assigned by the parent layout.
type SizeableBase struct {
	Width  int
	Height int
}

// SetSize sets the component size. Negative sizes are clamped to zero.
func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Width = max(width, 0)
	s.Height = max(height, 0)
	return nil
}
