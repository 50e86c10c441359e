package control

// ScrollState tracks the selection and scroll offset of a list viewport
// Whenever Visible > 0 it holds Offset <= Selection < Offset+Visible
type ScrollState struct {
	Offset    int // First visible item index
	Total     int // Total item count
	Visible   int // Visible item count (viewport height)
	Selection int // Currently selected item
}

// NewScrollState creates a state with the first item selected
func NewScrollState(total, visible int) *ScrollState {
	s := &ScrollState{Total: max(total, 0), Visible: max(visible, 0)}
	s.Clamp()
	return s
}

// --- Scroll manipulation ---

// EnsureVisible adjusts offset minimally to make item at pos visible
func (s *ScrollState) EnsureVisible(pos int) {
	if s.Visible <= 0 {
		return
	}
	if pos < s.Offset {
		s.Offset = pos
	} else if pos >= s.Offset+s.Visible {
		s.Offset = pos - s.Visible + 1
	}
	s.Clamp()
}

// Clamp keeps offset and selection in range
func (s *ScrollState) Clamp() {
	s.Selection = min(max(s.Selection, 0), max(s.Total-1, 0))
	s.Offset = min(max(s.Offset, 0), max(s.Total-s.Visible, 0))
}

// --- Size updates ---

// SetVisible updates visible count and reclamps around the selection
func (s *ScrollState) SetVisible(visible int) {
	s.Visible = max(visible, 0)
	s.Clamp()
	s.EnsureVisible(s.Selection)
}

// --- Selection management ---

// Select sets selection and ensures it's visible
func (s *ScrollState) Select(idx int) {
	s.Selection = idx
	s.Clamp()
	s.EnsureVisible(s.Selection)
}

// SelectNext moves selection down; false at the last item
func (s *ScrollState) SelectNext() bool {
	if s.Selection >= s.Total-1 {
		return false
	}
	s.Selection++
	s.EnsureVisible(s.Selection)
	return true
}

// SelectPrev moves selection up; false at the first item
func (s *ScrollState) SelectPrev() bool {
	if s.Selection <= 0 {
		return false
	}
	s.Selection--
	s.EnsureVisible(s.Selection)
	return true
}
