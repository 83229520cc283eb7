package buffer

// Selection tracks an anchor point and a live extent inside one buffer.
// It is active only while the anchor differs from the extent. A Selection
// is owned by exactly one Buffer and mutated only by that buffer's owner.
type Selection struct {
	anchor Position
	extent Position
	set    bool
}

// Reset clears the selection to inactive.
func (s *Selection) Reset() {
	s.anchor = Position{}
	s.extent = Position{}
	s.set = false
}

// SetAnchor sets both anchor and extent to the given point.
func (s *Selection) SetAnchor(p Position) {
	s.anchor = p
	s.extent = p
	s.set = true
}

// UpdateExtent moves only the extent.
func (s *Selection) UpdateExtent(p Position) {
	s.extent = p
}

// IsActive returns true iff an anchor is set and differs from the extent.
func (s *Selection) IsActive() bool {
	return s.set && s.anchor != s.extent
}

// Anchor returns the anchor point.
func (s *Selection) Anchor() Position {
	return s.anchor
}

// Extent returns the extent point.
func (s *Selection) Extent() Position {
	return s.extent
}

// Ordered returns the selection endpoints as (first, last) under
// lexicographic order on (line, offset). Callers must order the
// endpoints before any range deletion.
func (s *Selection) Ordered() (first, last Position) {
	if s.anchor.After(s.extent) {
		return s.extent, s.anchor
	}
	return s.anchor, s.extent
}
