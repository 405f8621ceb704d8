package browser

// DetailState is the one active-selection state machine: which product's
// detail view is open and which media item within its gallery is selected.
// The zero value is Closed. Whether an id exists in the collection is the
// caller's concern; transitions here are purely structural.
type DetailState struct {
	openID     string
	mediaIndex int
}

func (s *DetailState) IsOpen() bool    { return s.openID != "" }
func (s *DetailState) OpenID() string  { return s.openID }
func (s *DetailState) MediaIndex() int { return s.mediaIndex }

// Open moves to Open(productID, 0) from any state. The media index always
// resets when the open product changes, including re-opening the same one.
func (s *DetailState) Open(productID string) {
	s.openID = productID
	s.mediaIndex = 0
}

// SelectMedia switches the active gallery item. Valid only while open;
// the index clamps into [0, mediaCount-1]. An empty gallery is a no-op.
func (s *DetailState) SelectMedia(index, mediaCount int) {
	if !s.IsOpen() || mediaCount <= 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > mediaCount-1 {
		index = mediaCount - 1
	}
	s.mediaIndex = index
}

// Close returns to Closed. Idempotent.
func (s *DetailState) Close() {
	s.openID = ""
	s.mediaIndex = 0
}
