package vtterm

// altScreenSlot is the spec §3 Alternate-screen slot: a snapshot of
// everything the primary screen owns, held while the alternate screen is
// active. nil (via the saved bool) means unset (spec invariant: "While
// ALTSCREEN is set, the slot is non-empty iff a prior transition saved
// it").
type altScreenSlot struct {
	saved  bool
	mode   Modes
	buffer *Buffer
	cursor Cursor
	scroll scrollRegion
	tabs   Tabs
}
