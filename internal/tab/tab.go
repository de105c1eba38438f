// Package tab models the tabs of the tabline and the command layer that owns
// their canonical order.
package tab

// Activity describes how the host is currently using a tab's document, and
// determines which style family the tab is rendered with.
type Activity int

const (
	// Inactive documents are open but not shown in any host window.
	Inactive Activity = iota
	// Visible documents are shown in a host window other than the focused one.
	Visible
	// Current is the document in the focused host window. At most one tab is
	// Current at a time.
	Current
)

// Kind partitions tabs by the sort of document they hold. Tabs of a
// non-default kind are always appended at the end of the line when opened.
type Kind int

const (
	Document Kind = iota
	Terminal
)

// Tab is the on-screen representation of one open document.
type Tab struct {
	// Handle is the host's stable identifier for the document.
	Handle int

	Label    string
	Path     string
	Language string
	// Window is the host window number the document was last shown in.
	Window int

	// Pinned tabs are always ordered before unpinned ones.
	Pinned   bool
	Activity Activity
	Modified bool
	// Closing is true while an exit animation owns the tab's width.
	Closing bool
	Kind    Kind

	// WidthOverride is non-nil only while an animation owns the tab's width;
	// layout falls back to the natural width when nil.
	WidthOverride *int
	// PositionOverride is non-nil only while a move animation owns the tab's
	// x-coordinate.
	PositionOverride *float64
}

// Width resolves the tab's on-screen width given its natural width.
func (t *Tab) Width(natural int) int {
	if t.WidthOverride != nil {
		return *t.WidthOverride
	}
	return natural
}
