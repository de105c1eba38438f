package tab

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/kmaicher/tabline/internal/animate"
	"github.com/kmaicher/tabline/internal/logging"
	"github.com/kmaicher/tabline/internal/pubsub"
	"golang.org/x/exp/maps"
)

// ErrNotFound is returned when no tab exists for a handle.
var ErrNotFound = errors.New("tab not found")

const (
	// openDelay holds a newly opened tab at minimal width briefly before its
	// entrance animation begins.
	openDelay     = 50 * time.Millisecond
	openDuration  = 150 * time.Millisecond
	closeDuration = 150 * time.Millisecond
	moveDuration  = 150 * time.Millisecond
)

// Geometry supplies the natural, animation-free geometry of tabs. Implemented
// by the layout engine.
type Geometry interface {
	// NaturalWidth is the width a tab occupies absent animation overrides.
	NaturalWidth(t *Tab) int
	// Positions returns each tab's natural x-coordinate keyed by handle.
	Positions(tabs []*Tab) map[int]float64
}

// Spec describes a document for which a tab is to be opened.
type Spec struct {
	Handle   int
	Label    string
	Path     string
	Language string
	Window   int
	Kind     Kind
}

// Service is the command layer owning the canonical tab order. All mutation
// of the order goes through it, and every mutation re-establishes the
// invariant that pinned tabs occupy a contiguous prefix of the order.
type Service struct {
	tabs   []*Tab
	broker *pubsub.Broker[*Tab]

	scheduler *animate.Scheduler
	geometry  Geometry
	logger    logging.Interface

	animation     bool
	insertAtEnd   bool
	insertAtStart bool

	// handle of the most recently current tab; new tabs open adjacent to it.
	lastCurrent int

	// the move animation is globally singular; starting a new one stops the
	// previous one.
	moveAnim *animate.Animation
}

type ServiceOptions struct {
	Geometry  Geometry
	Scheduler *animate.Scheduler
	Logger    logging.Interface

	// Animation enables open/close/move animations.
	Animation bool
	// InsertAtEnd appends newly opened tabs at the end of the order rather
	// than adjacent to the last current tab. InsertAtStart likewise inserts
	// them at the front, after any pinned prefix.
	InsertAtEnd   bool
	InsertAtStart bool
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		broker:        pubsub.NewBroker[*Tab](opts.Logger),
		scheduler:     opts.Scheduler,
		geometry:      opts.Geometry,
		logger:        opts.Logger,
		animation:     opts.Animation,
		insertAtEnd:   opts.InsertAtEnd,
		insertAtStart: opts.InsertAtStart,
	}
}

// Broker exposes the broker through which tab events are published.
func (s *Service) Broker() *pubsub.Broker[*Tab] {
	return s.broker
}

// List returns the tabs in canonical order.
func (s *Service) List() []*Tab {
	return slices.Clone(s.tabs)
}

func (s *Service) Len() int {
	return len(s.tabs)
}

// Get retrieves a tab by its host handle.
func (s *Service) Get(handle int) (*Tab, error) {
	for _, t := range s.tabs {
		if t.Handle == handle {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%d: %w", handle, ErrNotFound)
}

// Current returns the tab with current activity, if any.
func (s *Service) Current() (*Tab, bool) {
	for _, t := range s.tabs {
		if t.Activity == Current {
			return t, true
		}
	}
	return nil, false
}

// SetCurrent marks the tab with the given handle current, demoting any other
// current tab.
func (s *Service) SetCurrent(handle int) error {
	target, err := s.Get(handle)
	if err != nil {
		return fmt.Errorf("setting current tab: %w", err)
	}
	for _, t := range s.tabs {
		if t.Activity == Current && t != target {
			t.Activity = Inactive
			s.broker.Publish(pubsub.UpdatedEvent, t)
		}
	}
	target.Activity = Current
	s.lastCurrent = handle
	s.broker.Publish(pubsub.UpdatedEvent, target)
	return nil
}

// MoveTo moves the tab at index from to index to. Indexes are 0-based; to is
// clamped to the valid range and moving a tab onto itself is a no-op. If
// animation is enabled the displaced tabs glide to their new positions.
func (s *Service) MoveTo(from, to int) {
	if from < 0 || from >= len(s.tabs) {
		return
	}
	to = min(max(to, 0), len(s.tabs)-1)
	if from == to {
		return
	}

	var before map[int]float64
	if s.animation {
		before = s.geometry.Positions(s.tabs)
	}

	moved := s.tabs[from]
	s.tabs = slices.Delete(s.tabs, from, from+1)
	s.tabs = slices.Insert(s.tabs, to, moved)
	s.applyPinPrefix()

	s.logger.Debug("moved tab", "handle", moved.Handle, "from", from, "to", to)

	if s.animation {
		after := s.geometry.Positions(s.tabs)
		// A pinned/unpinned boundary can absorb the move entirely; skip the
		// animation when nothing visually displaced.
		if !maps.Equal(before, after) {
			s.startMove(before, after)
		}
	}
	s.broker.Publish(pubsub.UpdatedEvent, moved)
}

// MoveBy moves the current tab by the given number of steps, negative for
// left.
func (s *Service) MoveBy(steps int) {
	current, ok := s.Current()
	if !ok {
		return
	}
	from := slices.Index(s.tabs, current)
	s.MoveTo(from, from+steps)
}

// TogglePin flips a tab's pin flag and re-establishes the pin prefix.
func (s *Service) TogglePin(handle int) error {
	t, err := s.Get(handle)
	if err != nil {
		return fmt.Errorf("toggling pin: %w", err)
	}
	t.Pinned = !t.Pinned
	s.applyPinPrefix()
	s.logger.Info("toggled pin", "handle", t.Handle, "label", t.Label, "pinned", t.Pinned)
	s.broker.Publish(pubsub.UpdatedEvent, t)
	return nil
}

// SortBy stable-sorts unpinned tabs by the criterion. Pinned tabs keep their
// relative order at the front.
func (s *Service) SortBy(criterion SortCriterion) {
	slices.SortStableFunc(s.tabs, func(a, b *Tab) int {
		if a.Pinned || b.Pinned {
			// pinned before unpinned; pinned amongst themselves keep order
			return boolToInt(b.Pinned) - boolToInt(a.Pinned)
		}
		return criterion.compare(a, b)
	})
	s.logger.Info("sorted tabs", "criterion", criterion.String())
	for _, t := range s.tabs {
		s.broker.Publish(pubsub.UpdatedEvent, t)
	}
}

// OpenMany opens a tab per spec. Tabs are inserted adjacent to the last
// current tab unless configured to insert at the start or end; tabs of a
// non-default kind are always appended at the end. Each new tab's width is
// animated from minimal to natural after a short delay, unless the batch is
// large relative to the existing count, in which case animation is skipped
// entirely.
func (s *Service) OpenMany(specs []Spec) {
	existing := len(s.tabs)

	var opened []*Tab
	// cursor keeps consecutive inserts of one batch in batch order
	cursor := -1
	for _, spec := range specs {
		if _, err := s.Get(spec.Handle); err == nil {
			// already open
			continue
		}
		t := &Tab{
			Handle:   spec.Handle,
			Label:    spec.Label,
			Path:     spec.Path,
			Language: spec.Language,
			Window:   spec.Window,
			Kind:     spec.Kind,
		}
		idx := s.insertionIndex(t, cursor)
		s.tabs = slices.Insert(s.tabs, idx, t)
		if t.Kind == Document && !s.insertAtEnd {
			cursor = idx + 1
		}
		opened = append(opened, t)
		s.broker.Publish(pubsub.CreatedEvent, t)
	}
	s.applyPinPrefix()

	s.logger.Info("opened tabs", "added", len(opened))

	if !s.animation {
		return
	}
	if existing <= 1 && len(opened) > 1 {
		// bulk-open: animating each tab of a seed batch is pure overload
		return
	}
	for _, t := range opened {
		s.animateOpen(t.Handle, s.geometry.NaturalWidth(t))
	}
}

// CloseAnimated marks the tab closing, animates its width to zero, then
// removes it. With animation disabled the tab is removed immediately.
func (s *Service) CloseAnimated(handle int) error {
	t, err := s.Get(handle)
	if err != nil {
		return fmt.Errorf("closing tab: %w", err)
	}
	if t.Closing {
		return nil
	}
	if !s.animation {
		s.remove(handle)
		return nil
	}
	t.Closing = true
	from := float64(t.Width(s.geometry.NaturalWidth(t)))
	s.scheduler.Start(closeDuration, from, 0, animate.Integer, func(a *animate.Animation, v float64) {
		t, err := s.Get(handle)
		if err != nil {
			// tab already gone; a normal race during close
			a.Stop()
			return
		}
		if !a.Running() {
			s.remove(handle)
			return
		}
		w := int(v)
		t.WidthOverride = &w
	})
	return nil
}

// CloseCurrent closes the current tab.
func (s *Service) CloseCurrent() error {
	current, ok := s.Current()
	if !ok {
		return errors.New("no current tab")
	}
	return s.CloseAnimated(current.Handle)
}

// CloseOthers closes every tab but the current one. With sparePinned set,
// pinned tabs survive.
func (s *Service) CloseOthers(sparePinned bool) {
	current, _ := s.Current()
	for _, t := range s.List() {
		if t == current {
			continue
		}
		if sparePinned && t.Pinned {
			continue
		}
		_ = s.CloseAnimated(t.Handle)
	}
}

// CloseLeft closes every tab left of the current one.
func (s *Service) CloseLeft() {
	s.closeSide(-1)
}

// CloseRight closes every tab right of the current one.
func (s *Service) CloseRight() {
	s.closeSide(1)
}

func (s *Service) closeSide(direction int) {
	current, ok := s.Current()
	if !ok {
		return
	}
	snapshot := s.List()
	idx := slices.Index(snapshot, current)
	for i, t := range snapshot {
		if direction < 0 && i < idx || direction > 0 && i > idx {
			_ = s.CloseAnimated(t.Handle)
		}
	}
}

// insertionIndex returns where a new tab goes. A cursor of -1 resolves the
// position anew; otherwise the tab continues a batch at the cursor.
func (s *Service) insertionIndex(t *Tab, cursor int) int {
	if t.Kind != Document || s.insertAtEnd {
		return len(s.tabs)
	}
	if cursor >= 0 {
		return cursor
	}
	if s.insertAtStart {
		return s.pinnedPrefixLen()
	}
	for i, existing := range s.tabs {
		if existing.Handle == s.lastCurrent {
			return i + 1
		}
	}
	return len(s.tabs)
}

func (s *Service) animateOpen(handle, natural int) {
	s.scheduler.StartDelayed(openDelay, openDuration, 1, float64(natural), animate.Integer, func(a *animate.Animation, v float64) {
		t, err := s.Get(handle)
		if err != nil {
			// tab closed mid-animation
			a.Stop()
			return
		}
		if !a.Running() {
			t.WidthOverride = nil
			return
		}
		w := int(v)
		t.WidthOverride = &w
	})
}

func (s *Service) startMove(before, after map[int]float64) {
	if s.moveAnim != nil {
		s.moveAnim.Stop()
	}
	s.moveAnim = s.scheduler.Start(moveDuration, 0, 1, animate.Fractional, func(a *animate.Animation, v float64) {
		if !a.Running() {
			for _, t := range s.tabs {
				t.PositionOverride = nil
			}
			if s.moveAnim == a {
				s.moveAnim = nil
			}
			return
		}
		for _, t := range s.tabs {
			b, okb := before[t.Handle]
			n, okn := after[t.Handle]
			if !okb || !okn || b == n {
				continue
			}
			pos := b + (n-b)*v
			t.PositionOverride = &pos
		}
	})
}

func (s *Service) remove(handle int) {
	for i, t := range s.tabs {
		if t.Handle == handle {
			s.tabs = slices.Delete(s.tabs, i, i+1)
			s.logger.Info("closed tab", "handle", t.Handle, "label", t.Label)
			s.broker.Publish(pubsub.DeletedEvent, t)
			return
		}
	}
}

// applyPinPrefix re-establishes the invariant that pinned tabs occupy a
// contiguous prefix of the canonical order.
func (s *Service) applyPinPrefix() {
	slices.SortStableFunc(s.tabs, func(a, b *Tab) int {
		return boolToInt(b.Pinned) - boolToInt(a.Pinned)
	})
}

func (s *Service) pinnedPrefixLen() int {
	for i, t := range s.tabs {
		if !t.Pinned {
			return i
		}
	}
	return len(s.tabs)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
