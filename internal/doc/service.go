// Package doc is the host side of the tabline's document boundary: a small
// in-memory store of open documents, identified by stable numeric handles,
// publishing an event whenever one is opened, changed or closed.
package doc

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/kmaicher/tabline/internal/logging"
	"github.com/kmaicher/tabline/internal/pubsub"
	"golang.org/x/exp/maps"
)

var ErrNotFound = errors.New("document not found")

// Document is one open host document.
type Document struct {
	ID uuid.UUID
	// Handle is the stable numeric identifier the tabline refers to the
	// document by.
	Handle int

	Name     string
	Path     string
	Language string
	Window   int
	Modified bool
	// Terminal documents are appended at the end of the tabline.
	Terminal bool
}

func (d *Document) String() string {
	return fmt.Sprintf("%s (%d)", d.Name, d.Handle)
}

type Service struct {
	docs   map[int]*Document
	broker *pubsub.Broker[*Document]
	logger logging.Interface

	nextHandle int
	current    int

	page, pages int
}

func NewService(logger logging.Interface) *Service {
	return &Service{
		docs:   make(map[int]*Document),
		broker: pubsub.NewBroker[*Document](logger),
		logger: logger,
		pages:  1,
		page:   1,
	}
}

// Broker exposes the broker through which document events are published.
func (s *Service) Broker() *pubsub.Broker[*Document] {
	return s.broker
}

// Open opens a document, assigning it the next free handle.
func (s *Service) Open(name, path, language string) *Document {
	s.nextHandle++
	d := &Document{
		ID:       uuid.New(),
		Handle:   s.nextHandle,
		Name:     name,
		Path:     path,
		Language: language,
		Window:   1,
	}
	s.docs[d.Handle] = d
	s.logger.Info("opened document", "doc", d)
	s.broker.Publish(pubsub.CreatedEvent, d)
	return d
}

// Close closes a document.
func (s *Service) Close(handle int) error {
	d, ok := s.docs[handle]
	if !ok {
		return fmt.Errorf("%d: %w", handle, ErrNotFound)
	}
	delete(s.docs, handle)
	if s.current == handle {
		s.current = 0
	}
	s.logger.Info("closed document", "doc", d)
	s.broker.Publish(pubsub.DeletedEvent, d)
	return nil
}

// SetCurrent focuses a document.
func (s *Service) SetCurrent(handle int) error {
	if _, ok := s.docs[handle]; !ok {
		return fmt.Errorf("%d: %w", handle, ErrNotFound)
	}
	s.current = handle
	return nil
}

// Current returns the handle of the focused document, zero if none.
func (s *Service) Current() int {
	return s.current
}

// SetModified flips a document's modified flag.
func (s *Service) SetModified(handle int, modified bool) error {
	d, ok := s.docs[handle]
	if !ok {
		return fmt.Errorf("%d: %w", handle, ErrNotFound)
	}
	d.Modified = modified
	s.broker.Publish(pubsub.UpdatedEvent, d)
	return nil
}

// SetTabpages sets the host's page indicator values.
func (s *Service) SetTabpages(page, pages int) {
	s.page = page
	s.pages = pages
}

// List returns open documents ordered by handle.
func (s *Service) List() []*Document {
	docs := maps.Values(s.docs)
	slices.SortFunc(docs, func(a, b *Document) int {
		return a.Handle - b.Handle
	})
	return docs
}

// Get retrieves a document by handle.
func (s *Service) Get(handle int) (*Document, error) {
	d, ok := s.docs[handle]
	if !ok {
		return nil, fmt.Errorf("%d: %w", handle, ErrNotFound)
	}
	return d, nil
}

// Name implements the tabline's document provider boundary.
func (s *Service) Name(handle int) (string, error) {
	d, err := s.Get(handle)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

// Modified implements the tabline's document provider boundary.
func (s *Service) Modified(handle int) (bool, error) {
	d, err := s.Get(handle)
	if err != nil {
		return false, err
	}
	return d.Modified, nil
}

// Tabpages implements the tabline's document provider boundary.
func (s *Service) Tabpages() (current, total int) {
	return s.page, s.pages
}
