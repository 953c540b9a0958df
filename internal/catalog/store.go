package catalog

import (
	"context"
	"fmt"
	"sync"

	"lawlex/internal/domain"

	"go.uber.org/zap"
)

// Status describes the load lifecycle of a Store
type Status string

const (
	StatusEmpty   Status = "empty"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Entry is a term together with its identity in the catalog.
// Position is only valid until the next mutation.
type Entry struct {
	ID       int64
	Position int
	Term     domain.Term
}

// Source yields the initial term list
type Source interface {
	FetchTerms(ctx context.Context) ([]domain.Term, error)
	Name() string
}

type record struct {
	id   int64
	term domain.Term
}

// Store is the sole owner of the ordered term sequence.
// All access goes through its methods.
type Store struct {
	logger *zap.Logger

	mu        sync.RWMutex
	records   []record
	nextID    int64
	status    Status
	lastErr   error
	loadGen   uint64
	listeners []func()
}

// NewStore creates an empty store
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		logger: logger,
		nextID: 1,
		status: StatusEmpty,
	}
}

// Subscribe registers fn to run after every successful load or mutation.
// Listeners run outside the store lock.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// Status returns the load status and the error of the last failed load
func (s *Store) Status() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.lastErr
}

// Len returns the number of terms
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Load replaces the catalog wholesale. Every record must have a non-empty
// word and definition; otherwise the catalog is left empty and a
// *domain.LoadError is returned.
func (s *Store) Load(terms []domain.Term) error {
	s.mu.Lock()
	s.loadGen++
	err := s.replaceLocked(terms, "")
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// LoadFrom fetches terms from src and replaces the catalog with them.
// If another load starts before this one finishes, the later one wins and
// this call returns domain.ErrSuperseded without touching the catalog.
func (s *Store) LoadFrom(ctx context.Context, src Source) error {
	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.status = StatusLoading
	s.lastErr = nil
	s.mu.Unlock()

	s.logger.Info("Loading dictionary", zap.String("source", src.Name()))

	terms, fetchErr := src.FetchTerms(ctx)

	s.mu.Lock()
	if gen != s.loadGen {
		s.mu.Unlock()
		s.logger.Info("Discarding superseded load", zap.String("source", src.Name()))
		return domain.ErrSuperseded
	}

	var err error
	if fetchErr != nil {
		err = s.failLocked(domain.NewLoadError(src.Name(), fetchErr))
	} else {
		err = s.replaceLocked(terms, src.Name())
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Failed to load dictionary", zap.String("source", src.Name()), zap.Error(err))
		return err
	}

	s.logger.Info("Loaded legal terms", zap.String("source", src.Name()), zap.Int("count", len(terms)))
	s.notify()
	return nil
}

func (s *Store) replaceLocked(terms []domain.Term, source string) error {
	records := make([]record, 0, len(terms))
	for i, t := range terms {
		if err := t.Validate(); err != nil {
			return s.failLocked(domain.NewLoadError(source, fmt.Errorf("record %d: %w", i, err)))
		}
		records = append(records, record{id: s.nextID, term: t})
		s.nextID++
	}

	s.records = records
	s.status = StatusReady
	s.lastErr = nil
	return nil
}

func (s *Store) failLocked(err error) error {
	s.records = nil
	s.status = StatusFailed
	s.lastErr = err
	return err
}

func (s *Store) readyLocked() error {
	if s.status != StatusReady {
		return domain.ErrNotReady
	}
	return nil
}

// Snapshot returns the current entries in catalog order
func (s *Store) Snapshot() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.readyLocked(); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(s.records))
	for i, r := range s.records {
		entries[i] = Entry{ID: r.id, Position: i, Term: r.term}
	}
	return entries, nil
}

// Terms returns a copy of the term sequence
func (s *Store) Terms() ([]domain.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.readyLocked(); err != nil {
		return nil, err
	}

	terms := make([]domain.Term, len(s.records))
	for i, r := range s.records {
		terms[i] = r.term
	}
	return terms, nil
}

// Get returns the entry with the given id
func (s *Store) Get(id int64) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.readyLocked(); err != nil {
		return Entry{}, err
	}

	pos, err := s.positionLocked(id)
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: id, Position: pos, Term: s.records[pos].term}, nil
}

// PositionOf resolves an id to its current position
func (s *Store) PositionOf(id int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.readyLocked(); err != nil {
		return 0, err
	}
	return s.positionLocked(id)
}

func (s *Store) positionLocked(id int64) (int, error) {
	for i, r := range s.records {
		if r.id == id {
			return i, nil
		}
	}
	return 0, &domain.NotFoundError{ID: id}
}

func (s *Store) checkPositionLocked(pos int) error {
	if pos < 0 || pos >= len(s.records) {
		return &domain.NotFoundError{Position: pos}
	}
	return nil
}

// Add appends a term and returns its entry
func (s *Store) Add(term domain.Term) (Entry, error) {
	term = term.Normalize()
	if err := term.Validate(); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	if err := s.readyLocked(); err != nil {
		s.mu.Unlock()
		return Entry{}, err
	}
	entry := Entry{ID: s.nextID, Position: len(s.records), Term: term}
	s.records = append(s.records, record{id: entry.ID, term: term})
	s.nextID++
	s.mu.Unlock()

	s.logger.Info("Term added",
		zap.Int64("term_id", entry.ID),
		zap.Int("position", entry.Position),
		zap.String("word", term.Word),
	)
	s.notify()
	return entry, nil
}

// Update overwrites the term at pos in place
func (s *Store) Update(pos int, term domain.Term) error {
	term = term.Normalize()
	if err := term.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if err := s.readyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.checkPositionLocked(pos); err != nil {
		s.mu.Unlock()
		return err
	}
	s.records[pos].term = term
	id := s.records[pos].id
	s.mu.Unlock()

	s.logger.Info("Term updated",
		zap.Int64("term_id", id),
		zap.Int("position", pos),
		zap.String("word", term.Word),
	)
	s.notify()
	return nil
}

// UpdateByID overwrites the term with the given id
func (s *Store) UpdateByID(id int64, term domain.Term) (Entry, error) {
	term = term.Normalize()
	if err := term.Validate(); err != nil {
		return Entry{}, err
	}

	s.mu.Lock()
	if err := s.readyLocked(); err != nil {
		s.mu.Unlock()
		return Entry{}, err
	}
	pos, err := s.positionLocked(id)
	if err != nil {
		s.mu.Unlock()
		return Entry{}, err
	}
	s.records[pos].term = term
	s.mu.Unlock()

	s.logger.Info("Term updated",
		zap.Int64("term_id", id),
		zap.Int("position", pos),
		zap.String("word", term.Word),
	)
	s.notify()
	return Entry{ID: id, Position: pos, Term: term}, nil
}

// DeleteAt removes the term at pos; later positions shift down by one
func (s *Store) DeleteAt(pos int) error {
	s.mu.Lock()
	if err := s.readyLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.checkPositionLocked(pos); err != nil {
		s.mu.Unlock()
		return err
	}
	removed := s.removeLocked(pos)
	s.mu.Unlock()

	s.logger.Info("Term deleted",
		zap.Int64("term_id", removed.id),
		zap.Int("position", pos),
		zap.String("word", removed.term.Word),
	)
	s.notify()
	return nil
}

// DeleteByID removes the term with the given id
func (s *Store) DeleteByID(id int64) (domain.Term, error) {
	s.mu.Lock()
	if err := s.readyLocked(); err != nil {
		s.mu.Unlock()
		return domain.Term{}, err
	}
	pos, err := s.positionLocked(id)
	if err != nil {
		s.mu.Unlock()
		return domain.Term{}, err
	}
	removed := s.removeLocked(pos)
	s.mu.Unlock()

	s.logger.Info("Term deleted",
		zap.Int64("term_id", id),
		zap.Int("position", pos),
		zap.String("word", removed.term.Word),
	)
	s.notify()
	return removed.term, nil
}

func (s *Store) removeLocked(pos int) record {
	removed := s.records[pos]
	s.records = append(s.records[:pos], s.records[pos+1:]...)
	return removed
}

// Export serializes the whole catalog for download. It does not mutate.
func (s *Store) Export() ([]byte, error) {
	terms, err := s.Terms()
	if err != nil {
		return nil, err
	}
	return Encode(terms)
}
