package service

import (
	"context"
	"sync"

	"lawlex/internal/catalog"
	"lawlex/internal/domain"
	"lawlex/internal/search"

	"go.uber.org/zap"
)

// ViewState is the last query and category a user submitted
type ViewState struct {
	Query    string
	Category domain.Category
}

func defaultViewState() ViewState {
	return ViewState{Category: domain.CategoryAll}
}

type userView struct {
	state ViewState
	view  search.View
}

// Snapshot is an exported copy of the catalog ready for download
type Snapshot struct {
	FileName string
	Data     []byte
	Count    int
}

// GlossaryService handles browsing and editing the term catalog.
// Each user's displayed set is recomputed after every catalog change.
type GlossaryService struct {
	store      *catalog.Store
	source     catalog.Source
	exportName string
	logger     *zap.Logger

	mu    sync.RWMutex
	views map[int64]*userView
}

// NewGlossaryService creates a new glossary service and subscribes it to store changes
func NewGlossaryService(store *catalog.Store, source catalog.Source, exportName string, logger *zap.Logger) *GlossaryService {
	s := &GlossaryService{
		store:      store,
		source:     source,
		exportName: exportName,
		logger:     logger,
		views:      make(map[int64]*userView),
	}
	store.Subscribe(s.refresh)
	return s
}

// refresh re-derives every user's view from the current catalog
func (s *GlossaryService) refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.Snapshot()

	for _, uv := range s.views {
		if err != nil {
			uv.view = search.View{Query: uv.state.Query, Category: uv.state.Category}
			continue
		}
		uv.view = search.Project(entries, uv.state.Query, uv.state.Category)
	}
}

// Load starts (or restarts) the bulk load from the configured source
func (s *GlossaryService) Load(ctx context.Context) error {
	return s.store.LoadFrom(ctx, s.source)
}

// Status reports the catalog load status
func (s *GlossaryService) Status() (catalog.Status, error) {
	return s.store.Status()
}

// ViewState returns the user's last query and category
func (s *GlossaryService) ViewState(userID int64) ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if uv, ok := s.views[userID]; ok {
		return uv.state
	}
	return defaultViewState()
}

// project stores state for the user and returns the freshly derived view
func (s *GlossaryService) project(userID int64, update func(*ViewState)) (search.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Snapshot under s.mu so a concurrent refresh cannot be overwritten by a stale view.
	entries, err := s.store.Snapshot()
	if err != nil {
		return search.View{}, err
	}

	uv, ok := s.views[userID]
	if !ok {
		uv = &userView{state: defaultViewState()}
		s.views[userID] = uv
	}
	if update != nil {
		update(&uv.state)
	}
	uv.view = search.Project(entries, uv.state.Query, uv.state.Category)
	return uv.view, nil
}

// current returns the user's view after a mutation
func (s *GlossaryService) current(userID int64) (search.View, error) {
	s.mu.RLock()
	uv, ok := s.views[userID]
	var view search.View
	if ok {
		view = uv.view
	}
	s.mu.RUnlock()

	if ok {
		return view, nil
	}
	return s.project(userID, nil)
}

// Browse returns the user's view with their last query and category
func (s *GlossaryService) Browse(userID int64) (search.View, error) {
	return s.project(userID, nil)
}

// Search replaces the user's query, keeping the category
func (s *GlossaryService) Search(userID int64, query string) (search.View, error) {
	view, err := s.project(userID, func(st *ViewState) { st.Query = query })
	if err == nil {
		s.logger.Debug("Search",
			zap.Int64("user_id", userID),
			zap.String("query", view.Query),
			zap.Int("count", view.Count),
			zap.Int("total", view.Total),
		)
	}
	return view, err
}

// SetCategory replaces the user's category, keeping the query
func (s *GlossaryService) SetCategory(userID int64, category domain.Category) (search.View, error) {
	return s.project(userID, func(st *ViewState) { st.Category = category })
}

// Reset clears the user's query and category
func (s *GlossaryService) Reset(userID int64) (search.View, error) {
	return s.project(userID, func(st *ViewState) { *st = defaultViewState() })
}

// Suggest returns live suggestions for a partial query
func (s *GlossaryService) Suggest(query string) ([]search.Suggestion, error) {
	entries, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return search.Suggest(entries, query), nil
}

// Term returns a single entry by id
func (s *GlossaryService) Term(id int64) (catalog.Entry, error) {
	return s.store.Get(id)
}

// Add appends a term and returns the user's refreshed view
func (s *GlossaryService) Add(userID int64, term domain.Term) (catalog.Entry, search.View, error) {
	entry, err := s.store.Add(term)
	if err != nil {
		return catalog.Entry{}, search.View{}, err
	}

	view, err := s.current(userID)
	return entry, view, err
}

// Update replaces the term with the given id and returns the user's refreshed view
func (s *GlossaryService) Update(userID int64, id int64, term domain.Term) (catalog.Entry, search.View, error) {
	entry, err := s.store.UpdateByID(id, term)
	if err != nil {
		return catalog.Entry{}, search.View{}, err
	}

	view, err := s.current(userID)
	return entry, view, err
}

// Delete removes the term with the given id and returns the user's refreshed view
func (s *GlossaryService) Delete(userID int64, id int64) (domain.Term, search.View, error) {
	term, err := s.store.DeleteByID(id)
	if err != nil {
		return domain.Term{}, search.View{}, err
	}

	view, err := s.current(userID)
	return term, view, err
}

// Export serializes the full catalog for download
func (s *GlossaryService) Export() (Snapshot, error) {
	data, err := s.store.Export()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		FileName: s.exportName,
		Data:     data,
		Count:    s.store.Len(),
	}, nil
}
