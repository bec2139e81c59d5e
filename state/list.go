// Package state provides UI-framework-independent state holders that
// mediate between API calls and on-screen lists.
package state

import (
	"context"
	"sync"

	"github.com/swiftlydeveloped/feedbackkit-go/apierror"
	"github.com/swiftlydeveloped/feedbackkit-go/models"
)

// Lister is the slice of the feedback API the list state depends on.
// *feedbackkit.FeedbackAPI satisfies it.
type Lister interface {
	List(ctx context.Context, opts models.ListFeedbackOptions) ([]models.Feedback, error)
}

// Phase is the coarse display state derived from a Snapshot.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseRefreshing
	PhaseError
	PhaseReady
)

// Snapshot is an immutable view of the list state at one point in time.
type Snapshot struct {
	Items          []models.Feedback
	Loading        bool
	Refreshing     bool
	Err            *apierror.Error
	StatusFilter   models.FeedbackStatus
	CategoryFilter models.FeedbackCategory
}

// Phase derives the display phase. Items present win over a stored error:
// a failed refresh keeps showing the last good list.
func (s Snapshot) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Refreshing:
		return PhaseRefreshing
	case len(s.Items) > 0:
		return PhaseReady
	case s.Err != nil:
		return PhaseError
	default:
		return PhaseIdle
	}
}

// ListState coordinates load, refresh and filter changes for one feedback
// list, with in-place mutation helpers for optimistic updates.
//
// Load and Refresh block until the fetch completes; callers that need them
// off the main flow run them in a goroutine. Only one load-type operation
// is in flight at a time: starting a new one cancels the previous, and a
// stale completion is discarded by generation check rather than applied.
type ListState struct {
	lister Lister

	mu             sync.Mutex
	items          []models.Feedback
	loading        bool
	refreshing     bool
	err            *apierror.Error
	statusFilter   models.FeedbackStatus
	categoryFilter models.FeedbackCategory
	gen            uint64
	cancel         context.CancelFunc
	onChange       func(Snapshot)
}

// NewListState creates a list state backed by the given lister.
func NewListState(lister Lister) *ListState {
	return &ListState{lister: lister}
}

// OnChange registers a callback invoked after every state change. The
// callback runs without the internal lock held.
func (s *ListState) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns the current state.
func (s *ListState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ListState) snapshotLocked() Snapshot {
	items := make([]models.Feedback, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:          items,
		Loading:        s.loading,
		Refreshing:     s.refreshing,
		Err:            s.err,
		StatusFilter:   s.statusFilter,
		CategoryFilter: s.categoryFilter,
	}
}

func (s *ListState) notify(snap Snapshot, fn func(Snapshot)) {
	if fn != nil {
		fn(snap)
	}
}

// Load fetches the list with the given filters, replacing the items and the
// remembered filters on success. On failure the previous items stay
// untouched and the classified error is stored.
func (s *ListState) Load(ctx context.Context, status models.FeedbackStatus, category models.FeedbackCategory) {
	s.fetch(ctx, status, category, false)
}

// Refresh re-fetches with the remembered filters. Unlike Load it keeps the
// filters and raises the refreshing indicator instead of the loading one.
func (s *ListState) Refresh(ctx context.Context) {
	s.mu.Lock()
	status, category := s.statusFilter, s.categoryFilter
	s.mu.Unlock()
	s.fetch(ctx, status, category, true)
}

// FilterByStatus reloads with a new status filter, keeping the category.
func (s *ListState) FilterByStatus(ctx context.Context, status models.FeedbackStatus) {
	s.mu.Lock()
	category := s.categoryFilter
	s.mu.Unlock()
	s.Load(ctx, status, category)
}

// FilterByCategory reloads with a new category filter, keeping the status.
func (s *ListState) FilterByCategory(ctx context.Context, category models.FeedbackCategory) {
	s.mu.Lock()
	status := s.statusFilter
	s.mu.Unlock()
	s.Load(ctx, status, category)
}

// ClearFilters reloads without filters.
func (s *ListState) ClearFilters(ctx context.Context) {
	s.Load(ctx, "", "")
}

func (s *ListState) fetch(ctx context.Context, status models.FeedbackStatus, category models.FeedbackCategory, refresh bool) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.loading = !refresh
	s.refreshing = refresh
	s.err = nil
	snap, fn := s.snapshotLocked(), s.onChange
	s.mu.Unlock()
	s.notify(snap, fn)

	items, err := s.lister.List(fetchCtx, models.ListFeedbackOptions{
		Status:   status,
		Category: category,
	})

	s.mu.Lock()
	if gen != s.gen {
		// Superseded by a newer load; the newer operation owns the
		// state now, so this result is dropped.
		s.mu.Unlock()
		cancel()
		return
	}
	s.loading = false
	s.refreshing = false
	s.cancel = nil
	if err != nil {
		s.err = apierror.FromError(err)
	} else {
		s.items = items
		if !refresh {
			s.statusFilter = status
			s.categoryFilter = category
		}
	}
	snap, fn = s.snapshotLocked(), s.onChange
	s.mu.Unlock()
	cancel()
	s.notify(snap, fn)
}

// UpdateFeedback replaces the item with a matching id in place, preserving
// order. Items without a match are left alone.
func (s *ListState) UpdateFeedback(updated models.Feedback) {
	s.mu.Lock()
	for i, item := range s.items {
		if item.ID == updated.ID {
			s.items[i] = updated
			break
		}
	}
	snap, fn := s.snapshotLocked(), s.onChange
	s.mu.Unlock()
	s.notify(snap, fn)
}

// AddFeedback prepends a new item.
func (s *ListState) AddFeedback(item models.Feedback) {
	s.mu.Lock()
	s.items = append([]models.Feedback{item}, s.items...)
	snap, fn := s.snapshotLocked(), s.onChange
	s.mu.Unlock()
	s.notify(snap, fn)
}

// RemoveFeedback filters out the item with the given id.
func (s *ListState) RemoveFeedback(id string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	snap, fn := s.snapshotLocked(), s.onChange
	s.mu.Unlock()
	s.notify(snap, fn)
}

// ClearError drops the stored error.
func (s *ListState) ClearError() {
	s.mu.Lock()
	s.err = nil
	snap, fn := s.snapshotLocked(), s.onChange
	s.mu.Unlock()
	s.notify(snap, fn)
}
