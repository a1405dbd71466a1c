package joke

import "maps"

// Status is the disclosure state of a single category row.
type Status int

const (
	Collapsed Status = iota
	ExpandedLoading
	ExpandedLoaded
	ExpandedEmpty
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case ExpandedLoading:
		return "expanded-loading"
	case ExpandedLoaded:
		return "expanded-loaded"
	case ExpandedEmpty:
		return "expanded-empty"
	default:
		return "unknown"
	}
}

// State is the browse state shared by every category row.
//
// State is a value. Reducers return a new State and never write through the
// receiver's maps or slices, so a State handed to a view or a test stays
// stable.
type State struct {
	Categories []string
	Jokes      map[string][]string
	Loading    map[string]bool
	Expanded   map[string]bool

	// Generation is bumped by Reset. Fetches remember the generation they
	// were started under so late results can be recognised.
	Generation uint64
	Refreshing bool

	Selected  string
	ModalOpen bool
}

// NewState returns an empty browse state.
func NewState() State {
	return State{
		Jokes:    map[string][]string{},
		Loading:  map[string]bool{},
		Expanded: map[string]bool{},
	}
}

// WithCategories replaces the category list.
func (s State) WithCategories(names []string) State {
	s.Categories = append([]string(nil), names...)
	return s
}

// MoveToTop pins name to the head of the category list.
func (s State) MoveToTop(name string) State {
	s.Categories = MoveToTop(s.Categories, name)
	return s
}

// ToggleExpanded flips the expand flag for category. The boolean result
// reports whether the category now needs its first load: it expanded, has
// never been loaded and has no fetch in flight.
func (s State) ToggleExpanded(category string) (State, bool) {
	expanded := !s.Expanded[category]
	s.Expanded = withFlag(s.Expanded, category, expanded)
	_, cached := s.Jokes[category]
	return s, expanded && !cached && !s.Loading[category]
}

// StartFetch marks category as loading.
func (s State) StartFetch(category string) State {
	s.Loading = withFlag(s.Loading, category, true)
	return s
}

// FinishFetch clears the loading flag for category.
func (s State) FinishFetch(category string) State {
	s.Loading = withFlag(s.Loading, category, false)
	return s
}

// ApplyJokes stores fetched jokes for category. With appendMode the jokes
// are added after whatever is cached; otherwise they replace it.
func (s State) ApplyJokes(category string, jokes []string, appendMode bool) State {
	var next []string
	if appendMode {
		prev := s.Jokes[category]
		next = make([]string, 0, len(prev)+len(jokes))
		next = append(next, prev...)
	} else {
		next = make([]string, 0, len(jokes))
	}
	next = append(next, jokes...)

	cloned := maps.Clone(s.Jokes)
	if cloned == nil {
		cloned = map[string][]string{}
	}
	cloned[category] = next
	s.Jokes = cloned
	return s
}

// Reset drops categories, cached jokes and all per-category flags and
// starts a new generation. The modal is left as it is.
func (s State) Reset() State {
	s.Categories = nil
	s.Jokes = map[string][]string{}
	s.Loading = map[string]bool{}
	s.Expanded = map[string]bool{}
	s.Generation++
	s.Refreshing = true
	return s
}

// SetRefreshing sets the refresh indicator.
func (s State) SetRefreshing(refreshing bool) State {
	s.Refreshing = refreshing
	return s
}

// SelectJoke stores text as the current selection.
func (s State) SelectJoke(text string) State {
	s.Selected = text
	return s
}

// OpenModal shows the joke modal.
func (s State) OpenModal() State {
	s.ModalOpen = true
	return s
}

// CloseModal hides the joke modal. The selection is kept.
func (s State) CloseModal() State {
	s.ModalOpen = false
	return s
}

// IsCurrent reports whether generation matches the live generation.
func (s State) IsCurrent(generation uint64) bool {
	return s.Generation == generation
}

// CachedJokes returns the cached jokes for category and whether the
// category was ever loaded.
func (s State) CachedJokes(category string) ([]string, bool) {
	jokes, ok := s.Jokes[category]
	return jokes, ok
}

// IsLoading reports whether a fetch for category is in flight.
func (s State) IsLoading(category string) bool {
	return s.Loading[category]
}

// IsExpanded reports whether category is expanded.
func (s State) IsExpanded(category string) bool {
	return s.Expanded[category]
}

// CanLoadMore reports whether more jokes may be appended to category.
// A category qualifies once loaded, while idle and below limit. A limit of
// zero or less means no limit.
func (s State) CanLoadMore(category string, limit int) bool {
	jokes, ok := s.Jokes[category]
	if !ok || s.Loading[category] {
		return false
	}
	return limit <= 0 || len(jokes) < limit
}

// Busy reports whether any fetch is in flight.
func (s State) Busy() bool {
	if s.Refreshing {
		return true
	}
	for _, loading := range s.Loading {
		if loading {
			return true
		}
	}
	return false
}

// LoadingCategories returns the categories with a fetch in flight, in list
// order.
func (s State) LoadingCategories() []string {
	var out []string
	for _, c := range s.Categories {
		if s.Loading[c] {
			out = append(out, c)
		}
	}
	return out
}

// Status derives the row state for category.
func (s State) Status(category string) Status {
	switch {
	case !s.Expanded[category]:
		return Collapsed
	case s.Loading[category]:
		return ExpandedLoading
	case len(s.Jokes[category]) > 0:
		return ExpandedLoaded
	default:
		return ExpandedEmpty
	}
}

func withFlag(flags map[string]bool, key string, value bool) map[string]bool {
	cloned := maps.Clone(flags)
	if cloned == nil {
		cloned = map[string]bool{}
	}
	cloned[key] = value
	return cloned
}
