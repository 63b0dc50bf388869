package search

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"github.com/deaduz/eduadmin/internal/domain"
)

// EntryKind distinguishes what an index entry points at.
type EntryKind string

const (
	KindCourse   EntryKind = "course"
	KindInterest EntryKind = "interest"
)

// Entry is one searchable item.
type Entry struct {
	Kind EntryKind
	ID   string
	Name string
}

// Result is a match with metadata for highlighting.
type Result struct {
	Entry
	MatchedIndexes []int // Rune positions in Name that matched
	Score          int   // Higher is better
}

// index implements sahilm/fuzzy.Source over pre-lowered names.
type index struct {
	entries    []Entry
	lowerNames []string
}

func (idx *index) String(i int) string { return idx.lowerNames[i] }
func (idx *index) Len() int            { return len(idx.entries) }

// Service is an in-memory fuzzy index over the admin's course titles
// and interest names. It is fed from cached collection reads and
// rebuilt per kind, so it is never fresher than the cache but never
// issues its own backend calls.
type Service struct {
	mu     sync.RWMutex
	byKind map[EntryKind][]Entry
	idx    *index
	logger *slog.Logger
}

// NewService creates an empty search service.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{byKind: make(map[EntryKind][]Entry), idx: &index{}, logger: logger}
}

// IndexCourses replaces the course entries with the given collection.
func (s *Service) IndexCourses(courses []domain.Course) {
	entries := make([]Entry, 0, len(courses))
	for _, c := range courses {
		entries = append(entries, Entry{Kind: KindCourse, ID: c.ID, Name: c.Title})
	}
	s.replace(KindCourse, entries)
}

// IndexInterests replaces the interest entries with the given catalog.
func (s *Service) IndexInterests(interests []domain.Interest) {
	entries := make([]Entry, 0, len(interests))
	for _, in := range interests {
		entries = append(entries, Entry{Kind: KindInterest, ID: in.ID, Name: in.Name})
	}
	s.replace(KindInterest, entries)
}

// Clear drops the whole index. Called alongside a cache purge.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKind = make(map[EntryKind][]Entry)
	s.idx = &index{}
	s.logger.Debug("search index cleared")
}

// Count returns the number of indexed entries.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Len()
}

func (s *Service) replace(kind EntryKind, entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKind[kind] = entries

	idx := &index{}
	for _, kindEntries := range s.byKind {
		for _, e := range kindEntries {
			idx.entries = append(idx.entries, e)
			idx.lowerNames = append(idx.lowerNames, strings.ToLower(e.Name))
		}
	}
	s.idx = idx
	s.logger.Debug("search index rebuilt", "kind", kind, "entries", len(entries), "total", idx.Len())
}

// Search returns entries matching the query as a subsequence, best
// first, with matched rune positions for highlighting. When nothing
// matches as a subsequence it falls back to Levenshtein ranking so a
// typo like "englsh" still finds "English".
func (s *Service) Search(query string) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.idx.Len() == 0 {
		return nil
	}

	matches := sahilm.FindFrom(query, s.idx)
	if len(matches) == 0 {
		return s.nearMatches(query)
	}

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Entry:          s.idx.entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// nearMatches ranks by edit distance, closest first. It catches typos
// like transpositions that break subsequence matching. Caller holds mu.
func (s *Service) nearMatches(query string) []Result {
	var results []Result
	for i, name := range s.idx.lowerNames {
		d := fuzzy.LevenshteinDistance(query, name)
		// Compare against each word of the name too, so "grammr"
		// finds "English Grammar" despite the long full name.
		for _, word := range strings.Fields(name) {
			if wd := fuzzy.LevenshteinDistance(query, word); wd < d {
				d = wd
			}
		}
		if d > maxDistance(query) {
			continue
		}
		results = append(results, Result{Entry: s.idx.entries[i], Score: -d})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

// maxDistance caps typo tolerance by query length: short queries get
// one edit, longer ones two.
func maxDistance(query string) int {
	if len(query) <= 4 {
		return 1
	}
	return 2
}
