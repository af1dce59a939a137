package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterSelection - выбранные значения фильтров. Пустой список = без ограничения.
//
// Tags хранится и отображается, но предикатом не учитывается: семантика
// (AND/OR между тегами) не определена.
type FilterSelection struct {
	Types       []string `json:"types"`
	Specialties []string `json:"specialties"`
	Lakes       []string `json:"lakes"`
	Tags        []string `json:"tags"`
}

// Normalize заменяет nil-списки пустыми, чтобы в JSON всегда были массивы
func (f FilterSelection) Normalize() FilterSelection {
	if f.Types == nil {
		f.Types = []string{}
	}
	if f.Specialties == nil {
		f.Specialties = []string{}
	}
	if f.Lakes == nil {
		f.Lakes = []string{}
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return f
}

// IsEmpty reports whether no facet is constrained
func (f FilterSelection) IsEmpty() bool {
	return len(f.Types) == 0 && len(f.Specialties) == 0 && len(f.Lakes) == 0 && len(f.Tags) == 0
}

// Matcher - предикат с заранее приведёнными к нижнему регистру терминами.
// Не разделяется между горутинами.
type Matcher struct {
	lower       cases.Caser
	term        string
	types       map[string]struct{}
	specialties map[string]struct{}
	lakes       map[string]struct{}
}

// NewMatcher подготавливает предикат для поискового запроса и выбора фильтров
func NewMatcher(searchTerm string, filters FilterSelection) *Matcher {
	m := &Matcher{lower: cases.Lower(language.Und)}
	m.term = m.lower.String(searchTerm)
	m.types = m.lowerSet(filters.Types)
	m.specialties = m.lowerSet(filters.Specialties)
	m.lakes = m.lowerSet(filters.Lakes)
	return m
}

func (m *Matcher) lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[m.lower.String(v)] = struct{}{}
	}
	return set
}

func (m *Matcher) in(set map[string]struct{}, v string) bool {
	_, ok := set[m.lower.String(v)]
	return ok
}

// Match проверяет одну локацию. Все проверки регистронезависимы и объединяются через AND,
// внутри одной категории - через OR.
func (m *Matcher) Match(loc *Location) bool {
	return m.matchText(loc) &&
		m.matchType(loc) &&
		m.matchSpecialties(loc) &&
		m.matchLake(loc)
}

func (m *Matcher) matchText(loc *Location) bool {
	if m.term == "" {
		return true
	}
	if strings.Contains(m.lower.String(loc.Name), m.term) {
		return true
	}
	for _, s := range loc.Specialties {
		if strings.Contains(m.lower.String(s), m.term) {
			return true
		}
	}
	return false
}

func (m *Matcher) matchType(loc *Location) bool {
	if len(m.types) == 0 {
		return true
	}
	return m.in(m.types, loc.Type)
}

func (m *Matcher) matchSpecialties(loc *Location) bool {
	if len(m.specialties) == 0 {
		return true
	}
	for _, s := range loc.Specialties {
		if m.in(m.specialties, s) {
			return true
		}
	}
	return false
}

func (m *Matcher) matchLake(loc *Location) bool {
	if len(m.lakes) == 0 {
		return true
	}
	return loc.HasLake() && m.in(m.lakes, *loc.Lake)
}

// Matches is the one-shot form of the predicate
func Matches(loc *Location, searchTerm string, filters FilterSelection) bool {
	return NewMatcher(searchTerm, filters).Match(loc)
}

// FilterLocations оставляет подходящие локации в исходном порядке каталога
func FilterLocations(locations []Location, searchTerm string, filters FilterSelection) []Location {
	m := NewMatcher(searchTerm, filters)
	out := make([]Location, 0, len(locations))
	for i := range locations {
		if m.Match(&locations[i]) {
			out = append(out, locations[i])
		}
	}
	return out
}
