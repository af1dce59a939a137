package domain

import "sort"

// Facets - отсортированные уникальные значения для наполнения фильтров
type Facets struct {
	Specialties []string `json:"specialties"`
	Lakes       []string `json:"lakes"`
	Tags        []string `json:"tags"`
}

// DeriveFacets собирает уникальные специализации, озера и теги каталога.
// Сортировка по возрастанию, побайтно по исходной строке.
func DeriveFacets(locations []Location) Facets {
	specialties := make(map[string]struct{})
	lakes := make(map[string]struct{})
	tags := make(map[string]struct{})

	for i := range locations {
		loc := &locations[i]
		for _, s := range loc.Specialties {
			specialties[s] = struct{}{}
		}
		if loc.HasLake() {
			lakes[*loc.Lake] = struct{}{}
		}
		for _, t := range loc.Tags {
			tags[t] = struct{}{}
		}
	}

	return Facets{
		Specialties: sortedKeys(specialties),
		Lakes:       sortedKeys(lakes),
		Tags:        sortedKeys(tags),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
