package domain

// Tag vocabulary
const (
	TagFood           = "food"
	TagLakeView       = "lakeView"
	TagTours          = "tours"
	TagLiveMusic      = "liveMusic"
	TagFamilyFriendly = "familyFriendly"
	TagEvents         = "events"
	TagTastingRoom    = "tastingRoom"
	TagBeer           = "beer"
	TagWine           = "wine"
	TagCocktails      = "cocktails"
	TagSpirits        = "spirits"
)

// TagInfo - подпись и цветовой класс бейджа тега
type TagInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var tagVocabulary = map[string]TagInfo{
	TagFood:           {Label: "Food", Color: "bg-green-100 text-green-800"},
	TagLakeView:       {Label: "Lake View", Color: "bg-blue-100 text-blue-800"},
	TagTours:          {Label: "Tours", Color: "bg-purple-100 text-purple-800"},
	TagLiveMusic:      {Label: "Live Music", Color: "bg-pink-100 text-pink-800"},
	TagFamilyFriendly: {Label: "Family Friendly", Color: "bg-yellow-100 text-yellow-800"},
	TagEvents:         {Label: "Events", Color: "bg-orange-100 text-orange-800"},
	TagTastingRoom:    {Label: "Tasting Room", Color: "bg-red-100 text-red-800"},
	TagBeer:           {Label: "Beer", Color: "bg-yellow-100 text-yellow-800"},
	TagWine:           {Label: "Wine", Color: "bg-purple-100 text-purple-800"},
	TagCocktails:      {Label: "Cocktails", Color: "bg-brown-100 text-brown-800"},
	TagSpirits:        {Label: "Spirits", Color: "bg-violet-100 text-violet-800"},
}

// LookupTag возвращает метаданные тега. Второе значение false для тега вне словаря,
// в этом случае подпись и цвет пустые.
func LookupTag(tag string) (TagInfo, bool) {
	info, ok := tagVocabulary[tag]
	return info, ok
}

// TagVocabulary returns a copy of the known tags and their metadata
func TagVocabulary() map[string]TagInfo {
	out := make(map[string]TagInfo, len(tagVocabulary))
	for k, v := range tagVocabulary {
		out[k] = v
	}
	return out
}
