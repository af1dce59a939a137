package dto

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/connectflx/discovery-service/internal/domain"
)

// maxRowTags - сколько бейджей тегов показывает строка списка
const maxRowTags = 3

// Presenter строит проекции представлений из записей каталога
type Presenter struct {
	placeholderImage string
	policy           domain.MapPolicy
}

func NewPresenter(placeholderImage string, policy domain.MapPolicy) *Presenter {
	return &Presenter{
		placeholderImage: placeholderImage,
		policy:           policy,
	}
}

func isSelected(id int64, selectedID *int64) bool {
	return selectedID != nil && *selectedID == id
}

// RatingDisplay форматирует рейтинг с одним знаком после запятой.
// Округление как у toFixed(1): по точному десятичному значению, половина вверх.
func RatingDisplay(rating float64) string {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return fmt.Sprintf("%.1f", rating)
	}

	sign := ""
	if rating < 0 {
		sign = "-"
		rating = -rating
	}

	// 1100 знаков хватает для точной записи любого float64
	exact := strconv.FormatFloat(rating, 'f', 1100, 64)
	dot := strings.IndexByte(exact, '.')
	tenths, err := strconv.ParseInt(exact[:dot]+exact[dot+1:dot+2], 10, 64)
	if err != nil {
		return fmt.Sprintf("%.1f", rating)
	}
	if exact[dot+2] >= '5' {
		tenths++
	}
	if tenths == 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%d.%d", sign, tenths/10, tenths%10)
}

// Badge возвращает бейдж тега, для неизвестного тега подпись и цвет пустые
func Badge(tag string) TagBadge {
	info, _ := domain.LookupTag(tag)
	return TagBadge{Value: tag, Label: info.Label, Color: info.Color}
}

func badges(tags []string) []TagBadge {
	out := make([]TagBadge, 0, len(tags))
	for _, t := range tags {
		out = append(out, Badge(t))
	}
	return out
}

func specialties(loc *domain.Location) []string {
	if loc.Specialties == nil {
		return []string{}
	}
	return loc.Specialties
}

func (p *Presenter) Row(loc *domain.Location, selectedID *int64) LocationRow {
	meta := domain.LookupType(loc.Type)

	shown := loc.Tags
	more := 0
	if len(shown) > maxRowTags {
		more = len(shown) - maxRowTags
		shown = shown[:maxRowTags]
	}

	return LocationRow{
		ID:                 loc.ID,
		Name:               loc.Name,
		Type:               loc.Type,
		Icon:               meta.Icon,
		Color:              meta.Color,
		Rating:             loc.Rating,
		RatingDisplay:      RatingDisplay(loc.Rating),
		Specialties:        specialties(loc),
		SpecialtiesDisplay: strings.Join(loc.Specialties, ", "),
		Tags:               badges(shown),
		MoreTags:           more,
		Selected:           isSelected(loc.ID, selectedID),
	}
}

func (p *Presenter) Rows(locations []domain.Location, selectedID *int64) []LocationRow {
	rows := make([]LocationRow, 0, len(locations))
	for i := range locations {
		rows = append(rows, p.Row(&locations[i], selectedID))
	}
	return rows
}

func (p *Presenter) Marker(loc *domain.Location, selectedID *int64) Marker {
	meta := domain.LookupType(loc.Type)
	return Marker{
		ID:       loc.ID,
		Lat:      loc.Lat,
		Lng:      loc.Lng,
		Type:     loc.Type,
		Icon:     meta.Icon,
		Color:    meta.Color,
		Selected: isSelected(loc.ID, selectedID),
		Popup:    MarkerPopup{Name: loc.Name, Address: loc.Address},
	}
}

func (p *Presenter) Markers(locations []domain.Location, selectedID *int64) []Marker {
	markers := make([]Marker, 0, len(locations))
	for i := range locations {
		markers = append(markers, p.Marker(&locations[i], selectedID))
	}
	return markers
}

// Detail строит карточку. Координаты мини-карты не прижимаются к рамке.
func (p *Presenter) Detail(loc *domain.Location) *LocationDetail {
	meta := domain.LookupType(loc.Type)

	image := loc.ImagePath
	if image == "" {
		image = p.placeholderImage
	}

	var lake *string
	if loc.HasLake() {
		name := loc.LakeName()
		lake = &name
	}

	return &LocationDetail{
		ID:                 loc.ID,
		Name:               loc.Name,
		Type:               loc.Type,
		TypeLabel:          meta.Label,
		Icon:               meta.Icon,
		Color:              meta.Color,
		Rating:             loc.Rating,
		RatingDisplay:      RatingDisplay(loc.Rating),
		Address:            loc.Address,
		CopyText:           loc.Address,
		Lat:                loc.Lat,
		Lng:                loc.Lng,
		Specialties:        specialties(loc),
		SpecialtiesDisplay: strings.Join(loc.Specialties, ", "),
		Lake:               lake,
		Tags:               badges(loc.Tags),
		Website:            WebsiteLink{URL: loc.Website, OpenInNewContext: true},
		ImageURL:           image,
		MiniMap:            domain.ViewState{Lng: loc.Lng, Lat: loc.Lat, Zoom: p.policy.DetailZoom},
	}
}

// FacetOptionsFrom строит варианты мультиселектов. Типы идут в фиксированном порядке.
func FacetOptionsFrom(f domain.Facets) FacetOptions {
	types := make([]Option, 0, 4)
	for _, t := range domain.LocationTypes() {
		types = append(types, Option{Value: t.Value, Label: t.Label})
	}

	tags := make([]Option, 0, len(f.Tags))
	for _, t := range f.Tags {
		info, _ := domain.LookupTag(t)
		tags = append(tags, Option{Value: t, Label: info.Label})
	}

	return FacetOptions{
		Types:       types,
		Specialties: identityOptions(f.Specialties),
		Lakes:       identityOptions(f.Lakes),
		Tags:        tags,
	}
}

func identityOptions(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

// TagVocabularyList returns the vocabulary sorted by value
func TagVocabularyList() []TagVocabularyEntry {
	vocab := domain.TagVocabulary()
	out := make([]TagVocabularyEntry, 0, len(vocab))
	for value, info := range vocab {
		out = append(out, TagVocabularyEntry{Value: value, Label: info.Label, Color: info.Color})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
