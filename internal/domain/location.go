package domain

// Location type constants
const (
	LocationTypeWinery     = "winery"
	LocationTypeBrewery    = "brewery"
	LocationTypeCidery     = "cidery"
	LocationTypeDistillery = "distillery"
)

// Location представляет одну точку каталога (винодельня, пивоварня, сидрерия, дистиллерия).
// Записи каталога неизменяемы после загрузки.
type Location struct {
	ID          int64    `json:"id" yaml:"id" db:"id"`
	Name        string   `json:"name" yaml:"name" db:"name"`
	Type        string   `json:"type" yaml:"type" db:"type"`
	Rating      float64  `json:"rating" yaml:"rating" db:"rating"`
	Address     string   `json:"address" yaml:"address" db:"address"`
	Lat         float64  `json:"lat" yaml:"lat" db:"lat"`
	Lng         float64  `json:"lng" yaml:"lng" db:"lng"`
	Specialties []string `json:"specialties" yaml:"specialties" db:"-"`
	Lake        *string  `json:"lake" yaml:"lake" db:"lake"`
	Tags        []string `json:"tags" yaml:"tags" db:"-"`
	Website     string   `json:"website" yaml:"website" db:"website"`
	ImagePath   string   `json:"imagePath,omitempty" yaml:"imagePath" db:"image_path"`
}

// HasLake сообщает, привязана ли локация к озеру
func (l *Location) HasLake() bool {
	return l.Lake != nil && *l.Lake != ""
}

// LakeName возвращает название озера или пустую строку
func (l *Location) LakeName() string {
	if !l.HasLake() {
		return ""
	}
	return *l.Lake
}

// TypeMeta - презентационные метаданные типа локации
type TypeMeta struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// locationTypes - закрытое перечисление типов в порядке отображения в фильтре
var locationTypes = []TypeMeta{
	{Value: LocationTypeWinery, Label: "Wineries", Icon: "wine", Color: "text-purple-500"},
	{Value: LocationTypeBrewery, Label: "Breweries", Icon: "beer", Color: "text-yellow-500"},
	{Value: LocationTypeCidery, Label: "Cideries", Icon: "apple", Color: "text-red-500"},
	{Value: LocationTypeDistillery, Label: "Distilleries", Icon: "beaker", Color: "text-blue-500"},
}

// LocationTypes returns the closed list of location types in display order
func LocationTypes() []TypeMeta {
	out := make([]TypeMeta, len(locationTypes))
	copy(out, locationTypes)
	return out
}

// ValidLocationTypes returns list of valid location type values
func ValidLocationTypes() []string {
	values := make([]string, 0, len(locationTypes))
	for _, t := range locationTypes {
		values = append(values, t.Value)
	}
	return values
}

// IsValidLocationType checks if location type is valid
func IsValidLocationType(locationType string) bool {
	for _, t := range locationTypes {
		if t.Value == locationType {
			return true
		}
	}
	return false
}

// LookupType возвращает метаданные типа. Для неизвестного типа иконка и цвет пустые.
func LookupType(locationType string) TypeMeta {
	for _, t := range locationTypes {
		if t.Value == locationType {
			return t
		}
	}
	return TypeMeta{Value: locationType}
}
