package domain

import "fmt"

// CatalogContainer - формат статического источника каталога: единственное поле со списком локаций
type CatalogContainer struct {
	Locations []Location `json:"locations" yaml:"locations"`
}

// Catalog - неизменяемый каталог локаций, загружается один раз при старте.
// Безопасен для конкурентного чтения без блокировок.
type Catalog struct {
	locations []Location
	byID      map[int64]int
}

// NewCatalog строит каталог, сохраняя исходный порядок записей
func NewCatalog(locations []Location) (*Catalog, error) {
	c := &Catalog{
		locations: make([]Location, len(locations)),
		byID:      make(map[int64]int, len(locations)),
	}
	copy(c.locations, locations)

	for i, loc := range c.locations {
		if _, dup := c.byID[loc.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %d", loc.ID)
		}
		c.byID[loc.ID] = i
	}

	return c, nil
}

// All возвращает все локации в порядке каталога. Срез нельзя модифицировать.
func (c *Catalog) All() []Location {
	return c.locations
}

// Len returns number of locations
func (c *Catalog) Len() int {
	return len(c.locations)
}

// Resolve находит локацию по id, nil если такой нет
func (c *Catalog) Resolve(id int64) *Location {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	loc := c.locations[i]
	return &loc
}
