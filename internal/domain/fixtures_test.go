package domain

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

// twoLocationCatalog - минимальный каталог из сценариев end-to-end
func twoLocationCatalog() []Location {
	return []Location{
		{
			ID:          1,
			Type:        LocationTypeWinery,
			Name:        "Lake View Winery",
			Specialties: []string{"Riesling"},
			Lake:        strPtr("Seneca"),
			Tags:        []string{TagLakeView},
		},
		{
			ID:          2,
			Type:        LocationTypeBrewery,
			Name:        "Hop House",
			Specialties: []string{"IPA"},
			Lake:        nil,
			Tags:        []string{TagBeer},
		},
	}
}

func sampleLocations() []Location {
	return []Location{
		{ID: 10, Name: "Hermann J. Wiemer Vineyard", Type: LocationTypeWinery, Rating: 4.8,
			Specialties: []string{"Riesling", "Chardonnay"}, Lake: strPtr("Seneca"), Tags: []string{TagTastingRoom, TagLakeView}},
		{ID: 11, Name: "Ithaca Beer Co.", Type: LocationTypeBrewery, Rating: 4.4,
			Specialties: []string{"IPA", "Pale Ale"}, Lake: strPtr("Cayuga"), Tags: []string{TagFood, TagBeer}},
		{ID: 12, Name: "Black Diamond Cider", Type: LocationTypeCidery, Rating: 4.6,
			Specialties: []string{"Dry Cider"}, Lake: strPtr("Cayuga"), Tags: []string{TagTastingRoom}},
		{ID: 13, Name: "Finger Lakes Distilling", Type: LocationTypeDistillery, Rating: 4.5,
			Specialties: []string{"Whiskey", "Gin"}, Lake: nil, Tags: []string{TagSpirits, TagTours, "unknownTag"}},
		{ID: 14, Name: "Dr. Konstantin Frank", Type: LocationTypeWinery, Rating: 4.7,
			Specialties: []string{"Riesling", "Rkatsiteli"}, Lake: strPtr("Keuka"), Tags: []string{TagWine, TagEvents}},
		{ID: 15, Name: "Empty Lake Tap", Type: LocationTypeBrewery, Rating: 3.9,
			Specialties: nil, Lake: strPtr(""), Tags: nil},
	}
}
