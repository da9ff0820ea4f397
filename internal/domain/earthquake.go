package domain

// Earthquake represents a single recorded seismic event
type Earthquake struct {
	ID        int     `json:"id"`
	Magnitude float64 `json:"magnitude"`
	Location  string  `json:"location"`
	Year      int     `json:"year"`
}

// QuakeList is the response shape of a magnitude threshold query
type QuakeList struct {
	Count  int          `json:"count"`
	Quakes []Earthquake `json:"quakes"`
}

// NewQuakeList wraps quakes so that Count always matches and an empty
// result encodes as [] rather than null
func NewQuakeList(quakes []Earthquake) QuakeList {
	if quakes == nil {
		quakes = []Earthquake{}
	}
	return QuakeList{
		Count:  len(quakes),
		Quakes: quakes,
	}
}

// SampleEarthquakes returns the catalogue used by the seeder and the memory store
func SampleEarthquakes() []Earthquake {
	return []Earthquake{
		{ID: 1, Magnitude: 9.5, Location: "Chile", Year: 1960},
		{ID: 2, Magnitude: 9.2, Location: "Alaska", Year: 1964},
		{ID: 3, Magnitude: 8.6, Location: "Alaska", Year: 1946},
		{ID: 4, Magnitude: 8.5, Location: "Banda Sea", Year: 1934},
		{ID: 5, Magnitude: 8.4, Location: "Chile", Year: 1922},
	}
}
