package ticketmaster

// Discovery API payload shapes, trimmed to the fields normalization reads.
// Every nested structure is optional on the wire; pointers and zero values
// keep decoding safe when the upstream omits them.

type eventsResponse struct {
	Embedded *struct {
		Events []eventRecord `json:"events"`
	} `json:"_embedded"`
	Page *pageInfo `json:"page"`
}

type pageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

type eventRecord struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	Images          []image          `json:"images"`
	Dates           *dates           `json:"dates"`
	Classifications []classification `json:"classifications"`
	PriceRanges     []priceRange     `json:"priceRanges"`
	Embedded        *struct {
		Venues []venue `json:"venues"`
	} `json:"_embedded"`
}

type image struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

type dates struct {
	Start *eventDate `json:"start"`
}

type eventDate struct {
	LocalDate string `json:"localDate"`
	DateTime  string `json:"dateTime"`
}

type classification struct {
	Segment *namedItem `json:"segment"`
	Genre   *namedItem `json:"genre"`
}

type namedItem struct {
	Name string `json:"name"`
}

type priceRange struct {
	Currency string   `json:"currency"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
}

type venue struct {
	Name     string     `json:"name"`
	City     *namedItem `json:"city"`
	Location *location  `json:"location"`
}

type location struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}
