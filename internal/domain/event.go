package domain

// NormalizedEvent is the canonical event shape served to clients, produced
// from heterogeneous upstream records. Optional fields stay absent instead
// of defaulting; Start preserves upstream granularity (full timestamp or
// bare YYYY-MM-DD date).
type NormalizedEvent struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Start      string      `json:"start"`
	TicketURL  string      `json:"ticketUrl,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	Categories []string    `json:"categories"`
	ImageURL   string      `json:"imageUrl,omitempty"`
	Venue      Venue       `json:"venue"`
}

type PriceRange struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type Venue struct {
	Name string   `json:"name"`
	City string   `json:"city,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// PageInfo is passed through from the upstream page metadata as-is.
type PageInfo struct {
	Number        int `json:"number"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
}
