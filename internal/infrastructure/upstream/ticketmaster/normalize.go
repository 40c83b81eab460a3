package ticketmaster

import (
	"strconv"

	"github.com/nearlive/event-search-service/internal/application/search"
	"github.com/nearlive/event-search-service/internal/domain"
)

// normalizeResponse maps an upstream payload into the canonical shape. A
// malformed record degrades field by field instead of failing the response.
func normalizeResponse(payload *eventsResponse) *search.Page {
	page := &search.Page{Events: []domain.NormalizedEvent{}}

	if payload.Page != nil {
		page.PageInfo = domain.PageInfo{
			Number:        payload.Page.Number,
			TotalPages:    payload.Page.TotalPages,
			TotalElements: payload.Page.TotalElements,
		}
	}
	if payload.Embedded == nil {
		return page
	}

	for _, rec := range payload.Embedded.Events {
		page.Events = append(page.Events, normalizeEvent(rec))
	}
	return page
}

func normalizeEvent(rec eventRecord) domain.NormalizedEvent {
	ev := domain.NormalizedEvent{
		ID:         rec.ID,
		Title:      rec.Name,
		TicketURL:  rec.URL,
		Start:      startString(rec.Dates),
		PriceRange: firstPriceRange(rec.PriceRanges),
		Categories: categoryLabels(rec.Classifications),
		ImageURL:   largestImage(rec.Images),
	}

	if rec.Embedded != nil && len(rec.Embedded.Venues) > 0 {
		ev.Venue = normalizeVenue(rec.Embedded.Venues[0])
	}
	return ev
}

// startString prefers the precise timestamp, falls back to the bare local
// date, and stays empty when the upstream gives neither. The granularity
// difference is preserved on purpose; the re-filter step interprets it.
func startString(d *dates) string {
	if d == nil || d.Start == nil {
		return ""
	}
	if d.Start.DateTime != "" {
		return d.Start.DateTime
	}
	return d.Start.LocalDate
}

func firstPriceRange(ranges []priceRange) *domain.PriceRange {
	if len(ranges) == 0 {
		return nil
	}
	pr := ranges[0]
	return &domain.PriceRange{Min: pr.Min, Max: pr.Max, Currency: pr.Currency}
}

// categoryLabels collects every segment name, then every genre name, dropping
// blanks and duplicates while keeping first-seen order.
func categoryLabels(cs []classification) []string {
	labels := []string{}
	seen := map[string]bool{}
	add := func(item *namedItem) {
		if item == nil || item.Name == "" || seen[item.Name] {
			return
		}
		seen[item.Name] = true
		labels = append(labels, item.Name)
	}
	for _, c := range cs {
		add(c.Segment)
	}
	for _, c := range cs {
		add(c.Genre)
	}
	return labels
}

// largestImage picks the candidate with the greatest declared width.
func largestImage(images []image) string {
	best := ""
	bestWidth := -1
	for _, img := range images {
		if img.URL != "" && img.Width > bestWidth {
			best = img.URL
			bestWidth = img.Width
		}
	}
	return best
}

func normalizeVenue(v venue) domain.Venue {
	out := domain.Venue{Name: v.Name}
	if v.City != nil {
		out.City = v.City.Name
	}
	if v.Location != nil && v.Location.Latitude != "" && v.Location.Longitude != "" {
		lat, latErr := strconv.ParseFloat(v.Location.Latitude, 64)
		lng, lngErr := strconv.ParseFloat(v.Location.Longitude, 64)
		if latErr == nil && lngErr == nil {
			out.Lat = &lat
			out.Lng = &lng
		}
	}
	return out
}
