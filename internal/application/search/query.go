package search

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nearlive/event-search-service/internal/domain"
)

const (
	MaxKeywordLen = 80

	MinRadiusKM     = 1.0
	MaxRadiusKM     = 500.0
	DefaultRadiusKM = 25.0

	MaxPage = 49

	dateLayout = "2006-01-02"
)

// Query is a validated search request. Lat/Lng are either both set or both
// nil; From/To are empty or well-formed YYYY-MM-DD strings.
type Query struct {
	Keyword string
	Lat     *float64
	Lng     *float64
	Radius  float64
	From    string
	To      string
	Page    int
	Fresh   bool // bypass the result cache entirely
}

// ParseQuery validates raw query parameters into a Query. All violations are
// collected so the client sees every bad field at once, not just the first.
func ParseQuery(vals url.Values) (Query, error) {
	q := Query{Radius: DefaultRadiusKM}
	violations := map[string]string{}

	kw := strings.TrimSpace(vals.Get("q"))
	if r := []rune(kw); len(r) > MaxKeywordLen {
		kw = string(r[:MaxKeywordLen])
	}
	q.Keyword = kw

	q.Lat = parseFloatParam(vals, "lat", -90, 90, violations)
	q.Lng = parseFloatParam(vals, "lng", -180, 180, violations)

	// Geo filtering needs a full center point.
	if q.Lat != nil && q.Lng == nil && vals.Get("lng") == "" {
		violations["lng"] = "required when lat is set"
	}
	if q.Lng != nil && q.Lat == nil && vals.Get("lat") == "" {
		violations["lat"] = "required when lng is set"
	}

	if v := vals.Get("radius"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			violations["radius"] = "must be a number"
		case f < MinRadiusKM || f > MaxRadiusKM:
			violations["radius"] = "must be between 1 and 500"
		default:
			q.Radius = f
		}
	}

	if v := vals.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			violations["page"] = "must be an integer"
		case n < 0 || n > MaxPage:
			violations["page"] = "must be between 0 and 49"
		default:
			q.Page = n
		}
	}

	q.From = parseDateParam(vals, "from", violations)
	q.To = parseDateParam(vals, "to", violations)

	switch vals.Get("fresh") {
	case "1", "true":
		q.Fresh = true
	}

	if len(violations) > 0 {
		return Query{}, domain.ErrValidationMeta("invalid query parameters", violations)
	}
	return q, nil
}

func parseFloatParam(vals url.Values, key string, min, max float64, violations map[string]string) *float64 {
	v := vals.Get(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		violations[key] = "must be a number"
		return nil
	}
	if f < min || f > max {
		violations[key] = "out of range"
		return nil
	}
	return &f
}

func parseDateParam(vals url.Values, key string, violations map[string]string) string {
	v := strings.TrimSpace(vals.Get(key))
	if v == "" {
		return ""
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		violations[key] = "must be a YYYY-MM-DD date"
		return ""
	}
	return v
}
