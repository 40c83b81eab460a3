package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
)

// fingerprint derives the cache key from every field that affects the
// upstream query and the local re-filter. Two logically identical requests
// (for example keywords differing only in surrounding whitespace, which the
// validator trims) always land on the same key.
func fingerprint(q Query, w Window) string {
	lat, lng := "-", "-"
	if q.Lat != nil {
		lat = strconv.FormatFloat(*q.Lat, 'f', 6, 64)
	}
	if q.Lng != nil {
		lng = strconv.FormatFloat(*q.Lng, 'f', 6, 64)
	}
	end := "-"
	if w.End != nil {
		end = strconv.FormatInt(w.End.Unix(), 10)
	}

	raw := fmt.Sprintf("q=%s|lat=%s|lng=%s|radius=%g|start=%d|end=%s|page=%d",
		q.Keyword, lat, lng, q.Radius, w.Start.Unix(), end, q.Page)

	hash := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("search:events:%s", hex.EncodeToString(hash[:]))
}
