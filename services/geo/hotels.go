package geo

import "strings"

// Hotel is one entry of the static hotel list used by the hotel search mode.
type Hotel struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// hotelsNearOrigin is reference data, not derived from input.
var hotelsNearOrigin = []Hotel{
	{Name: "Premier Inn London Stanmore", Address: "London Rd, Stanmore HA7 4EB"},
	{Name: "Best Western Cumberland Hotel", Address: "St Johns Rd, Harrow HA1 2EF"},
	{Name: "Holiday Inn Harrow", Address: "138 Christchurch Ave, Harrow HA3 5BD"},
	{Name: "Hindes Hotel", Address: "21 Hindes Rd, Harrow HA1 1SJ"},
	{Name: "The Old Millhouse Hotel", Address: "Mill Hill, London NW7 1RB"},
	{Name: "Grim's Dyke Hotel", Address: "Old Redding, Harrow Weald HA3 6SH"},
}

// FilterHotels returns hotels whose name or address contains the query,
// case-insensitively. An empty query returns the full list.
func FilterHotels(query string) []Hotel {
	if query == "" {
		return append([]Hotel(nil), hotelsNearOrigin...)
	}
	q := strings.ToLower(query)
	var out []Hotel
	for _, h := range hotelsNearOrigin {
		if strings.Contains(strings.ToLower(h.Name), q) || strings.Contains(strings.ToLower(h.Address), q) {
			out = append(out, h)
		}
	}
	return out
}
