// Package mapview turns store locations into the data the store locator
// map needs: center, zoom, markers with popups, and optional fit bounds.
package mapview

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/unclebandit/sparkles-site/internal/links"
	"github.com/unclebandit/sparkles-site/internal/model"
)

const (
	DefaultLat    = 20.5937
	DefaultLng    = 78.9629
	BoundsPadding = 50

	multiZoom  = 6
	singleZoom = 12

	scriptBase = "https://maps.googleapis.com/maps/api/js"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Marker struct {
	Position      LatLng `json:"position"`
	Title         string `json:"title"`
	PopupHTML     string `json:"popup_html"`
	DirectionsURL string `json:"directions_url"`
}

type Bounds struct {
	North   float64 `json:"north"`
	South   float64 `json:"south"`
	East    float64 `json:"east"`
	West    float64 `json:"west"`
	Padding int     `json:"padding"`
}

type View struct {
	Center    LatLng   `json:"center"`
	Zoom      int      `json:"zoom"`
	Markers   []Marker `json:"markers"`
	Bounds    *Bounds  `json:"bounds,omitempty"`
	NeedsKey  bool     `json:"needs_key"`
	ScriptURL string   `json:"script_url,omitempty"`
}

// Build places one marker per location carrying both coordinates.
func Build(locations []*model.StoreLocation, apiKey string) View {
	v := View{
		Center:  LatLng{Lat: DefaultLat, Lng: DefaultLng},
		Zoom:    singleZoom,
		Markers: []Marker{},
	}
	if len(locations) > 1 {
		v.Zoom = multiZoom
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		v.NeedsKey = true
	} else {
		v.ScriptURL = ScriptURL(apiKey)
	}

	var b Bounds
	for _, loc := range locations {
		if loc == nil || !loc.HasCoordinates() {
			continue
		}
		pos := LatLng{Lat: *loc.Latitude, Lng: *loc.Longitude}
		if len(v.Markers) == 0 {
			v.Center = pos
			b = Bounds{North: pos.Lat, South: pos.Lat, East: pos.Lng, West: pos.Lng}
		} else {
			b.North = max(b.North, pos.Lat)
			b.South = min(b.South, pos.Lat)
			b.East = max(b.East, pos.Lng)
			b.West = min(b.West, pos.Lng)
		}
		v.Markers = append(v.Markers, Marker{
			Position:      pos,
			Title:         loc.Name,
			PopupHTML:     PopupHTML(loc),
			DirectionsURL: links.MapsSearch(loc.Name + ", " + loc.Address),
		})
	}

	if len(v.Markers) > 1 {
		b.Padding = BoundsPadding
		v.Bounds = &b
	}
	return v
}

func ScriptURL(apiKey string) string {
	q := url.Values{}
	q.Set("key", apiKey)
	q.Set("libraries", "places")
	return scriptBase + "?" + q.Encode()
}

// PopupHTML renders the info window body for loc with all fields escaped.
func PopupHTML(loc *model.StoreLocation) string {
	var sb strings.Builder
	sb.WriteString(`<div class="map-popup">`)
	fmt.Fprintf(&sb, `<h3>%s</h3>`, html.EscapeString(loc.Name))
	fmt.Fprintf(&sb, `<p>%s</p>`, html.EscapeString(loc.Address))
	if strings.TrimSpace(loc.Phone) != "" {
		fmt.Fprintf(&sb, `<p>📞 %s</p>`, html.EscapeString(loc.Phone))
	}
	storeType := loc.StoreType
	if storeType == "" {
		storeType = model.DefaultStoreType
	}
	fmt.Fprintf(&sb, `<span class="store-type">%s</span>`, html.EscapeString(storeType))
	sb.WriteString(`</div>`)
	return sb.String()
}
