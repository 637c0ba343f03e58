package server

import (
	"net/url"
	"strconv"
	"strings"
)

// NavLink opens a placemark in a navigation app, with a web fallback.
type NavLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	App  string `json:"app"`
	Web  string `json:"web"`
}

// NavigationLinks builds deep links for the popular map apps in Hong Kong.
func NavigationLinks(lat, lon float64, name string) []NavLink {
	ll := ftoa(lat) + "," + ftoa(lon)
	encodedName := encodeComponent(name)

	amap := "https://uri.amap.com/marker?position=" + ftoa(lon) + "," + ftoa(lat) + "," + encodedName +
		"&coordinate=wgs84&callnative=1"
	baiduQuery := "?location=" + ll + "&title=" + encodedName +
		"&coord_type=wgs84&output=html&src=webapp.baidu.openAPIdemo"

	return []NavLink{
		{
			ID:   "waze",
			Name: "Waze",
			App:  "waze://?ll=" + ll + "&navigate=no",
			Web:  "https://waze.com/ul?ll=" + ll + "&navigate=no&z=17",
		},
		{
			ID:   "google",
			Name: "Google Maps",
			App:  "comgooglemaps://?q=" + ll,
			Web:  "https://www.google.com/maps?q=" + ll,
		},
		{
			ID:   "apple",
			Name: "Apple Maps",
			App:  "maps://?q=" + ll,
			Web:  "https://maps.apple.com/?q=" + ll,
		},
		{
			ID:   "amap",
			Name: "高德地圖",
			App:  amap,
			Web:  amap,
		},
		{
			ID:   "baidu",
			Name: "百度地圖",
			App:  "baidumap://map/marker" + baiduQuery,
			Web:  "https://api.map.baidu.com/marker" + baiduQuery,
		},
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// encodeComponent escapes like JavaScript's encodeURIComponent for the
// characters that matter in a query value.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
