// Package locations provides named observer presets for common cities.
package locations

import (
	"sort"
	"strings"

	"github.com/litescript/ls-skymap/internal/astro"
)

// presets maps a lookup key to an observer. Keys are lowercase with
// underscores, matching what the CLI accepts.
var presets = map[string]astro.Observer{
	"new_york":  {LatDeg: 40.7128, LonDeg: -74.0060, Name: "New York City"},
	"london":    {LatDeg: 51.5074, LonDeg: -0.1278, Name: "London"},
	"tokyo":     {LatDeg: 35.6762, LonDeg: 139.6503, Name: "Tokyo"},
	"sydney":    {LatDeg: -33.8688, LonDeg: 151.2093, Name: "Sydney"},
	"paris":     {LatDeg: 48.8566, LonDeg: 2.3522, Name: "Paris"},
	"cairo":     {LatDeg: 30.0444, LonDeg: 31.2357, Name: "Cairo"},
	"reykjavik": {LatDeg: 64.1466, LonDeg: -21.9426, Name: "Reykjavik"},
	"anchorage": {LatDeg: 61.2181, LonDeg: -149.9003, Name: "Anchorage"},
}

// Lookup finds a preset by key. Keys are case-insensitive and accept
// spaces or hyphens in place of underscores.
func Lookup(key string) (astro.Observer, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, " ", "_")
	k = strings.ReplaceAll(k, "-", "_")
	obs, ok := presets[k]
	return obs, ok
}

// Keys returns all preset keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns all presets in key order.
func All() []astro.Observer {
	all := make([]astro.Observer, 0, len(presets))
	for _, k := range Keys() {
		all = append(all, presets[k])
	}
	return all
}
