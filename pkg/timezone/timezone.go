// Package timezone serves the country-grouped IANA zone list profile editing
// offers. The table ships embedded with the binary and is decoded once.
package timezone

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed timezones.json
var rawZones []byte

// Country groups the IANA zone identifiers offered for one country.
type Country struct {
	Country   string   `json:"country"`
	Timezones []string `json:"timezones"`
}

var (
	once    sync.Once
	cached  []Country
	loadErr error
)

// Timezones returns the country-grouped zone table, decoding it on first use
// and serving the cached copy afterwards.
func Timezones() ([]Country, error) {
	once.Do(func() {
		var list []Country
		if err := json.Unmarshal(rawZones, &list); err != nil {
			loadErr = fmt.Errorf("timezone: decode embedded table: %w", err)
			return
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Country < list[j].Country })
		cached = list
	})
	return cached, loadErr
}

// Valid reports whether zone appears in the table.
func Valid(zone string) bool {
	list, err := Timezones()
	if err != nil {
		return false
	}
	for _, c := range list {
		for _, z := range c.Timezones {
			if z == zone {
				return true
			}
		}
	}
	return false
}

// All returns every zone identifier in the table, sorted, for completion.
func All() []string {
	list, err := Timezones()
	if err != nil {
		return nil
	}
	seen := make(map[string]struct{})
	zones := make([]string, 0, len(list)*2)
	for _, c := range list {
		for _, z := range c.Timezones {
			if _, dup := seen[z]; dup {
				continue
			}
			seen[z] = struct{}{}
			zones = append(zones, z)
		}
	}
	sort.Strings(zones)
	return zones
}
