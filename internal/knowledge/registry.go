package knowledge

import "strings"

// Airport pairs a display name with the tokens (IATA-style codes, district or
// city names) that identify it in stamp text.
type Airport struct {
	Name   string
	Tokens []string
}

// Country is one registry row. Slice order is significant: cities and airports
// are scanned in declaration order, and the first declared airport doubles as
// the country's main-airport fallback.
type Country struct {
	Name     string
	Codes    []string
	Cities   []string
	Airports []Airport
}

// CityEntry is one row of the flattened city/alias -> country table.
type CityEntry struct {
	City    string
	Country string
}

// Registry is the immutable knowledge base of countries, codes, cities, and
// airports. Built once at startup and never mutated, so it is safe to share
// across goroutines without locking.
type Registry struct {
	countries []Country
	byName    map[string]int
	byCode    map[string]string
	cities    []CityEntry
}

// NewRegistry builds the registry from the static country table.
func NewRegistry() *Registry {
	r := &Registry{
		countries: countryTable,
		byName:    make(map[string]int, len(countryTable)),
		byCode:    make(map[string]string),
	}
	for i, c := range r.countries {
		r.byName[c.Name] = i
		for _, code := range c.Codes {
			r.byCode[strings.ToUpper(code)] = c.Name
		}
		for _, city := range c.Cities {
			r.cities = append(r.cities, CityEntry{City: strings.ToUpper(city), Country: c.Name})
		}
	}
	return r
}

// Countries returns all registry rows in declaration order.
func (r *Registry) Countries() []Country {
	return r.countries
}

// ByCode resolves a 2-3 letter identifying code to a country name.
func (r *Registry) ByCode(code string) (string, bool) {
	name, ok := r.byCode[strings.ToUpper(code)]
	return name, ok
}

// Find returns the registry row for a canonical country name.
func (r *Registry) Find(country string) (Country, bool) {
	i, ok := r.byName[country]
	if !ok {
		return Country{}, false
	}
	return r.countries[i], true
}

// CityEntries returns the flattened city table in declaration order. The order
// is a documented tie-break: the first table entry found in the text wins,
// regardless of text position.
func (r *Registry) CityEntries() []CityEntry {
	return r.cities
}
