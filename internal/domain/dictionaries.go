package domain

// Dictionaries holds the lookup tables the upstream API ships alongside a
// result set, mapping codes in the offers to display names.
type Dictionaries struct {
	// Carriers maps IATA airline codes to airline names
	Carriers map[string]string `json:"carriers,omitempty"`

	// Aircraft maps aircraft type codes to equipment names
	Aircraft map[string]string `json:"aircraft,omitempty"`

	// Currencies maps ISO 4217 codes to currency names
	Currencies map[string]string `json:"currencies,omitempty"`

	// Locations maps IATA location codes to city/country codes
	Locations map[string]Location `json:"locations,omitempty"`
}

// Location is a city/country pair for an IATA location code.
type Location struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

// AirlineName resolves a carrier code to its display name, falling back to
// the raw code when the dictionary has no entry.
func (d *Dictionaries) AirlineName(carrierCode string) string {
	if d != nil {
		if name, ok := d.Carriers[carrierCode]; ok && name != "" {
			return name
		}
	}
	return carrierCode
}

// wellKnownAircraft covers the common wide/narrow-body types so aircraft
// names render sensibly even without an API dictionary.
var wellKnownAircraft = map[string]string{
	"744": "BOEING 747-400",
	"777": "BOEING 777",
	"788": "BOEING 787-8",
	"789": "BOEING 787-9",
	"320": "AIRBUS A320",
	"321": "AIRBUS A321",
	"350": "AIRBUS A350",
	"380": "AIRBUS A380",
}

// AircraftName resolves an aircraft type code to an equipment name. The API
// dictionary wins when present; otherwise a built-in table of common types
// is consulted, and unknown codes render as "Aircraft <code>".
func (d *Dictionaries) AircraftName(code string) string {
	if code == "" {
		return ""
	}
	if d != nil {
		if name, ok := d.Aircraft[code]; ok && name != "" {
			return name
		}
	}
	if name, ok := wellKnownAircraft[code]; ok {
		return name
	}
	return "Aircraft " + code
}
