package synth

import "github.com/hupe1980/supplymesh/core"

// regionLocations maps each region to its site table. Order is significant:
// synthesis walks the table deterministically, so identical (config, seed)
// pairs always place nodes at the same sites. When the requested node count
// exceeds the table, sites repeat with a numeric disambiguation suffix.
var regionLocations = map[core.Region][]core.Location{
	core.RegionAsiaPacific: {
		{Name: "Shanghai", Latitude: 31.2304, Longitude: 121.4737},
		{Name: "Shenzhen", Latitude: 22.5431, Longitude: 114.0579},
		{Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
		{Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503},
		{Name: "Seoul", Latitude: 37.5665, Longitude: 126.9780},
		{Name: "Ho Chi Minh City", Latitude: 10.8231, Longitude: 106.6297},
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
		{Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093},
	},
	core.RegionNorthAmerica: {
		{Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437},
		{Name: "Chicago", Latitude: 41.8781, Longitude: -87.6298},
		{Name: "Dallas", Latitude: 32.7767, Longitude: -96.7970},
		{Name: "Atlanta", Latitude: 33.7490, Longitude: -84.3880},
		{Name: "Toronto", Latitude: 43.6532, Longitude: -79.3832},
		{Name: "Monterrey", Latitude: 25.6866, Longitude: -100.3161},
		{Name: "Seattle", Latitude: 47.6062, Longitude: -122.3321},
		{Name: "New York", Latitude: 40.7128, Longitude: -74.0060},
	},
	core.RegionEurope: {
		{Name: "Rotterdam", Latitude: 51.9244, Longitude: 4.4777},
		{Name: "Hamburg", Latitude: 53.5511, Longitude: 9.9937},
		{Name: "Antwerp", Latitude: 51.2194, Longitude: 4.4025},
		{Name: "Milan", Latitude: 45.4642, Longitude: 9.1900},
		{Name: "Barcelona", Latitude: 41.3851, Longitude: 2.1734},
		{Name: "Warsaw", Latitude: 52.2297, Longitude: 21.0122},
		{Name: "Lyon", Latitude: 45.7640, Longitude: 4.8357},
		{Name: "Manchester", Latitude: 53.4808, Longitude: -2.2426},
	},
	core.RegionLatinAmerica: {
		{Name: "São Paulo", Latitude: -23.5505, Longitude: -46.6333},
		{Name: "Mexico City", Latitude: 19.4326, Longitude: -99.1332},
		{Name: "Buenos Aires", Latitude: -34.6037, Longitude: -58.3816},
		{Name: "Bogotá", Latitude: 4.7110, Longitude: -74.0721},
		{Name: "Santiago", Latitude: -33.4489, Longitude: -70.6693},
		{Name: "Lima", Latitude: -12.0464, Longitude: -77.0428},
		{Name: "Panama City", Latitude: 8.9824, Longitude: -79.5199},
		{Name: "Montevideo", Latitude: -34.9011, Longitude: -56.1645},
	},
	core.RegionMiddleEast: {
		{Name: "Dubai", Latitude: 25.2048, Longitude: 55.2708},
		{Name: "Riyadh", Latitude: 24.7136, Longitude: 46.6753},
		{Name: "Doha", Latitude: 25.2854, Longitude: 51.5310},
		{Name: "Jeddah", Latitude: 21.4858, Longitude: 39.1925},
		{Name: "Abu Dhabi", Latitude: 24.4539, Longitude: 54.3773},
		{Name: "Kuwait City", Latitude: 29.3759, Longitude: 47.9774},
		{Name: "Muscat", Latitude: 23.5880, Longitude: 58.3829},
		{Name: "Amman", Latitude: 31.9454, Longitude: 35.9284},
	},
}

// LocationsFor returns the site table for a region. Unknown regions return an
// empty slice; configuration validation prevents that upstream.
func LocationsFor(region core.Region) []core.Location {
	return regionLocations[region]
}
