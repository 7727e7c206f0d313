// internal/board/board.go
package board

// Color is a train card color token. Routes reuse the same tokens for their
// required color, with Any standing for "any single color".
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Black  Color = "black"
	White  Color = "white"
	Orange Color = "orange"
	Pink   Color = "pink"

	// Locomotive is the wildcard card. It is never a route color.
	Locomotive Color = "locomotive"

	// Any marks a route claimable with any single color. It is never a card.
	Any Color = "any"
)

// TrainColors lists the eight non-wildcard card colors in the deck.
var TrainColors = []Color{Red, Blue, Green, Yellow, Black, White, Orange, Pink}

// RouteType distinguishes the three kinds of routes on the map.
type RouteType string

const (
	Normal RouteType = "normal"
	Tunnel RouteType = "tunnel"
	Ferry  RouteType = "ferry"
)

// City is a node on the map. X and Y are layout percentages for clients.
type City struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Route is one claimable edge between two cities. Ferries carries the minimum
// number of locomotives a ferry route demands; Double marks a member of a
// parallel pair.
type Route struct {
	ID      int       `json:"id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Length  int       `json:"length"`
	Color   Color     `json:"color"`
	Type    RouteType `json:"type"`
	Ferries int       `json:"ferries,omitempty"`
	Double  bool      `json:"double,omitempty"`
}

var cities = []City{
	{"Edinburgh", 10, 6}, {"London", 14, 17}, {"Dieppe", 13, 27}, {"Brest", 5, 31},
	{"Paris", 18, 31}, {"Amsterdam", 24, 17}, {"Bruxelles", 21, 23}, {"Essen", 30, 17},
	{"Frankfurt", 28, 25}, {"Zurich", 27, 37}, {"Marseille", 24, 47}, {"Barcelona", 15, 55},
	{"Madrid", 8, 58}, {"Lisboa", 1, 61}, {"Cadiz", 5, 67}, {"Pamplona", 13, 46},
	{"Stockholm", 42, 3}, {"Kobenhavn", 34, 9}, {"Berlin", 36, 21}, {"Danzig", 44, 13},
	{"Warszawa", 46, 21}, {"Wien", 40, 33}, {"Munchen", 33, 31}, {"Venezia", 33, 43},
	{"Roma", 33, 53}, {"Palermo", 36, 66}, {"Brindisi", 41, 57}, {"Zagrab", 39, 43},
	{"Sarajevo", 44, 49}, {"Budapest", 44, 33}, {"Kyiv", 58, 23}, {"Wilno", 54, 13},
	{"Riga", 50, 5}, {"Petrograd", 62, 5}, {"Moskva", 68, 11}, {"Smolensk", 62, 15},
	{"Kharkov", 68, 23}, {"Rostov", 74, 27}, {"Sevastopol", 68, 35}, {"Bucuresti", 54, 41},
	{"Sofia", 50, 47}, {"Athina", 48, 61}, {"Smyrna", 54, 61}, {"Constantinople", 58, 51},
	{"Angora", 66, 55}, {"Erzurum", 77, 51}, {"Sochi", 76, 37},
}

var routes = []Route{
	{ID: 1, From: "Edinburgh", To: "London", Length: 4, Color: Black, Type: Normal, Double: true},
	{ID: 2, From: "Edinburgh", To: "London", Length: 4, Color: Orange, Type: Normal, Double: true},
	{ID: 3, From: "London", To: "Dieppe", Length: 2, Color: Any, Type: Ferry, Ferries: 1, Double: true},
	{ID: 4, From: "London", To: "Dieppe", Length: 2, Color: Any, Type: Ferry, Ferries: 1, Double: true},
	{ID: 5, From: "London", To: "Amsterdam", Length: 2, Color: Any, Type: Ferry, Ferries: 2},
	{ID: 6, From: "Dieppe", To: "Brest", Length: 2, Color: Orange, Type: Normal},
	{ID: 7, From: "Dieppe", To: "Paris", Length: 1, Color: Pink, Type: Normal},
	{ID: 8, From: "Dieppe", To: "Bruxelles", Length: 2, Color: Green, Type: Normal},
	{ID: 9, From: "Brest", To: "Paris", Length: 3, Color: Black, Type: Normal},
	{ID: 10, From: "Brest", To: "Pamplona", Length: 4, Color: Pink, Type: Normal},
	{ID: 11, From: "Paris", To: "Bruxelles", Length: 2, Color: Yellow, Type: Normal, Double: true},
	{ID: 12, From: "Paris", To: "Bruxelles", Length: 2, Color: Red, Type: Normal, Double: true},
	{ID: 13, From: "Paris", To: "Frankfurt", Length: 3, Color: White, Type: Normal, Double: true},
	{ID: 14, From: "Paris", To: "Frankfurt", Length: 3, Color: Orange, Type: Normal, Double: true},
	{ID: 15, From: "Paris", To: "Pamplona", Length: 4, Color: Blue, Type: Normal, Double: true},
	{ID: 16, From: "Paris", To: "Pamplona", Length: 4, Color: Green, Type: Normal, Double: true},
	{ID: 17, From: "Paris", To: "Marseille", Length: 4, Color: Any, Type: Normal},
	{ID: 18, From: "Paris", To: "Zurich", Length: 3, Color: Any, Type: Tunnel},
	{ID: 19, From: "Bruxelles", To: "Amsterdam", Length: 1, Color: Black, Type: Normal},
	{ID: 20, From: "Bruxelles", To: "Frankfurt", Length: 2, Color: Blue, Type: Normal},
	{ID: 21, From: "Amsterdam", To: "Essen", Length: 3, Color: Yellow, Type: Normal},
	{ID: 22, From: "Amsterdam", To: "Frankfurt", Length: 2, Color: White, Type: Normal},
	{ID: 23, From: "Essen", To: "Frankfurt", Length: 2, Color: Green, Type: Normal},
	{ID: 24, From: "Essen", To: "Berlin", Length: 2, Color: Blue, Type: Normal},
	{ID: 25, From: "Essen", To: "Kobenhavn", Length: 3, Color: Any, Type: Ferry, Ferries: 1},
	{ID: 26, From: "Frankfurt", To: "Berlin", Length: 3, Color: Black, Type: Normal, Double: true},
	{ID: 27, From: "Frankfurt", To: "Berlin", Length: 3, Color: Red, Type: Normal, Double: true},
	{ID: 28, From: "Frankfurt", To: "Munchen", Length: 2, Color: Pink, Type: Normal},
	{ID: 29, From: "Zurich", To: "Munchen", Length: 2, Color: Yellow, Type: Tunnel},
	{ID: 30, From: "Zurich", To: "Marseille", Length: 2, Color: Pink, Type: Tunnel},
	{ID: 31, From: "Zurich", To: "Venezia", Length: 2, Color: Green, Type: Tunnel},
	{ID: 32, From: "Marseille", To: "Pamplona", Length: 4, Color: Red, Type: Normal},
	{ID: 33, From: "Marseille", To: "Barcelona", Length: 4, Color: Any, Type: Normal},
	{ID: 34, From: "Marseille", To: "Roma", Length: 4, Color: Any, Type: Tunnel},
	{ID: 35, From: "Pamplona", To: "Barcelona", Length: 2, Color: Any, Type: Tunnel},
	{ID: 36, From: "Pamplona", To: "Madrid", Length: 3, Color: Black, Type: Tunnel, Double: true},
	{ID: 37, From: "Pamplona", To: "Madrid", Length: 3, Color: White, Type: Tunnel, Double: true},
	{ID: 38, From: "Barcelona", To: "Madrid", Length: 2, Color: Yellow, Type: Normal},
	{ID: 39, From: "Madrid", To: "Lisboa", Length: 3, Color: Pink, Type: Normal},
	{ID: 40, From: "Madrid", To: "Cadiz", Length: 3, Color: Orange, Type: Normal},
	{ID: 41, From: "Lisboa", To: "Cadiz", Length: 2, Color: Blue, Type: Normal},
	{ID: 42, From: "Stockholm", To: "Kobenhavn", Length: 3, Color: Yellow, Type: Normal, Double: true},
	{ID: 43, From: "Stockholm", To: "Kobenhavn", Length: 3, Color: White, Type: Normal, Double: true},
	{ID: 44, From: "Stockholm", To: "Petrograd", Length: 8, Color: Any, Type: Tunnel},
	{ID: 45, From: "Kobenhavn", To: "Berlin", Length: 3, Color: Any, Type: Ferry, Ferries: 1},
	{ID: 46, From: "Berlin", To: "Danzig", Length: 4, Color: Any, Type: Normal},
	{ID: 47, From: "Berlin", To: "Warszawa", Length: 4, Color: Pink, Type: Normal, Double: true},
	{ID: 48, From: "Berlin", To: "Warszawa", Length: 4, Color: Yellow, Type: Normal, Double: true},
	{ID: 49, From: "Berlin", To: "Wien", Length: 3, Color: Green, Type: Normal},
	{ID: 50, From: "Danzig", To: "Warszawa", Length: 2, Color: Any, Type: Normal},
	{ID: 51, From: "Danzig", To: "Riga", Length: 3, Color: Black, Type: Normal},
	{ID: 52, From: "Warszawa", To: "Wilno", Length: 3, Color: Red, Type: Normal},
	{ID: 53, From: "Warszawa", To: "Kyiv", Length: 4, Color: Any, Type: Normal},
	{ID: 54, From: "Warszawa", To: "Wien", Length: 4, Color: Blue, Type: Normal},
	{ID: 55, From: "Wien", To: "Munchen", Length: 3, Color: Orange, Type: Normal},
	{ID: 56, From: "Wien", To: "Budapest", Length: 1, Color: Red, Type: Normal, Double: true},
	{ID: 57, From: "Wien", To: "Budapest", Length: 1, Color: White, Type: Normal, Double: true},
	{ID: 58, From: "Wien", To: "Zagrab", Length: 2, Color: Any, Type: Normal},
	{ID: 59, From: "Munchen", To: "Venezia", Length: 2, Color: Blue, Type: Tunnel},
	{ID: 60, From: "Venezia", To: "Zagrab", Length: 2, Color: Any, Type: Normal},
	{ID: 61, From: "Venezia", To: "Roma", Length: 2, Color: Black, Type: Normal},
	{ID: 62, From: "Roma", To: "Brindisi", Length: 2, Color: White, Type: Normal},
	{ID: 63, From: "Roma", To: "Palermo", Length: 4, Color: Any, Type: Ferry, Ferries: 1},
	{ID: 64, From: "Palermo", To: "Brindisi", Length: 3, Color: Any, Type: Ferry, Ferries: 1},
	{ID: 65, From: "Palermo", To: "Smyrna", Length: 6, Color: Any, Type: Ferry, Ferries: 2},
	{ID: 66, From: "Brindisi", To: "Athina", Length: 4, Color: Any, Type: Ferry, Ferries: 1},
	{ID: 67, From: "Zagrab", To: "Sarajevo", Length: 3, Color: Red, Type: Normal},
	{ID: 68, From: "Zagrab", To: "Budapest", Length: 2, Color: Orange, Type: Normal},
	{ID: 69, From: "Sarajevo", To: "Budapest", Length: 3, Color: Pink, Type: Normal},
	{ID: 70, From: "Sarajevo", To: "Sofia", Length: 2, Color: Any, Type: Tunnel},
	{ID: 71, From: "Sarajevo", To: "Athina", Length: 4, Color: Green, Type: Normal},
	{ID: 72, From: "Budapest", To: "Kyiv", Length: 6, Color: Any, Type: Tunnel},
	{ID: 73, From: "Budapest", To: "Bucuresti", Length: 4, Color: Any, Type: Tunnel},
	{ID: 74, From: "Kyiv", To: "Wilno", Length: 2, Color: Any, Type: Normal},
	{ID: 75, From: "Kyiv", To: "Smolensk", Length: 3, Color: Red, Type: Normal},
	{ID: 76, From: "Kyiv", To: "Kharkov", Length: 4, Color: Any, Type: Normal},
	{ID: 77, From: "Kyiv", To: "Bucuresti", Length: 4, Color: Any, Type: Normal},
	{ID: 78, From: "Wilno", To: "Riga", Length: 4, Color: Green, Type: Normal},
	{ID: 79, From: "Wilno", To: "Petrograd", Length: 4, Color: Blue, Type: Normal},
	{ID: 80, From: "Wilno", To: "Smolensk", Length: 3, Color: Yellow, Type: Normal},
	{ID: 81, From: "Riga", To: "Petrograd", Length: 4, Color: Any, Type: Normal},
	{ID: 82, From: "Petrograd", To: "Moskva", Length: 4, Color: White, Type: Normal},
	{ID: 83, From: "Moskva", To: "Smolensk", Length: 2, Color: Orange, Type: Normal},
	{ID: 84, From: "Moskva", To: "Kharkov", Length: 4, Color: Any, Type: Normal},
	{ID: 85, From: "Kharkov", To: "Rostov", Length: 2, Color: Green, Type: Normal},
	{ID: 86, From: "Rostov", To: "Sevastopol", Length: 4, Color: Any, Type: Normal},
	{ID: 87, From: "Rostov", To: "Sochi", Length: 2, Color: Any, Type: Normal},
	{ID: 88, From: "Sevastopol", To: "Bucuresti", Length: 4, Color: White, Type: Ferry, Ferries: 1},
	{ID: 89, From: "Sevastopol", To: "Sochi", Length: 2, Color: Any, Type: Ferry, Ferries: 1},
	{ID: 90, From: "Sevastopol", To: "Constantinople", Length: 4, Color: Any, Type: Ferry, Ferries: 2},
	{ID: 91, From: "Sochi", To: "Erzurum", Length: 3, Color: Red, Type: Tunnel},
	{ID: 92, From: "Bucuresti", To: "Sofia", Length: 2, Color: Any, Type: Tunnel},
	{ID: 93, From: "Bucuresti", To: "Constantinople", Length: 3, Color: Yellow, Type: Normal},
	{ID: 94, From: "Sofia", To: "Athina", Length: 3, Color: Pink, Type: Normal},
	{ID: 95, From: "Sofia", To: "Constantinople", Length: 3, Color: Blue, Type: Normal},
	{ID: 96, From: "Athina", To: "Smyrna", Length: 2, Color: Any, Type: Ferry, Ferries: 1},
	{ID: 97, From: "Smyrna", To: "Constantinople", Length: 2, Color: Any, Type: Tunnel},
	{ID: 98, From: "Smyrna", To: "Angora", Length: 3, Color: Orange, Type: Tunnel},
	{ID: 99, From: "Constantinople", To: "Angora", Length: 2, Color: Any, Type: Tunnel},
	{ID: 100, From: "Angora", To: "Erzurum", Length: 3, Color: Black, Type: Normal},
}

var (
	cityIndex  = map[string]City{}
	routeIndex = map[int]Route{}
)

func init() {
	for _, c := range cities {
		cityIndex[c.Name] = c
	}
	for _, r := range routes {
		routeIndex[r.ID] = r
	}
}

// Cities returns the full city list. Callers must treat it as read-only.
func Cities() []City {
	return cities
}

// Routes returns the full route list. Callers must treat it as read-only.
func Routes() []Route {
	return routes
}

// CityExists reports whether a city name is on the map.
func CityExists(name string) bool {
	_, ok := cityIndex[name]
	return ok
}

// RouteByID looks up a route by its id.
func RouteByID(id int) (Route, bool) {
	r, ok := routeIndex[id]
	return r, ok
}

// PairedRoute finds the parallel twin of a route: same unordered endpoints,
// same length, different id. Returns false if the route has no twin.
func PairedRoute(r Route) (Route, bool) {
	for _, other := range routes {
		if other.ID == r.ID || other.Length != r.Length {
			continue
		}
		if (other.From == r.From && other.To == r.To) || (other.From == r.To && other.To == r.From) {
			return other, true
		}
	}
	return Route{}, false
}
