// internal/board/tickets.go
package board

// Ticket is a destination objective card. Long tickets live in their own deck
// and are only dealt during the initial offer.
type Ticket struct {
	ID     int    `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Points int    `json:"points"`
	Long   bool   `json:"long,omitempty"`
}

var normalTickets = []Ticket{
	{ID: 1, From: "Amsterdam", To: "Pamplona", Points: 7},
	{ID: 2, From: "Amsterdam", To: "Wilno", Points: 12},
	{ID: 3, From: "Athina", To: "Angora", Points: 5},
	{ID: 4, From: "Athina", To: "Wilno", Points: 11},
	{ID: 5, From: "Barcelona", To: "Bruxelles", Points: 8},
	{ID: 6, From: "Barcelona", To: "Munchen", Points: 8},
	{ID: 7, From: "Berlin", To: "Bucuresti", Points: 8},
	{ID: 8, From: "Berlin", To: "Moskva", Points: 12},
	{ID: 9, From: "Berlin", To: "Roma", Points: 9},
	{ID: 10, From: "Brest", To: "Marseille", Points: 7},
	{ID: 11, From: "Brest", To: "Venezia", Points: 8},
	{ID: 12, From: "Bruxelles", To: "Danzig", Points: 9},
	{ID: 13, From: "Budapest", To: "Sofia", Points: 5},
	{ID: 14, From: "Edinburgh", To: "Paris", Points: 7},
	{ID: 15, From: "Essen", To: "Kyiv", Points: 10},
	{ID: 16, From: "Frankfurt", To: "Kobenhavn", Points: 5},
	{ID: 17, From: "Frankfurt", To: "Smolensk", Points: 13},
	{ID: 18, From: "Kyiv", To: "Petrograd", Points: 6},
	{ID: 19, From: "Kyiv", To: "Sochi", Points: 8},
	{ID: 20, From: "London", To: "Berlin", Points: 7},
	{ID: 21, From: "London", To: "Wien", Points: 10},
	{ID: 22, From: "Madrid", To: "Dieppe", Points: 8},
	{ID: 23, From: "Madrid", To: "Zurich", Points: 8},
	{ID: 24, From: "Marseille", To: "Essen", Points: 8},
	{ID: 25, From: "Palermo", To: "Constantinople", Points: 8},
	{ID: 26, From: "Paris", To: "Wien", Points: 8},
	{ID: 27, From: "Paris", To: "Zagrab", Points: 7},
	{ID: 28, From: "Riga", To: "Bucuresti", Points: 10},
	{ID: 29, From: "Roma", To: "Smyrna", Points: 8},
	{ID: 30, From: "Sarajevo", To: "Sevastopol", Points: 8},
	{ID: 31, From: "Smolensk", To: "Rostov", Points: 8},
	{ID: 32, From: "Sofia", To: "Smyrna", Points: 5},
	{ID: 33, From: "Stockholm", To: "Wien", Points: 11},
	{ID: 34, From: "Venezia", To: "Constantinople", Points: 10},
	{ID: 35, From: "Warszawa", To: "Smolensk", Points: 6},
	{ID: 36, From: "Zagrab", To: "Brindisi", Points: 6},
	{ID: 37, From: "Zurich", To: "Brindisi", Points: 6},
	{ID: 38, From: "Zurich", To: "Budapest", Points: 6},
}

var longTickets = []Ticket{
	{ID: 101, From: "Lisboa", To: "Danzig", Points: 20, Long: true},
	{ID: 102, From: "Brest", To: "Petrograd", Points: 20, Long: true},
	{ID: 103, From: "Palermo", To: "Moskva", Points: 20, Long: true},
	{ID: 104, From: "Kobenhavn", To: "Erzurum", Points: 21, Long: true},
	{ID: 105, From: "Edinburgh", To: "Athina", Points: 21, Long: true},
	{ID: 106, From: "Cadiz", To: "Stockholm", Points: 21, Long: true},
}

// NormalTickets returns a fresh copy of the short/normal ticket deck, safe for
// the caller to shuffle.
func NormalTickets() []Ticket {
	out := make([]Ticket, len(normalTickets))
	copy(out, normalTickets)
	return out
}

// LongTickets returns a fresh copy of the long-distance ticket deck.
func LongTickets() []Ticket {
	out := make([]Ticket, len(longTickets))
	copy(out, longTickets)
	return out
}
