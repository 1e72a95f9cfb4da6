package model

// Flight mirrors the 'flights' table.  Flights form an immutable catalog
// read by the search endpoint; rows are serialized to clients as-is, so
// JSON tags live on the model itself.
//
// Fields:
//  ID            – primary key identifier.
//  Airline       – operating carrier name.
//  Source        – departure airport/city code.
//  Destination   – arrival airport/city code.
//  DepartureTime – scheduled departure, formatted by the store driver.
//  ArrivalTime   – scheduled arrival.
//  Price         – ticket price.
type Flight struct {
	ID            uint64  `json:"flight_id"`      // flights.flight_id
	Airline       string  `json:"airline"`        // flights.airline
	Source        string  `json:"source"`         // flights.source
	Destination   string  `json:"destination"`    // flights.destination
	DepartureTime string  `json:"departure_time"` // flights.departure_time
	ArrivalTime   string  `json:"arrival_time"`   // flights.arrival_time
	Price         float64 `json:"price"`          // flights.price
}
