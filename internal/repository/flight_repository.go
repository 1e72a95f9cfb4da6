package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/flight-booking/internal/model"
)

// FlightRepo reads the immutable flight catalog.
type FlightRepo struct{ DB *sql.DB }

func NewFlightRepo(db *sql.DB) *FlightRepo { return &FlightRepo{DB: db} }

// FlightFilter holds the optional search criteria for the catalog.  Nil
// fields are not applied; all present filters combine with AND.
type FlightFilter struct {
	Source      *string
	Destination *string
	MinPrice    *float64
	MaxPrice    *float64
}

// predicate is one typed WHERE clause: a vetted column, a vetted operator
// and a bound value.  Predicates are assembled from FlightFilter only, so
// no user input ever reaches the query text.
type predicate struct {
	column string
	op     string
	value  any
}

func (f FlightFilter) predicates() []predicate {
	preds := make([]predicate, 0, 4)
	if f.Source != nil {
		preds = append(preds, predicate{column: "source", op: "=", value: *f.Source})
	}
	if f.Destination != nil {
		preds = append(preds, predicate{column: "destination", op: "=", value: *f.Destination})
	}
	if f.MinPrice != nil {
		preds = append(preds, predicate{column: "price", op: ">=", value: *f.MinPrice})
	}
	if f.MaxPrice != nil {
		preds = append(preds, predicate{column: "price", op: "<=", value: *f.MaxPrice})
	}
	return preds
}

// Search returns all flights matching the filter.  With an empty filter
// the whole catalog is returned; ordering is whatever the store yields.
func (r *FlightRepo) Search(ctx context.Context, f FlightFilter) ([]model.Flight, error) {
	query := "SELECT flight_id,airline,source,destination,departure_time,arrival_time,price FROM flights"

	preds := f.predicates()
	args := make([]any, 0, len(preds))
	if len(preds) > 0 {
		clauses := make([]string, 0, len(preds))
		for _, p := range preds {
			clauses = append(clauses, p.column+" "+p.op+" ?")
			args = append(args, p.value)
		}
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]model.Flight, 0)
	for rows.Next() {
		var fl model.Flight
		if err := rows.Scan(&fl.ID, &fl.Airline, &fl.Source, &fl.Destination, &fl.DepartureTime, &fl.ArrivalTime, &fl.Price); err != nil {
			return nil, err
		}
		flights = append(flights, fl)
	}
	return flights, rows.Err()
}
