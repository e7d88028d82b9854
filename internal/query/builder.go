package query

import (
	"fmt"
	"strings"
)

// Op identifies the comparison a predicate applies.
type Op int

const (
	Eq      Op = iota // exact match
	Like              // substring match
	Between           // inclusive range; Upper holds the high bound
	Gte               // inclusive lower bound
)

// Predicate is one column filter.
type Predicate struct {
	Column string
	Op     Op
	Value  any
	Upper  any
}

// Descriptor is the storage-agnostic representation of one list query:
// predicates, ordering and paging. It performs no I/O itself.
type Descriptor struct {
	Predicates []Predicate
	OrderBy    string
	Order      string
	Offset     int
	Limit      int
}

// Params are the fully-resolved filter values a descriptor is built from.
// Nil Type and Search mean "do not filter on that column".
type Params struct {
	Page      int
	Limit     int
	MinPrice  float64
	MaxPrice  float64
	Bedrooms  int
	Bathrooms int
	Type      *string
	Search    *string
	OrderBy   string
	Order     string
}

var sortable = map[string]bool{
	"id":        true,
	"address":   true,
	"price":     true,
	"bedrooms":  true,
	"bathrooms": true,
	"type":      true,
}

// Build translates resolved params into a descriptor. Validated input always
// satisfies page >= 1 and limit >= 1; both are still clamped here so a caller
// that skipped validation gets the first page instead of a negative offset.
// The sort column is re-checked against the sortable set because it is
// interpolated into the ORDER BY clause.
func Build(p Params) Descriptor {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = 1
	}

	var predicates []Predicate
	if p.Search != nil && *p.Search != "" {
		predicates = append(predicates, Predicate{Column: "address", Op: Like, Value: *p.Search})
	}
	predicates = append(predicates,
		Predicate{Column: "price", Op: Between, Value: p.MinPrice, Upper: p.MaxPrice},
		Predicate{Column: "bedrooms", Op: Gte, Value: p.Bedrooms},
		Predicate{Column: "bathrooms", Op: Gte, Value: p.Bathrooms},
	)
	if p.Type != nil {
		predicates = append(predicates, Predicate{Column: "type", Op: Eq, Value: *p.Type})
	}

	orderBy := p.OrderBy
	if !sortable[orderBy] {
		orderBy = "price"
	}
	order := strings.ToUpper(p.Order)
	if order != "DESC" {
		order = "ASC"
	}

	return Descriptor{
		Predicates: predicates,
		OrderBy:    orderBy,
		Order:      order,
		Offset:     limit * (page - 1),
		Limit:      limit,
	}
}

// Condition is one rendered SQL fragment with its arguments.
type Condition struct {
	Expr string
	Args []any
}

// Conditions renders the predicates as parameterized SQL fragments for the
// storage adapter.
func (d Descriptor) Conditions() []Condition {
	conditions := make([]Condition, 0, len(d.Predicates))
	for _, p := range d.Predicates {
		switch p.Op {
		case Like:
			conditions = append(conditions, Condition{
				Expr: fmt.Sprintf("%s LIKE ?", p.Column),
				Args: []any{fmt.Sprintf("%%%v%%", p.Value)},
			})
		case Between:
			conditions = append(conditions, Condition{
				Expr: fmt.Sprintf("%s BETWEEN ? AND ?", p.Column),
				Args: []any{p.Value, p.Upper},
			})
		case Gte:
			conditions = append(conditions, Condition{
				Expr: fmt.Sprintf("%s >= ?", p.Column),
				Args: []any{p.Value},
			})
		default:
			conditions = append(conditions, Condition{
				Expr: fmt.Sprintf("%s = ?", p.Column),
				Args: []any{p.Value},
			})
		}
	}
	return conditions
}

// OrderClause renders the ORDER BY fragment. OrderBy and Order are safe to
// interpolate: both were checked against fixed sets in Build.
func (d Descriptor) OrderClause() string {
	return fmt.Sprintf("%s %s", d.OrderBy, d.Order)
}
