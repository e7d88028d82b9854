package validation

import (
	"math"
	"net/url"
)

// SortableColumns are the property columns the list endpoint may order by.
var SortableColumns = []string{"id", "address", "price", "bedrooms", "bathrooms", "type"}

// ListQuerySchema validates the GET /properties query string. Page and limit
// must be at least 1 so downstream pagination math never sees zero.
var ListQuerySchema = Schema{
	{Field: "page", Kind: Integer, Min: bound(1)},
	{Field: "limit", Kind: Integer, Min: bound(1)},
	{Field: "minPrice", Kind: Number, Default: float64(0)},
	{Field: "maxPrice", Kind: Number, Default: math.MaxFloat64, AtLeastField: "minPrice"},
	{Field: "bedrooms", Kind: Integer},
	{Field: "bathrooms", Kind: Integer},
	{Field: "type", Kind: Text},
	{Field: "orderBy", Kind: Text, Enum: SortableColumns},
	{Field: "order", Kind: Text, Enum: []string{"ASC", "DESC"}},
	{Field: "search", Kind: Text},
}

// PropertyIDSchema validates the :id path parameter.
var PropertyIDSchema = Schema{
	{Field: "id", Kind: Integer, Required: true},
}

// PropertySchema validates the create and update request bodies.
var PropertySchema = Schema{
	{Field: "address", Kind: Text, Required: true},
	{Field: "price", Kind: Number, Required: true},
	{Field: "bedrooms", Kind: Integer, Required: true},
	{Field: "bathrooms", Kind: Integer, Required: true},
	{Field: "type", Kind: Text, AllowNull: true},
}

// ListQuery is a normalized list request. Nil means the parameter was absent
// and the service decides the default.
type ListQuery struct {
	Page      *int
	Limit     *int
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *int
	Type      *string
	Search    *string
	OrderBy   *string
	Order     *string
}

// PropertyPayload carries the mutable fields of a create or update request.
type PropertyPayload struct {
	Address   string
	Price     float64
	Bedrooms  int
	Bathrooms int
	Type      *string
}

// BindListQuery builds a typed query from values ListQuerySchema normalized.
func BindListQuery(normalized map[string]any) *ListQuery {
	q := &ListQuery{}
	q.Page = intField(normalized, "page")
	q.Limit = intField(normalized, "limit")
	q.MinPrice = floatField(normalized, "minPrice")
	q.MaxPrice = floatField(normalized, "maxPrice")
	q.Bedrooms = intField(normalized, "bedrooms")
	q.Bathrooms = intField(normalized, "bathrooms")
	q.Type = stringField(normalized, "type")
	q.Search = stringField(normalized, "search")
	q.OrderBy = stringField(normalized, "orderBy")
	q.Order = stringField(normalized, "order")
	return q
}

// BindPropertyPayload builds a typed payload from values PropertySchema
// normalized. An explicit null type stays nil, same as an absent one.
func BindPropertyPayload(normalized map[string]any) *PropertyPayload {
	p := &PropertyPayload{}
	if v, ok := normalized["address"].(string); ok {
		p.Address = v
	}
	if v, ok := normalized["price"].(float64); ok {
		p.Price = v
	}
	if v, ok := normalized["bedrooms"].(int); ok {
		p.Bedrooms = v
	}
	if v, ok := normalized["bathrooms"].(int); ok {
		p.Bathrooms = v
	}
	p.Type = stringField(normalized, "type")
	return p
}

// BindPropertyID extracts the id PropertyIDSchema normalized.
func BindPropertyID(normalized map[string]any) int {
	id, _ := normalized["id"].(int)
	return id
}

// ParseListQuery validates and binds a raw query string in one step.
func ParseListQuery(values url.Values) (*ListQuery, error) {
	normalized, err := ListQuerySchema.ValidateValues(values)
	if err != nil {
		return nil, err
	}
	return BindListQuery(normalized), nil
}

func bound(v float64) *float64 { return &v }

func intField(m map[string]any, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func floatField(m map[string]any, key string) *float64 {
	if v, ok := m[key].(float64); ok {
		return &v
	}
	return nil
}

func stringField(m map[string]any, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}
