package service

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/alexnogueira4/side-take-home/internal/model"
	"github.com/alexnogueira4/side-take-home/internal/query"
	"github.com/alexnogueira4/side-take-home/internal/validation"
)

// mockPropertyRepository interprets query descriptors against an in-memory
// slice, mimicking MySQL's case-insensitive LIKE.
type mockPropertyRepository struct {
	properties []model.Property
	nextID     uint
	created    []model.Property
}

func newMockPropertyRepository(seed []model.Property) *mockPropertyRepository {
	maxID := uint(0)
	for _, p := range seed {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return &mockPropertyRepository{properties: seed, nextID: maxID + 1}
}

func (m *mockPropertyRepository) matches(p model.Property, pred query.Predicate) bool {
	switch pred.Column {
	case "address":
		search := pred.Value.(string)
		return strings.Contains(strings.ToLower(p.Address), strings.ToLower(search))
	case "price":
		return p.Price >= pred.Value.(float64) && p.Price <= pred.Upper.(float64)
	case "bedrooms":
		return p.Bedrooms >= pred.Value.(int)
	case "bathrooms":
		return p.Bathrooms >= pred.Value.(int)
	case "type":
		return p.Type != nil && *p.Type == pred.Value.(string)
	}
	return true
}

func (m *mockPropertyRepository) FindAndCount(d query.Descriptor) ([]model.Property, int64, error) {
	var filtered []model.Property
	for _, p := range m.properties {
		ok := true
		for _, pred := range d.Predicates {
			if !m.matches(p, pred) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, p)
		}
	}

	desc := d.Order == "DESC"
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if desc {
			a, b = b, a
		}
		switch d.OrderBy {
		case "id":
			return a.ID < b.ID
		case "address":
			return a.Address < b.Address
		case "bedrooms":
			return a.Bedrooms < b.Bedrooms
		case "bathrooms":
			return a.Bathrooms < b.Bathrooms
		default:
			return a.Price < b.Price
		}
	})

	total := int64(len(filtered))
	if d.Offset >= len(filtered) {
		return nil, total, nil
	}
	end := d.Offset + d.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[d.Offset:end], total, nil
}

func (m *mockPropertyRepository) GetByID(id int) (*model.Property, error) {
	for i := range m.properties {
		if int(m.properties[i].ID) == id {
			p := m.properties[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockPropertyRepository) Create(p *model.Property) error {
	p.ID = m.nextID
	m.nextID++
	m.properties = append(m.properties, *p)
	m.created = append(m.created, *p)
	return nil
}

func (m *mockPropertyRepository) Update(p *model.Property) error {
	for i := range m.properties {
		if m.properties[i].ID == p.ID {
			m.properties[i] = *p
			return nil
		}
	}
	return fmt.Errorf("property %d missing", p.ID)
}

func (m *mockPropertyRepository) Delete(p *model.Property) error {
	for i := range m.properties {
		if m.properties[i].ID == p.ID {
			m.properties = append(m.properties[:i], m.properties[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("property %d missing", p.ID)
}

// seedProperties builds 126 rows. Rows 40-42 are the only ones with a
// "South" address, 6 bathrooms and a Townhouse label, so the full filter
// combination matches exactly those three.
func seedProperties() []model.Property {
	labels := []string{"House", "Townhouse", "Condo"}
	townhouse := "Townhouse"

	rows := make([]model.Property, 0, 126)
	for i := 1; i <= 126; i++ {
		p := model.Property{
			ID:        uint(i),
			Address:   fmt.Sprintf("%d North Ridge Fwy #%d", 20000+i, i),
			Price:     float64(100000 * i),
			Bedrooms:  i % 5,
			Bathrooms: i % 4,
		}
		if i%4 != 0 {
			label := labels[i%len(labels)]
			p.Type = &label
		}
		if i >= 40 && i <= 42 {
			p.Address = fmt.Sprintf("32738 South VISTA MADERA Lane #F%d", i)
			p.Price = 2893021
			p.Bedrooms = 2
			p.Bathrooms = 6
			p.Type = &townhouse
		}
		rows = append(rows, p)
	}
	return rows
}

func newSeededService() (PropertyService, *mockPropertyRepository) {
	repo := newMockPropertyRepository(seedProperties())
	return NewPropertyService(repo), repo
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func TestFindAllDefaults(t *testing.T) {
	svc, _ := newSeededService()

	page, err := svc.FindAll(validation.ListQuery{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.Page != 1 || page.Limit != 10 {
		t.Errorf("Expected page 1 limit 10, got %d/%d", page.Page, page.Limit)
	}
	if page.Total != 126 {
		t.Errorf("Expected total 126, got %d", page.Total)
	}
	if page.TotalPages != 13 {
		t.Errorf("Expected totalPages 13, got %d", page.TotalPages)
	}
	if len(page.Data) != 10 {
		t.Fatalf("Expected 10 rows, got %d", len(page.Data))
	}

	// Default ordering is price ascending.
	for i := 1; i < len(page.Data); i++ {
		if page.Data[i].Price < page.Data[i-1].Price {
			t.Fatalf("Expected ascending prices, got %v before %v",
				page.Data[i-1].Price, page.Data[i].Price)
		}
	}
	if page.Data[0].Price != 100000 {
		t.Errorf("Expected cheapest row first, got price %v", page.Data[0].Price)
	}
}

func TestFindAllSecondPage(t *testing.T) {
	svc, _ := newSeededService()

	page, err := svc.FindAll(validation.ListQuery{Page: intPtr(2), Limit: intPtr(10)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.Page != 2 || page.Total != 126 || page.TotalPages != 13 {
		t.Errorf("Unexpected metadata: %+v", page)
	}
	if len(page.Data) != 10 {
		t.Fatalf("Expected 10 rows, got %d", len(page.Data))
	}
	// The 11th-cheapest row opens page two.
	if page.Data[0].Price != 1100000 {
		t.Errorf("Expected page 2 to start at 1100000, got %v", page.Data[0].Price)
	}
}

func TestFindAllLastPageAndBeyond(t *testing.T) {
	svc, _ := newSeededService()

	page, err := svc.FindAll(validation.ListQuery{Page: intPtr(13)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(page.Data) != 6 {
		t.Errorf("Expected 6 rows on the last page, got %d", len(page.Data))
	}

	page, err = svc.FindAll(validation.ListQuery{Page: intPtr(14)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(page.Data) != 0 {
		t.Errorf("Expected an empty page past the end, got %d rows", len(page.Data))
	}
	if page.Data == nil {
		t.Error("Expected an empty slice, not nil")
	}
	if page.Total != 126 {
		t.Errorf("Expected total to ignore pagination, got %d", page.Total)
	}
}

// Direct callers can pass paging values validation would have rejected; the
// response metadata must still describe the page actually served.
func TestFindAllClampsNonPositivePaging(t *testing.T) {
	svc, _ := newSeededService()

	page, err := svc.FindAll(validation.ListQuery{Page: intPtr(0), Limit: intPtr(0)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.Page != 1 || page.Limit != 1 {
		t.Errorf("Expected clamped page 1 limit 1, got %d/%d", page.Page, page.Limit)
	}
	if page.TotalPages != 126 {
		t.Errorf("Expected totalPages ceil(126/1) = 126, got %d", page.TotalPages)
	}
	if len(page.Data) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(page.Data))
	}
	if page.Data[0].Price != 100000 {
		t.Errorf("Expected the first page's cheapest row, got price %v", page.Data[0].Price)
	}

	page, err = svc.FindAll(validation.ListQuery{Page: intPtr(-3)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.Page != 1 || page.Limit != 10 || page.TotalPages != 13 {
		t.Errorf("Expected first-page metadata, got %+v", page)
	}
	if page.Data[0].Price != 100000 {
		t.Errorf("Expected page 1 data, got first price %v", page.Data[0].Price)
	}
}

func TestFindAllTotalPagesCeil(t *testing.T) {
	svc, _ := newSeededService()

	page, err := svc.FindAll(validation.ListQuery{Limit: intPtr(20)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.TotalPages != 7 {
		t.Errorf("Expected ceil(126/20) = 7, got %d", page.TotalPages)
	}
}

func TestFindAllFilterScenario(t *testing.T) {
	svc, _ := newSeededService()

	page, err := svc.FindAll(validation.ListQuery{
		Page:      intPtr(1),
		Limit:     intPtr(10),
		Search:    strPtr("south"),
		MinPrice:  floatPtr(1111111),
		MaxPrice:  floatPtr(1222222222),
		Bedrooms:  intPtr(2),
		Bathrooms: intPtr(6),
		Type:      strPtr("Townhouse"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.Total != 3 || page.TotalPages != 1 {
		t.Errorf("Expected 3 matches on 1 page, got total %d pages %d", page.Total, page.TotalPages)
	}
	if len(page.Data) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(page.Data))
	}
	for _, p := range page.Data {
		if !strings.Contains(strings.ToLower(p.Address), "south") {
			t.Errorf("Row %d address %q does not contain the search term", p.ID, p.Address)
		}
		if p.Type == nil || *p.Type != "Townhouse" {
			t.Errorf("Row %d has wrong type", p.ID)
		}
	}
}

func TestFindAllMinPriceDefaultPerCallSite(t *testing.T) {
	free := model.Property{ID: 1, Address: "1 Giveaway Rd", Price: 0, Bedrooms: 1, Bathrooms: 1}
	cheap := model.Property{ID: 2, Address: "2 Bargain Ln", Price: 5, Bedrooms: 1, Bathrooms: 1}
	svc := NewPropertyService(newMockPropertyRepository([]model.Property{free, cheap}))

	// Direct invocation with no minPrice falls back to 1, excluding the free row.
	page, err := svc.FindAll(validation.ListQuery{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.Total != 1 {
		t.Errorf("Expected the service-side fallback to exclude price 0, got total %d", page.Total)
	}

	// Requests through the query schema arrive with minPrice already 0.
	page, err = svc.FindAll(validation.ListQuery{MinPrice: floatPtr(0)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Expected minPrice 0 to include price 0, got total %d", page.Total)
	}
}

func TestFindAllFilterMonotonicity(t *testing.T) {
	svc, _ := newSeededService()

	prev := int64(127)
	for bedrooms := 0; bedrooms <= 5; bedrooms++ {
		page, err := svc.FindAll(validation.ListQuery{Bedrooms: intPtr(bedrooms)})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if page.Total > prev {
			t.Errorf("Raising the bedrooms threshold to %d increased the count: %d > %d",
				bedrooms, page.Total, prev)
		}
		prev = page.Total
	}

	prev = 127
	for _, minPrice := range []float64{0, 100000, 1000000, 5000000, 13000000} {
		page, err := svc.FindAll(validation.ListQuery{MinPrice: floatPtr(minPrice)})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if page.Total > prev {
			t.Errorf("Raising minPrice to %v increased the count: %d > %d",
				minPrice, page.Total, prev)
		}
		prev = page.Total
	}
}

func TestFindAllSearchNarrowing(t *testing.T) {
	svc, _ := newSeededService()

	all, err := svc.FindAll(validation.ListQuery{Limit: intPtr(200)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if all.Total != 126 {
		t.Fatalf("Expected omitting search to exclude nothing, got %d", all.Total)
	}

	narrowed, err := svc.FindAll(validation.ListQuery{Search: strPtr("south"), Limit: intPtr(200)})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if narrowed.Total >= all.Total {
		t.Errorf("Expected search to narrow results, got %d of %d", narrowed.Total, all.Total)
	}
	for _, p := range narrowed.Data {
		if !strings.Contains(strings.ToLower(p.Address), "south") {
			t.Errorf("Row %d address %q missing search term", p.ID, p.Address)
		}
	}
}

func TestFindAllSortDescending(t *testing.T) {
	svc, _ := newSeededService()

	page, err := svc.FindAll(validation.ListQuery{OrderBy: strPtr("price"), Order: strPtr("DESC")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.Data[0].Price != 12600000 {
		t.Errorf("Expected the priciest row first, got %v", page.Data[0].Price)
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newSeededService()

	property, err := svc.GetByID(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if property == nil || property.ID != 1 {
		t.Fatalf("Expected property 1, got %+v", property)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newSeededService()

	property, err := svc.GetByID(100000)
	if err != nil {
		t.Fatalf("Expected no error for a missing row, got %v", err)
	}
	if property != nil {
		t.Errorf("Expected nil for a missing row, got %+v", property)
	}
}

func TestCreate(t *testing.T) {
	svc, repo := newSeededService()

	message, err := svc.Create(validation.PropertyPayload{
		Address:   "999 Default Street #56",
		Price:     12343210,
		Bedrooms:  1,
		Bathrooms: 1,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if message.Status != "success" || message.Message != "Property has been saved" {
		t.Errorf("Unexpected message %+v", message)
	}
	if message.Data != nil {
		t.Error("Expected create to omit the entity from its message")
	}
	if len(repo.created) != 1 {
		t.Fatalf("Expected 1 insert, got %d", len(repo.created))
	}
}

// Pins the create/update asymmetry: only Update writes the type label.
func TestCreateIgnoresType(t *testing.T) {
	svc, repo := newSeededService()

	_, err := svc.Create(validation.PropertyPayload{
		Address:   "999 Default Street #56",
		Price:     12343210,
		Bedrooms:  1,
		Bathrooms: 1,
		Type:      strPtr("Condo"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if repo.created[0].Type != nil {
		t.Errorf("Expected create to leave type null, got %q", *repo.created[0].Type)
	}
}

func TestCreateRoundTrip(t *testing.T) {
	svc, repo := newSeededService()

	payload := validation.PropertyPayload{
		Address:   "999 Default Street #56",
		Price:     12343210,
		Bedrooms:  1,
		Bathrooms: 1,
	}
	if _, err := svc.Create(payload); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	property, err := svc.GetByID(int(repo.created[0].ID))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if property == nil {
		t.Fatal("Expected the created property to be fetchable")
	}
	if property.Address != payload.Address || property.Price != payload.Price ||
		property.Bedrooms != payload.Bedrooms || property.Bathrooms != payload.Bathrooms {
		t.Errorf("Round trip mismatch: %+v vs %+v", property, payload)
	}
}

func TestUpdate(t *testing.T) {
	svc, _ := newSeededService()

	payload := validation.PropertyPayload{
		Address:   "999 Default Street #56",
		Price:     12343210,
		Bedrooms:  10,
		Bathrooms: 1,
		Type:      strPtr("Townhouse"),
	}
	message, err := svc.Update(payload, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if message.Status != "success" || message.Message != "Property updated successfully" {
		t.Errorf("Unexpected message %+v", message)
	}

	updated, ok := message.Data.(*model.Property)
	if !ok {
		t.Fatalf("Expected updated entity in message, got %T", message.Data)
	}
	if updated.ID != 1 || updated.Bedrooms != 10 {
		t.Errorf("Unexpected entity %+v", updated)
	}
	if updated.Type == nil || *updated.Type != "Townhouse" {
		t.Error("Expected update to persist the type label")
	}

	property, _ := svc.GetByID(1)
	if property.Address != payload.Address || property.Type == nil || *property.Type != "Townhouse" {
		t.Errorf("Update not persisted: %+v", property)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, repo := newSeededService()
	before := len(repo.properties)

	message, err := svc.Update(validation.PropertyPayload{Address: "x", Price: 1}, 100000)
	if err != nil {
		t.Fatalf("Expected no error for a missing row, got %v", err)
	}
	if message != nil {
		t.Errorf("Expected nil message, got %+v", message)
	}
	if len(repo.properties) != before {
		t.Error("Expected no mutation on a missing row")
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newSeededService()

	message, err := svc.Delete(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if message.Status != "success" || message.Message != "Property deleted successfully" {
		t.Errorf("Unexpected message %+v", message)
	}

	property, _ := svc.GetByID(1)
	if property != nil {
		t.Error("Expected the row to be gone")
	}
}

func TestDeleteNotFoundIdempotent(t *testing.T) {
	svc, _ := newSeededService()

	for i := 0; i < 2; i++ {
		message, err := svc.Delete(100000)
		if err != nil {
			t.Fatalf("Expected no error for a missing row, got %v", err)
		}
		if message != nil {
			t.Errorf("Expected nil message, got %+v", message)
		}
	}
}
