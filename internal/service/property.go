package service

import (
	"math"

	"github.com/alexnogueira4/side-take-home/internal/model"
	"github.com/alexnogueira4/side-take-home/internal/query"
	"github.com/alexnogueira4/side-take-home/internal/repository"
	"github.com/alexnogueira4/side-take-home/internal/types"
	"github.com/alexnogueira4/side-take-home/internal/validation"
)

const (
	msgSaved   = "Property has been saved"
	msgUpdated = "Property updated successfully"
	msgDeleted = "Property deleted successfully"
)

// PropertyService orchestrates validated requests into repository calls and
// user-facing results. A nil result with a nil error means "not found".
type PropertyService interface {
	FindAll(q validation.ListQuery) (*types.Page[model.Property], error)
	GetByID(id int) (*model.Property, error)
	Create(payload validation.PropertyPayload) (*types.Message, error)
	Update(payload validation.PropertyPayload, id int) (*types.Message, error)
	Delete(id int) (*types.Message, error)
}

type propertyService struct {
	repo repository.PropertyRepository
}

func NewPropertyService(repo repository.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

// FindAll resolves defaults, builds the query descriptor and shapes one page.
// The minPrice fallback here is 1; requests that went through the query
// schema arrive with minPrice already defaulted to 0, so this fallback only
// applies to direct callers.
func (s *propertyService) FindAll(q validation.ListQuery) (*types.Page[model.Property], error) {
	params := query.Params{
		Page:     1,
		Limit:    10,
		MinPrice: 1,
		MaxPrice: math.MaxFloat64,
		OrderBy:  "price",
		Order:    "ASC",
		Type:     q.Type,
		Search:   q.Search,
	}
	if q.Page != nil {
		params.Page = *q.Page
	}
	if q.Limit != nil {
		params.Limit = *q.Limit
	}
	if q.MinPrice != nil {
		params.MinPrice = *q.MinPrice
	}
	if q.MaxPrice != nil {
		params.MaxPrice = *q.MaxPrice
	}
	if q.Bedrooms != nil {
		params.Bedrooms = *q.Bedrooms
	}
	if q.Bathrooms != nil {
		params.Bathrooms = *q.Bathrooms
	}
	if q.OrderBy != nil {
		params.OrderBy = *q.OrderBy
	}
	if q.Order != nil {
		params.Order = *q.Order
	}

	// Validated requests always carry page >= 1 and limit >= 1. Direct
	// callers may not; clamp here so the response metadata matches the page
	// the builder actually fetches.
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 1
	}

	data, total, err := s.repo.FindAndCount(query.Build(params))
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []model.Property{}
	}

	return &types.Page[model.Property]{
		Data:       data,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(params.Limit))),
	}, nil
}

func (s *propertyService) GetByID(id int) (*model.Property, error) {
	return s.repo.GetByID(id)
}

// Create persists a new listing. Only Update writes the type label; Create
// leaves it null regardless of the payload.
func (s *propertyService) Create(payload validation.PropertyPayload) (*types.Message, error) {
	property := model.Property{
		Address:   payload.Address,
		Price:     payload.Price,
		Bedrooms:  payload.Bedrooms,
		Bathrooms: payload.Bathrooms,
	}

	if err := s.repo.Create(&property); err != nil {
		return nil, err
	}

	return &types.Message{Status: "success", Message: msgSaved}, nil
}

// Update overwrites every mutable field of an existing listing, the type
// label included.
func (s *propertyService) Update(payload validation.PropertyPayload, id int) (*types.Message, error) {
	property, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}

	property.Address = payload.Address
	property.Price = payload.Price
	property.Bedrooms = payload.Bedrooms
	property.Bathrooms = payload.Bathrooms
	property.Type = payload.Type

	if err := s.repo.Update(property); err != nil {
		return nil, err
	}

	return &types.Message{Status: "success", Message: msgUpdated, Data: property}, nil
}

func (s *propertyService) Delete(id int) (*types.Message, error) {
	property, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}

	if err := s.repo.Delete(property); err != nil {
		return nil, err
	}

	return &types.Message{Status: "success", Message: msgDeleted}, nil
}
