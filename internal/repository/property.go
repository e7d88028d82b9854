package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/alexnogueira4/side-take-home/internal/model"
	"github.com/alexnogueira4/side-take-home/internal/query"
)

// PropertyRepository is the storage facade the service depends on. A missing
// row is signaled by a nil entity, never by an error.
type PropertyRepository interface {
	FindAndCount(d query.Descriptor) ([]model.Property, int64, error)
	GetByID(id int) (*model.Property, error)
	Create(p *model.Property) error
	Update(p *model.Property) error
	Delete(p *model.Property) error
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// FindAndCount counts every row matching the descriptor's predicates, then
// fetches the requested page.
func (r *propertyRepository) FindAndCount(d query.Descriptor) ([]model.Property, int64, error) {
	tx := r.db.Model(&model.Property{})
	for _, cond := range d.Conditions() {
		tx = tx.Where(cond.Expr, cond.Args...)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("error counting properties: %w", err)
	}

	var properties []model.Property
	if err := tx.Order(d.OrderClause()).Offset(d.Offset).Limit(d.Limit).Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("error fetching properties: %w", err)
	}

	return properties, total, nil
}

// GetByID returns (nil, nil) when no row exists; absence is a normal outcome.
func (r *propertyRepository) GetByID(id int) (*model.Property, error) {
	var property model.Property
	if err := r.db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Create(p *model.Property) error {
	return r.db.Create(p).Error
}

func (r *propertyRepository) Update(p *model.Property) error {
	return r.db.Save(p).Error
}

func (r *propertyRepository) Delete(p *model.Property) error {
	return r.db.Delete(p).Error
}
