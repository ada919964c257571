package mapping

import (
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Type:        models.CategoryType(d.Type),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Type:        domain.CategoryType(m.Type),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSubCategory converts a domain SubCategory to a model SubCategory
func ToModelSubCategory(d domain.SubCategory) models.SubCategory {
	return models.SubCategory{
		SubCategoryID: d.SubCategoryID,
		CategoryID:    d.CategoryID,
		Name:          d.Name,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSubCategory converts a model SubCategory to a domain SubCategory
func ToDomainSubCategory(m models.SubCategory) domain.SubCategory {
	return domain.SubCategory{
		SubCategoryID: m.SubCategoryID,
		CategoryID:    m.CategoryID,
		Name:          m.Name,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
