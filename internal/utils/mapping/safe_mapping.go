package mapping

import (
	"github.com/SscSPs/cashflow_app/internal/core/domain"
	"github.com/SscSPs/cashflow_app/internal/models"
)

// ToModelSafe converts a domain Safe to a model Safe
func ToModelSafe(d domain.Safe) models.Safe {
	return models.Safe{
		SafeID:      d.SafeID,
		Name:        d.Name,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSafe converts a model Safe to a domain Safe
func ToDomainSafe(m models.Safe) domain.Safe {
	return domain.Safe{
		SafeID:      m.SafeID,
		Name:        m.Name,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
