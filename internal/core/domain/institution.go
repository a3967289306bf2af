package domain

import "github.com/shopspring/decimal"

// InstitutionType classifies what an approved institution may be paid for.
type InstitutionType string

const (
	InstitutionHealthcare InstitutionType = "HEALTHCARE"
	InstitutionEducation  InstitutionType = "EDUCATION"
	InstitutionBoth       InstitutionType = "BOTH"
)

// IsValid returns true for the known institution types.
func (t InstitutionType) IsValid() bool {
	switch t {
	case InstitutionHealthcare, InstitutionEducation, InstitutionBoth:
		return true
	}
	return false
}

// ApprovedInstitution is a payee the Owner has whitelisted. Deactivation keeps the record.
type ApprovedInstitution struct {
	ChildID         string          `json:"child_id"`
	Address         string          `json:"address"`
	Name            string          `json:"name"`
	InstitutionType InstitutionType `json:"institution_type"`
	ApprovedAt      int64           `json:"approved_at"`
	ApprovedBy      string          `json:"approved_by"`
	IsActive        bool            `json:"is_active"`
}

// InstitutionPayment is an append-only record of money leaving the wallet.
type InstitutionPayment struct {
	ChildID         string          `json:"child_id"`
	Amount          decimal.Decimal `json:"amount"`
	Institution     string          `json:"institution"`
	InstitutionName string          `json:"institution_name"`
	PaymentPurpose  string          `json:"payment_purpose"`
	Timestamp       int64           `json:"timestamp"`
	PaidBy          string          `json:"paid_by"`
}
