package domain

type VATScheme string

const (
	VATSchemeStandard       VATScheme = "standard"
	VATSchemeFlatRate       VATScheme = "flat_rate"
	VATSchemeCashAccounting VATScheme = "cash_accounting"
	VATSchemeNotRegistered  VATScheme = "not_registered"
)

func (s VATScheme) IsValid() bool {
	switch s {
	case VATSchemeStandard, VATSchemeFlatRate, VATSchemeCashAccounting, VATSchemeNotRegistered:
		return true
	}
	return false
}

type BusinessType string

const (
	BusinessTypeSoleTrader     BusinessType = "sole_trader"
	BusinessTypePartnership    BusinessType = "partnership"
	BusinessTypeLimitedCompany BusinessType = "limited_company"
)

func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessTypeSoleTrader, BusinessTypePartnership, BusinessTypeLimitedCompany:
		return true
	}
	return false
}

// Business is a trading entity owned by a client.
type Business struct {
	ID            string       `json:"id"`
	OwnerID       string       `json:"ownerId"`
	CompanyName   string       `json:"companyName"`
	CompanyNumber *string      `json:"companyNumber,omitempty"`
	UTR           *string      `json:"utr,omitempty"` // Unique Taxpayer Reference
	VATNumber     *string      `json:"vatNumber,omitempty"`
	VATScheme     *VATScheme   `json:"vatScheme,omitempty"`
	BusinessType  BusinessType `json:"businessType"`
	Industry      *string      `json:"industry,omitempty"`
	Address       *string      `json:"address,omitempty"`
	City          *string      `json:"city,omitempty"`
	Postcode      *string      `json:"postcode,omitempty"`
	IsActive      bool         `json:"isActive"`
	IsPrimary     bool         `json:"isPrimary"`
	AuditFields
}

type BusinessPatch struct {
	CompanyName     *string
	CompanyNumber   *string
	UTR             *string
	VATNumber       *string
	VATScheme       *VATScheme
	BusinessType    *BusinessType
	Industry        *string
	Address         *string
	City            *string
	Postcode        *string
	IsActive        *bool
	IsPrimary       *bool
	ExpectedVersion *int
}

func (b *Business) Apply(p BusinessPatch) {
	set(&b.CompanyName, p.CompanyName)
	setOpt(&b.CompanyNumber, p.CompanyNumber)
	setOpt(&b.UTR, p.UTR)
	setOpt(&b.VATNumber, p.VATNumber)
	setOpt(&b.VATScheme, p.VATScheme)
	set(&b.BusinessType, p.BusinessType)
	setOpt(&b.Industry, p.Industry)
	setOpt(&b.Address, p.Address)
	setOpt(&b.City, p.City)
	setOpt(&b.Postcode, p.Postcode)
	set(&b.IsActive, p.IsActive)
	set(&b.IsPrimary, p.IsPrimary)
}
