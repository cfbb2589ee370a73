package entity

// PackageType distinguishes open-gym subscriptions from lesson bundles.
type PackageType string

const (
	PackageTypeSubscription PackageType = "ABONMAN"
	PackageTypeLessonBundle PackageType = "DERS_PAKETI"
)

// SessionFormat describes how lessons in a package are delivered.
type SessionFormat string

const (
	SessionFormatIndividual SessionFormat = "BIREYSEL"
	SessionFormatDuet       SessionFormat = "DUET"
	SessionFormatGroup      SessionFormat = "GRUP"
	SessionFormatOpen       SessionFormat = "SERBEST"
)

// ServiceCategory splits services into self-service gym access and
// coached programs.
type ServiceCategory string

const (
	ServiceCategorySelfService ServiceCategory = "SELF_SERVICE"
	ServiceCategoryCoaching    ServiceCategory = "COACHING"
)

// Service is a branch of the gym's offering (fitness, reformer, ...).
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// Package is a sellable membership product. Price is VAT-exclusive.
type Package struct {
	ID               string        `json:"id"`
	ServiceID        string        `json:"serviceId"`
	Name             string        `json:"name"`
	Type             PackageType   `json:"type"`
	Price            float64       `json:"price"`
	SessionCount     int           `json:"sessionCount,omitempty"`
	SessionFormat    SessionFormat `json:"sessionFormat,omitempty"`
	ValidityDays     int           `json:"validityDays,omitempty"`
	ValidityRequired bool          `json:"validityRequired"`
	IsActive         bool          `json:"isActive"`
	SortOrder        int           `json:"sortOrder"`
}

// UnitPrice returns the per-lesson price of the package. Packages
// without a session count (subscriptions) divide by one.
func (p *Package) UnitPrice() float64 {
	if p.SessionCount > 1 {
		return p.Price / float64(p.SessionCount)
	}
	return p.Price
}
