package request

// CreatePackageRequest represents a package creation request
type CreatePackageRequest struct {
	ServiceID        string  `json:"service_id" binding:"required"`
	Name             string  `json:"name" binding:"required,min=2,max=255"`
	Type             string  `json:"type" binding:"required,oneof=ABONMAN DERS_PAKETI"`
	Price            float64 `json:"price" binding:"required,min=0"`
	SessionCount     int     `json:"session_count" binding:"omitempty,min=1"`
	SessionFormat    string  `json:"session_format" binding:"omitempty,oneof=BIREYSEL DUET GRUP SERBEST"`
	ValidityDays     int     `json:"validity_days" binding:"omitempty,min=1"`
	ValidityRequired bool    `json:"validity_required"`
	SortOrder        int     `json:"sort_order"`
}

// UpdatePackageRequest represents a package update request
type UpdatePackageRequest struct {
	Name             *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price            *float64 `json:"price" binding:"omitempty,min=0"`
	SessionCount     *int     `json:"session_count" binding:"omitempty,min=1"`
	ValidityDays     *int     `json:"validity_days" binding:"omitempty,min=1"`
	ValidityRequired *bool    `json:"validity_required"`
	IsActive         *bool    `json:"is_active"`
	SortOrder        *int     `json:"sort_order"`
}

// CreateServiceRequest represents a service creation request
type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Category    string `json:"category" binding:"required,oneof=SELF_SERVICE COACHING"`
	Description string `json:"description"`
}

// UpdateServiceRequest represents a service update request
type UpdateServiceRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
