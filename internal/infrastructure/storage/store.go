// Package storage implements the collection store: a key to JSON
// document map where each domain collection is one document, rewritten
// in full on every mutation. Two drivers exist — a data directory of
// JSON files (matching the desktop build's layout) and a postgres
// documents table.
package storage

import (
	"context"
	"encoding/json"
)

// Collection keys. These match the document names the desktop build
// writes, so an existing data directory loads as-is.
const (
	KeyMembers        = "gym_members"
	KeyPackages       = "gym_packages"
	KeyServices       = "gym_services_v2"
	KeyStaff          = "gym_staff"
	KeyAppointments   = "gym_appointments"
	KeyExpenses       = "gym_expenses"
	KeyFixedExpenses  = "gym_fixed_expenses"
	KeyCommissions    = "gym_commissions"
	KeyProducts       = "gym_products"
	KeyProductSales   = "gym_product_sales"
	KeyCoupons        = "gym_coupons"
	KeyGroups         = "gym_groups"
)

// Store is the key→document interface. Read returns found=false when
// the document has never been written. Write replaces the whole
// document; there are no partial updates and no cross-document
// transactions.
type Store interface {
	Read(ctx context.Context, key string) (doc json.RawMessage, found bool, err error)
	Write(ctx context.Context, key string, doc json.RawMessage) error
}
