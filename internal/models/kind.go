package models

// Kind names one of the seeded record sets.
type Kind string

const (
	KindUser     Kind = "users"
	KindCustomer Kind = "customers"
	KindInvoice  Kind = "invoices"
	KindRevenue  Kind = "revenues"
)

// Kinds lists the seeded record sets in seeding order.
func Kinds() []Kind {
	return []Kind{KindUser, KindCustomer, KindInvoice, KindRevenue}
}

// PersistentModels returns the schema-managed gorm models.
func PersistentModels() []interface{} {
	return []interface{}{
		&User{},
		&Customer{},
		&Invoice{},
		&Revenue{},
		&SeedRun{},
	}
}
