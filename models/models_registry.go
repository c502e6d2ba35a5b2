package models

// ModelTypeRegistry lists every model the migration tooling knows about.
// AutoMigrate order follows foreign-key dependencies.
var ModelTypeRegistry = map[string]interface{}{
	"User":     User{},
	"Address":  Address{},
	"Brand":    Brand{},
	"Car":      Car{},
	"Rental":   Rental{},
	"Review":   Review{},
	"Favorite": Favorite{},
	"Payment":  Payment{},
	"Booking":  Booking{},
}

// MigrationOrder is ModelTypeRegistry in dependency order, parents first,
// for drivers that enforce foreign keys during AutoMigrate.
var MigrationOrder = []interface{}{
	User{},
	Address{},
	Brand{},
	Car{},
	Rental{},
	Review{},
	Favorite{},
	Payment{},
	Booking{},
}
