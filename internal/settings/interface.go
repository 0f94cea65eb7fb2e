package settings

// Store persists the hardware settings replayed at boot.
type Store interface {
	// GetAllItems returns the items of table and category in insertion order.
	GetAllItems(table, category string) ([]Item, error)
	// Put inserts item or updates the value and file of the item with
	// the same table, category and name, keeping its position.
	Put(item Item) error
	// Remove deletes the named item. Removing a missing item is not an error.
	Remove(table, category, name string) error
	Close() error
}

// Item is one persisted write: Value goes to FileName at boot.
type Item struct {
	Table    string
	Category string
	Name     string
	FileName string
	Value    string
}

const (
	TableBootup = "boot_up"

	CategoryCPU = "cpu"
)
