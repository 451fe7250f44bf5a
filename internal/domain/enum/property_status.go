package enum

// PropertyStatus represents the sale/rental state of a property
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusRented    PropertyStatus = "rented"
	PropertyStatusReserved  PropertyStatus = "reserved"
)

// IsValid checks whether the value is a known property status
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusRented, PropertyStatusReserved:
		return true
	}
	return false
}

func (s PropertyStatus) String() string {
	return string(s)
}
