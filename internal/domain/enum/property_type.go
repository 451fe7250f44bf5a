package enum

// PropertyType represents the kind of property listed
type PropertyType string

const (
	PropertyTypePiso        PropertyType = "piso"
	PropertyTypeCasa        PropertyType = "casa"
	PropertyTypeLocal       PropertyType = "local"
	PropertyTypeOficina     PropertyType = "oficina"
	PropertyTypeChalet      PropertyType = "chalet"
	PropertyTypeApartamento PropertyType = "apartamento"
)

// IsValid checks whether the value is a known property type
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypePiso, PropertyTypeCasa, PropertyTypeLocal,
		PropertyTypeOficina, PropertyTypeChalet, PropertyTypeApartamento:
		return true
	}
	return false
}

func (t PropertyType) String() string {
	return string(t)
}
