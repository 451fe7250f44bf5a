package enum

// ClientStatus represents the follow-up status of a client
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "active"
	ClientStatusInactive  ClientStatus = "inactive"
	ClientStatusPotential ClientStatus = "potential"
)

// IsValid checks whether the value is a known client status
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusPotential:
		return true
	}
	return false
}

func (s ClientStatus) String() string {
	return string(s)
}
