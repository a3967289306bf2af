package domain

// GuardianRole is the capability level a guardian holds over a child wallet.
type GuardianRole string

const (
	RoleOwner      GuardianRole = "OWNER"
	RoleViewer     GuardianRole = "VIEWER"
	RoleInvestor   GuardianRole = "INVESTOR"
	RoleWithdrawer GuardianRole = "WITHDRAWER"
)

// roleCapabilities maps a held role to every role it satisfies.
// Owner implies everything; the rest form a capability table, not a ladder.
var roleCapabilities = map[GuardianRole][]GuardianRole{
	RoleOwner:      {RoleOwner, RoleViewer, RoleInvestor, RoleWithdrawer},
	RoleWithdrawer: {RoleWithdrawer, RoleViewer, RoleInvestor},
	RoleInvestor:   {RoleInvestor, RoleViewer},
	RoleViewer:     {RoleViewer},
}

// IsValid returns true for the four known roles.
func (r GuardianRole) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Satisfies returns true if holding r grants the required role.
func (r GuardianRole) Satisfies(required GuardianRole) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == required {
			return true
		}
	}
	return false
}

// Guardian is one identity with a role on a child's wallet.
type Guardian struct {
	Address string       `json:"address"`
	Name    string       `json:"name"`
	Role    GuardianRole `json:"role"`
	AddedAt int64        `json:"added_at"`
	AddedBy string       `json:"added_by"`
}

// GuardianSystem is the ordered guardian list of a child plus its approval threshold.
type GuardianSystem struct {
	ChildID           string     `json:"child_id"`
	Guardians         []Guardian `json:"guardians"`
	RequiredApprovals uint32     `json:"required_approvals"`
}

// Find returns the guardian with the given address and its index, or -1.
func (s *GuardianSystem) Find(address string) (*Guardian, int) {
	for i := range s.Guardians {
		if s.Guardians[i].Address == address {
			return &s.Guardians[i], i
		}
	}
	return nil, -1
}

// HasPermission returns false for unknown addresses.
func (s *GuardianSystem) HasPermission(address string, required GuardianRole) bool {
	g, _ := s.Find(address)
	if g == nil {
		return false
	}
	return g.Role.Satisfies(required)
}

// Owner returns the single Owner guardian, if initialized.
func (s *GuardianSystem) Owner() *Guardian {
	for i := range s.Guardians {
		if s.Guardians[i].Role == RoleOwner {
			return &s.Guardians[i]
		}
	}
	return nil
}

// Remove drops the guardian at index i, preserving the order of the rest.
func (s *GuardianSystem) Remove(i int) {
	s.Guardians = append(s.Guardians[:i:i], s.Guardians[i+1:]...)
}
