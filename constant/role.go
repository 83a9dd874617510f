package constant

// Account roles
const (
	RoleAdmin        = 1
	RoleManager      = 2
	RoleResident     = 3
	RoleReceptionist = 4
)
