package constant

// Status is the shared lifecycle enum for every managed entity.
// Deletion never removes a row, it moves the row to StatusInactive.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
	StatusSent     Status = 2
	StatusApproved Status = 3
	StatusRejected Status = 4
)
