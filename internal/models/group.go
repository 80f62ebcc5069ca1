package models

// Group represents a set of users who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Flatmates", "Goa Trip").
	Name string

	// Currency is the ISO 4217 code all amounts in this group are recorded
	// in, as minor units (e.g., "INR" amounts are paisa).
	Currency string

	// Members is the list of member user IDs.
	Members []string

	// CreatedBy is the user ID that created the group.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
