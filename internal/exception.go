package internal

// SlotNotFoundError is the error returned when a message is sent to an object
// that neither has nor inherits a slot by that name.
type SlotNotFoundError struct {
	// Name is the name of the slot that was not found.
	Name string
}

// Error returns the error message.
func (e *SlotNotFoundError) Error() string {
	return "selfobj: slot not found: " + e.Name
}
