package entities

// Confirmation is returned by a successful roster mutation.
type Confirmation struct {
	Email    string
	Activity string
	Message  string
}
