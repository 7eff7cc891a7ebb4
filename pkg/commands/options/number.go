package options

// NumberOptions captures a 1-based item number argument.
type NumberOptions struct {
	Number int
}
