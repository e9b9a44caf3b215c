package sms

// Gateway abstracts the SMS transport. The reminder engine only records
// that dispatch was requested and succeeded; delivery is the provider's
// problem.
type Gateway interface {
	// Send dispatches one message and returns the provider message id.
	Send(to, body string) (string, error)

	// Name identifies the gateway implementation in logs.
	Name() string
}
