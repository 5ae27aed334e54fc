package entity

// PushNotification is the transient payload handed to the push service.
// It is created per dispatch and discarded after send.
type PushNotification struct {
	Title  string
	Body   string
	Data   map[string]string // Structured data delivered alongside the notification.
	Tokens []string          // Ordered target delivery addresses; caller guarantees non-empty.
}

// SendResult is the per-address outcome of one multicast send. The push
// service returns one result per input token, in the same order.
type SendResult struct {
	Token   string
	Success bool
	Err     error // Error detail when Success is false.
}
