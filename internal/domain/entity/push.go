package entity

// PushMessage is the provider-neutral content of a remote push.
type PushMessage struct {
	Title     string
	Body      string
	ChannelID string
	Priority  PriorityClass
	Data      map[string]string
}

// PushReport summarizes one multicast send.
type PushReport struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}
