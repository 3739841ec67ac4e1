package newsletter

type SubscribeRequest struct {
	Email string `json:"email"`
}

type BroadcastRequest struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
