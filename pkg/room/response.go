package room

// response is a direct reply to the client that issued a command
type response struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Context string `json:"context,omitempty"`
}

func okResponse(ctx string) *response {
	return &response{
		Key:     "status",
		Value:   "OK",
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *response {
	return &response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
