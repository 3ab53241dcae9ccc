package response

type SavedCheckResponse struct {
	IsSaved bool `json:"isSaved"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
