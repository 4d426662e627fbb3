package dto

// GenerateImageRequest is the payload for POST /generate-image
type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateImageResponse carries the generated image as a data URI together
// with the balance left after the debit
type GenerateImageResponse struct {
	Success       bool   `json:"success"`
	ResultImage   string `json:"resultImage"`
	CreditBalance int64  `json:"creditBalance"`
}

// OutOfCreditsResponse reports a refused generation together with the
// remaining balance so the client can route the user to the purchase flow
type OutOfCreditsResponse struct {
	Success       bool   `json:"success"`
	Code          int    `json:"code"`
	Message       string `json:"message"`
	CreditBalance int64  `json:"creditBalance"`
}
