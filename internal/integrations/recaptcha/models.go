package recaptcha

// VerifyResponse ответ siteverify
type VerifyResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score,omitempty"` // только для reCAPTCHA v3
	Action      string   `json:"action,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}
