package request

// SignupRequest is the request body for creating an account
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitScoreRequest is the request body for submitting a leaderboard score
type SubmitScoreRequest struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Mode     string `json:"mode"`
}
