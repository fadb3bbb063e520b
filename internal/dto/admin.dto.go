package dto

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type InitTimeslotsResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}
