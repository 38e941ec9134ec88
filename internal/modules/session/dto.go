package session

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LogoutRequest struct {
	OwnerID int64  `json:"owner_id" binding:"required"`
	Code    string `json:"code" binding:"required"`
}

type CheckRequest struct {
	OwnerID int64  `json:"owner_id" binding:"required"`
	Code    string `json:"code" binding:"required"`
}
