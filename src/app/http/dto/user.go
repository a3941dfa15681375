package dto

// EmailQuery selects a user by email in the query string.
type EmailQuery struct {
	Email string `form:"email" binding:"required,email"`
}

// ConfirmEmailRequest is the body of POST /api/users/confirm.
type ConfirmEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateAvatarRequest is the body of PATCH /api/users/avatar.
type UpdateAvatarRequest struct {
	Email string `json:"email" binding:"required,email"`
	URL   string `json:"url" binding:"required,url,max=255"`
}
