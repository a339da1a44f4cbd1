package response

import (
	"movie-catalog/internal/data/entity"
)

// UserResponse deliberately has no password hash field, credential material
// never leaves the service.
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
	DOB      *string `json:"dob,omitempty"`
}

type UserMessageResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
	if user.DOB != nil {
		dob := user.DOB.Format("2006-01-02")
		resp.DOB = &dob
	}
	return resp
}
