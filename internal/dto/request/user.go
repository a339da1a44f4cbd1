package request

type RegisterUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=16,username"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     *string `json:"name,omitempty"`
	DOB      *string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
