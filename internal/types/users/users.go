package users

type SignUpRequest struct {
	Username   string `json:"username" validate:"required,min=2,max=64"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role" validate:"omitempty,oneof=employee admin"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	Department string `json:"department"`
	Role       string `json:"role"`
	JoinedAt   string `json:"joined_at,omitempty"`
}
