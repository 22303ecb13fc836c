package handler

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email,min=6,max=50"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required,min=16,max=50"`
}

type loginResponse struct {
	Type         string `json:"type"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type refreshTokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
