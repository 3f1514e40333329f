package dto

// SignupRequest is the JSON body for POST /auth/signup.
// Password must pass the custom "password" complexity rule
// (see RegisterValidations).
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8,password"`
}

// SigninRequest is the JSON body for POST /auth/signin. Only presence is
// checked here; format was enforced at signup time.
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is returned on successful account creation.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// TokenResponse carries the signed bearer token issued on signin.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// WelcomeResponse is the greeting returned by GET /auth/welcome.
type WelcomeResponse struct {
	Message string `json:"message"`
}
