package services

import "fmt"

// AuthResponse is the token payload returned by the backend sign-in and
// sign-up endpoints. Role is only populated by /signin.
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (c *BackendClient) SignIn(email, password string) (AuthResponse, error) {
	var auth AuthResponse
	resp, err := c.request("").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&auth).
		Post("/signin")
	if err != nil {
		return AuthResponse{}, fmt.Errorf("sign in request failed: %w", err)
	}
	if resp.IsError() {
		return AuthResponse{}, apiError(resp, "Failed to log in")
	}
	return auth, nil
}

func (c *BackendClient) SignUp(name, email, password, phone string) (AuthResponse, error) {
	var auth AuthResponse
	resp, err := c.request("").
		SetBody(map[string]string{
			"name":     name,
			"email":    email,
			"password": password,
			"phone":    phone,
		}).
		SetResult(&auth).
		Post("/signup")
	if err != nil {
		return AuthResponse{}, fmt.Errorf("sign up request failed: %w", err)
	}
	if resp.IsError() {
		return AuthResponse{}, apiError(resp, "Failed to sign up")
	}
	return auth, nil
}

func (c *BackendClient) AdminSignIn(email, password, secretKey string) (AuthResponse, error) {
	var auth AuthResponse
	resp, err := c.request("").
		SetBody(map[string]string{
			"email":     email,
			"password":  password,
			"secretKey": secretKey,
		}).
		SetResult(&auth).
		Post("/admin_signup")
	if err != nil {
		return AuthResponse{}, fmt.Errorf("admin sign in request failed: %w", err)
	}
	if resp.IsError() {
		return AuthResponse{}, apiError(resp, "Failed to log in as admin")
	}
	return auth, nil
}
