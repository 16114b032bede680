package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/models"
	"github.com/streetware/gateway/services"
	"github.com/streetware/gateway/state"
)

const (
	// Standard response messages
	msgInvalidInput       = "invalid input"
	msgAuthRequired       = "Authentication required"
	msgSignedOut          = "Signed out successfully."
	msgBackendUnreachable = "Backend unavailable. Try again later."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// sendBackendError surfaces the backend's own message and status when the
// failure was a non-2xx response, and a generic gateway message otherwise.
func sendBackendError(ctx *gin.Context, err error) {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		sendErrorResponse(ctx, apiErr.StatusCode, apiErr.Message)
		return
	}
	sendErrorResponse(ctx, http.StatusBadGateway, msgBackendUnreachable)
}

func sessionResponse(session state.Session) gin.H {
	var user any
	if session.IsAuthenticated() {
		user = session
	}
	return gin.H{
		"authenticated": session.IsAuthenticated(),
		"admin":         session.IsAdmin(),
		"user":          user,
	}
}

// sessionFromToken decodes the freshly issued token; a token whose payload
// cannot be decoded still signs the user in, just with placeholder identity.
func sessionFromToken(token string) state.Session {
	session, err := state.DecodeSession(token)
	if err != nil {
		log.Println("Error parsing token:", err)
		return state.Session{Token: token, Name: "User", Role: "user"}
	}
	return session
}

// Login handles user authentication against the backend /signin endpoint and
// persists the returned token.
func Login(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		auth, err := backend.SignIn(loginData.Email, loginData.Password)
		if err != nil {
			log.Println("Sign in error:", err)
			sendBackendError(ctx, err)
			return
		}

		session := sessionFromToken(auth.Token)
		if auth.Role != "" {
			session.Role = auth.Role
		}

		middlewares.SetTokenCookie(ctx, auth.Token)
		sendJSONResponse(ctx, http.StatusOK, sessionResponse(session))
	}
}

// Signup registers a new account. The backend only returns a token, so the
// session is seeded from the submitted name and email.
func Signup(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signUpData models.SignupData
		if err := ctx.ShouldBindJSON(&signUpData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		auth, err := backend.SignUp(signUpData.Name, signUpData.Email, signUpData.Password, signUpData.Phone)
		if err != nil {
			log.Println("Sign up error:", err)
			sendBackendError(ctx, err)
			return
		}

		session := state.Session{
			Token: auth.Token,
			Name:  signUpData.Name,
			Email: signUpData.Email,
			Role:  "user",
		}

		middlewares.SetTokenCookie(ctx, auth.Token)
		sendJSONResponse(ctx, http.StatusCreated, sessionResponse(session))
	}
}

// AdminLogin authenticates against the admin endpoint. The admin role is
// forced on success regardless of what the token claims say.
func AdminLogin(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var adminData models.AdminLoginData
		if err := ctx.ShouldBindJSON(&adminData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		auth, err := backend.AdminSignIn(adminData.Email, adminData.Password, adminData.SecretKey)
		if err != nil {
			log.Println("Admin sign in error:", err)
			sendBackendError(ctx, err)
			return
		}

		session := sessionFromToken(auth.Token)
		session.Role = "admin"

		middlewares.SetTokenCookie(ctx, auth.Token)
		sendJSONResponse(ctx, http.StatusOK, sessionResponse(session))
	}
}

// Logout clears the persisted token. No backend call is made.
func Logout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		middlewares.ClearTokenCookie(ctx)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgSignedOut})
	}
}

// GetSession reports the current session. An absent or malformed token is an
// anonymous session, never an error.
func GetSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, _ := middlewares.SessionFromContext(ctx)
		sendJSONResponse(ctx, http.StatusOK, sessionResponse(session))
	}
}
