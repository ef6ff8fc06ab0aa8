package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tnso721607-maker/tenderquote3/models"
	"github.com/tnso721607-maker/tenderquote3/utils"
)

// AdminCredentials holds the single estimator account. The plaintext password
// from the environment is hashed once at startup and never kept around.
type AdminCredentials struct {
	Email        string
	PasswordHash string
}

func LoadAdminCredentials() (*AdminCredentials, error) {
	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing admin password: %v", err)
	}
	return &AdminCredentials{Email: email, PasswordHash: hash}, nil
}

// LoginHandler handles user authentication
// @Summary Login user
// @Description Authenticate the estimator account and return access and refresh tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/login [post]
func LoginHandler(creds *AdminCredentials, db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if creds == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Login is not configured on this server"})
			return
		}

		// A still-valid access token in the Authorization header re-logs the
		// user in without credentials. An invalid or expired token falls
		// through to the email/password path.
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token != "" {
			parsedToken, err := utils.ValidateJWT(token)
			if err == nil && parsedToken.Valid {
				claims, ok := parsedToken.Claims.(jwt.MapClaims)
				if ok {
					email, _ := claims["email"].(string)
					if strings.EqualFold(email, creds.Email) {
						c.JSON(http.StatusOK, gin.H{
							"message":      "User successfully logged in via token",
							"access_token": token,
						})
						return
					}
				}
			}
		}

		var loginData models.LoginRequest
		if err := c.ShouldBindJSON(&loginData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		if !strings.EqualFold(loginData.Email, creds.Email) ||
			!utils.ValidatePassword(creds.PasswordHash, loginData.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		newToken, err := utils.GenerateJWT(creds.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		refreshToken, err := utils.GenerateRefreshToken(creds.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token"})
			return
		}

		recordActivity(db, "user_logged_in", fmt.Sprintf("User %s logged in", creds.Email), "")

		c.JSON(http.StatusOK, gin.H{
			"message":       "Login successful",
			"access_token":  newToken,
			"refresh_token": refreshToken,
			"expires_in":    900, // 15 minutes in seconds
		})
	}
}

// RefreshTokenHandler handles refresh token requests to get new access tokens
// @Summary Refresh access token
// @Description Exchange a refresh token for a new access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body object true "Refresh token request" SchemaExample({"refresh_token": "string"})
// @Success 200 {object} object "New access token"
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/refresh-token [post]
func RefreshTokenHandler(creds *AdminCredentials) gin.HandlerFunc {
	return func(c *gin.Context) {
		if creds == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Login is not configured on this server"})
			return
		}

		var refreshRequest struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}

		if err := c.ShouldBindJSON(&refreshRequest); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
			return
		}

		parsedToken, err := utils.ValidateJWT(refreshRequest.RefreshToken)
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims structure"})
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "refresh" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token type"})
			return
		}

		email, ok := claims["email"].(string)
		if !ok || !strings.EqualFold(email, creds.Email) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email claim missing or invalid"})
			return
		}

		newAccessToken, err := utils.GenerateJWT(creds.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Token refreshed successfully",
			"access_token":  newAccessToken,
			"refresh_token": refreshRequest.RefreshToken,
			"expires_in":    900, // 15 minutes in seconds
		})
	}
}
