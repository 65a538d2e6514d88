package api

import (
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the shared admin credential and opens a session. The
// password is stored as a bcrypt hash in ADMIN_PASSWORD_HASH.
func (m *ContentModule) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Villa kom upp"})
		return
	}

	validUsername := os.Getenv("ADMIN_USERNAME")
	passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")

	if validUsername == "" || passwordHash == "" ||
		req.Username != validUsername ||
		!checkPasswordHash(req.Password, passwordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Rangt notendanafn eða lykilorð",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("admin_user", req.Username)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (m *ContentModule) checkAuth(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("admin_user") == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func (m *ContentModule) logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
