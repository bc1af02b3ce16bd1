// admin.go - token-cookie protected diagnostics console
package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/diagnostics"
	"github.com/Zachkp/portfolio/internal/logging"
)

const adminCookie = "admin_token"

type adminConsole struct {
	token    string
	username string
	password string
	maxAge   time.Duration
	secure   bool
	store    *diagnostics.Store
	logger   *zap.Logger
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Middleware to check admin authentication
func (a *adminConsole) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, a.token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *adminConsole) register(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		fields := logging.Fields(c.Request.Context())
		userOK := equal(c.PostForm("username"), a.username)
		passOK := equal(c.PostForm("password"), a.password)
		if !userOK || !passOK {
			a.logger.Warn("Failed admin login attempt", fields...)
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", a.secure, true)
		a.logger.Info("Admin login successful", fields...)
		c.Redirect(http.StatusFound, "/admin/diagnostics")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", a.secure, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.auth())

	group.GET("/diagnostics", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-diagnostics.html", gin.H{
			"stats":   a.store.Stats(),
			"entries": a.store.Recent(200),
		})
	})

	group.GET("/api/diagnostics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"stats":   a.store.Stats(),
			"entries": a.store.Recent(0),
		})
	})

	group.GET("/export/diagnostics", func(c *gin.Context) {
		c.Header("Content-Disposition", "attachment; filename=diagnostics.json")
		c.JSON(http.StatusOK, a.store.Recent(0))
	})

	group.POST("/diagnostics/prune", func(c *gin.Context) {
		removed := a.store.Prune(a.maxAge)
		a.logger.Info("Diagnostics pruned by admin", append(logging.Fields(c.Request.Context()), zap.Int("removed", removed))...)
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
