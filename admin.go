// admin.go - privacy-conscious admin pages over the stored submissions
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/config"
	"github.com/Zachkp/microx-portfolio/internal/sheet"
)

const (
	adminCookie    = "admin_token"
	adminCookieTTL = 3600 * 24
	recentLimit    = 50
)

// AdminStats is what the dashboard and the stats API show.
type AdminStats struct {
	Submissions sheet.Stats `json:"submissions"`
	Recent      []sheet.Row `json:"recent"`
}

type admin struct {
	token string
	salt  string
	creds config.AdminConfig
	store *sheet.Store
	log   *zap.Logger
}

func newAdmin(creds config.AdminConfig, store *sheet.Store, log *zap.Logger) (*admin, error) {
	token, err := generateAdminToken()
	if err != nil {
		return nil, err
	}
	// Used for IP hashing.
	salt, err := generateAdminToken()
	if err != nil {
		return nil, err
	}

	a := &admin{token: token, salt: salt, creds: creds, store: store, log: log}

	log.Info("Admin access available", zap.String("path", "/admin/login"))
	if creds.Password == "" {
		log.Warn("ADMIN_PASSWORD is not set; admin login is disabled")
	}
	if gin.Mode() == gin.DebugMode {
		log.Debug("Admin token (dev only)", zap.String("token", token))
	}

	return a, nil
}

func generateAdminToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("generate admin token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// hashIP hashes an address with the per-process salt (consistent per IP).
func (a *admin) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + a.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (a *admin) validCredentials(username, password string) bool {
	if a.creds.Password == "" {
		return false
	}
	userOK := constantTimeEqual(username, a.creds.Username)
	passOK := constantTimeEqual(password, a.creds.Password)
	return userOK && passOK
}

// authMiddleware checks the admin cookie.
func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !constantTimeEqual(token, a.token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) stats(c *gin.Context) (*AdminStats, error) {
	ctx := c.Request.Context()

	st, err := a.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := a.store.List(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &AdminStats{Submissions: st, Recent: recent}, nil
}

// register mounts every admin route on r.
func (a *admin) register(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if !a.validCredentials(username, password) {
			a.log.Warn("Failed admin login attempt",
				zap.String("client", a.hashIP(c.ClientIP())))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, a.token, adminCookieTTL, "/admin", "", false, true)
		a.log.Info("Admin login successful",
			zap.String("client", a.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		a.log.Info("Admin logout", zap.String("client", a.hashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.authMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.stats(c)
		if err != nil {
			a.log.Error("Error loading admin stats", zap.Error(err))
			c.String(http.StatusInternalServerError, "Failed to load statistics")
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"title": "Dashboard",
			"stats": stats,
		})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.stats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Submission export (for backups or analysis).
	group.GET("/export/submissions", func(c *gin.Context) {
		rows, err := a.store.List(c.Request.Context(), 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if rows == nil {
			rows = []sheet.Row{}
		}

		c.Header("Content-Disposition", "attachment; filename=submissions.json")
		a.log.Info("Submissions exported",
			zap.Int("rows", len(rows)),
			zap.String("client", a.hashIP(c.ClientIP())))
		c.JSON(http.StatusOK, rows)
	})
}
