package auth

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/krustykrab/restaurant-api/internal/models"
)

func (o *OAuthService) HandleAuthorize(c *gin.Context) {
	clientID := c.Query("client_id")
	redirectURI := c.Query("redirect_uri")
	scope := c.Query("scope")
	state := c.Query("state")

	// Validate client
	var client models.OAuthClient
	if err := o.db.Where("id = ?", clientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidClient})
		return
	}

	// Validate redirect URI
	if redirectURI != "" && redirectURI != client.RedirectURI {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_redirect_uri"})
		return
	}

	// The caller must already be authenticated to grant authorization.
	// The auth middleware stores the account ID as a uint.
	userID := ""
	if raw, ok := c.Get("userID"); ok {
		if id, ok := raw.(uint); ok && id > 0 {
			userID = strconv.FormatUint(uint64(id), 10)
		}
	}
	if userID == "" {
		loginURL := "/login?redirect=" + url.QueryEscape(c.Request.URL.String())
		c.Redirect(http.StatusFound, loginURL)
		return
	}

	// Generate authorization code
	code := uuid.New().String()
	authCode := &models.OAuthCode{
		Code:        code,
		ClientID:    clientID,
		UserID:      userID,
		Scopes:      scope,
		RedirectURI: redirectURI,
		ExpiresAt:   time.Now().Add(10 * time.Minute),
	}

	if err := o.db.Create(authCode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "code_generation_failed"})
		return
	}

	// Redirect back to client with authorization code
	redirectURL := redirectURI + "?code=" + code
	if state != "" {
		redirectURL += "&state=" + state
	}

	c.Redirect(http.StatusFound, redirectURL)
}
