package auth

import (
	"context"
	"testing"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/krustykrab/restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.OAuthClient{}, &models.OAuthToken{}, &models.OAuthCode{})
	require.NoError(t, err)

	return db
}

func createTestClient(t *testing.T, db *gorm.DB, id, secret, role string) *models.OAuthClient {
	t.Helper()

	user := &models.User{
		Email:    id + "@krustykrab.dev",
		Password: "irrelevant",
		Name:     "Owner of " + id,
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	require.NoError(t, err)

	client := &models.OAuthClient{
		ID:         id,
		Secret:     string(hash),
		Domain:     "http://localhost",
		UserID:     user.ID,
		Scopes:     "read write",
		GrantTypes: "client_credentials",
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func TestOAuthServerInitialization(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestJWTTokenGeneration(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	createTestClient(t, db, "till_client", "till_secret", "staff")

	ctx := context.Background()
	tokenInfo, err := oauthService.GetServer().Manager.GenerateAccessToken(ctx, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "till_client",
		ClientSecret: "till_secret",
		Scope:        "read write",
	})
	require.NoError(t, err)
	require.NotNil(t, tokenInfo)
	require.NotEmpty(t, tokenInfo.GetAccess())

	// The access token must be a verifiable JWT carrying the owning
	// account's role.
	parsed, err := jwt.Parse(tokenInfo.GetAccess(), func(token *jwt.Token) (interface{}, error) {
		return []byte("test-jwt-secret-key-32-characters"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "till_client", claims["aud"])
	assert.Equal(t, "staff", claims["role"])
	assert.NotEmpty(t, claims["uid"])
}

func TestJWTTokenGenerationWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	createTestClient(t, db, "till_client", "till_secret", "staff")

	ctx := context.Background()
	_, err := oauthService.GetServer().Manager.GenerateAccessToken(ctx, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "till_client",
		ClientSecret: "wrong_secret",
		Scope:        "read",
	})
	assert.Error(t, err)
}

func TestClientStoreIntegration(t *testing.T) {
	db := setupTestDB(t)
	createTestClient(t, db, "office_client", "office_secret", "admin")

	clientStore := NewGormClientStore(db)
	retrieved, err := clientStore.GetByID(context.Background(), "office_client")
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "office_client", retrieved.GetID())
	assert.Equal(t, "http://localhost", retrieved.GetDomain())
}

func TestTokenStoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, "test-jwt-secret-key-32-characters")
	createTestClient(t, db, "till_client", "till_secret", "staff")

	ctx := context.Background()
	tokenInfo, err := oauthService.GetServer().Manager.GenerateAccessToken(ctx, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     "till_client",
		ClientSecret: "till_secret",
		Scope:        "read",
	})
	require.NoError(t, err)

	store := NewGormTokenStore(db)
	stored, err := store.GetByAccess(ctx, tokenInfo.GetAccess())
	require.NoError(t, err)
	assert.Equal(t, "till_client", stored.GetClientID())

	require.NoError(t, store.RemoveByAccess(ctx, tokenInfo.GetAccess()))
	_, err = store.GetByAccess(ctx, tokenInfo.GetAccess())
	assert.Error(t, err)
}
