package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/sa-023/ticketing-project-rest-23/internal/config"
	"github.com/sa-023/ticketing-project-rest-23/internal/dto"
)

// IdentityProvider is the directory-sync collaborator: after a user is
// accepted locally it provisions the identity remotely, and deprovisions it
// when the user is removed.
type IdentityProvider interface {
	// Provision creates the remote identity and returns the provider's id
	Provision(ctx context.Context, user dto.UserDTO) (string, error)

	// Deprovision removes the remote identity by username
	Deprovision(ctx context.Context, username string) error
}

// KeycloakService implements IdentityProvider against the Keycloak admin
// REST API. Every call authenticates against the master realm first, the way
// a short-lived admin client would.
type KeycloakService struct {
	cfg    *config.Config
	client *http.Client
}

// NewKeycloakService creates a new KeycloakService
func NewKeycloakService(cfg *config.Config) *KeycloakService {
	return &KeycloakService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type keycloakCredential struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

type keycloakUser struct {
	Username      string               `json:"username"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Email         string               `json:"email"`
	Enabled       bool                 `json:"enabled"`
	EmailVerified bool                 `json:"emailVerified"`
	Credentials   []keycloakCredential `json:"credentials,omitempty"`
}

type keycloakRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Provision creates the user in the application realm, then grants the
// client-level role matching the user's role description.
func (s *KeycloakService) Provision(ctx context.Context, user dto.UserDTO) (string, error) {
	token, err := s.adminToken(ctx)
	if err != nil {
		return "", err
	}

	payload := keycloakUser{
		Username:  user.UserName,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.UserName,
		Enabled:   true,
		// Temporary stays off so the password survives the first login
		EmailVerified: true,
		Credentials: []keycloakCredential{{
			Type:      "password",
			Value:     user.PassWord,
			Temporary: false,
		}},
	}

	createURL := s.adminURL("users")
	resp, err := s.doJSON(ctx, http.MethodPost, createURL, token, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("keycloak user create returned %d", resp.StatusCode)
	}

	userID := path.Base(resp.Header.Get("Location"))
	if userID == "" || userID == "." {
		return "", fmt.Errorf("keycloak user create returned no location")
	}

	if err := s.grantClientRole(ctx, token, userID, user.Role); err != nil {
		return "", err
	}

	return userID, nil
}

// Deprovision searches the realm for the username and deletes the first match.
func (s *KeycloakService) Deprovision(ctx context.Context, username string) error {
	token, err := s.adminToken(ctx)
	if err != nil {
		return err
	}

	searchURL := s.adminURL("users") + "?username=" + url.QueryEscape(username)
	var found []struct {
		ID string `json:"id"`
	}
	if err := s.getJSON(ctx, searchURL, token, &found); err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("keycloak user %s not found", username)
	}

	resp, err := s.doJSON(ctx, http.MethodDelete, s.adminURL("users", found[0].ID), token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("keycloak user delete returned %d", resp.StatusCode)
	}
	return nil
}

func (s *KeycloakService) grantClientRole(ctx context.Context, token, userID, roleDescription string) error {
	var clients []struct {
		ID string `json:"id"`
	}
	clientURL := s.adminURL("clients") + "?clientId=" + url.QueryEscape(s.cfg.KeycloakClientID)
	if err := s.getJSON(ctx, clientURL, token, &clients); err != nil {
		return err
	}
	if len(clients) == 0 {
		return fmt.Errorf("keycloak client %s not found", s.cfg.KeycloakClientID)
	}
	clientUUID := clients[0].ID

	var role keycloakRole
	roleURL := s.adminURL("clients", clientUUID, "roles", url.PathEscape(roleDescription))
	if err := s.getJSON(ctx, roleURL, token, &role); err != nil {
		return err
	}

	mappingURL := s.adminURL("users", userID, "role-mappings", "clients", clientUUID)
	resp, err := s.doJSON(ctx, http.MethodPost, mappingURL, token, []keycloakRole{role})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("keycloak role mapping returned %d", resp.StatusCode)
	}
	return nil
}

func (s *KeycloakService) adminToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", s.cfg.KeycloakMasterClient)
	form.Set("username", s.cfg.KeycloakMasterUser)
	form.Set("password", s.cfg.KeycloakMasterPswd)

	tokenURL := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token",
		strings.TrimRight(s.cfg.KeycloakURL, "/"), s.cfg.KeycloakMasterRealm)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("keycloak token request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("keycloak token request returned %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("keycloak token response invalid: %w", err)
	}
	return tokenResp.AccessToken, nil
}

func (s *KeycloakService) adminURL(parts ...string) string {
	base := fmt.Sprintf("%s/admin/realms/%s",
		strings.TrimRight(s.cfg.KeycloakURL, "/"), s.cfg.KeycloakRealm)
	if len(parts) == 0 {
		return base
	}
	return base + "/" + strings.Join(parts, "/")
}

func (s *KeycloakService) doJSON(ctx context.Context, method, rawURL, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keycloak request failed: %w", err)
	}
	return resp, nil
}

func (s *KeycloakService) getJSON(ctx context.Context, rawURL, token string, out any) error {
	resp, err := s.doJSON(ctx, http.MethodGet, rawURL, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("keycloak request to %s returned %d", rawURL, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// NoopIdentityProvider is used when no Keycloak connection is configured.
type NoopIdentityProvider struct{}

func (NoopIdentityProvider) Provision(ctx context.Context, user dto.UserDTO) (string, error) {
	return "", nil
}

func (NoopIdentityProvider) Deprovision(ctx context.Context, username string) error {
	return nil
}
