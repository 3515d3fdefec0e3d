package api

import (
	"fmt"
	"sync"

	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

// authGatewayImpl implements the AuthGateway interface against a GoTrue-style
// REST authentication provider.
type authGatewayImpl struct {
	httpClient  *http.Client
	mu          sync.Mutex
	subscribers []chan SessionEvent
}

// NewAuthGateway creates a new instance of AuthGateway with HTTP client.
// apiKey is sent on every request as the provider's public key header.
func NewAuthGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) AuthGateway {
	if clientOptions.DefaultHeaders == nil {
		clientOptions.DefaultHeaders = map[string]string{}
	}
	clientOptions.DefaultHeaders["apikey"] = apiKey

	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &authGatewayImpl{
		httpClient: httpClient,
	}
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new user with email and password
func (g *authGatewayImpl) SignUp(email string, password string) (*external.Session, error) {
	session, err := g.postForSession("/signup", nil, credentialsBody{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	g.publish(SessionEvent{Type: SessionSignedIn, Session: session})
	return session, nil
}

// SignInWithPassword exchanges email and password for a session
func (g *authGatewayImpl) SignInWithPassword(email string, password string) (*external.Session, error) {
	queryParams := map[string]string{"grant_type": "password"}

	session, err := g.postForSession("/token", queryParams, credentialsBody{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	g.publish(SessionEvent{Type: SessionSignedIn, Session: session})
	return session, nil
}

// SignOut revokes the session bound to the access token
func (g *authGatewayImpl) SignOut(accessToken string) error {
	_, errResp, _, err := g.httpClient.Request().
		WithMethod(http.POST).
		WithPath("/logout").
		WithHeaders(bearerHeader(accessToken)).
		WithErrorResp(&external.AuthErrorResponse{}).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to sign out: %w", providerError(errResp, err))
	}

	g.publish(SessionEvent{Type: SessionSignedOut})
	return nil
}

// GetUser retrieves the identity bound to the access token
func (g *authGatewayImpl) GetUser(accessToken string) (*external.AuthUser, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/user").
		WithHeaders(bearerHeader(accessToken)).
		WithSuccessResp(&external.AuthUser{}).
		WithErrorResp(&external.AuthErrorResponse{}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", providerError(errResp, err))
	}

	return successResp.(*external.AuthUser), nil
}

// Subscribe returns a channel receiving session-change notifications. Events
// are dropped for subscribers that are not keeping up.
func (g *authGatewayImpl) Subscribe() <-chan SessionEvent {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch := make(chan SessionEvent, 8)
	g.subscribers = append(g.subscribers, ch)
	return ch
}

func (g *authGatewayImpl) publish(event SessionEvent) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, ch := range g.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (g *authGatewayImpl) postForSession(path string, queryParams map[string]string, body credentialsBody) (*external.Session, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.POST).
		WithPath(path).
		WithQueryParams(queryParams).
		WithBody(body).
		WithSuccessResp(&external.Session{}).
		WithErrorResp(&external.AuthErrorResponse{}).
		Execute()

	if err != nil {
		return nil, providerError(errResp, err)
	}

	return successResp.(*external.Session), nil
}

func bearerHeader(accessToken string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + accessToken}
}

// providerError prefers the provider's own error text over the transport error.
func providerError(errResp any, err error) error {
	if errorResponse, ok := errResp.(*external.AuthErrorResponse); ok && errorResponse.Text() != "" {
		return fmt.Errorf("%s", errorResponse.Text())
	}
	return err
}
