package eleyo

// UserAgent is sent with every request.
const UserAgent = "eleyo-go/1.0.0"

// Credential authenticates requests. It is implemented by *Auth and *AccessToken.
type Credential interface {
	// Headers returns the authentication headers for a request.
	Headers() map[string]string
}

// Auth is a client id / client secret pair for service-to-service calls.
type Auth struct {
	ClientID     string
	ClientSecret string
}

// NewAuth creates a credential pair.
func NewAuth(clientID, clientSecret string) *Auth {
	return &Auth{ClientID: clientID, ClientSecret: clientSecret}
}

func (a *Auth) Headers() map[string]string {
	return map[string]string{
		"Client-Id":     a.ClientID,
		"Client-Secret": a.ClientSecret,
	}
}

// AccessToken authorizes requests on behalf of an authenticated user.
type AccessToken struct {
	Token string
}

// NewAccessToken wraps a bearer token.
func NewAccessToken(token string) *AccessToken {
	return &AccessToken{Token: token}
}

// Headers sends the token as-is, without a scheme prefix.
func (t *AccessToken) Headers() map[string]string {
	return map[string]string{
		"Authorization": t.Token,
	}
}
