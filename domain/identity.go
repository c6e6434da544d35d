package domain

// Identity is the caller resolved from a bearer token. It lives for the
// duration of one request and is never persisted here.
type Identity struct {
	ID    string
	Email string
}

// User mirrors the identity provider's public account fields.
type User struct {
	ID    string
	Email string
}

// Session is an issued credential pair from the identity provider.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
}

// SignupResult is a tagged outcome: either the provider issued a session right
// away, or account confirmation is still pending and no session exists.
type SignupResult struct {
	User    User
	session *Session
}

func ConfirmationPendingSignup(user User) SignupResult {
	return SignupResult{User: user}
}

func IssuedSignup(user User, session Session) SignupResult {
	return SignupResult{User: user, session: &session}
}

// ConfirmationRequired reports whether the account still needs email
// confirmation before a session can be issued.
func (r SignupResult) ConfirmationRequired() bool {
	return r.session == nil
}

// Session returns the issued session, if any.
func (r SignupResult) Session() (Session, bool) {
	if r.session == nil {
		return Session{}, false
	}
	return *r.session, true
}

// LoginResult is the outcome of a successful password login.
type LoginResult struct {
	User    User
	Session Session
}
