package models

// ProfileSource tells where the user info of a logged-in session came from.
type ProfileSource int

const (
	// ProfileNone means no user info is available, e.g. hydration failed.
	ProfileNone ProfileSource = iota
	// ProfileCached is rebuilt from the credential store at start-up.
	ProfileCached
	// ProfileLogin comes straight from the login response.
	ProfileLogin
	// ProfileHydrated was fetched from the profile endpoint.
	ProfileHydrated
)

// String implements fmt.Stringer.
func (p ProfileSource) String() string {
	switch p {
	case ProfileCached:
		return "cached"
	case ProfileLogin:
		return "login"
	case ProfileHydrated:
		return "hydrated"
	default:
		return "none"
	}
}

// SessionState is the logical session as observed by the presentation layer.
// It is either a guest or a logged-in user with optional user info.
type SessionState struct {
	LoggedIn bool
	UserInfo *UserInfo
	Profile  ProfileSource
}

// GuestSession is the state of a client without credentials.
var GuestSession = SessionState{}

// LoggedInSession builds a logged-in state. A nil info yields ProfileNone
// regardless of source.
func LoggedInSession(info *UserInfo, source ProfileSource) SessionState {
	if info == nil {
		source = ProfileNone
	}
	return SessionState{LoggedIn: true, UserInfo: info, Profile: source}
}
