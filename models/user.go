package models

import "strconv"

// LoginResult is the account payload returned by the login endpoint.
// The same shape is embedded into [UserInfo] by the profile endpoint.
type LoginResult struct {
	// ID is the server-side account identifier.
	ID int64 `json:"id"`

	// Username is the login name the account was registered with.
	Username string `json:"username"`

	// Nickname is the display name chosen by the user.
	Nickname string `json:"nickname"`

	// PublicName is the name shown next to shared articles.
	PublicName string `json:"publicName"`

	// Email is optional and may be empty.
	Email string `json:"email"`

	// Icon is an optional avatar URL.
	Icon string `json:"icon"`

	// Token is the bearer token issued for this login. Some deployments only
	// use cookies, in which case it is empty.
	Token string `json:"token"`

	// CoinCount is the coin balance at login time.
	CoinCount int `json:"coinCount"`

	// CollectIDs lists article IDs the user has marked as favourite.
	CollectIDs []int64 `json:"collectIds"`
}

// UserIDString returns ID formatted for the credential store.
func (l LoginResult) UserIDString() string {
	return strconv.FormatInt(l.ID, 10)
}

// CoinInfo describes the user's coin balance and ranking.
type CoinInfo struct {
	CoinCount int    `json:"coinCount"`
	Level     int    `json:"level"`
	Nickname  string `json:"nickname"`
	Rank      string `json:"rank"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
}

// CollectArticleInfo holds favourites statistics.
type CollectArticleInfo struct {
	Count int `json:"count"`
}

// UserInfo is the full profile returned by the profile endpoint. A login
// response can be turned into a partial UserInfo with [UserInfoFromLogin].
type UserInfo struct {
	User               LoginResult        `json:"userInfo"`
	Coin               CoinInfo           `json:"coinInfo"`
	CollectArticleInfo CollectArticleInfo `json:"collectArticleInfo"`
}

// UserInfoFromLogin builds a partial profile from a login response. Coin and
// favourites statistics stay empty until the profile is hydrated.
func UserInfoFromLogin(login LoginResult) *UserInfo {
	return &UserInfo{User: login}
}
