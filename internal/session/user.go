// Package session owns the client-local representation of "who is using the
// app right now": the persisted user record, the store wrapping the single
// durable slot it lives in, and the controller driving the login/logout
// state machine.
package session

// User is the identity record fabricated on login. Avatar and Entitlement
// are optional; readers must tolerate their absence in persisted records.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar,omitempty"`
	Entitlement string `json:"entitlement,omitempty"`
}
