package domain

type AuthMethod string

const (
	AuthMethodPassword AuthMethod = "password"
	AuthMethodCookies  AuthMethod = "cookies"
)

type Auth struct {
	Method AuthMethod
	// SecretRef points to a secret-store entry, typically in "profile/name" form.
	SecretRef string
}
