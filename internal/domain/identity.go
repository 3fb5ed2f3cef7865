package domain

// Identity describe la cuenta con la que el bot quedó conectado.
type Identity struct {
	Platform Platform
	UserID   string
	Username string
}
