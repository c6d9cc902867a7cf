package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "lumiere_access_token"
	COOKIE_REDIRECT_NAME     = "lumiere_redirect"
)
