package constants

// HTTP Header Names
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderUserAgent     = "User-Agent"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
)

// Bearer token scheme expected by the auth gate.
const BearerScheme = "Bearer"

// Machine-readable authentication failure codes. Clients rely on the
// expired/invalid distinction to decide between refreshing and
// re-authenticating.
const (
	AuthCodeUnauthenticated = "UNAUTHENTICATED"
	AuthCodeTokenExpired    = "TOKEN_EXPIRED"
	AuthCodeInvalidToken    = "INVALID_TOKEN"
)

// Common HTTP Error Messages
const (
	MsgUnauthorized  = "Unauthorized access"
	MsgForbidden     = "Admin access required"
	MsgNotFound      = "Resource not found"
	MsgBadRequest    = "Invalid request"
	MsgInternalError = "Internal server error"
)
