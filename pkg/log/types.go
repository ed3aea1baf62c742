package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error, dpanic, panic, fatal
	Mode         string // "production" selects the JSON encoder defaults
	Encoding     string // "json" or "console"
	ColorEnabled bool   // colorize levels in console encoding
}

type ctxKey string

const (
	// RequestIDKey is the context key holding the request ID set by the HTTP middleware.
	RequestIDKey ctxKey = "request_id"
	// UserKey is the context key holding the session username.
	UserKey ctxKey = "user"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)
