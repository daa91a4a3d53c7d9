package httputil

// ContextKey is the type of keys set in the gin context by the router.
type ContextKey string

// ContextURL is the key for the public base URL of the API.
const ContextURL ContextKey = "budget-tracker-url"
