package httpkit

import (
	"net/http"

	"levain/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions = middleware.Options

// CommonStack is the middleware every versioned API scope runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler { return middleware.Common(o) }
