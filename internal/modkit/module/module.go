// Package module defines the contract API modules satisfy and a registry of their ports
package module

import (
	phttp "levain/internal/platform/net/http"
)

// Module is what the composition root mounts
// it lives apart from modkit so a module can import this without pulling in the builder
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
