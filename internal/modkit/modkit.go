// Package modkit wires API modules: shared deps, build options and startup preparation
package modkit

import (
	"context"
	"fmt"

	"levain/internal/modkit/module"
)

// Module is the surface the composition root sees
type Module = module.Module

// Preparer is implemented by modules that own startup state such as a schema
type Preparer interface {
	Prepare(ctx context.Context) error
}

// Prepare runs every Preparer in mods in order and stops at the first failure
func Prepare(ctx context.Context, mods ...Module) error {
	for _, m := range mods {
		p, ok := m.(Preparer)
		if !ok {
			continue
		}
		if err := p.Prepare(ctx); err != nil {
			return fmt.Errorf("prepare %s: %w", m.Name(), err)
		}
	}
	return nil
}
