package module

import (
	"context"

	"levain/internal/services/api/recipes/domain"
	recipessvc "levain/internal/services/api/recipes/service"
)

// Ports is what other modules may use from recipes
type Ports struct {
	Recipes domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptRecipesPort narrows the service to the domain port for other modules
type adaptRecipesPort struct{ svc recipessvc.Service }

func (a adaptRecipesPort) Create(ctx context.Context, in domain.RecipeInput) (domain.Recipe, error) {
	return a.svc.Create(ctx, in)
}

func (a adaptRecipesPort) Get(ctx context.Context, id string) (domain.Recipe, error) {
	return a.svc.Get(ctx, id)
}

func (a adaptRecipesPort) Update(ctx context.Context, id string, in domain.RecipeInput) (domain.Recipe, error) {
	return a.svc.Update(ctx, id, in)
}

func (a adaptRecipesPort) Delete(ctx context.Context, id string) error {
	return a.svc.Delete(ctx, id)
}

func (a adaptRecipesPort) List(ctx context.Context, in domain.ListInput) (domain.RecipeList, error) {
	return a.svc.List(ctx, in)
}

func (a adaptRecipesPort) Resize(ctx context.Context, id string, in domain.ResizeInput) (domain.ResizeResult, error) {
	return a.svc.Resize(ctx, id, in)
}

func (a adaptRecipesPort) Scaled(ctx context.Context, id string, in domain.ScaledInput) (domain.ScaledRecipe, error) {
	return a.svc.Scaled(ctx, id, in)
}

func (a adaptRecipesPort) Usage(ctx context.Context, id string) (domain.UsageReport, error) {
	return a.svc.Usage(ctx, id)
}
