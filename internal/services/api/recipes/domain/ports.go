package domain

import "context"

// ServicePort defines the service contract for recipes
type ServicePort interface {
	Create(ctx context.Context, in RecipeInput) (Recipe, error)
	Get(ctx context.Context, id string) (Recipe, error)
	Update(ctx context.Context, id string, in RecipeInput) (Recipe, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, in ListInput) (RecipeList, error)

	Resize(ctx context.Context, id string, in ResizeInput) (ResizeResult, error)
	Scaled(ctx context.Context, id string, in ScaledInput) (ScaledRecipe, error)
	Usage(ctx context.Context, id string) (UsageReport, error)
}

// EventSink records scale events; implementations must not block the request on failure
type EventSink interface {
	Record(ctx context.Context, ev ScaleEvent) error
}
