// Package http provides http transport for recipes
package http

import (
	stdhttp "net/http"

	"levain/internal/modkit/httpkit"
	"levain/internal/platform/logger"
	"levain/internal/services/api/recipes/domain"
)

// Register mounts recipes endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.RecipeInput](r, "/", h.create)
	httpkit.GetQuery[domain.ListInput](r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.RecipeInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.delete)

	httpkit.PostQuery[domain.ResizeInput](r, "/{id}/resize", h.resize)
	httpkit.GetQuery[domain.ScaledInput](r, "/{id}/scaled", h.scaled)
	httpkit.Get(r, "/{id}/usage", h.usage)
}

type handlers struct{ svc domain.ServicePort }

// id reads the recipe id and tags the request logger with it
func id(r *stdhttp.Request) (*stdhttp.Request, string) {
	v := httpkit.Param(r, "id")
	return r.WithContext(logger.WithRecipe(r.Context(), v)), v
}

// @Summary Create a recipe
// @Description Stores the recipe and derives every baker's percentage from the flour total
// @Tags Recipes
// @Accept json
// @Produce json
// @Param payload body domain.RecipeInput true "Recipe"
// @Success 201 {object} domain.Recipe "created"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Router /recipes [post]
func (h *handlers) create(r *stdhttp.Request, in domain.RecipeInput) (any, error) {
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// @Summary List recipes
// @Tags Recipes
// @Produce json
// @Param limit query int false "Page size" minimum(1) maximum(200)
// @Param offset query int false "Offset" minimum(0)
// @Success 200 {object} domain.RecipeList "ok"
// @Router /recipes [get]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary Get a recipe
// @Tags Recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} domain.Recipe "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /recipes/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	r, rid := id(r)
	return h.svc.Get(r.Context(), rid)
}

// @Summary Update a recipe
// @Description Replaces the recipe; version must match the stored one
// @Tags Recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe id"
// @Param payload body domain.RecipeInput true "Recipe"
// @Success 200 {object} domain.Recipe "ok"
// @Failure 409 {object} httpkit.Envelope "stale version"
// @Router /recipes/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.RecipeInput) (any, error) {
	r, rid := id(r)
	return h.svc.Update(r.Context(), rid, in)
}

// @Summary Delete a recipe
// @Tags Recipes
// @Param id path string true "Recipe id"
// @Success 204 "deleted"
// @Router /recipes/{id} [delete]
func (h *handlers) delete(r *stdhttp.Request) (any, error) {
	r, rid := id(r)
	if err := h.svc.Delete(r.Context(), rid); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// @Summary Project quantities for a new yield
// @Description newFlour wins; otherwise pieces and pieceWeight are both required
// @Tags Scaling
// @Produce json
// @Param id path string true "Recipe id"
// @Param newFlour query number false "Target total flour weight"
// @Param pieces query int false "Target piece count"
// @Param pieceWeight query number false "Target weight per piece"
// @Success 200 {object} domain.ResizeResult "ok"
// @Failure 422 {object} httpkit.Envelope "invalid parameters"
// @Router /recipes/{id}/resize [post]
func (h *handlers) resize(r *stdhttp.Request, in domain.ResizeInput) (any, error) {
	r, rid := id(r)
	return h.svc.Resize(r.Context(), rid, in)
}

// @Summary View a recipe at another yield
// @Description Applies the override in memory; pieces or pieceWeight win over totalFlour
// @Tags Scaling
// @Produce json
// @Param id path string true "Recipe id"
// @Param pieces query int false "Piece count"
// @Param pieceWeight query number false "Weight per piece"
// @Param totalFlour query number false "Total flour weight"
// @Success 200 {object} domain.ScaledRecipe "ok"
// @Router /recipes/{id}/scaled [get]
func (h *handlers) scaled(r *stdhttp.Request, in domain.ScaledInput) (any, error) {
	r, rid := id(r)
	return h.svc.Scaled(r.Context(), rid, in)
}

// @Summary Phase usage per ingredient
// @Tags Recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} domain.UsageReport "ok"
// @Router /recipes/{id}/usage [get]
func (h *handlers) usage(r *stdhttp.Request) (any, error) {
	r, rid := id(r)
	return h.svc.Usage(r.Context(), rid)
}
