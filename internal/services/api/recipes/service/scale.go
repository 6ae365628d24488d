package service

import (
	"context"

	"levain/internal/core/bakers"
	perr "levain/internal/platform/errors"
	"levain/internal/platform/logger"
	"levain/internal/services/api/recipes/domain"
)

// Resize projects the stored recipe onto a new flour weight, or onto pieces x pieceWeight
// newFlour wins when both are given; nothing is persisted
func (s *Svc) Resize(ctx context.Context, id string, in domain.ResizeInput) (domain.ResizeResult, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return domain.ResizeResult{}, err
	}
	r := fromRow(row)
	if r.TotalPercentage() == 0 {
		return domain.ResizeResult{}, perr.InvalidArgf("invalid parameters: recipe has no baker's percentages")
	}

	var (
		sc    bakers.Scale
		ratio float64
		ev    = domain.ScaleEvent{RecipeID: row.ID}
	)
	switch {
	case in.NewFlour != nil:
		sc = bakers.ResizeByFlour(r, *in.NewFlour)
		ratio = bakers.Ratio(r.TotalFlourWeight, *in.NewFlour)
		ev.Mode = domain.ModeFlour
	case in.Pieces != nil && in.PieceWeight != nil:
		sc = bakers.ResizeByPieces(r, *in.Pieces, *in.PieceWeight)
		ratio = bakers.Ratio(r.TotalWeight(), float64(*in.Pieces)**in.PieceWeight)
		ev.Mode, ev.Pieces, ev.PieceWeight = domain.ModePieces, *in.Pieces, *in.PieceWeight
	default:
		return domain.ResizeResult{}, perr.InvalidArgf("invalid parameters: provide newFlour, or pieces and pieceWeight")
	}

	if !sc.OK() || len(sc.Quantities) == 0 {
		return domain.ResizeResult{}, perr.InvalidArgf("invalid parameters: %s", reason(sc.Outcome))
	}

	ev.Ratio, ev.FlourWeight = ratio, sc.FlourWeight
	s.record(ctx, ev)

	return domain.ResizeResult{
		Mode:        ev.Mode,
		FlourWeight: bakers.Round2(sc.FlourWeight),
		DoughWeight: bakers.Round2(sc.Total()),
		Quantities:  sc.Quantities,
	}, nil
}

// Scaled returns the stored recipe with a yield override applied in memory
// a missing pieces or pieceWeight falls back to the stored value; the piece yield wins when both end up positive,
// otherwise totalFlour applies, and with neither the recipe comes back unscaled
func (s *Svc) Scaled(ctx context.Context, id string, in domain.ScaledInput) (domain.ScaledRecipe, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return domain.ScaledRecipe{}, err
	}
	r := fromRow(row)

	pieces, weight := r.ServingPieces, r.PieceWeight
	if in.Pieces != nil {
		pieces = *in.Pieces
	}
	if in.PieceWeight != nil {
		weight = *in.PieceWeight
	}

	var (
		res  bakers.Result
		mode = domain.ModeNone
	)
	switch {
	case (in.Pieces != nil || in.PieceWeight != nil) && pieces > 0 && weight > 0:
		res = s.engine.ScaleToPieces(&r, pieces, weight)
		mode = domain.ModePieces
	case in.TotalFlour != nil:
		res = s.engine.ScaleToFlour(&r, *in.TotalFlour)
		mode = domain.ModeFlour
	default:
		return domain.ScaledRecipe{Recipe: view(row, r), Mode: mode, Ratio: 1}, nil
	}

	if !res.OK() {
		return domain.ScaledRecipe{}, perr.InvalidArgf("invalid parameters: %s", reason(res.Outcome))
	}

	s.record(ctx, domain.ScaleEvent{
		RecipeID:    row.ID,
		Mode:        mode,
		Ratio:       res.Ratio,
		FlourWeight: r.TotalFlourWeight,
		Pieces:      r.ServingPieces,
		PieceWeight: r.PieceWeight,
	})

	return domain.ScaledRecipe{
		Recipe: view(row, r),
		Mode:   mode,
		Ratio:  res.Ratio,
		Drift:  res.Drift,
		Scaled: res.PhasesScaled,
	}, nil
}

// Usage reports how much of each main ingredient the phases draw
func (s *Svc) Usage(ctx context.Context, id string) (domain.UsageReport, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return domain.UsageReport{}, err
	}
	usage := bakers.Usage(fromRow(row))
	out := domain.UsageReport{RecipeID: row.ID, Items: make([]domain.IngredientUsage, 0, len(usage))}
	for _, u := range usage {
		out.Items = append(out.Items, domain.IngredientUsage{
			Name:      u.Name,
			Total:     u.Total,
			Used:      bakers.Round2(u.Used),
			Remaining: bakers.Round2(u.Remaining),
			Overdrawn: u.Overdrawn,
		})
		out.Overdrawn = out.Overdrawn || u.Overdrawn
	}
	return out, nil
}

// record hands the event to the sink; failures are logged and never reach the caller
func (s *Svc) record(ctx context.Context, ev domain.ScaleEvent) {
	if s.events == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = s.now().UTC()
	}
	if err := s.events.Record(ctx, ev); err != nil {
		logger.C(ctx).Warn().Err(err).Str("recipe_id", ev.RecipeID).Str("mode", string(ev.Mode)).Msg("scale event dropped")
	}
}

func reason(o bakers.Outcome) string {
	if o.Reason != "" {
		return o.Reason
	}
	return "empty result"
}
