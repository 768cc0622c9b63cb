package engine

import (
	"context"
	"sort"

	"github.com/mvandervelde/bouwlca/internal/lca"
	"github.com/mvandervelde/bouwlca/internal/logging"
)

// cSplit carries the end-of-life sub-phases an element contributes to the
// project totals. The element view itself only reports the combined C.
type cSplit struct {
	c1c2 float64
	c3   float64
	c4   float64
}

// computeElement walks an element's layers in position order and sums
// their phase impacts. Layers whose material cannot be resolved contribute
// zero and are reported through the logger.
func (e *Engine) computeElement(ctx context.Context, element lca.Element, studyPeriodYears float64) (ElementImpact, cSplit) {
	log := logging.FromContext(ctx)

	layers := make([]lca.Layer, len(element.Layers))
	copy(layers, element.Layers)
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].Position < layers[j].Position })

	impact := ElementImpact{ID: element.ID, Name: element.Name, Category: element.Category}
	var c cSplit

	for _, layer := range layers {
		material, ok := e.resolveMaterial(layer.MaterialID)
		if !ok {
			log.Warn().
				Str("component", "engine").
				Str("element", element.Name).
				Str("material_id", layer.MaterialID).
				Int("position", layer.Position).
				Msg("material not found, layer contributes zero")
			continue
		}

		massKg := lca.LayerMass(element, layer, material)

		a1a3 := lca.ProductionImpact(massKg, material)
		a4 := lca.TransportImpact(massKg, layer, material)
		a5 := lca.ConstructionImpact(a1a3, element.Category)
		b4 := lca.ReplacementImpact(massKg, layer, material, studyPeriodYears)
		c1 := lca.DeconstructionImpact(massKg, material)
		c2 := lca.WasteTransportImpact(massKg, material)
		c3 := lca.WasteProcessingImpact(massKg, material)
		c4 := lca.DisposalImpact(massKg, material)
		d := lca.BenefitImpact(massKg, material)

		impact.A1A3 += a1a3
		impact.A4 += a4
		impact.A5 += a5
		impact.B4 += b4
		impact.C += c1 + c2 + c3 + c4
		impact.D += d
		c.c1c2 += c1 + c2
		c.c3 += c3
		c.c4 += c4

		if e.opts.Verbose {
			log.Debug().
				Str("component", "engine").
				Str("element", element.Name).
				Str("material_id", material.ID).
				Int("position", layer.Position).
				Float64("mass_kg", massKg).
				Float64("a1_a3", a1a3).
				Float64("a4", a4).
				Float64("a5", a5).
				Float64("b4", b4).
				Float64("c", c1+c2+c3+c4).
				Float64("d", d).
				Msg("layer computed")
		}
	}

	// Element totals follow the project convention: module D stays out.
	impact.Total = impact.A1A3 + impact.A4 + impact.A5 + impact.B4 + impact.C

	return impact, c
}
