// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/pdiddy/autoaid/internal/match"
	"github.com/pdiddy/autoaid/internal/numeric"
	"github.com/pdiddy/autoaid/internal/table"
	"github.com/pdiddy/autoaid/pkg/types"
)

// FilterVehicles returns vehicles whose make or model contains keyword.
// When priceText parses as a threshold, rows priced above it are dropped,
// as are rows whose own price is malformed. A priceText that does not parse
// applies no price constraint.
func (e *Engine) FilterVehicles(keyword, priceText string) ([]types.VehicleRecord, error) {
	t, err := snapshot(e.ds.Vehicles, "vehicles", types.ColCarMake, types.ColCarModel, types.ColPrice)
	if err != nil {
		return nil, err
	}

	threshold, limited := numeric.ParseThreshold(priceText)
	if !limited && strings.TrimSpace(priceText) != "" {
		e.log.Debug().Str("price", priceText).Msg("price threshold unparsable, not applied")
	}

	rows, err := t.Select(func(r table.Row) (bool, error) {
		carMake, _ := r.Get(types.ColCarMake)
		model, _ := r.Get(types.ColCarModel)
		if !match.Substring(keyword, carMake) && !match.Substring(keyword, model) {
			return false, nil
		}
		if !limited {
			return true, nil
		}
		raw, _ := r.Get(types.ColPrice)
		price, err := numeric.NormalizePrice(raw)
		if err != nil {
			e.log.Debug().Err(err).Str("make", carMake).Str("model", model).Msg("row price malformed, row excluded")
			return false, nil
		}
		return price <= threshold, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.VehicleRecord, 0, len(rows))
	for _, r := range rows {
		rec := types.VehicleRecord{Attributes: r.Map()}
		rec.Make, _ = r.Get(types.ColCarMake)
		rec.Model, _ = r.Get(types.ColCarModel)
		rec.PriceText, _ = r.Get(types.ColPrice)
		// Without a threshold a malformed price is displayed as 0.
		rec.Price, _ = numeric.NormalizePrice(rec.PriceText)
		out = append(out, rec)
	}

	e.log.Debug().Str("keyword", keyword).Str("price", priceText).Int("matched", len(out)).Msg("filter vehicles")
	return out, nil
}

// FilterProblemsByKeyword returns the symptom, solution and category of each
// problem whose description contains keyword. Rows with an empty description
// never match.
func (e *Engine) FilterProblemsByKeyword(keyword string) ([]types.ProblemSolution, error) {
	t, err := snapshot(e.ds.Problems, "problems",
		types.ColProblem, types.ColSymptom, types.ColSolution, types.ColCategory)
	if err != nil {
		return nil, err
	}

	rows, err := t.Select(func(r table.Row) (bool, error) {
		problem, _ := r.Get(types.ColProblem)
		return problem != "" && match.Substring(keyword, problem), nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.ProblemSolution, 0, len(rows))
	for _, r := range rows {
		var ps types.ProblemSolution
		ps.Symptom, _ = r.Get(types.ColSymptom)
		ps.Solution, _ = r.Get(types.ColSolution)
		ps.Category, _ = r.Get(types.ColCategory)
		out = append(out, ps)
	}

	e.log.Debug().Str("keyword", keyword).Int("matched", len(out)).Msg("filter problems by keyword")
	return out, nil
}

// FilterProblemsByDealer returns the problems whose Dealer equals dealer
// exactly. Blank Dealer cells and a missing Dealer column never match, so an
// empty dealer returns no rows.
func (e *Engine) FilterProblemsByDealer(dealer string) ([]types.ProblemRecord, error) {
	t, err := snapshot(e.ds.Problems, "problems")
	if err != nil {
		return nil, err
	}

	rows, err := t.Select(func(r table.Row) (bool, error) {
		d, _ := r.Lookup(types.ColDealer)
		return d != "" && d == dealer, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.ProblemRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, problemRecord(r))
	}

	e.log.Debug().Str("dealer", dealer).Int("matched", len(out)).Msg("filter problems by dealer")
	return out, nil
}

// FilterParts returns parts whose name contains keyword, with every column
// of the parts dataset passed through. Rows with an empty name never match.
func (e *Engine) FilterParts(keyword string) ([]types.PartRecord, error) {
	t, err := snapshot(e.ds.Parts, "parts", types.ColCarPart)
	if err != nil {
		return nil, err
	}

	rows, err := t.Select(func(r table.Row) (bool, error) {
		name, _ := r.Get(types.ColCarPart)
		return name != "" && match.Substring(keyword, name), nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]types.PartRecord, 0, len(rows))
	for _, r := range rows {
		name, _ := r.Get(types.ColCarPart)
		out = append(out, types.PartRecord{PartName: name, Attributes: r.Map()})
	}

	e.log.Debug().Str("keyword", keyword).Int("matched", len(out)).Msg("filter parts")
	return out, nil
}

// SuggestSolutions returns every problem row, as a column-to-value map,
// whose description shares at least one word with keyword. An empty or
// punctuation-only keyword suggests nothing.
func (e *Engine) SuggestSolutions(keyword string) ([]map[string]string, error) {
	t, err := snapshot(e.ds.Suggestions, "problems", types.ColProblem)
	if err != nil {
		return nil, err
	}

	want := match.NewTokenSet(keyword)
	out := make([]map[string]string, 0)
	if len(want) == 0 {
		return out, nil
	}

	rows, err := t.Select(func(r table.Row) (bool, error) {
		problem, _ := r.Get(types.ColProblem)
		return want.Intersects(match.NewTokenSet(problem)), nil
	})
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out = append(out, r.Map())
	}

	e.log.Debug().Str("keyword", keyword).Int("matched", len(out)).Msg("suggest solutions")
	return out, nil
}

func problemRecord(r table.Row) types.ProblemRecord {
	var p types.ProblemRecord
	p.Problem, _ = r.Lookup(types.ColProblem)
	p.Symptom, _ = r.Lookup(types.ColSymptom)
	p.Solution, _ = r.Lookup(types.ColSolution)
	p.Category, _ = r.Lookup(types.ColCategory)
	p.Dealer, _ = r.Lookup(types.ColDealer)
	return p
}
