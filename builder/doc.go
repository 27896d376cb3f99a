// Package builder assembles deterministic diagram fixtures on top of model.
//
// A Constructor adds cells to a *model.Model using a resolved builderConfig
// (cell size, spacing, label scheme, styles, RNG). BuildDiagram creates the
// model, resolves the options and applies constructors in order inside one
// transaction, so observers see a single notification for the whole fixture.
//
// Constructors:
//
//   - Layers(n):              make sure the root holds n layers.
//   - Chain(n) / Cycle(n):    vertices in a row joined head to tail.
//   - Star(n):                hub "Center" with n-1 leaves on a ring.
//   - Grid(rows, cols):       4-neighborhood grid, edges right and down.
//   - Swimlanes(lanes, per):  stacked lane containers, chained inside and
//     linked across lanes (cross-lane edges climb to the layer).
//   - Nested(depth):          groups nested depth deep, one leaf per level,
//     consecutive leaves linked (each edge settles in the outer group).
//   - RandomSparse(n, p):     random edges with probability p; needs WithSeed.
//
// Label schemes (LabelFn): DecimalLabel, SymbolLabel, ExcelColumnLabel,
// AlphanumericLabel, HexLabel, PrefixLabel(prefix).
//
// Errors: constructors return ErrTooFewCells, ErrInvalidProbability,
// ErrNeedRandSource or ErrConstructFailed wrapped with context; option
// constructors panic on meaningless input.
package builder
