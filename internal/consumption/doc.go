// Package consumption deducts the ingredients of a cooked recipe from a
// household's pantry lots.
//
// A run reads the recipe and the owner's lots once, then for every
// non-optional ingredient matches lots by name, orders them soonest-expiring
// first and draws the scaled quantity from them. All lot writes and the
// recipe's usage counters are committed as one batch; a usage log describing
// every deduction and shortfall is written afterwards.
//
// The engine keeps no state between runs and takes no locks. Callers must not
// start two runs for the same owner at the same time.
package consumption
