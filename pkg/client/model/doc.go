// Package model holds version-agnostic result types.
//
// Versioned result types convert into these with IntoModel, so callers that compare results
// across daemon versions have one shape to work with. Wire strings are parsed here: heights
// become uint32, BTC floats become Amount, chain names become Network.
package model
