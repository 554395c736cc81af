// Package ceelo plays rounds of Cee-Lo between the user and the computer.
//
// A round gives each party up to MaxAttempts throws to land a scoring roll,
// keeps the last throw if none scored, resolves both final rolls and awards
// the round to the higher rank. Equal ranks, including two invalid rolls,
// tie. Session Statistics count the results from the user's point of view.
//
// The engine never prints. Every throw a party made is returned in the
// RoundResult so callers can render the attempts however they like.
package ceelo
