// Package dice implements the dice side of Cee-Lo: three-dice rolls, their
// resolution to a comparable rank, and the random sources that produce them.
//
// # Core Types
//
// Roll: three die faces in the order they landed.
//
// Outcome: the validity flag and rank of a resolved Roll.
//
// Source: a uniform generator of die faces in [1,6].
//
// # Ranking
//
// Rolls are sorted before resolution and mapped onto one absolute scale:
//
//	invalid         -> 0
//	pair + point    -> the point, 1..6      ([2-2-4] = 4, [6-5-5] = 6)
//	triple          -> 6 + face, 7..12      ([1-1-1] = 7, [5-5-5] = 11)
//	4-5-6           -> 13
//
// Two ranks from independent rolls compare numerically.
package dice
