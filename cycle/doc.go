// Package cycle detects when repeated application of a deterministic
// transform starts repeating, and uses the detected cycle to project the
// state after an arbitrarily large number of applications.
//
// Given a transform T and a seed S0, Detect walks S0, T(S0), T²(S0), ...
// recording each state until a state's key equals the key of an earlier one.
// If T^k(S0) = T^j(S0) with j < k, then j is the cycle Offset, k−j the
// Period, and for every n ≥ j
//
//	T^n(S0) = T^(j + ((n−j) mod (k−j)))(S0)
//
// which is what Result.At evaluates.
//
// A cycle is guaranteed whenever T is deterministic and its state space is
// finite. WithMaxSteps bounds the walk for transforms where that is not
// obvious.
//
// Complexity: O(k) applications of T and key, O(k) memory for the states.
package cycle
