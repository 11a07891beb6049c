// Package textutil provides small text and slice helpers:
// keyword substitution, line searching, flattening and order-preserving de-duplication.
package textutil
