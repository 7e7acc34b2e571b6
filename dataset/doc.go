// Package dataset reads and writes markets as YAML documents:
//
//	proposers: [A, B, C]
//	receivers: [X, Y, Z]
//	preferences:
//	  proposers: {A: [Y, X, Z], B: [X, Y, Z], C: [X, Z, Y]}
//	  receivers: {X: [B, A, C], Y: [A, C, B], Z: [C, B, A]}
//	matching: {A: Y, B: X, C: Z}
//
// The matching block is optional. Group order is the order of the
// proposers and receivers lists; Encode writes every mapping in that order.
package dataset
