// Package variable is the variable and domain registry: immutable
// integer-identity Variables with finite discrete domains, and Sets of
// variables supporting the algebra (union, intersection, containment,
// subtraction) the factor and diagram packages build on.
//
//	go get github.com/vareng/bucketelim/variable
package variable
