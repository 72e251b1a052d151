// Package exactcalc implements a calculator that evaluates arithmetic with
// exact fractions and radicals rather than floating point.
//
// Expressions use the operators + - * / ^ with the usual precedence, where
// "a^b" is right-associative exponentiation. Juxtaposed terms multiply, so
// "2(3+4)" is 14 and "2pi" is twice pi. Names refer to constants and unary
// functions in the parser's registry, e.g. "sqrt(8)/sqrt(2)" is exactly 2.
//
// Results stay exact whenever the exact number model can express them. When
// it can not, e.g. for irrational exponents or constants like pi, evaluation
// continues with arbitrary-precision reals, and the result is rounded to a
// fixed number of decimal places.
package exactcalc
