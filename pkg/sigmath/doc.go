// Package sigmath derives the per-sample series the cropper works on.
//
// [Magnitude] collapses each multi-channel sample into a single scalar,
// (sum of squared readings)^(1/C) for C channels. The 1/C exponent is part of
// the heuristic: a single-channel sample x yields x², not |x|.
//
// [Gradient] is the discrete first derivative with centered differences in
// the interior and one-sided differences at both ends. [AbsGradient] is its
// element-wise absolute value.
package sigmath
