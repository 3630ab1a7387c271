// Package scalar classifies the numeric types the geometry kernel is
// generic over and owns the per-domain numeric policy.
//
// What lives here:
//
//   - Constraints: Signed, Unsigned, Integer, Float, Number (built on
//     golang.org/x/exp/constraints).
//   - NaN policy: IsNaN / CheckNotNaN. Float constructors across the kernel
//     reject NaN unconditionally; integer instantiations reduce to a
//     constant false and pay nothing.
//   - Limits: Lowest / Highest, the representable range of T.
//   - Interpolation: Lerp (fused multiply-add) and LerpClassic.
//
// No value in this package or its users carries a runtime type tag; every
// decision is fixed by the instantiation of T.
package scalar
