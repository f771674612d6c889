// Package ratio computes the adaptive-pi ratio π_a/π = κ·sinh(r/κ)/r for
// a geodesic radius r and a curvature radius κ.
//
// 🚀 Why a dedicated engine?
//
//	The closed form has two numerically dangerous regions:
//	  • r/κ → 0   – sinh(x)/x → 1, the direct evaluation loses significance
//	  • |r/κ| big – sinh overflows float64 long before the ratio is useful
//	and a division by r or κ near zero. PiAOverPi walks a fixed ladder of
//	branches so that the result is always finite and strictly positive.
//
// ✨ Decision ladder (first match wins):
//  1. |r| < eps or |κ| < eps           → 1.0 (Euclidean limit)
//  2. x = r/κ
//  3. |x| < TaylorThreshold            → sinh(x) ≈ x·(1 + x²/6 + x⁴/120)
//  4. |x| > OverflowThreshold          → 1.0
//  5. otherwise                        → math.Sinh(x)
//  6. ratio = κ·sinh(x)/r
//  7. ratio non-finite or ≤ 0          → 1.0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hypergeom/ratio"
//
//	q := ratio.PiAOverPi(0.4, 1.0)                          // ≈ 1.0268808
//	q = ratio.PiAOverPi(r, k, ratio.WithEpsilon(1e-12))     // tighter degenerate band
//	q = ratio.PiAOverPiHighPrecision(r, k, 80)              // big.Float, 80 digits
//
// Strategies:
//
//	Engine abstracts the computation. Float64Engine is the default;
//	BigFloatEngine recomputes sinh with math/big at an elevated precision
//	and defers to Float64Engine wherever the ladder short-circuits.
//
// Every function in this package is pure and safe for concurrent use.
package ratio
