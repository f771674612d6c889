// Package angle converts between "adaptive" angles in a curved workspace
// and Euclidean angles, using the π_a/π ratio from package ratio.
//
// A full adaptive revolution at radius r spans FullTurnDegrees(r, κ)
// Euclidean degrees (360 in flat space). RotateCmd maps a request in
// adaptive degrees onto Euclidean radians; it scales linearly and never
// wraps, so requests beyond one turn stay beyond one turn.
//
//	deg := angle.FullTurnDegrees(0.5, 1.0)   // ≈ 375.1
//	rad := angle.RotateCmd(deg, 0.5, 1.0)    // 2π
//
// Converter binds an explicit ratio.Engine, e.g. ratio.BigFloatEngine.
package angle
