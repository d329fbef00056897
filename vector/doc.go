// Package vector provides single-precision 2D and 3D geometric vectors used
// by graphics, physics and geometry code. It includes:
//   - Vector: the capability set shared by every vector dimensionality
//   - Vector2D and Vector3D: the two concrete implementations
//   - Cross, AngleBetween and Distance free functions
//   - sentinel errors for contract violations (dimension mismatch,
//     degenerate vectors, division by zero, cross product on 2D)
//
// All operations return new values; none of them mutate their operands.
package vector
