// SPDX-License-Identifier: MIT

// Package transform implements affine (and projective) transforms as a
// forward matrix paired with its inverse.
//
// 🚀 Construction
//
//	New / MustNew      checked: the inverse is computed, singular input fails
//	FromPair           unchecked: the caller supplies the inverse
//	Translate, Scale, RotateX/Y/Z, Rotate
//	                   closed-form inverses, no factorization
//	LookAt, Perspective
//	                   built from a basis / projection, inverted checked
//
// Carrying the inverse makes Inverse and Transpose O(1) swaps, and lets
// Normal apply the inverse-transpose without inverting anything.
//
// ✨ Application
//
//	Point   homogeneous map; divides by w only when w ≠ 1
//	Vector  linear part only, translation ignored
//	Normal  by the inverse-transpose, so normals stay perpendicular to
//	        transformed surfaces under non-uniform scale
//	Bounds  union of the eight transformed corners
//
// ⚙️ Build tag lvgeomdebug
//
// With -tags lvgeomdebug, FromPair multiplies the pair and panics with
// ErrInconsistentPair when the product is not the identity within the
// configured tolerance. Without the tag FromPair stores the pair as given.
package transform
