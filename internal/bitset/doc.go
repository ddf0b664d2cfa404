// Package bitset provides a compact growable bit vector over ingredient
// indices.
//
// Architecture:
//   - Inline storage: 3 uint64 words (192 bits) held directly in the value,
//     covering the reference universe (~117 ingredients) without allocation
//   - Transparent spill: indices beyond the inline range go to a heap slice
//   - Zero-extension: binary operations accept operands of differing
//     allocated length; the shorter operand is treated as padded with zeros
//
// Used internally for:
//   - Per-cocktail ingredient sets
//   - The committed ingredient set threaded through the search
package bitset
