// Package builder generates synthetic point datasets for clustering fixtures,
// tests and demos.
//
// The package offers:
//
//   - Moons(n, opts...): two interleaving half circles (labels 0 and 1).
//   - Blobs(n, centers, opts...): isotropic Gaussian blobs around given centers.
//
// Configuration follows the functional-options style:
//
//   - WithSeed / WithRand: the random source. Stochastic datasets require one.
//   - WithNoise(sigma):    Gaussian jitter added to every Moons coordinate.
//   - WithSpread(sigma):   standard deviation of every Blobs coordinate.
//
// Guarantees:
//
//   - Determinism: the same n, options and seed always yield the same Dataset.
//   - Option constructors panic on nonsensical values (programmer error);
//     generators never panic and return sentinel errors wrapped with the
//     method name (errors.Is compatible).
//   - Every returned Dataset has len(Points) == len(Labels) == n and all points
//     share one dimension.
package builder
