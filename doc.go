// Package automorph computes graph automorphism groups: the group
// order (as mantissa and decimal exponent), the vertex orbits, and a
// generator count, for directed or undirected graphs with optional
// vertex and edge colors expressed as integer weights.
//
// 🚀 What is automorph?
//
//	A pure-Go symmetry toolkit built from small, composable packages:
//		• core:       index-addressed Graph with weights as colors
//		• encode:     adjacency encodings (bit-matrix, CSR) + color classes
//		• dense:      bit-parallel backtracking search over the bit-matrix
//		• sparse:     CSR-based search tuned for low-degree graphs
//		• refine:     color refinement before search, for regular graphs
//		• autom:      the façade — pick a backend, get an Autom result
//		• builder:    deterministic topology factories (paths, cycles, K_n…)
//		• gonumgraph: conversion from gonum.org/v1/gonum/graph values
//		• notation:   compact edge-list expressions ("1-2-3-1")
//
// ✨ Typical use
//
//	g, _ := notation.Parse("1-2-3-4-5-1")
//	a, _ := autom.Compute(g)
//	fmt.Println(a.GroupSize()) // 10, the dihedral group D_5
//
// All three backends agree on group order, orbits and generator
// counts; they differ only in the encodings they search over and the
// graph sizes they handle best. Results are plain comparable structs,
// safe to copy and share.
package automorph
