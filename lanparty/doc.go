// Package lanparty analyzes a network map given as "a-b" connection lines.
//
// Connections are undirected. CountTriangles counts sets of three
// inter-connected computers where at least one name starts with a prefix,
// and Password returns the members of the largest fully connected set,
// sorted alphabetically and joined with commas.
package lanparty
