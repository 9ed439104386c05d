// Package logic defines the discourse logic tree returned by the remote
// parsing service and the measurements computed over it.
//
// A tree is a hierarchy of [Node] values. Leaf nodes carry the literal text
// span they cover; internal nodes carry the rhetorical relation that joins
// their children. The package computes two things from a tree:
//
//   - [Depth]: the length in nodes of the longest root-to-leaf path.
//   - [MatchScore]: a percentage comparing a compared tree's depth to a
//     reference tree's depth.
//
// # Permissive decoding
//
// The parsing service is a black box and its output is not validated here.
// Missing fields decode to zero values and are substituted with defaults at
// the point of use ([Node.Kind] falls back to "span", absent children are
// treated as an empty list). A node that declares neither type nor children
// measures as depth 1 rather than producing an error.
package logic
