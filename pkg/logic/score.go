package logic

// MatchScore compares a compared tree's depth against a reference tree's
// depth and returns a percentage in [0, 100].
//
// The score is floor(compDepth/refDepth × 100), capped at 100: a compared
// text at least as deep as the reference scores a full match. A refDepth
// of 0 or less returns 0; this branch is unreachable for trees measured
// with [Depth], which never reports less than 1 for a non-nil tree, but it
// keeps the function total over arbitrary integers.
func MatchScore(refDepth, compDepth int) int {
	if refDepth <= 0 {
		return 0
	}
	if compDepth <= 0 {
		return 0
	}
	score := compDepth * 100 / refDepth
	return min(score, 100)
}
