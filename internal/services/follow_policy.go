package services

// FollowEdgeCounter is the single set-membership query the access gate needs.
type FollowEdgeCounter interface {
	CountEdges(followerID string, followingIDs []string) (int64, error)
}

type FollowPolicy struct {
	follows FollowEdgeCounter
}

func NewFollowPolicy(follows FollowEdgeCounter) *FollowPolicy {
	return &FollowPolicy{follows: follows}
}

// AssertViewable checks that the viewer may see every target user's data:
// self-visibility is implicit, anyone else needs an explicit follow edge.
// The check is a conjunction, not a per-item filter: if any target is
// missing an edge the whole call fails with ErrUnauthorized.
func (policy *FollowPolicy) AssertViewable(viewerID string, targetIDs []string) error {
	if viewerID == "" {
		return ErrUnauthorized
	}

	others := make([]string, 0, len(targetIDs))
	seen := make(map[string]struct{}, len(targetIDs))
	for _, targetID := range targetIDs {
		if targetID == viewerID {
			continue
		}
		if _, duplicate := seen[targetID]; duplicate {
			continue
		}
		seen[targetID] = struct{}{}
		others = append(others, targetID)
	}
	if len(others) == 0 {
		return nil
	}

	matched, err := policy.follows.CountEdges(viewerID, others)
	if err != nil {
		return err
	}
	if matched < int64(len(others)) {
		return ErrUnauthorized
	}
	return nil
}
