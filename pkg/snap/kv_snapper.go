package snap

import (
	"lintang/penaltyroute/pkg/datastructure"
)

type NearbyNodeStore interface {
	GetNearestNodesFromPointCoord(lat, lon float64) ([]datastructure.Node, error)
}

// KVSnapper nearest node dari h3 bucket di pebble.
type KVSnapper struct {
	store NearbyNodeStore
}

func NewKVSnapper(store NearbyNodeStore) *KVSnapper {
	return &KVSnapper{store: store}
}

func (s *KVSnapper) NearestNode(lat, lon float64) (datastructure.NodeID, error) {
	nodes, err := s.store.GetNearestNodesFromPointCoord(lat, lon)
	if err != nil {
		return 0, err
	}
	best, ok := Nearest(nodes, lat, lon)
	if !ok {
		return 0, ErrEmptyIndex
	}
	return best.ID, nil
}
