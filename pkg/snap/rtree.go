package snap

import (
	"lintang/penaltyroute/pkg/datastructure"

	"github.com/dhconnelly/rtreego"
)

const (
	tol           = 0.0001
	nearestNodesK = 8
)

type nodeRect struct {
	location rtreego.Point
	node     datastructure.Node
}

func (n *nodeRect) Bounds() rtreego.Rect {
	// rectangle kecil di sekitar node dengan sisi 2 * tol
	return n.location.ToRect(tol)
}

// NodeIndex rtree atas koordinat node road network.
type NodeIndex struct {
	tree *rtreego.Rtree
	size int
}

func NewNodeIndex(nodes []datastructure.Node) *NodeIndex {
	objs := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		objs = append(objs, &nodeRect{location: rtreego.Point{n.Lat, n.Lon}, node: n})
	}
	return &NodeIndex{
		tree: rtreego.NewTree(2, 25, 50, objs...), // 2 dimension, 25 min entries dan 50 max entries
		size: len(nodes),
	}
}

// NearestNode ambil 8 kandidat terdekat dari rtree (jarak euclid lat/lon) lalu pilih yang paling dekat menurut s2.
func (idx *NodeIndex) NearestNode(lat, lon float64) (datastructure.NodeID, error) {
	if idx.size == 0 {
		return 0, ErrEmptyIndex
	}
	neighbors := idx.tree.NearestNeighbors(nearestNodesK, rtreego.Point{lat, lon})

	candidates := make([]datastructure.Node, 0, len(neighbors))
	for _, nb := range neighbors {
		if nb == nil {
			continue
		}
		candidates = append(candidates, nb.(*nodeRect).node)
	}

	best, ok := Nearest(candidates, lat, lon)
	if !ok {
		return 0, ErrEmptyIndex
	}
	return best.ID, nil
}
