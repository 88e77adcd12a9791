package datastructure

import (
	"math"

	"github.com/twpayne/go-polyline"
)

// NodeID osm node id dari intersection/ujung jalan.
type NodeID int64

type Node struct {
	ID  NodeID
	Lat float64
	Lon float64
}

// EdgeData atribut satu edge directed (u,v). Antara dua node bisa ada beberapa parallel edge, dibedakan pakai Key.
type EdgeData struct {
	Key    int
	Length float64 // meter
	// NoLength true kalau atribut length gak ada di data graph
	NoLength bool
	Name     string
}

// EffectiveLength panjang edge buat milih edge terpendek. edge tanpa length dianggap +Inf.
func (e EdgeData) EffectiveLength() float64 {
	if e.NoLength {
		return math.Inf(1)
	}
	return e.Length
}

// ReportedLength panjang edge buat laporan rute. edge tanpa length dianggap 0.
func (e EdgeData) ReportedLength() float64 {
	if e.NoLength {
		return 0
	}
	return e.Length
}

// ShortestEdge pilih parallel edge dengan length paling kecil. kalau ada yang sama panjang, ambil yang pertama (urutan key).
func ShortestEdge(edges []EdgeData) (EdgeData, bool) {
	if len(edges) == 0 {
		return EdgeData{}, false
	}
	best := edges[0]
	for _, e := range edges[1:] {
		if e.EffectiveLength() < best.EffectiveLength() {
			best = e
		}
	}
	return best, true
}

func (n Node) Coordinate() Coordinate {
	return NewCoordinate(n.Lat, n.Lon)
}

func RenderPath(path []Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
