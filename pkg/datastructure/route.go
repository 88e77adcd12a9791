package datastructure

// Route urutan node dari start ke end.
type Route []NodeID

// SegmentDetail satu pasang node berurutan di rute, pakai edge terpendek antara keduanya.
type SegmentDetail struct {
	From        NodeID  `json:"from"`
	To          NodeID  `json:"to"`
	Length      float64 `json:"length"`
	Name        string  `json:"name"`
	IsPenalized bool    `json:"is_penalized"`
}

type RouteDetails struct {
	TotalLength       float64         `json:"total_length"`
	PenalizedSegments int             `json:"penalized_segments"`
	PenalizedLength   float64         `json:"penalized_length"`
	Segments          []SegmentDetail `json:"path"`
}
