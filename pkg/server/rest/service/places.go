package service

// Place lokasi bernama yang bisa dipilih sebagai asal/tujuan.
type Place struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// DefaultPlaces lokasi pilihan di Depok.
var DefaultPlaces = []Place{
	{Name: "UI Depok", Lat: -6.3646, Lon: 106.8266},
	{Name: "Stasiun Pondok Cina", Lat: -6.368588078493545, Lon: 106.83206363708297},
	{Name: "Stasiun Depok Baru", Lat: -6.3909700611949445, Lon: 106.82170072359146},
	{Name: "Margo City Mall", Lat: -6.373446618263608, Lon: 106.83389863708304},
	{Name: "Depok Town Square", Lat: -6.372362129346898, Lon: 106.83167450548203},
	{Name: "Kampus D Gunadarma", Lat: -6.368906678945894, Lon: 106.83320512883571},
}
