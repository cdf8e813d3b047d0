package gamedata

type Biome struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	DisplayName   string  `json:"displayName"`
	Category      string  `json:"category"`
	Temperature   float64 `json:"temperature"`
	Precipitation string  `json:"precipitation"`
	Depth         float64 `json:"depth"`
	Dimension     string  `json:"dimension"`
	Color         int     `json:"color"`
	Rainfall      float64 `json:"rainfall"`
}
