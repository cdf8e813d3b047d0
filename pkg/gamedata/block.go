package gamedata

type Block struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	DisplayName string      `json:"displayName"`
	Hardness    *float64    `json:"hardness"`
	Diggable    bool        `json:"diggable"`
	Material    string      `json:"material"`
	Transparent bool        `json:"transparent"`
	EmitLight   int         `json:"emitLight"`
	FilterLight int         `json:"filterLight"`
	Variations  []Variation `json:"variations"`
}

type Variation struct {
	Metadata    int    `json:"metadata"`
	DisplayName string `json:"displayName"`
}
