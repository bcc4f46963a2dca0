package domain

type ClientMessage struct {
	Type   string `json:"type"`
	Column int    `json:"column"`
}

type ServerMessage struct {
	Type        string   `json:"type"`
	Message     string   `json:"message,omitempty"`
	GameID      string   `json:"gameId,omitempty"`
	Rows        int      `json:"rows,omitempty"`
	Columns     int      `json:"columns,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	CurrentTurn int      `json:"currentTurn,omitempty"`
	Column      int      `json:"column"`
	Row         int      `json:"row"`
	Player      int      `json:"player,omitempty"`
	Board       [][]int  `json:"board,omitempty"`
	NextTurn    int      `json:"nextTurn,omitempty"`
	Winner      string   `json:"winner,omitempty"`
	Status      string   `json:"status,omitempty"`
}
