package recognizer

// Position задает координаты кодовой точки.
// Line и Pos нумеруются с единицы, Index это байтовое смещение в тексте.
type Position struct {
	Line  int `json:"line"`
	Pos   int `json:"pos"`
	Index int `json:"index"`
}

// Fragment задает координаты фрагмента исходного текста.
type Fragment struct {
	Starting Position `json:"starting"`
	Ending   Position `json:"ending"`
}

// Token лексема, выделенная распознавателем.
// Domain это метка допускающего состояния DFA, в котором лексема была принята.
type Token struct {
	Domain string   `json:"domain"`
	Lexeme string   `json:"lexeme"`
	Coords Fragment `json:"coords"`
}
