package common

// Возможные коды ошибок.
var (
	BadUnmarshalRequestErrorCode = "bad_unmarshal"
	BadAutomatonErrorCode        = "bad_automaton"
	BadNameErrorCode             = "bad_name"
	BadTextErrorCode             = "bad_text"
	NameNotFoundErrorCode        = "name_not_found"
	NameAlreadyExistsErrorCode   = "name_already_exists"
	StorageErrorCode             = "storage_error"
	LexicalErrorCode             = "lexical_error"
	RenderGraphErrorCode         = "render_graph_error"
)
