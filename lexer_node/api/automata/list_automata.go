package automata

import (
	"encoding/json"
	"net/http"

	"github.com/GDVFox/zigzin/lexer_node/api/common"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/util/httplib"
)

// AutomataList список имен автоматов.
type AutomataList struct {
	Automata []string `json:"automata"`
}

// ListAutomata получает список имен сохраненных автоматов.
func ListAutomata(r *http.Request) (*httplib.Response, error) {
	names, err := external.Automata.List()
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.StorageErrorCode, err.Error())), nil
	}

	list := &AutomataList{Automata: names}
	listData, err := json.Marshal(list)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(listData, httplib.ContentTypeJSON), nil
}
