package automata

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/lexer_node/api/common"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/util/httplib"
)

// GetAutomaton получает DFA-документ из хранилища.
func GetAutomaton(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	automatonName := vars["automaton_name"]
	if automatonName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "automaton_name must be not empty")), nil
	}

	document, err := external.Automata.Load(automatonName)
	if err != nil {
		if errors.Cause(err) == external.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.StorageErrorCode, err.Error())), nil
	}

	documentData, err := json.Marshal(document)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(documentData, httplib.ContentTypeJSON), nil
}
