package automata

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/lexer_node/api/common"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/util/httplib"
)

// DeleteAutomaton удаляет автомат из хранилища.
func DeleteAutomaton(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	automatonName := vars["automaton_name"]
	if automatonName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "automaton_name must be not empty")), nil
	}

	if err := external.Automata.Delete(automatonName); err != nil {
		if errors.Cause(err) == external.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.StorageErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(nil, httplib.ContentTypeJSON), nil
}
