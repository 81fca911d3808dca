package automata

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/GDVFox/zigzin/lexer_node/api/common"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/storage"
	"github.com/GDVFox/zigzin/util/httplib"
)

// CreateAutomatonRequest запрос на создание автомата:
// NFA и, опционально, алфавит. Если Alphabet пуст,
// берутся все символы переходов NFA.
type CreateAutomatonRequest struct {
	Name     string               `json:"name"`
	NFA      *storage.NFADocument `json:"nfa"`
	Alphabet string               `json:"alphabet,omitempty"`
}

// CreateAutomaton детерминизирует переданный NFA
// и сохраняет полученный DFA под переданным именем.
func CreateAutomaton(r *http.Request) (*httplib.Response, error) {
	request := &CreateAutomatonRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadUnmarshalRequestErrorCode, err.Error())), nil
	}
	if request.Name == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "name must be not empty")), nil
	}
	if request.NFA == nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, "nfa must be not empty")), nil
	}

	nfa, err := request.NFA.NFA()
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, err.Error())), nil
	}

	alphabet := []rune(request.Alphabet)
	if len(alphabet) == 0 {
		alphabet = storage.Alphabet(nfa)
	}

	document := storage.NewDFADocument(automaton.Determinize(nfa, alphabet))
	if err := external.Automata.Save(request.Name, document); err != nil {
		if errors.Cause(err) == external.ErrAlreadyExists {
			return httplib.NewConflictResponse(httplib.NewErrorBody(common.NameAlreadyExistsErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.StorageErrorCode, err.Error())), nil
	}

	documentData, err := json.Marshal(document)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, err.Error())), nil
	}

	return httplib.NewCreatedResponse(documentData), nil
}
