package automata

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/lexer_node/api/common"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/recognizer"
	"github.com/GDVFox/zigzin/util/httplib"
)

// TokenizeResponse результат токенизации текста.
type TokenizeResponse struct {
	Tokens []*recognizer.Token `json:"tokens"`
}

// LexicalErrorBody описание лексической ошибки с координатами отказа.
type LexicalErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Pos     int    `json:"pos"`
	Char    string `json:"char"`
}

// Tokenize разбивает тело запроса на токены по сохраненному автомату.
func Tokenize(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	automatonName := vars["automaton_name"]
	if automatonName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "automaton_name must be not empty")), nil
	}

	text, err := io.ReadAll(r.Body)
	if err != nil {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadTextErrorCode, err.Error())), nil
	}

	document, err := external.Automata.Load(automatonName)
	if err != nil {
		if errors.Cause(err) == external.ErrNotFound {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.StorageErrorCode, err.Error())), nil
	}

	dfa, err := document.DFA()
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, err.Error())), nil
	}

	tokens, err := recognizer.Tokenize(dfa, string(text))
	if err != nil {
		if lexErr, ok := errors.Cause(err).(*recognizer.LexicalError); ok {
			return httplib.NewUnprocessableEntityResponse(newLexicalErrorBody(lexErr)), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.LexicalErrorCode, err.Error())), nil
	}

	tokensData, err := json.Marshal(&TokenizeResponse{Tokens: tokens})
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadTextErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(tokensData, httplib.ContentTypeJSON), nil
}

func newLexicalErrorBody(lexErr *recognizer.LexicalError) []byte {
	body := &LexicalErrorBody{
		Code:    common.LexicalErrorCode,
		Message: lexErr.Error(),
		Line:    lexErr.Line,
		Pos:     lexErr.Pos,
		Char:    string(lexErr.Char),
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	return data
}
