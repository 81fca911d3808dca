package automata

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/GDVFox/zigzin/lexer_node/api/common"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/recognizer"
	"github.com/GDVFox/zigzin/util"
	"github.com/GDVFox/zigzin/util/httplib"
)

const (
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type socketMessage struct {
	Code string          `json:"code"`
	Body json.RawMessage `json:"body"`
}

func newSocketMessage(c string, body interface{}) []byte {
	bodyData, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	sockMsg := &socketMessage{
		Code: c,
		Body: bodyData,
	}
	data, err := json.Marshal(sockMsg)
	if err != nil {
		return nil
	}
	return data
}

// StreamTokens открывает вебсокет: каждое текстовое сообщение
// токенизируется по сохраненному автомату, в ответ уходит список токенов
// или описание лексической ошибки.
func StreamTokens(w http.ResponseWriter, r *http.Request) error {
	logger := r.Context().Value(httplib.RequestLogger).(*util.Logger)

	vars := mux.Vars(r)
	automatonName := vars["automaton_name"]
	if automatonName == "" {
		resp := httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "automaton_name must be not empty"))
		return resp.WriteTo(w)
	}

	document, err := external.Automata.Load(automatonName)
	if err != nil {
		if errors.Cause(err) == external.ErrNotFound {
			resp := httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error()))
			return resp.WriteTo(w)
		}
		resp := httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.StorageErrorCode, err.Error()))
		return resp.WriteTo(w)
	}

	dfa, err := document.DFA()
	if err != nil {
		resp := httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, err.Error()))
		return resp.WriteTo(w)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	go runTokenLoop(conn, dfa, logger.WithName("token loop"))
	return nil
}

func runTokenLoop(conn *websocket.Conn, dfa *automaton.DFA, l *util.Logger) {
	defer conn.Close()
	defer conn.WriteMessage(websocket.CloseMessage, []byte{})

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				l.Warnf("can not read message: %s", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		tokens, err := recognizer.Tokenize(dfa, string(message))
		if err != nil {
			var reply []byte
			if lexErr, ok := errors.Cause(err).(*recognizer.LexicalError); ok {
				reply = newSocketMessage(common.LexicalErrorCode, json.RawMessage(newLexicalErrorBody(lexErr)))
			} else {
				reply = newSocketMessage(common.BadTextErrorCode, err.Error())
			}

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
				l.Warnf("can not send error message: %s", err)
				return
			}
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		reply := newSocketMessage("tokens", &TokenizeResponse{Tokens: tokens})
		if err := conn.WriteMessage(websocket.TextMessage, reply); err != nil {
			l.Warnf("can not write tokens: %s", err)
			return
		}
	}
}
