package automata

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/zigzin/automaton"
	"github.com/GDVFox/zigzin/lexer_node/api/common"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/util/httplib"
)

// RenderAutomaton строит SVG-изображение графа переходов автомата.
func RenderAutomaton(r *http.Request) (*httplib.Response, error) {
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

	dfa, err := document.DFA()
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadAutomatonErrorCode, err.Error())), nil
	}

	graphImg, err := buildGraph(dfa)
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.RenderGraphErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(graphImg, httplib.ContentTypeSVG), nil
}

func buildGraph(dfa *automaton.DFA) ([]byte, error) {
	g := graphviz.New()
	graph, err := g.Graph(graphviz.Directed)
	if err != nil {
		return nil, err
	}
	graph.SetRankDir(cgraph.LRRank)

	graphvizNodes := make(map[automaton.State]*cgraph.Node)
	for _, state := range dfaStates(dfa) {
		graphvizNode, err := graph.CreateNode(strconv.Itoa(int(state)))
		if err != nil {
			return nil, err
		}

		if label, ok := dfa.Accept[state]; ok {
			graphvizNode.SetShape(cgraph.DoubleCircleShape)
			graphvizNode.SetLabel(fmt.Sprintf("%d\n%s", state, label))
		} else {
			graphvizNode.SetShape(cgraph.CircleShape)
		}
		if state == dfa.Start {
			graphvizNode.SetColor("blue")
		}

		graphvizNodes[state] = graphvizNode
	}

	for from, symbols := range dfa.Transitions {
		for symbol, to := range symbols {
			edgeName := fmt.Sprintf("%d-%c-%d", from, symbol, to)
			edge, err := graph.CreateEdge(edgeName, graphvizNodes[from], graphvizNodes[to])
			if err != nil {
				return nil, err
			}
			edge.SetLabel(string(symbol))
		}
	}

	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.SVG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// dfaStates возвращает все состояния автомата в порядке возрастания номеров.
func dfaStates(dfa *automaton.DFA) []automaton.State {
	seen := automaton.NewStateSet(dfa.Start)
	for from, symbols := range dfa.Transitions {
		seen.Add(from)
		for _, to := range symbols {
			seen.Add(to)
		}
	}
	for state := range dfa.Accept {
		seen.Add(state)
	}
	return seen.Sorted()
}
