package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/GDVFox/zigzin/lexer_node/api/automata"
	"github.com/GDVFox/zigzin/lexer_node/config"
	"github.com/GDVFox/zigzin/lexer_node/external"
	"github.com/GDVFox/zigzin/util"
	"github.com/GDVFox/zigzin/util/httplib"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "", "Name of config file")
}

func main() {
	flag.Parse()
	if err := util.LoadConfig(configFile, config.Conf); err != nil {
		fmt.Printf("can not read config file: %v", err)
		return
	}

	logger, err := util.NewLogger(config.Conf.Logging)
	if err != nil {
		fmt.Printf("can not init logger: %v", err)
		return
	}

	if err := external.InitExternal(config.Conf.Storage); err != nil {
		logger.Fatalf("can not init external resources: %v", err)
		return
	}
	defer external.CloseExternal()

	r := mux.NewRouter().PathPrefix("/v1").Subrouter()

	r.HandleFunc("/automata", httplib.CreateHandler(automata.ListAutomata, logger)).Methods(http.MethodGet)
	r.HandleFunc("/automata", httplib.CreateHandler(automata.CreateAutomaton, logger)).Methods(http.MethodPost)
	r.HandleFunc("/automata/{automaton_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(automata.GetAutomaton, logger)).Methods(http.MethodGet)
	r.HandleFunc("/automata/{automaton_name:[a-zA-z0-9\\-]+}", httplib.CreateHandler(automata.DeleteAutomaton, logger)).Methods(http.MethodDelete)
	r.HandleFunc("/automata/{automaton_name:[a-zA-z0-9\\-]+}/tokenize", httplib.CreateHandler(automata.Tokenize, logger)).Methods(http.MethodPost)
	r.HandleFunc("/automata/{automaton_name:[a-zA-z0-9\\-]+}/render", httplib.CreateHandler(automata.RenderAutomaton, logger)).Methods(http.MethodGet)
	r.HandleFunc("/automata/{automaton_name:[a-zA-z0-9\\-]+}/stream_tokens", httplib.CreateWSHandler(automata.StreamTokens, logger)).Methods(http.MethodGet)

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChannel)
	stopChannel := make(chan struct{})
	go func() {
		defer close(stopChannel)
		sig := <-signalChannel
		logger.Info("got signal: ", sig)
	}()

	httplib.StartServer(r, config.Conf.HTTP, logger, stopChannel)
}
