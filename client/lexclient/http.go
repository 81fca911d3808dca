package lexclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GDVFox/zigzin/lexer_node/api/automata"
	"github.com/GDVFox/zigzin/storage"
	"github.com/GDVFox/zigzin/util/httplib"
)

var (
	lexerScheme         = "http"
	automataListPath    = "/v1/automata"
	getAutomatonPath    = "/v1/automata/"
	createAutomatonPath = "/v1/automata"
	deleteAutomatonPath = "/v1/automata/"
	tokenizePath        = "/v1/automata/%s/tokenize"
	renderPath          = "/v1/automata/%s/render"
)

var (
	// LexerNode клиент для доступа.
	LexerNode *LexerNodeClient
	// LexerNodeAddress адрес lexer_node.
	LexerNodeAddress string
)

// LexerNodeClientConfig набор настроек для LexerNodeClient.
// Address может быть задан переменной окружения ZIGZIN_ADDRESS.
type LexerNodeClientConfig struct {
	Address string `envconfig:"address"`
}

// NewLexerNodeClientConfig создает конфиг с настройками
// из переменных окружения с префиксом ZIGZIN.
func NewLexerNodeClientConfig() *LexerNodeClientConfig {
	cfg := &LexerNodeClientConfig{Address: "127.0.0.1:8080"}
	// Ошибка разбора окружения не мешает работе: адрес можно задать аргументом.
	_ = envconfig.Process("zigzin", cfg)
	return cfg
}

// OpenLexerNodeClient открывает lexer_node client.
func OpenLexerNodeClient(cfg *LexerNodeClientConfig) {
	LexerNode = NewLexerNodeClient(cfg)
	LexerNodeAddress = cfg.Address
}

// NewLexerNodeClient возвращает новый LexerNodeClient
func NewLexerNodeClient(cfg *LexerNodeClientConfig) *LexerNodeClient {
	return &LexerNodeClient{
		client: &http.Client{Timeout: 1 * time.Minute},
		cfg:    cfg,
	}
}

// LexerNodeClient клиент для подключения к lexer_node
type LexerNodeClient struct {
	client *http.Client
	cfg    *LexerNodeClientConfig
}

// GetAutomataList возвращает список сохраненных автоматов.
func (c *LexerNodeClient) GetAutomataList() (*automata.AutomataList, error) {
	lexerURL := url.URL{
		Scheme: lexerScheme,
		Host:   c.cfg.Address,
		Path:   automataListPath,
	}

	automataList := &automata.AutomataList{}
	if err := c.get(lexerURL.String(), automataList); err != nil {
		return nil, err
	}
	return automataList, nil
}

// GetAutomaton возвращает DFA-документ автомата.
func (c *LexerNodeClient) GetAutomaton(automatonName string) (*storage.DFADocument, error) {
	lexerURL := url.URL{
		Scheme: lexerScheme,
		Host:   c.cfg.Address,
		Path:   getAutomatonPath + automatonName,
	}

	document := &storage.DFADocument{}
	if err := c.get(lexerURL.String(), document); err != nil {
		return nil, err
	}
	return document, nil
}

// CreateAutomaton детерминизирует NFA на узле и сохраняет полученный DFA.
func (c *LexerNodeClient) CreateAutomaton(request *automata.CreateAutomatonRequest) (*storage.DFADocument, error) {
	lexerURL := url.URL{
		Scheme: lexerScheme,
		Host:   c.cfg.Address,
		Path:   createAutomatonPath,
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, lexerURL.String(), bytes.NewReader(requestData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", string(httplib.ContentTypeJSON))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.handleError(resp.Body)
	}

	document := &storage.DFADocument{}
	if err := json.NewDecoder(resp.Body).Decode(document); err != nil {
		return nil, err
	}
	return document, nil
}

// DeleteAutomaton удаляет заданный автомат.
func (c *LexerNodeClient) DeleteAutomaton(automatonName string) error {
	lexerURL := url.URL{
		Scheme: lexerScheme,
		Host:   c.cfg.Address,
		Path:   deleteAutomatonPath + automatonName,
	}

	return c.delete(lexerURL.String())
}

// Tokenize разбивает текст на токены по сохраненному автомату.
func (c *LexerNodeClient) Tokenize(automatonName string, text []byte) (*automata.TokenizeResponse, error) {
	lexerURL := url.URL{
		Scheme: lexerScheme,
		Host:   c.cfg.Address,
		Path:   fmt.Sprintf(tokenizePath, automatonName),
	}

	resp, err := c.client.Post(lexerURL.String(), string(httplib.ContentTypeRaw), bytes.NewReader(text))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleError(resp.Body)
	}

	tokens := &automata.TokenizeResponse{}
	if err := json.NewDecoder(resp.Body).Decode(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// RenderAutomaton возвращает SVG-изображение графа переходов автомата.
func (c *LexerNodeClient) RenderAutomaton(automatonName string) ([]byte, error) {
	lexerURL := url.URL{
		Scheme: lexerScheme,
		Host:   c.cfg.Address,
		Path:   fmt.Sprintf(renderPath, automatonName),
	}

	resp, err := c.client.Get(lexerURL.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleError(resp.Body)
	}
	return io.ReadAll(resp.Body)
}

func (c *LexerNodeClient) get(url string, respData interface{}) error {
	resp, err := c.client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleError(resp.Body)
	}
	return json.NewDecoder(resp.Body).Decode(respData)
}

func (c *LexerNodeClient) delete(url string) error {
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.handleError(resp.Body)
	}
	return nil
}

func (c *LexerNodeClient) handleError(r io.Reader) error {
	lexerError := &httplib.ErrorBody{}
	if err := json.NewDecoder(r).Decode(lexerError); err != nil {
		return fmt.Errorf("can not decode error response: %w", err)
	}
	return fmt.Errorf("%s", lexerError.Message)
}
