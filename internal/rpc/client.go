// Package rpc issues authenticated JSON-RPC calls against the ERP and maps
// its generic record operations onto typed helpers.
package rpc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/device-management-toolkit/storefront/internal/jsonrpc"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

const (
	// CallKwPath is the generic model method endpoint.
	CallKwPath = "/web/dataset/call_kw"

	DefaultLanguage = "en_US"
)

// Session is the part of the session manager a call needs.
type Session interface {
	IsAuthenticated() bool
	ServerAddress() string
	Token() string
}

// Transport sends one envelope. *jsonrpc.Client implements it.
type Transport interface {
	Call(ctx context.Context, url string, params interface{}, sessionToken string) (*jsonrpc.Response, error)
}

// KwParams are the params of a call_kw request.
type KwParams struct {
	Model  string                 `json:"model"`
	Method string                 `json:"method"`
	Args   []interface{}          `json:"args"`
	Kwargs map[string]interface{} `json:"kwargs"`
}

// Client -.
type Client struct {
	session   Session
	transport Transport
	log       logger.Interface
	language  string
}

// Option -.
type Option func(*Client)

// WithLanguage sets the lang passed in the context of read calls.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// New binds a client to a session.
func New(session Session, transport Transport, log logger.Interface, opts ...Option) *Client {
	c := &Client{
		session:   session,
		transport: transport,
		log:       log,
		language:  DefaultLanguage,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Call posts params to endpointPath on the session's server and returns the
// raw result. It fails fast with ErrNotAuthenticated when there is no session.
func (c *Client) Call(ctx context.Context, endpointPath string, params interface{}) (json.RawMessage, error) {
	model, method := callLabels(endpointPath, params)

	if !c.session.IsAuthenticated() {
		recordCall(model, method, KindNotAuthenticated.String(), 0)

		return nil, notAuthenticated()
	}

	start := time.Now()

	resp, err := c.transport.Call(ctx, c.session.ServerAddress()+endpointPath, params, c.session.Token())
	if err != nil {
		recordCall(model, method, KindTransport.String(), time.Since(start))
		c.log.Warn("rpc - %s %s.%s: %v", endpointPath, model, method, err)

		return nil, &Error{Kind: KindTransport, Err: err}
	}

	if resp.Error != nil {
		recordCall(model, method, KindRemote.String(), time.Since(start))

		rpcErr := &Error{Kind: KindRemote, Message: resp.Error.Text()}
		if resp.Error.Data != nil {
			rpcErr.Name = resp.Error.Data.Name
		}

		c.log.Warn("rpc - %s %s.%s: remote error: %s", endpointPath, model, method, rpcErr.Message)

		return nil, rpcErr
	}

	recordCall(model, method, outcomeOK, time.Since(start))

	return resp.Result, nil
}

func callLabels(endpointPath string, params interface{}) (model, method string) {
	switch p := params.(type) {
	case KwParams:
		return p.Model, p.Method
	case *KwParams:
		return p.Model, p.Method
	default:
		return "", endpointPath
	}
}

// CallKw invokes method on model with positional and keyword arguments.
func (c *Client) CallKw(ctx context.Context, model, method string, args []interface{}, kwargs map[string]interface{}) (json.RawMessage, error) {
	if args == nil {
		args = []interface{}{}
	}

	if kwargs == nil {
		kwargs = map[string]interface{}{}
	}

	return c.Call(ctx, CallKwPath, KwParams{
		Model:  model,
		Method: method,
		Args:   args,
		Kwargs: kwargs,
	})
}
