package http

import "fmt"

// RequestMethod is the HTTP method of a built request.
type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PATCH  RequestMethod = "PATCH"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// Request is a fluent builder over Client. Configure it with the With*
// methods and call Execute.
type Request struct {
	client      *Client
	method      RequestMethod
	path        string
	queryParams map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
	backoff     *BackoffConfig
}

// NewHttpClientRequest creates a request bound to the given client,
// defaulting to GET /.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		client: client,
		method: GET,
		path:   "/",
	}
}

// WithClient rebinds the request to another client.
func (r *Request) WithClient(client *Client) *Request {
	r.client = client
	return r
}

// WithMethod sets the HTTP method.
func (r *Request) WithMethod(method RequestMethod) *Request {
	r.method = method
	return r
}

// WithPath sets the path relative to the client's base URL.
func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

// WithQueryParams sets the query string parameters.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.queryParams = params
	return r
}

// WithHeaders sets additional request headers.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.headers = headers
	return r
}

// WithBody sets the request body, serialized as JSON.
func (r *Request) WithBody(body any) *Request {
	r.body = body
	return r
}

// WithSuccessResp sets the target for decoding 2xx response bodies.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.successResp = successResp
	return r
}

// WithErrorResp sets the target for decoding non-2xx response bodies.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.errorResp = errorResp
	return r
}

// WithBackoff overrides the client's default retry configuration.
func (r *Request) WithBackoff(backoff *BackoffConfig) *Request {
	r.backoff = backoff
	return r
}

// Execute sends the request. It returns the decoded success response, the
// decoded error response, the HTTP status code and any error.
func (r *Request) Execute() (any, any, int, error) {
	if r.client == nil {
		return nil, nil, 0, fmt.Errorf("client is required")
	}
	if r.method == "" {
		return nil, nil, 0, fmt.Errorf("method is required")
	}
	if r.path == "" {
		return nil, nil, 0, fmt.Errorf("path is required")
	}

	return r.client.doRequestWithBackoff(
		string(r.method),
		r.path,
		r.queryParams,
		r.headers,
		r.body,
		r.successResp,
		r.errorResp,
		r.backoff,
	)
}
