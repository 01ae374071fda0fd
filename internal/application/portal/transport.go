package portal

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"fibra/internal/shared/errors"
	"fibra/internal/shared/logger"
)

// DefaultTimeout bounds every transport call. No response within this window
// aborts the in-flight request.
const DefaultTimeout = 8 * time.Second

const (
	timeoutMessage     = "El servidor tardó demasiado en responder. Verifique que el backend esté funcionando y sea accesible."
	serverErrorMessage = "Error en la respuesta del servidor"
)

// Transport performs one HTTP call against the portal backend with bounded
// latency and a normalized outcome: success data, or exactly one of the
// timeout/network/http_status/unknown error kinds.
type Transport struct {
	baseURL    string
	timeout    time.Duration
	session    *Session
	httpClient *http.Client
	log        *slog.Logger
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *Transport) {
		t.httpClient = c
	}
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) TransportOption {
	return func(t *Transport) {
		t.timeout = d
	}
}

// NewTransport creates a transport bound to one base URL. The session's auth
// header is attached to every call that has a token.
func NewTransport(baseURL string, session *Session, opts ...TransportOption) *Transport {
	t := &Transport{
		baseURL:    baseURL,
		timeout:    DefaultTimeout,
		session:    session,
		httpClient: &http.Client{},
		log:        logger.WithComponent("transport"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get performs a GET request and decodes the JSON response into out.
func (t *Transport) Get(ctx context.Context, path string, out any) error {
	return t.Do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (t *Transport) Post(ctx context.Context, path string, body, out any) error {
	return t.Do(ctx, http.MethodPost, path, body, out)
}

// Do performs a request without extra headers.
func (t *Transport) Do(ctx context.Context, method, path string, body, out any) error {
	return t.DoWithHeaders(ctx, method, path, nil, body, out)
}

// DoWithHeaders performs one call. Caller headers are merged in but cannot
// override Content-Type or the session's Authorization header. A 2xx response
// is decoded into out; 204 leaves out untouched. Non-2xx responses become
// http_status errors carrying the server's message field when it has one.
func (t *Transport) DoWithHeaders(ctx context.Context, method, path string, extra http.Header, body, out any) error {
	fullURL := t.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.NewUnknownError("no se pudo preparar la solicitud", err.Error())
		}
		reqBody = bytes.NewReader(data)
	}

	// The timeout is measured from call start; cancel releases the timer on
	// every exit path.
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return errors.NewUnknownError("no se pudo preparar la solicitud", err.Error())
	}

	req.Header.Set("Content-Type", "application/json")
	for key, values := range extra {
		canonical := http.CanonicalHeaderKey(key)
		if canonical == "Authorization" || canonical == "Content-Type" {
			continue
		}
		for _, v := range values {
			req.Header.Add(canonical, v)
		}
	}
	for key, values := range t.session.AuthHeader() {
		req.Header[key] = values
	}

	t.log.Debug("requesting", "method", method, "url", fullURL)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return t.classifyError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewUnknownError("no se pudo leer la respuesta", err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := serverErrorMessage
		var errBody struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(respBody, &errBody); jsonErr == nil && errBody.Message != "" {
			message = errBody.Message
		}
		t.log.Warn("request failed", "url", fullURL, "status", resp.StatusCode)
		return errors.NewHTTPStatusError(resp.StatusCode, message)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.NewUnknownError("no se pudo interpretar la respuesta", err.Error())
	}

	return nil
}

// classifyError normalizes a failed round trip into the error taxonomy.
func (t *Transport) classifyError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		t.log.Warn("request timed out", "base_url", t.baseURL)
		return errors.NewTimeoutError(timeoutMessage)
	}

	// A caller-initiated cancellation is not a transport failure.
	if stderrors.Is(err, context.Canceled) {
		return err
	}

	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		t.log.Warn("connection failed", "base_url", t.baseURL, "error", err)
		message := fmt.Sprintf("Error de Red. No se pudo conectar a %s. Verifique la URL y la configuración de CORS en su backend.", t.baseURL)
		return errors.NewNetworkError(message, urlErr.Err.Error())
	}

	return errors.NewUnknownError("error inesperado al conectar", err.Error())
}
