package adapters

import (
	"io"
	"net/http"

	"github.com/stinakaraba/voiceforge-tts/application/ports/outbound"
)

// FetchedResponse is a fully read upstream response. Callers decide what each
// status means; the fetcher only errors on transport failures.
type FetchedResponse struct {
	StatusCode int
	Body       []byte
}

type ContentFetcher interface {
	FetchContent(req *http.Request) (FetchedResponse, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

// NewContentFetcher wraps client with request/response logging and a single
// retry on transport errors. Retries only happen when the request body can be
// replayed, and never on an HTTP status — the upstream call stays
// at-most-once on every non-transport path.
func NewContentFetcher(logger outbound.LoggerPort, client *http.Client) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: client,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) (FetchedResponse, error) {
	res, err := c.client.Do(req)
	if err != nil && req.GetBody != nil {
		c.logger.WarnWithFields("HTTP request failed, retrying once", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
			"error":  err.Error(),
		})
		retryReq := req.Clone(req.Context())
		retryReq.Body, err = req.GetBody()
		if err != nil {
			return FetchedResponse{}, err
		}
		res, err = c.client.Do(retryReq)
	}
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return FetchedResponse{}, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.String(),
			})
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return FetchedResponse{}, err
	}

	return FetchedResponse{StatusCode: res.StatusCode, Body: payload}, nil
}
