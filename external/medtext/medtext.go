package medtext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/vitalio/triage-api/schema"
)

const (
	defaultTimeout = 10 * time.Second
	statusOK       = "ok"
)

var (
	ErrEmptyEndpoint  = fmt.Errorf("empty analyzer endpoint")
	errResponseStatus = fmt.Errorf("response status not ok")
)

// MedText is the medical text analyzer consumed by the pipeline. All
// methods may fail; callers treat absence of a signal as "no signal",
// never as fatal.
type MedText interface {
	// ExtractEntities returns medical concept annotations found in text.
	ExtractEntities(ctx context.Context, text string) ([]schema.EntityAnnotation, error)

	// Answer runs question answering over the supplied passage.
	Answer(ctx context.Context, question, passage string) (schema.Answer, error)

	// Adjustment returns the semantic score-adjustment factor derived
	// from the passage, expected in the range [0, 1.2].
	Adjustment(ctx context.Context, passage string) (float64, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

// New returns a MedText backed by an analyzer service at endpoint.
func New(endpoint string, httpClient *http.Client) MedText {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

type entitiesResponse struct {
	Status   string                    `json:"status"`
	Entities []schema.EntityAnnotation `json:"entities"`
}

type answerResponse struct {
	Status string        `json:"status"`
	Answer schema.Answer `json:"answer"`
}

type adjustmentResponse struct {
	Status string  `json:"status"`
	Factor float64 `json:"factor"`
}

func (c *client) ExtractEntities(ctx context.Context, text string) ([]schema.EntityAnnotation, error) {
	var r entitiesResponse
	if err := c.post(ctx, "/entities", map[string]string{"text": text}, &r); err != nil {
		return nil, err
	}
	if r.Status != statusOK {
		return nil, errResponseStatus
	}

	return r.Entities, nil
}

func (c *client) Answer(ctx context.Context, question, passage string) (schema.Answer, error) {
	var r answerResponse
	body := map[string]string{
		"question": question,
		"context":  passage,
	}
	if err := c.post(ctx, "/answer", body, &r); err != nil {
		return schema.Answer{}, err
	}
	if r.Status != statusOK {
		return schema.Answer{}, errResponseStatus
	}

	return r.Answer, nil
}

func (c *client) Adjustment(ctx context.Context, passage string) (float64, error) {
	var r adjustmentResponse
	if err := c.post(ctx, "/adjustment", map[string]string{"context": passage}, &r); err != nil {
		return 0, err
	}
	if r.Status != statusOK {
		return 0, errResponseStatus
	}

	return r.Factor, nil
}

func (c *client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	if c.endpoint == "" {
		return ErrEmptyEndpoint
	}

	payload, err := json.Marshal(body)
	if nil != err {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(payload))
	if nil != err {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return err
	}

	return json.Unmarshal(d, out)
}
