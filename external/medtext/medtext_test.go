package medtext_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/external/medtext"
	"github.com/vitalio/triage-api/schema"
)

func TestExtractEntities(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entities", r.URL.Path)

		type resp struct {
			Status   string                    `json:"status"`
			Entities []schema.EntityAnnotation `json:"entities"`
		}

		b, _ := json.Marshal(resp{
			Status: "ok",
			Entities: []schema.EntityAnnotation{
				{Text: "hypertension", Category: "MEDICAL_CONDITION", Confidence: 0.91},
			},
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	m := medtext.New(ts.URL, nil)
	entities, err := m.ExtractEntities(context.Background(), "Hypertension")
	assert.Nil(t, err, "wrong ExtractEntities")
	assert.Len(t, entities, 1)
	assert.Equal(t, "hypertension", entities[0].Text)
	assert.Equal(t, 0.91, entities[0].Confidence)
}

func TestAnswer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/answer", r.URL.Path)

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "What are the main health risks based on this data?", body["question"])

		type resp struct {
			Status string        `json:"status"`
			Answer schema.Answer `json:"answer"`
		}

		b, _ := json.Marshal(resp{
			Status: "ok",
			Answer: schema.Answer{Text: "elevated cardiovascular strain", Confidence: 0.45},
		})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	m := medtext.New(ts.URL, nil)
	answer, err := m.Answer(context.Background(), "What are the main health risks based on this data?", "ctx")
	assert.Nil(t, err, "wrong Answer")
	assert.Equal(t, "elevated cardiovascular strain", answer.Text)
	assert.Equal(t, 0.45, answer.Confidence)
}

func TestAdjustment(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","factor":1.05}`))
	}))
	defer ts.Close()

	m := medtext.New(ts.URL, nil)
	factor, err := m.Adjustment(context.Background(), "ctx")
	assert.Nil(t, err, "wrong Adjustment")
	assert.Equal(t, 1.05, factor)
}

func TestStatusNotOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error"}`))
	}))
	defer ts.Close()

	m := medtext.New(ts.URL, nil)
	_, err := m.ExtractEntities(context.Background(), "text")
	assert.Error(t, err, "non-ok status must surface as error")
}

func TestEmptyEndpoint(t *testing.T) {
	m := medtext.New("", nil)
	_, err := m.Answer(context.Background(), "q", "c")
	assert.Error(t, err)
}
