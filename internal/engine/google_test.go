package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleClient_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.FormValue("sl"); got != "ta" {
			t.Errorf("sl = %q, want ta", got)
		}
		if got := r.FormValue("tl"); got != "en" {
			t.Errorf("tl = %q, want en", got)
		}
		if got := r.FormValue("q"); got != "வணக்கம் உலகம்" {
			t.Errorf("q = %q", got)
		}
		// Two segments, the way the endpoint splits long texts.
		w.Write([]byte(`[[["Hello ","வணக்கம் ",null,null],["world","உலகம்",null,null]],null,"ta"]`))
	}))
	defer srv.Close()

	c := NewGoogleClient(WithGoogleEndpoint(srv.URL))
	got, err := c.Translate(context.Background(), "வணக்கம் உலகம்", "ta", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hello world" {
		t.Errorf("Translate = %q, want %q", got, "Hello world")
	}
}

func TestGoogleClient_TranslateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGoogleClient(WithGoogleEndpoint(srv.URL))
	_, err := c.Translate(context.Background(), "text", "ta", "en")
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *apiError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *apiError", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
}

func TestDecodeGoogleResponse_BadPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>error</html>"},
		{"empty array", "[]"},
		{"wrong shape", `["oops"]`},
		{"no segments", `[[]]`},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeGoogleResponse([]byte(tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
