package client

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/beanbocchi/courier/internal/model"
	"github.com/beanbocchi/courier/pkg/response"
)

func waitResult(t *testing.T, call *Call) (response.Object, error) {
	t.Helper()
	select {
	case <-call.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("call did not resolve in time")
	}
	return call.Result()
}

func TestInvalidURL(t *testing.T) {
	c := New()

	dispatch := map[string]func(string) *Call{
		"SendPost":    func(u string) *Call { return c.SendPost(u, nil) },
		"SendGet":     func(u string) *Call { return c.SendGet(u, nil) },
		"UploadImage": func(u string) *Call { return c.UploadImage(u, "testdata/nope.png", nil) },
	}

	for name, fn := range dispatch {
		t.Run(name, func(t *testing.T) {
			for _, raw := range []string{"not a url", "relative/path", "http://", "://missing"} {
				call := fn(raw)

				// The call must already be terminal: no network dispatch ever
				// happens for an unparsable URL.
				select {
				case <-call.Done():
				default:
					t.Fatalf("call for %q not terminal immediately", raw)
				}

				var gotErr error
				call.Notify(Callbacks{
					OnSuccess: func(response.Object) { t.Errorf("unexpected success for %q", raw) },
					OnError:   func(err error) { gotErr = err },
				})

				// Notify on a terminal call delivers synchronously, so gotErr
				// is set by the time Notify returns.
				var merr model.Error
				if !errors.As(gotErr, &merr) {
					t.Fatalf("expected model.Error for %q, got %v", raw, gotErr)
				}
				if merr.Domain() != "Invalid URL" || merr.Code() != 404 {
					t.Errorf("expected Invalid URL/404 for %q, got %s/%d", raw, merr.Domain(), merr.Code())
				}
			}
		})
	}
}

func TestSendPost(t *testing.T) {
	t.Run("success with params", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
				t.Errorf("unexpected content type: %q", ct)
			}
			body, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(body), "a=1") {
				t.Errorf("expected form body with a=1, got %q", body)
			}
			w.Write([]byte(`{"a":1}`))
		}))
		defer srv.Close()

		result, err := waitResult(t, New().SendPost(srv.URL, Params{"a": 1}))
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if got, ok := result["a"].(float64); !ok || got != 1 {
			t.Errorf("expected a=1, got %v", result["a"])
		}
	})

	t.Run("no params means no body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if len(body) != 0 {
				t.Errorf("expected empty body, got %q", body)
			}
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		if _, err := waitResult(t, New().SendPost(srv.URL, nil)); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})

	t.Run("non-object body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[1,2,3]`))
		}))
		defer srv.Close()

		var successes, failures int
		call := New().SendPost(srv.URL, nil)
		done := make(chan struct{})
		call.Notify(Callbacks{
			OnSuccess: func(response.Object) { successes++; close(done) },
			OnError:   func(error) { failures++; close(done) },
		})
		<-done

		if successes != 0 || failures != 1 {
			t.Fatalf("expected exactly one error callback, got %d successes / %d errors", successes, failures)
		}
		_, err := call.Result()
		var merr model.Error
		if !errors.As(err, &merr) || merr.Code() != 1 {
			t.Errorf("expected illegitimate-response error, got %v", err)
		}
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := waitResult(t, New().SendPost(srv.URL, nil))
		if err == nil || !strings.Contains(err.Error(), "status code: 500") {
			t.Errorf("expected status error, got %v", err)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		_, err := waitResult(t, New().SendPost(srv.URL, nil))
		if err == nil {
			t.Fatal("expected transport error")
		}
		var merr model.Error
		if errors.As(err, &merr) {
			t.Errorf("transport failures must stay opaque, got facade error %v", merr)
		}
	})
}

func TestSendGet(t *testing.T) {
	t.Run("params go to the query string", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET, got %s", r.Method)
			}
			if got := r.URL.Query().Get("q"); got != "hello" {
				t.Errorf("expected q=hello in query, got %q", got)
			}
			if got := r.URL.Query().Get("n"); got != "3" {
				t.Errorf("expected n=3 in query, got %q", got)
			}
			body, _ := io.ReadAll(r.Body)
			if len(body) != 0 {
				t.Errorf("GET must not carry a body, got %q", body)
			}
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		result, err := waitResult(t, New().SendGet(srv.URL, Params{"q": "hello", "n": 3}))
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if result["ok"] != true {
			t.Errorf("expected ok=true, got %v", result["ok"])
		}
	})

	t.Run("existing query is preserved", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("keep"); got != "yes" {
				t.Errorf("existing query param lost, got %q", got)
			}
			if got := r.URL.Query().Get("extra"); got != "1" {
				t.Errorf("added query param missing, got %q", got)
			}
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		if _, err := waitResult(t, New().SendGet(srv.URL+"?keep=yes", Params{"extra": 1})); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	})
}

func TestConcurrentCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	const n = 25
	c := New()

	var terminal atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		call := c.SendGet(srv.URL, Params{"i": i})
		call.Notify(Callbacks{
			OnSuccess: func(response.Object) { terminal.Add(1); wg.Done() },
			OnError:   func(error) { terminal.Add(1); wg.Done() },
		})
	}
	wg.Wait()

	if got := terminal.Load(); got != n {
		t.Errorf("expected %d terminal callbacks, got %d", n, got)
	}
}
