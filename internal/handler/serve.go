package handler

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/mateconpizza/mzd/internal/platform"
	"github.com/mateconpizza/mzd/internal/provision"
	"github.com/mateconpizza/mzd/internal/sidecar"
	"github.com/mateconpizza/mzd/internal/sys"
)

var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrInvalidParams = errors.New("invalid params")
)

// maxRequestSize bounds a single request line.
const maxRequestSize = 10 * 1024 * 1024

// request loop methods.
const (
	MethodWriteManifest       = "write_manifest"
	MethodWriteAllManifests   = "write_all_manifests"
	MethodWriteCustomManifest = "write_custom_manifest"
	MethodBrowserManifests    = "get_browser_manifests"
	MethodInit                = "init"
	MethodQuery               = "mozeidon"
	MethodWrite               = "mozeidon_write"
	MethodHomeDir             = "get_user_home_dir"
	MethodWmctrl              = "is_wmctrl_installed"
	MethodCustomManifests     = "custom_manifests"
)

// Request is one line read by Serve.
type Request struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response is written once per request.
type Response struct {
	ID     json.RawMessage `json:"id"`
	Result any             `json:"result"`
	Error  string          `json:"error,omitempty"`
}

type (
	browserParams struct {
		Browser string `json:"browser"`
	}

	customParams struct {
		RelativeDir string `json:"relative_dir"`
		Content     string `json:"content"`
		Browser     string `json:"browser"`
	}

	manifestsParams struct {
		CustomManifests []*provision.CustomManifest `json:"custom_manifests"`
	}

	queryParams struct {
		Context string `json:"context"`
		Args    string `json:"args"`
	}

	writeParams struct {
		Args []string `json:"args"`
	}
)

type server struct {
	app *App
	mu  sync.Mutex
	enc *json.Encoder
}

// Serve reads JSON requests, one per line, from r and writes one response
// line per request to w. Requests run concurrently, at most maxRequests at a
// time, so responses may be written out of order.
func Serve(ctx context.Context, app *App, r io.Reader, w io.Writer, maxRequests int) error {
	s := &server{app: app, enc: json.NewEncoder(w)}
	sem := semaphore.NewWeighted(int64(max(maxRequests, 1)))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxRequestSize)

	var wg sync.WaitGroup
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			slog.Warn("invalid request", "error", err)
			s.reply(&Response{Error: "parse error: " + err.Error()})
			continue
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			s.handle(ctx, &req)
		}()
	}
	wg.Wait()

	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}

	return ctx.Err()
}

func (s *server) handle(ctx context.Context, req *Request) {
	slog.Debug("request", "id", string(req.ID), "method", req.Method)
	res, err := s.app.Dispatch(ctx, req.Method, req.Params)
	resp := &Response{ID: req.ID, Result: res}
	if err != nil {
		slog.Error("request failed", "method", req.Method, "error", err)
		resp.Result = nil
		resp.Error = err.Error()
	}
	s.reply(resp)
}

func (s *server) reply(resp *Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(resp); err != nil {
		slog.Error("writing response", "error", err)
	}
}

// Dispatch runs method with its JSON params.
func (a *App) Dispatch(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case MethodWriteManifest:
		var p browserParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}

		return a.Store.Write(a.OS, platform.Lookup(p.Browser))

	case MethodWriteAllManifests:
		return provision.WriteAll(a.Store, a.OS)

	case MethodWriteCustomManifest:
		var p customParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}

		return a.Store.WriteCustom(a.OS, p.RelativeDir, p.Content, platform.Lookup(p.Browser))

	case MethodBrowserManifests:
		var p manifestsParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}

		return a.BrowserManifests(ctx, p.CustomManifests)

	case MethodInit:
		return a.Session.Init()

	case MethodQuery:
		var p queryParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		out, err := a.Bridge.Query(ctx, sidecar.Context(p.Context), p.Args)
		if err != nil {
			return nil, err
		}

		return json.RawMessage(out), nil

	case MethodWrite:
		var p writeParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}

		return nil, a.Bridge.Write(ctx, p.Args)

	case MethodHomeDir:
		return sys.HomeDir()

	case MethodWmctrl:
		return sys.WmctrlInstalled(), nil

	case MethodCustomManifests:
		cs, err := a.CustomManifests(ctx)
		if err != nil {
			return nil, err
		}
		if cs == nil {
			cs = []*provision.CustomManifest{}
		}

		return cs, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

func decodeParams(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	return nil
}
