package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/imagebuf"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene ID: a built-in name or "file:<name>"
	Width   int    // Image width
	Height  int    // Image height
	Samples int    // Samples per axis; 0 keeps the scene's setting
	Depth   int    // Maximum reflection depth; 0 keeps the scene's setting
	Jitter  bool   // Jittered sub-pixel sampling
	Count   int    // Shapes for "random", pairs for "dna"
	Seed    int64  // Seed for generated scenes and jitter
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, status, err := s.buildScene(req.Scene, scene.Options{
		Width:  req.Width,
		Height: req.Height,
		Count:  req.Count,
		Seed:   req.Seed,
	})
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	buf, err := imagebuf.New(sceneObj.Width, sceneObj.Height, sceneObj.Background)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rend := renderer.NewRenderer(sceneObj, 0)
	rend.SetSamplingConfig(renderer.MergeSamplingConfig(rend.GetSamplingConfig(), renderer.SamplingConfig{
		SamplesPerAxis: req.Samples,
		MaxDepth:       req.Depth,
		Jitter:         req.Jitter,
		Seed:           req.Seed,
	}))
	stats := rend.Render(buf)
	core.Logger().Info("render complete", "scene", req.Scene, "stats", stats.String())

	var body bytes.Buffer
	if err := buf.Encode(&body, imagebuf.FormatPNG); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode image: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(body.Bytes())
}

// buildScene resolves and builds a scene, mapping failures to HTTP statuses
func (s *Server) buildScene(id string, opts scene.Options) (*scene.Scene, int, error) {
	// Only IDs reach the resolver; arbitrary paths stay CLI-only
	if strings.ContainsAny(id, `/\`) || strings.EqualFold(filepath.Ext(id), ".json") {
		return nil, http.StatusNotFound, fmt.Errorf("%q: %w", id, core.ErrUnknownScene)
	}

	opts.ScenesDir = s.scenesDir
	src, err := scene.Resolve(id, opts)
	if err != nil {
		if errors.Is(err, core.ErrUnknownScene) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusBadRequest, err
	}

	sceneObj, err := src.Build()
	if err != nil {
		return nil, http.StatusUnprocessableEntity, err
	}
	if err := sceneObj.Validate(); err != nil {
		return nil, http.StatusUnprocessableEntity, err
	}
	return sceneObj, http.StatusOK, nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 225, 1, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 0, 1, 16); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, 1, 50); err != nil {
		return nil, err
	}
	if req.Count, err = parseIntParam(query, "count", 0, 1, 1000); err != nil {
		return nil, err
	}
	if req.Jitter, err = parseBoolParam(query, "jitter"); err != nil {
		return nil, err
	}
	if seed := query.Get("seed"); seed != "" {
		if req.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return nil, errors.New("invalid seed: " + seed)
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Samples > 8 {
		core.Logger().Warn("large image with high samples may render slowly",
			"width", req.Width, "height", req.Height, "samples", req.Samples)
	}
	return req, nil
}
