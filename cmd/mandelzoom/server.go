package main

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/mandelzoom/internal/config"
	"github.com/san-kum/mandelzoom/internal/export"
	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/palette"
)

// Request clamps, sized to keep a single render from monopolizing the
// process.
const (
	clampMinSize = 50
	clampMaxSize = 2000
	clampMinIter = 10
	clampMaxIter = 20000
)

func runServe(cmd *cobra.Command, args []string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", renderHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv.ListenAndServe()
}

// renderHandler serves GET /render?width=&height=&max_iter=&x_center=&
// y_center=&scale= as a PNG. Missing parameters fall back to the defaults;
// out-of-range dimensions and bounds are clamped rather than rejected.
func renderHandler(w http.ResponseWriter, r *http.Request) {
	v, err := parseViewport(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	div, err := fractal.EscapeTime(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	img, err := palette.Map(div, v.MaxIter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	export.DrawScaleBracket(img, v.Scale)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write response: %v", err)
		return
	}
	log.Printf("rendered %dx%d @ (%g, %g) scale %g in %v",
		v.Width, v.Height, v.XCenter, v.YCenter, v.Scale, time.Since(start).Round(time.Millisecond))
}

func parseViewport(r *http.Request) (fractal.Viewport, error) {
	q := r.URL.Query()

	width, err := intParam(q.Get("width"), config.DefaultWidth)
	if err != nil {
		return fractal.Viewport{}, fmt.Errorf("width: %w", err)
	}
	height, err := intParam(q.Get("height"), config.DefaultHeight)
	if err != nil {
		return fractal.Viewport{}, fmt.Errorf("height: %w", err)
	}
	iters, err := intParam(q.Get("max_iter"), config.DefaultMaxIter)
	if err != nil {
		return fractal.Viewport{}, fmt.Errorf("max_iter: %w", err)
	}
	xc, err := floatParam(q.Get("x_center"), config.DefaultXCenter)
	if err != nil {
		return fractal.Viewport{}, fmt.Errorf("x_center: %w", err)
	}
	yc, err := floatParam(q.Get("y_center"), config.DefaultYCenter)
	if err != nil {
		return fractal.Viewport{}, fmt.Errorf("y_center: %w", err)
	}
	sc, err := floatParam(q.Get("scale"), config.DefaultScale)
	if err != nil {
		return fractal.Viewport{}, fmt.Errorf("scale: %w", err)
	}

	v := fractal.Viewport{
		Width:   clamp(width, clampMinSize, clampMaxSize),
		Height:  clamp(height, clampMinSize, clampMaxSize),
		MaxIter: clamp(iters, clampMinIter, clampMaxIter),
		XCenter: xc,
		YCenter: yc,
		Scale:   sc,
	}
	if err := v.Validate(); err != nil {
		return fractal.Viewport{}, err
	}
	return v, nil
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func floatParam(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
