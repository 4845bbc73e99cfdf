package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandelzoom/internal/config"
	"github.com/san-kum/mandelzoom/internal/export"
	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/keyframe"
	"github.com/san-kum/mandelzoom/internal/palette"
	"github.com/san-kum/mandelzoom/internal/storage"
	"github.com/san-kum/mandelzoom/internal/tui"
	"github.com/san-kum/mandelzoom/internal/viz"
)

var (
	dataDir    string
	width      int
	height     int
	maxIter    int
	xCenter    float64
	yCenter    float64
	scale      float64
	preset     string
	configFile string
	saveConfig string
	output     string
	overlay    bool
	preview    bool
	prefix     string
	steps      int
	fps        int
	port       int
	bins       int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelzoom",
		Short: "mandelbrot explorer and zoom animator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive zoom session when no command given
			return runZoom(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mandelzoom", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a single frame to PNG",
		RunE:  runRender,
	}
	addViewportFlags(renderCmd)
	renderCmd.Flags().StringVar(&output, "output", "mandelbrot.png", "output file")
	renderCmd.Flags().BoolVar(&overlay, "overlay", false, "draw the scale bracket overlay")
	renderCmd.Flags().BoolVar(&preview, "preview", false, "print a braille preview to the terminal")

	zoomCmd := &cobra.Command{
		Use:   "zoom",
		Short: "interactive zoom session",
		RunE:  runZoom,
	}
	addViewportFlags(zoomCmd)
	zoomCmd.Flags().StringVar(&prefix, "prefix", "zoom", "session prefix")

	movieCmd := &cobra.Command{
		Use:   "movie",
		Short: "assemble a session's keyframes into an animated GIF",
		RunE:  runMovie,
	}
	movieCmd.Flags().StringVar(&prefix, "prefix", "zoom", "session prefix")
	movieCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width")
	movieCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height")
	movieCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "interpolation steps between keyframes")
	movieCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "playback frame rate")
	movieCmd.Flags().StringVar(&output, "output", "", "output file (default <session dir>/<prefix>.gif)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve rendered frames over http",
		RunE:  runServe,
	}
	serveCmd.Flags().IntVar(&port, "port", 8080, "listen port")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "iteration histogram for a viewport",
		RunE:  runStats,
	}
	addViewportFlags(statsCmd)
	statsCmd.Flags().IntVar(&bins, "bins", 40, "histogram bins")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named regions",
		RunE:  listPresets,
	}

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "list recorded zoom sessions",
		RunE:  listSessions,
	}

	rootCmd.AddCommand(renderCmd, zoomCmd, movieCmd, serveCmd, statsCmd, presetsCmd, sessionsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addViewportFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height")
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration bound")
	cmd.Flags().Float64Var(&xCenter, "x-center", config.DefaultXCenter, "center, real axis")
	cmd.Flags().Float64Var(&yCenter, "y-center", config.DefaultYCenter, "center, imaginary axis")
	cmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "half-width of the plotted region")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named region")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&saveConfig, "save-config", "", "write the resolved settings to a yaml file")
}

// resolveConfig merges preset, config file and flags, in rising precedence.
// With --save-config the merged result is also written out for reuse.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.XCenter = p.XCenter
		cfg.YCenter = p.YCenter
		cfg.Scale = p.Scale
		cfg.MaxIter = p.MaxIter
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("max-iter") {
		cfg.MaxIter = maxIter
	}
	if cmd.Flags().Changed("x-center") {
		cfg.XCenter = xCenter
	}
	if cmd.Flags().Changed("y-center") {
		cfg.YCenter = yCenter
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
	}
	return cfg, nil
}

func resolveViewport(cmd *cobra.Command) (fractal.Viewport, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fractal.Viewport{}, err
	}
	v := cfg.Viewport()
	if err := v.Validate(); err != nil {
		return fractal.Viewport{}, err
	}
	return v, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	v, err := resolveViewport(cmd)
	if err != nil {
		return err
	}

	div, err := fractal.EscapeTime(v)
	if err != nil {
		return err
	}
	img, err := palette.Map(div, v.MaxIter)
	if err != nil {
		return err
	}
	if overlay {
		export.DrawScaleBracket(img, v.Scale)
	}
	if err := export.WritePNG(output, img); err != nil {
		return err
	}

	if preview {
		fmt.Print(viz.Preview(div, v.MaxIter, 78).String())
	}
	fmt.Printf("saved %s (%dx%d, %d iterations)\n", output, v.Width, v.Height, v.MaxIter)
	return nil
}

func runZoom(cmd *cobra.Command, args []string) error {
	v, err := resolveViewport(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	path, err := tui.Run(v, st, prefix)
	if err != nil {
		return err
	}

	if len(path) < 2 {
		fmt.Printf("%d keyframe(s) recorded; need 2 or more for a movie\n", len(path))
		return nil
	}
	fmt.Printf("%d keyframes recorded; run 'mandelzoom movie --prefix %s' to assemble\n", len(path), prefix)
	return nil
}

func runMovie(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	path, err := st.LoadPath(prefix, width, height)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		fmt.Printf("no keyframes for prefix %q; skipping movie\n", prefix)
		return nil
	}
	if len(path) == 1 {
		return fmt.Errorf("prefix %q has a single keyframe; record at least two", prefix)
	}

	in := keyframe.NewInterpolator(steps)
	in.Render = func(v fractal.Viewport) (*image.RGBA, error) {
		img, err := keyframe.DefaultRenderer(v)
		if err != nil {
			return nil, err
		}
		export.DrawScaleBracket(img, v.Scale)
		return img, nil
	}

	fmt.Printf("rendering %d frames...\n", 1+(len(path)-1)*(steps+1))
	frames, err := in.Frames(context.Background(), path)
	if err != nil {
		return err
	}

	out := output
	if out == "" {
		out = filepath.Join(dataDir, prefix+"_frames", prefix+".gif")
	}
	if err := export.WriteGIF(out, frames, fps); err != nil {
		return err
	}
	fmt.Printf("movie saved to %s\n", out)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	v, err := resolveViewport(cmd)
	if err != nil {
		return err
	}

	div, err := fractal.EscapeTime(v)
	if err != nil {
		return err
	}

	counts := make([]float64, bins)
	interior := 0
	for _, row := range div {
		for _, d := range row {
			if d >= v.MaxIter {
				interior++
				continue
			}
			b := d * bins / v.MaxIter
			counts[b]++
		}
	}

	graph := asciigraph.Plot(counts,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("escape iteration histogram (%d bins, bound %d)", bins, v.MaxIter)),
	)
	fmt.Println(graph)

	total := v.Width * v.Height
	fmt.Printf("\ninterior pixels: %d/%d (%.1f%%)\n", interior, total, 100*float64(interior)/float64(total))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCENTER\tSCALE\tMAX ITER\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t(%g, %g)\t%g\t%d\t%s\n",
			p.Name, p.XCenter, p.YCenter, p.Scale, p.MaxIter, p.Description)
	}
	return w.Flush()
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	prefixes, err := st.ListSessions()
	if err != nil {
		return err
	}
	if len(prefixes) == 0 {
		fmt.Println("no sessions recorded; run 'mandelzoom zoom' to start one")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "PREFIX\tKEYFRAMES")
	for _, p := range prefixes {
		path, err := st.LoadPath(p, config.DefaultWidth, config.DefaultHeight)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", p, len(path))
	}
	return w.Flush()
}
