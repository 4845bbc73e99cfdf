package keyframe_test

import (
	"context"
	"image"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelzoom/internal/fractal"
	"github.com/san-kum/mandelzoom/internal/keyframe"
)

var _ = Describe("Interpolation", func() {
	a := fractal.Viewport{Width: 80, Height: 60, MaxIter: 100, XCenter: -0.5, YCenter: 0, Scale: 1.5}
	b := fractal.Viewport{Width: 80, Height: 60, MaxIter: 200, XCenter: -0.7435, YCenter: 0.1313, Scale: 0.375}

	Describe("Lerp", func() {
		It("returns a at t=0 and b at t=1", func() {
			Expect(keyframe.Lerp(a, b, 0)).To(Equal(a))
			Expect(keyframe.Lerp(a, b, 1)).To(Equal(b))
		})

		It("interpolates scalars at the midpoint", func() {
			mid := keyframe.Lerp(a, b, 0.5)
			Expect(mid.XCenter).To(BeNumerically("~", (a.XCenter+b.XCenter)/2, 1e-12))
			Expect(mid.YCenter).To(BeNumerically("~", (a.YCenter+b.YCenter)/2, 1e-12))
			Expect(mid.Scale).To(BeNumerically("~", (a.Scale+b.Scale)/2, 1e-12))
			Expect(mid.MaxIter).To(Equal(150))
		})

		It("rounds the iteration bound to the nearest integer", func() {
			c := a
			c.MaxIter = 101
			Expect(keyframe.Lerp(a, c, 0.5).MaxIter).To(Equal(101))
		})

		It("keeps the pixel dimensions of the first endpoint", func() {
			mid := keyframe.Lerp(a, b, 0.25)
			Expect(mid.Width).To(Equal(a.Width))
			Expect(mid.Height).To(Equal(a.Height))
		})
	})

	Describe("Sequence", func() {
		path := keyframe.Path{{Viewport: a}, {Viewport: b}}

		It("emits 1 + (N-1)*(S+1) viewports", func() {
			threeKeys := keyframe.Path{{Viewport: a}, {Viewport: b}, {Viewport: a}}
			seq, err := keyframe.Sequence(threeKeys, 15)
			Expect(err).NotTo(HaveOccurred())
			Expect(seq).To(HaveLen(1 + 2*16))
		})

		It("starts and ends on the keyframes themselves", func() {
			seq, err := keyframe.Sequence(path, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(seq).To(HaveLen(7))
			Expect(seq[0]).To(Equal(a))
			Expect(seq[len(seq)-1]).To(Equal(b))
		})

		It("emits only the keyframes when steps is zero", func() {
			seq, err := keyframe.Sequence(path, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(seq).To(Equal([]fractal.Viewport{a, b}))
		})

		It("rejects paths with fewer than two keyframes", func() {
			_, err := keyframe.Sequence(keyframe.Path{{Viewport: a}}, 5)
			Expect(err).To(MatchError(keyframe.ErrShortPath))
		})

		It("marches t strictly between the endpoints", func() {
			seq, _ := keyframe.Sequence(path, 3)
			for i := 1; i < len(seq)-1; i++ {
				Expect(seq[i].Scale).To(BeNumerically("<", seq[i-1].Scale))
			}
		})
	})

	Describe("Frames", func() {
		path := keyframe.Path{{Viewport: a}, {Viewport: b}}

		It("renders one frame per sequence viewport", func() {
			var rendered []fractal.Viewport
			in := keyframe.NewInterpolator(4)
			in.Render = func(v fractal.Viewport) (*image.RGBA, error) {
				rendered = append(rendered, v)
				return image.NewRGBA(image.Rect(0, 0, v.Width, v.Height)), nil
			}

			frames, err := in.Frames(context.Background(), path)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(6))
			Expect(rendered[0]).To(Equal(a))
			Expect(rendered[len(rendered)-1]).To(Equal(b))
		})

		It("renders real frames with the default renderer", func() {
			small := keyframe.Path{
				{Viewport: fractal.Viewport{Width: 8, Height: 6, MaxIter: 30, XCenter: -0.5, Scale: 1.5}},
				{Viewport: fractal.Viewport{Width: 8, Height: 6, MaxIter: 40, XCenter: -0.6, Scale: 0.4}},
			}
			frames, err := keyframe.NewInterpolator(2).Frames(context.Background(), small)
			Expect(err).NotTo(HaveOccurred())
			Expect(frames).To(HaveLen(4))
			for _, f := range frames {
				Expect(f.Bounds().Dx()).To(Equal(8))
				Expect(f.Bounds().Dy()).To(Equal(6))
			}
		})

		It("stops between frames when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := keyframe.NewInterpolator(2).Frames(ctx, path)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
