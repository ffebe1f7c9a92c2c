// Copyright 2016 The Gohgl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Style holds the line style of a plotted curve
type Style struct {
	Label  string      // legend entry
	Color  color.Color // line colour
	Width  vg.Length   // line width
	Dashes []vg.Length // dash pattern; nil means solid
}

// styles of the grade lines and elevation
var (
	StyleHGL = Style{Label: "HGL", Color: color.RGBA{R: 0x03, G: 0x97, B: 0xdc, A: 0xff}, Width: vg.Points(1.5)}
	StyleEGL = Style{Label: "EGL", Color: color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}, Width: vg.Points(1.5), Dashes: []vg.Length{vg.Points(6), vg.Points(3)}}
	StyleZ   = Style{Label: "elevation", Color: color.Gray{Y: 0x40}, Width: vg.Points(1)}
)

// figure size
var (
	FigWidth  = 8 * vg.Inch
	FigHeight = 5 * vg.Inch
)

// PlotHglEgl plots the hydraulic grade line, energy grade line and elevation along a pipe.
// The format is given by the extension of filename; e.g. .png, .svg, .pdf
func PlotHglEgl(x, hgl, egl, z []float64, title, filename string) (err error) {
	p, err := NewHglEglPlot(x, hgl, egl, z, title)
	if err != nil {
		return
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return
		}
	}
	return p.Save(FigWidth, FigHeight, filename)
}

// NewHglEglPlot builds the plot of grade lines and elevation without saving it
func NewHglEglPlot(x, hgl, egl, z []float64, title string) (p *plot.Plot, err error) {
	n := len(x)
	if n < 2 || len(hgl) != n || len(egl) != n || len(z) != n {
		return nil, chk.Err("cannot plot grade lines: arrays must have the same length >= 2; len(x)=%d len(HGL)=%d len(EGL)=%d len(z)=%d", n, len(hgl), len(egl), len(z))
	}
	p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x [m]"
	p.Y.Label.Text = "head / elevation [m]"
	p.Add(plotter.NewGrid())
	for _, c := range []struct {
		y     []float64
		style Style
	}{
		{z, StyleZ},
		{hgl, StyleHGL},
		{egl, StyleEGL},
	} {
		l, e := plotter.NewLine(xys(x, c.y))
		if e != nil {
			return nil, chk.Err("cannot plot %s:\n%v", c.style.Label, e)
		}
		l.LineStyle.Color = c.style.Color
		l.LineStyle.Width = c.style.Width
		l.LineStyle.Dashes = c.style.Dashes
		p.Add(l)
		p.Legend.Add(c.style.Label, l)
	}
	p.Legend.Top = true
	return
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
