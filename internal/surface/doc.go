package surface

// Package surface provides render.Surface implementations that do not need a
// window: Image rasterizes with the Go fonts from golang.org/x/image, Cells
// lays text out on a terminal character grid.
