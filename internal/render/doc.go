package render

// Package render lays a parsed markdown.Document out inside a fixed-width
// rectangle and draws it onto a Surface. The same walk serves both measuring
// (content height only) and painting (glyphs plus link hit-rects).
