// Package text turns strings into planar glyph shapes.
//
// The pipeline is split into small pieces:
//
//   - Resolve: maps a font name or preset to a locator
//   - Fetcher: retrieves font bytes (http, embed: or file system)
//   - FontParser: pluggable parsing backend selected by data format
//   - Extractor: lays out text and groups glyph contours into Shapes
//
// # Example usage
//
//	ex := text.NewExtractor()
//	shapes, err := ex.Extract(ctx, text.Resolve("helvetiker_bold"), "Hello", 1)
//	if err != nil {
//	    var lerr *text.FontLoadError
//	    if errors.As(err, &lerr) {
//	        log.Printf("font %s unavailable: %v", lerr.Locator, lerr.Err)
//	    }
//	    return err
//	}
//
// # Font formats
//
// Two kinds of data are understood. three.js typeface JSON (as produced by
// facetype.js) is handled by the "typeface" parser. TrueType and OpenType
// files go to the best registered binary parser: "gotext" shapes lines with
// go-text/typesetting's HarfBuzz port, "ximage" uses golang.org/x/image's
// sfnt with kern-table pairs only. Parsers live in gpucontext registries and
// can be replaced:
//
//	text.RegisterParser(text.FormatBinary, "gotext", func() text.FontParser {
//	    return myParser{}
//	})
//
// # Coordinates
//
// Shapes use a Y-up frame with one em equal to the requested size. Outer
// contours are counter-clockwise and holes clockwise. Curves are flattened
// once, with the same number of segments per curve everywhere, so fills and
// outlines built from the same shapes coincide exactly.
package text
