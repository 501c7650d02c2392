// Package filters provides the PDF stream compression filter used by the
// document writer.
//
// FlateEncode compresses stream data with zlib:
//
//	encoded, err := filters.FlateEncode(data, nil)
//
// Image streams compress better with the PNG Up predictor. The same Params
// must then be written to the stream's DecodeParms dictionary:
//
//	params := filters.Params{
//	    "Predictor": filters.PredictorPNGUp,
//	    "Columns":   width,
//	    "Colors":    3,
//	}
//	encoded, err := filters.FlateEncode(pixels, params)
//
// FlateDecode reverses either form and is used to verify written streams.
package filters
