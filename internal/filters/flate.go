package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// Params represents decode parameters as they appear in a stream's DecodeParms
// dictionary. Common parameters are Predictor, Columns and Colors.
type Params map[string]interface{}

// PredictorPNGUp is the DecodeParms Predictor value for PNG "Up" prediction.
const PredictorPNGUp = 12

// FlateEncode compresses data with zlib at the best compression level.
// When params requests a PNG predictor, each row of Columns*Colors bytes is
// prefixed with the Up predictor byte and delta-encoded against the row above
// before compression.
func FlateEncode(data []byte, params Params) ([]byte, error) {
	if predictor := getIntParam(params, "Predictor", 1); predictor >= 10 && predictor <= 15 {
		rowSize := getIntParam(params, "Columns", 1) * getIntParam(params, "Colors", 1)
		encoded, err := encodePNGUp(data, rowSize)
		if err != nil {
			return nil, fmt.Errorf("predictor failed: %w", err)
		}
		data = encoded
	}

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// FlateDecode decompresses Flate (zlib/deflate) compressed data, undoing a PNG
// predictor when params names one.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	decompressed := buf.Bytes()

	predictor := getIntParam(params, "Predictor", 1)
	switch {
	case predictor == 1:
		return decompressed, nil
	case predictor >= 10 && predictor <= 15:
		colors := getIntParam(params, "Colors", 1)
		columns := getIntParam(params, "Columns", 1)
		return decodePNGRows(decompressed, colors, columns*colors)
	default:
		return nil, fmt.Errorf("unsupported predictor: %d", predictor)
	}
}

// encodePNGUp applies the PNG Up filter (type 2) to every row.
func encodePNGUp(data []byte, rowSize int) ([]byte, error) {
	if rowSize <= 0 || len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	rows := len(data) / rowSize
	out := make([]byte, 0, rows*(rowSize+1))
	for row := 0; row < rows; row++ {
		cur := data[row*rowSize : (row+1)*rowSize]
		out = append(out, 2)
		for i, b := range cur {
			var up byte
			if row > 0 {
				up = data[(row-1)*rowSize+i]
			}
			out = append(out, b-up)
		}
	}
	return out, nil
}

// decodePNGRows strips the per-row predictor byte and reverses the filter.
// Predictor types: 0=None, 1=Sub, 2=Up, 3=Average, 4=Paeth.
func decodePNGRows(data []byte, bytesPerPixel, rowLength int) ([]byte, error) {
	stride := rowLength + 1
	if rowLength <= 0 || len(data)%stride != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), stride)
	}

	numRows := len(data) / stride
	result := make([]byte, numRows*rowLength)

	for row := 0; row < numRows; row++ {
		predictor := data[row*stride]
		in := data[row*stride+1 : (row+1)*stride]
		out := result[row*rowLength : (row+1)*rowLength]

		var prev []byte
		if row > 0 {
			prev = result[(row-1)*rowLength : row*rowLength]
		}

		for i := range in {
			var left, up, upLeft byte
			if i >= bytesPerPixel {
				left = out[i-bytesPerPixel]
			}
			if prev != nil {
				up = prev[i]
				if i >= bytesPerPixel {
					upLeft = prev[i-bytesPerPixel]
				}
			}

			var predicted byte
			switch predictor {
			case 0:
			case 1:
				predicted = left
			case 2:
				predicted = up
			case 3:
				predicted = byte((int(left) + int(up)) / 2)
			case 4:
				predicted = paethPredictor(left, up, upLeft)
			default:
				return nil, fmt.Errorf("row %d: unknown PNG predictor: %d", row, predictor)
			}
			out[i] = in[i] + predicted
		}
	}

	return result, nil
}

// paethPredictor selects the neighbor (left, above, or upper-left) closest to
// a linear prediction.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

// getIntParam extracts an integer parameter from Params, returning defaultValue
// if the parameter is missing or cannot be converted to an integer.
func getIntParam(params Params, key string, defaultValue int) int {
	if params == nil {
		return defaultValue
	}

	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	default:
		return defaultValue
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
