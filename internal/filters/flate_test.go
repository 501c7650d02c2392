package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

// zlibCompress compresses data for testing
func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}

// TestFlateRoundTrip tests encode followed by decode without a predictor
func TestFlateRoundTrip(t *testing.T) {
	original := []byte("BT /F1 10 Tf 30 537.28 Td (Author: x) Tj ET")

	encoded, err := FlateEncode(original, nil)
	if err != nil {
		t.Fatalf("FlateEncode failed: %v", err)
	}

	decoded, err := FlateDecode(encoded, nil)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded data doesn't match original\ngot:  %s\nwant: %s", decoded, original)
	}
}

// TestFlateEncodeDeterministic tests that identical input yields identical output
func TestFlateEncodeDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 1000)
	a, _ := FlateEncode(data, nil)
	b, _ := FlateEncode(data, nil)
	if !bytes.Equal(a, b) {
		t.Error("FlateEncode is not deterministic")
	}
}

// TestFlateRoundTripWithUpPredictor tests image-style rows through the Up predictor
func TestFlateRoundTripWithUpPredictor(t *testing.T) {
	// 3 rows of 2 RGB pixels
	pixels := []byte{
		255, 255, 255, 10, 20, 30,
		250, 250, 250, 12, 22, 32,
		0, 0, 0, 255, 87, 34,
	}
	params := Params{"Predictor": PredictorPNGUp, "Colors": 3, "Columns": 2}

	encoded, err := FlateEncode(pixels, params)
	if err != nil {
		t.Fatalf("FlateEncode failed: %v", err)
	}

	decoded, err := FlateDecode(encoded, params)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	if !bytes.Equal(decoded, pixels) {
		t.Errorf("round trip mismatch\ngot:  %v\nwant: %v", decoded, pixels)
	}
}

// TestEncodePNGUp tests the raw filter output
func TestEncodePNGUp(t *testing.T) {
	got, err := encodePNGUp([]byte{1, 2, 5, 7}, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{2, 1, 2, 2, 4, 5}
	if !bytes.Equal(got, want) {
		t.Errorf("encodePNGUp() = %v, want %v", got, want)
	}
}

// TestEncodePNGUpBadRowSize tests that ragged data is rejected
func TestEncodePNGUpBadRowSize(t *testing.T) {
	if _, err := encodePNGUp([]byte{1, 2, 3}, 2); err == nil {
		t.Error("expected error for ragged rows")
	}
}

// TestPNGPredictorSub tests decoding of the Sub (1) algorithm
func TestPNGPredictorSub(t *testing.T) {
	data := []byte{
		1, 1, 1, 1, // Row 1: predictor=1, deltas
		1, 4, 1, 1, // Row 2
	}

	params := Params{"Predictor": 11, "Columns": 3, "Colors": 1}
	decoded, err := FlateDecode(zlibCompress(data), params)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	expected := []byte{1, 2, 3, 4, 5, 6}
	if !bytes.Equal(decoded, expected) {
		t.Errorf("decoded data doesn't match\ngot:  %v\nwant: %v", decoded, expected)
	}
}

// TestPNGPredictorPaeth tests decoding of the Paeth (4) algorithm on a first row,
// where it degenerates to Sub
func TestPNGPredictorPaeth(t *testing.T) {
	data := []byte{4, 10, 5, 5}
	params := Params{"Predictor": 14, "Columns": 3, "Colors": 1}

	decoded, err := FlateDecode(zlibCompress(data), params)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	expected := []byte{10, 15, 20}
	if !bytes.Equal(decoded, expected) {
		t.Errorf("decoded data doesn't match\ngot:  %v\nwant: %v", decoded, expected)
	}
}

// TestFlateDecodeInvalid tests that non-zlib input is rejected
func TestFlateDecodeInvalid(t *testing.T) {
	if _, err := FlateDecode([]byte("not compressed"), nil); err == nil {
		t.Error("expected error for invalid data")
	}
}

// TestFlateDecodeUnsupportedPredictor tests rejection of TIFF predictors
func TestFlateDecodeUnsupportedPredictor(t *testing.T) {
	_, err := FlateDecode(zlibCompress([]byte{1}), Params{"Predictor": 2})
	if err == nil {
		t.Error("expected error for unsupported predictor")
	}
}
