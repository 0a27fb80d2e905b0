// SPDX-License-Identifier: GPL-3.0-or-later

package pdf

import (
	"fmt"
	"io"

	"github.com/inkfern/pdf/filter"
)

// predictorOptionsFromParms translates a /DecodeParms dictionary into
// the plain filter.PredictorOptions struct the filter package
// operates on, so that package never needs to import Dict.
func predictorOptionsFromParms(parms Dict) filter.PredictorOptions {
	var opts filter.PredictorOptions
	if parms == nil {
		return opts
	}
	get := func(key Name) int {
		if i, ok := parms[key].(Integer); ok {
			return int(i)
		}
		return 0
	}
	opts.Predictor = get("Predictor")
	opts.Colors = get("Colors")
	opts.BitsPerComponent = get("BitsPerComponent")
	opts.Columns = get("Columns")
	return opts
}

// Decode returns a reader over the stream's decoded payload,
// reversing whatever /Filter chain its dictionary declares (spec
// §4.F). Only FlateDecode, with or without a predictor, is supported;
// an unsupported filter name yields a FilterError rather than a
// corrupted read.
func (x *Stream) Decode(doc *Document) (io.Reader, error) {
	filterObj := doc.Deref(x.Dict["Filter"])
	if IsNull(filterObj) {
		return x.R, nil
	}

	names, parmsList, err := normalizeFilterChain(doc, filterObj, doc.Deref(x.Dict["DecodeParms"]))
	if err != nil {
		return nil, err
	}

	r := x.R
	for i, name := range names {
		switch name {
		case "FlateDecode", "Fl":
			opts := predictorOptionsFromParms(parmsList[i])
			prod, err := filter.NewFlateDecoder(r, opts)
			if err != nil {
				return nil, &FilterError{Name: string(name), Err: err}
			}
			r = filter.NewReader(prod)
		default:
			return nil, &FilterError{Name: string(name), Err: fmt.Errorf("unsupported filter")}
		}
	}
	return r, nil
}

// normalizeFilterChain accepts /Filter as either a single Name or an
// Array of Names (and /DecodeParms as the matching single Dict, Array
// of Dicts, or absent), returning parallel slices.
func normalizeFilterChain(doc *Document, filterObj, parmsObj Object) ([]Name, []Dict, error) {
	switch f := filterObj.(type) {
	case Name:
		parms, _ := parmsObj.(Dict)
		return []Name{f}, []Dict{parms}, nil
	case Array:
		names := make([]Name, len(f))
		for i, obj := range f {
			n, ok := doc.Deref(obj).(Name)
			if !ok {
				return nil, nil, fmt.Errorf("pdf: /Filter array element %d is not a name", i)
			}
			names[i] = n
		}
		parms := make([]Dict, len(f))
		if arr, ok := parmsObj.(Array); ok {
			for i := range parms {
				if i < len(arr) {
					parms[i], _ = doc.Deref(arr[i]).(Dict)
				}
			}
		}
		return names, parms, nil
	default:
		return nil, nil, fmt.Errorf("pdf: /Filter has unexpected type %s", KindOf(filterObj))
	}
}

// NewFlateStream builds a Stream whose payload is read from plain,
// wrapping it so that PDF writes the FlateDecode-encoded form. dict
// should not already contain /Filter or /DecodeParms; NewFlateStream
// sets them. Compression runs at doc's configured
// FlateCompressionLevel.
func NewFlateStream(doc *Document, dict Dict, plain io.Reader, opts filter.PredictorOptions) *Stream {
	pr, pw := io.Pipe()
	encoder := filter.NewFlateEncoder(pw, doc.FlateCompressionLevel(), opts)
	go func() {
		_, err := io.Copy(encoder, plain)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := encoder.Close(); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.Close()
	}()

	out := Dict{}
	for k, v := range dict {
		out[k] = v
	}
	out["Filter"] = Name("FlateDecode")
	if opts.Predictor > 1 {
		out["DecodeParms"] = Dict{
			"Predictor":        Integer(opts.Predictor),
			"Colors":           Integer(opts.Colors),
			"BitsPerComponent": Integer(opts.BitsPerComponent),
			"Columns":          Integer(opts.Columns),
		}
	}
	return &Stream{Dict: out, R: pr}
}
