// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gnuplot

import (
	"fmt"
	"strconv"
	"time"
)

// A Formatter converts values to the text sent to the engine, both in
// commands and in inline data.
type Formatter interface {
	FormatFloat(x float64) string
	FormatValue(v interface{}) string
}

// DecimalFormat formats numbers with strconv.
//
// The zero DecimalFormat formats floats in the shortest 'g' form that
// round-trips and times as RFC 3339.
type DecimalFormat struct {
	// Fmt and Prec are passed to strconv.FormatFloat. If Fmt is 0,
	// Prec is ignored.
	Fmt  byte
	Prec int

	// TimeLayout is the time.Format layout for time.Time values.
	// It must agree with the input format given to
	// SetXTimeFormat.
	TimeLayout string
}

func (f DecimalFormat) float(x float64, bits int) string {
	if f.Fmt == 0 {
		return strconv.FormatFloat(x, 'g', -1, bits)
	}
	return strconv.FormatFloat(x, f.Fmt, f.Prec, bits)
}

func (f DecimalFormat) FormatFloat(x float64) string {
	return f.float(x, 64)
}

func (f DecimalFormat) FormatValue(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return f.float(v, 64)
	case float32:
		return f.float(float64(v), 32)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case time.Time:
		layout := f.TimeLayout
		if layout == "" {
			layout = time.RFC3339
		}
		return v.Format(layout)
	}
	return fmt.Sprint(v)
}

// toFloat returns v as a float64 if it is a Go number.
func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
