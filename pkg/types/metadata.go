package types

import (
	"fmt"
	"strconv"
)

// Metadata describes one annotated data table: axis names, the two label
// values that partition the points, and the valid coordinate region beyond
// which no point or viewport may extend.
type Metadata struct {
	TableName    string
	XAxisName    string
	YAxisName    string
	TargetColumn string
	XLabel       string
	OLabel       string
	ValidXMin    float64
	ValidXMax    float64
	ValidYMin    float64
	ValidYMax    float64
	ShowZeroBars bool
}

// Metadata field names as recorded in meta change records.
const (
	FieldXAxisName    = "x_axis_name"
	FieldYAxisName    = "y_axis_name"
	FieldTargetColumn = "target_column"
	FieldXLabel       = "x_label"
	FieldOLabel       = "o_label"
	FieldValidXMin    = "valid_x_min"
	FieldValidXMax    = "valid_x_max"
	FieldValidYMin    = "valid_y_min"
	FieldValidYMax    = "valid_y_max"
	FieldShowZeroBars = "show_zero_bars"
)

// Label returns the label value the class selects.
func (m *Metadata) Label(c Class) string {
	if c == ClassX {
		return m.XLabel
	}
	return m.OLabel
}

// FlipLabel returns the other of the two label values. An unrecognized label
// maps to XLabel, matching the editor's flip behavior.
func (m *Metadata) FlipLabel(label string) string {
	if label == m.XLabel {
		return m.OLabel
	}
	return m.XLabel
}

// Contains reports whether (x, y) lies inside the valid region (inclusive).
func (m *Metadata) Contains(x, y float64) bool {
	return x >= m.ValidXMin && x <= m.ValidXMax &&
		y >= m.ValidYMin && y <= m.ValidYMax
}

// FieldValue returns the named field's current value in the string form
// used by meta change records. Returns ErrUnknownField for a field name not
// listed above.
func (m *Metadata) FieldValue(field string) (string, error) {
	switch field {
	case FieldXAxisName:
		return m.XAxisName, nil
	case FieldYAxisName:
		return m.YAxisName, nil
	case FieldTargetColumn:
		return m.TargetColumn, nil
	case FieldXLabel:
		return m.XLabel, nil
	case FieldOLabel:
		return m.OLabel, nil
	case FieldValidXMin:
		return strconv.FormatFloat(m.ValidXMin, 'g', -1, 64), nil
	case FieldValidXMax:
		return strconv.FormatFloat(m.ValidXMax, 'g', -1, 64), nil
	case FieldValidYMin:
		return strconv.FormatFloat(m.ValidYMin, 'g', -1, 64), nil
	case FieldValidYMax:
		return strconv.FormatFloat(m.ValidYMax, 'g', -1, 64), nil
	case FieldShowZeroBars:
		if m.ShowZeroBars {
			return "1", nil
		}
		return "0", nil
	default:
		return "", ErrUnknownField
	}
}

// SetField assigns the named metadata field from its string form. Numeric
// fields are parsed as float64, show_zero_bars as "1"/"true" vs anything
// else. Returns ErrUnknownField for a field name not listed above.
func (m *Metadata) SetField(field, value string) error {
	switch field {
	case FieldXAxisName:
		m.XAxisName = value
	case FieldYAxisName:
		m.YAxisName = value
	case FieldTargetColumn:
		m.TargetColumn = value
	case FieldXLabel:
		m.XLabel = value
	case FieldOLabel:
		m.OLabel = value
	case FieldValidXMin, FieldValidXMax, FieldValidYMin, FieldValidYMax:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", field, err)
		}
		switch field {
		case FieldValidXMin:
			m.ValidXMin = f
		case FieldValidXMax:
			m.ValidXMax = f
		case FieldValidYMin:
			m.ValidYMin = f
		case FieldValidYMax:
			m.ValidYMax = f
		}
	case FieldShowZeroBars:
		m.ShowZeroBars = value == "1" || value == "true"
	default:
		return ErrUnknownField
	}
	return nil
}
