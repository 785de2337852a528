package order

import (
	"fmt"
	"strconv"
	"strings"

	"spraying/internal/pkg/errs"
)

// FieldKey names a scalar field that can be edited from its textual form.
type FieldKey string

const (
	FieldCropType FieldKey = "cropType"
	FieldArea     FieldKey = "area"
	FieldCost     FieldKey = "cost"
	FieldSchedule FieldKey = "schedule"
)

// FieldKeys lists every editable scalar field.
func FieldKeys() []FieldKey {
	return []FieldKey{FieldCropType, FieldArea, FieldCost, FieldSchedule}
}

// ParseFieldKey accepts the exact wire name of an editable field.
func ParseFieldKey(s string) (FieldKey, error) {
	for _, k := range FieldKeys() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("field key is invalid", fmt.Errorf("%q is not editable", s))
}

// ApplyField parses raw for key and sets it. Nothing changes when parsing or
// validation fails.
func (o *Order) ApplyField(key FieldKey, raw string) error {
	switch key {
	case FieldCropType:
		return o.SetCropType(raw)
	case FieldArea:
		v, err := parseNumber("area", raw)
		if err != nil {
			return err
		}
		return o.SetArea(v)
	case FieldCost:
		v, err := parseNumber("cost", raw)
		if err != nil {
			return err
		}
		return o.SetCost(v)
	case FieldSchedule:
		session, err := ParseSchedule(raw)
		if err != nil {
			return err
		}
		return o.SetSpraySession(session)
	default:
		_, err := ParseFieldKey(string(key))
		return err
	}
}

// FieldValue renders the current value of key in the form ApplyField accepts.
func (o *Order) FieldValue(key FieldKey) string {
	switch key {
	case FieldCropType:
		return o.cropType
	case FieldArea:
		return strconv.FormatFloat(o.area, 'f', -1, 64)
	case FieldCost:
		return strconv.FormatFloat(o.cost, 'f', -1, 64)
	case FieldSchedule:
		return o.session.String()
	default:
		return ""
	}
}

func parseNumber(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%q is not a number", raw))
	}
	return v, nil
}
