package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// fieldSetter applies a textual value to one checklist leaf
type fieldSetter func(d *FormData, value string) error

var fieldSetters = map[string]fieldSetter{
	"roomPayment.individual":           boolField(func(d *FormData) *bool { return &d.RoomPayment.Individual }),
	"roomPayment.onInvoice":            boolField(func(d *FormData) *bool { return &d.RoomPayment.OnInvoice }),
	"extraPayment.individual":          boolField(func(d *FormData) *bool { return &d.ExtraPayment.Individual }),
	"extraPayment.onInvoice":           boolField(func(d *FormData) *bool { return &d.ExtraPayment.OnInvoice }),
	"guaranteePayment":                 tagField(func(d *FormData) *GuaranteeMode { return &d.GuaranteePayment }),
	"baggageService.hasBaggageService": boolField(func(d *FormData) *bool { return &d.BaggageService.HasBaggageService }),
	"baggageService.arrivalTime":       tagField(func(d *FormData) *TimeOfDay { return &d.BaggageService.ArrivalTime }),
	"baggageService.departureTime":     tagField(func(d *FormData) *TimeOfDay { return &d.BaggageService.DepartureTime }),
	"dinner.type":                      tagField(func(d *FormData) *DinnerPlan { return &d.Dinner.Type }),
	"dinner.remarks":                   textField(func(d *FormData) *string { return &d.Dinner.Remarks }),
	"informations.hasInformations":     boolField(func(d *FormData) *bool { return &d.Informations.HasInformations }),
	"informations.arrivalTime":         tagField(func(d *FormData) *TimeOfDay { return &d.Informations.ArrivalTime }),
	"informations.departureTime":       tagField(func(d *FormData) *TimeOfDay { return &d.Informations.DepartureTime }),
	"informations.type":                tagField(func(d *FormData) *ClientType { return &d.Informations.Type }),
	"informations.linkedToEvent":       boolField(func(d *FormData) *bool { return &d.Informations.LinkedToEvent }),
	"informations.eventName":           textField(func(d *FormData) *string { return &d.Informations.EventName }),
	"informations.checkIn":             tagField(func(d *FormData) *CheckInMode { return &d.Informations.CheckIn }),
	"informations.managerName":         textField(func(d *FormData) *string { return &d.Informations.ManagerName }),
	"informations.managerContact":      textField(func(d *FormData) *string { return &d.Informations.ManagerContact }),
	"informations.message":             textField(func(d *FormData) *string { return &d.Informations.Message }),
}

// FieldPaths returns every settable checklist path in sorted order
func FieldPaths() []string {
	paths := make([]string, 0, len(fieldSetters))
	for path := range fieldSetters {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// With returns a copy of d with the leaf at path set from value.
// Flags accept strconv.ParseBool input; tags and times accept "" or "null"
// to clear them.
func (d FormData) With(path, value string) (FormData, error) {
	set, ok := fieldSetters[path]
	if !ok {
		return d, fmt.Errorf("unknown field %q", path)
	}
	if err := set(&d, value); err != nil {
		return d, fmt.Errorf("field %s: %w", path, err)
	}
	return d, nil
}

func boolField(get func(*FormData) *bool) fieldSetter {
	return func(d *FormData, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		*get(d) = b
		return nil
	}
}

func textField(get func(*FormData) *string) fieldSetter {
	return func(d *FormData, value string) error {
		*get(d) = value
		return nil
	}
}

type nullableTag interface {
	~string
	Valid() bool
}

func tagField[T nullableTag](get func(*FormData) *T) fieldSetter {
	return func(d *FormData, value string) error {
		value = strings.TrimSpace(value)
		if value == "null" {
			value = ""
		}
		tag := T(value)
		if !tag.Valid() {
			return fmt.Errorf("invalid value %q", value)
		}
		*get(d) = tag
		return nil
	}
}
