package importer

import (
	"fmt"

	"github.com/alexanderramin/shiftpace/internal/domain"
)

// ValidateSettingsFile checks the file for format errors before conversion.
// Shift-window rules are enforced later by the settings service.
func ValidateSettingsFile(f *SettingsFile) []error {
	var errs []error

	errs = append(errs, validateTime("shift.start", f.Shift.Start, true)...)
	errs = append(errs, validateTime("shift.end", f.Shift.End, true)...)

	for i, b := range f.Breaks {
		prefix := fmt.Sprintf("breaks[%d]", i)
		errs = append(errs, validateTime(prefix+".start", b.Start, true)...)
		errs = append(errs, validateTime(prefix+".end", b.End, true)...)
	}
	for i, cp := range f.ControlPoints {
		errs = append(errs, validateTime(fmt.Sprintf("control_points[%d]", i), cp, true)...)
	}

	if f.Targets.ExpectedOrders < 0 {
		errs = append(errs, fmt.Errorf("targets.expected_orders must be non-negative"))
	}
	errs = append(errs, validateSpeed("speeds.uniform", f.Speeds.Uniform)...)
	errs = append(errs, validateSpeed("speeds.picking", f.Speeds.Picking)...)
	errs = append(errs, validateSpeed("speeds.packing", f.Speeds.Packing)...)
	if f.Speeds.Uniform == nil && (f.Speeds.Picking == nil || f.Speeds.Packing == nil) {
		errs = append(errs, fmt.Errorf("speeds: set uniform or both picking and packing"))
	}
	if f.LastHour != nil && f.LastHour.Staff < 0 {
		errs = append(errs, fmt.Errorf("last_hour.staff must be non-negative"))
	}

	return errs
}

func validateTime(field, value string, required bool) []error {
	if value == "" {
		if required {
			return []error{fmt.Errorf("%s is required", field)}
		}
		return nil
	}
	if _, err := domain.ParseTimeStrict(value); err != nil {
		return []error{fmt.Errorf("%s: invalid time %q (expected HH:MM or h:mm AM/PM)", field, value)}
	}
	return nil
}

func validateSpeed(field string, v *float64) []error {
	if v != nil && *v < 0 {
		return []error{fmt.Errorf("%s must be non-negative", field)}
	}
	return nil
}
