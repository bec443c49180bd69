package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/shiftpace/internal/cli/formatter"
	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// shiftpaceHuhTheme returns a custom huh theme using the Gruvbox palette.
func shiftpaceHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative decimal.
func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := domain.ParseTimeStrict(s); err != nil {
		return fmt.Errorf("use HH:MM or HH:MM AM/PM")
	}
	return nil
}

func validateBreakList(s string) error {
	_, err := parseBreakList(s)
	return err
}

func validateTimeList(s string) error {
	_, err := parseTimeList(s)
	return err
}

// parseBreakList reads "12:00-12:30, 15:00-15:15".
func parseBreakList(s string) ([]domain.Interval, error) {
	var breaks []domain.Interval
	for _, part := range splitList(s) {
		start, end, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("break %q: expected START-END", part)
		}
		b, err := parseBreak(start, end)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, b)
	}
	return breaks, nil
}

func parseBreak(start, end string) (domain.Interval, error) {
	s, err := domain.ParseTimeStrict(start)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("break start: %w", err)
	}
	e, err := domain.ParseTimeStrict(end)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("break end: %w", err)
	}
	return domain.Interval{Start: s.String(), End: e.String()}, nil
}

// parseTimeList reads "10:00, 12:00, 14:00".
func parseTimeList(s string) ([]domain.ControlPoint, error) {
	var cps []domain.ControlPoint
	for _, part := range splitList(s) {
		tod, err := domain.ParseTimeStrict(part)
		if err != nil {
			return nil, fmt.Errorf("control point: %w", err)
		}
		cps = append(cps, domain.ControlPoint{Time: tod.String()})
	}
	return cps, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func formatBreakList(breaks []domain.Interval) string {
	parts := make([]string, 0, len(breaks))
	for _, b := range breaks {
		parts = append(parts, b.Start+"-"+b.End)
	}
	return strings.Join(parts, ", ")
}

func formatTimeList(cps []domain.ControlPoint) string {
	parts := make([]string, 0, len(cps))
	for _, cp := range cps {
		parts = append(parts, cp.Time)
	}
	return strings.Join(parts, ", ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// settingsFormValues holds the string-backed fields of the settings form.
type settingsFormValues struct {
	Start          string
	End            string
	Breaks         string
	ControlPoints  string
	ExpectedOrders string
	PickingSpeed   string
	PackingSpeed   string
	LastHourStaff  string
}

func settingsFormFrom(cfg *domain.ShiftConfig) *settingsFormValues {
	v := &settingsFormValues{}
	if cfg == nil {
		return v
	}
	v.Start = cfg.ShiftStart
	v.End = cfg.ShiftEnd
	v.Breaks = formatBreakList(cfg.Breaks)
	v.ControlPoints = formatTimeList(cfg.ControlPoints)
	v.ExpectedOrders = strconv.Itoa(cfg.ExpectedOrders)
	v.PickingSpeed = formatFloat(cfg.AvgPickingSpeed)
	v.PackingSpeed = formatFloat(cfg.AvgPackingSpeed)
	v.LastHourStaff = strconv.Itoa(cfg.StaffForLastPeriod)
	return v
}

// toConfig builds a configuration from the form. Empty numeric fields read as zero.
func (v *settingsFormValues) toConfig() (*domain.ShiftConfig, error) {
	breaks, err := parseBreakList(v.Breaks)
	if err != nil {
		return nil, err
	}
	cps, err := parseTimeList(v.ControlPoints)
	if err != nil {
		return nil, err
	}

	cfg := &domain.ShiftConfig{
		ShiftStart:    strings.TrimSpace(v.Start),
		ShiftEnd:      strings.TrimSpace(v.End),
		Breaks:        breaks,
		ControlPoints: cps,
	}
	if cfg.ExpectedOrders, err = atoiOrZero(v.ExpectedOrders); err != nil {
		return nil, fmt.Errorf("expected orders: %w", err)
	}
	if cfg.AvgPickingSpeed, err = parseFloatOrZero(v.PickingSpeed); err != nil {
		return nil, fmt.Errorf("picking speed: %w", err)
	}
	if cfg.AvgPackingSpeed, err = parseFloatOrZero(v.PackingSpeed); err != nil {
		return nil, fmt.Errorf("packing speed: %w", err)
	}
	if cfg.StaffForLastPeriod, err = atoiOrZero(v.LastHourStaff); err != nil {
		return nil, fmt.Errorf("last-hour staff: %w", err)
	}
	return cfg, nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseFloatOrZero(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// newSettingsForm creates the huh form behind `settings edit`.
func newSettingsForm(v *settingsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Shift start").Placeholder("08:00").Value(&v.Start).Validate(validateClock),
			huh.NewInput().Title("Shift end").Placeholder("16:00").Value(&v.End).Validate(validateClock),
			huh.NewInput().Title("Breaks").Description("comma separated START-END").
				Placeholder("12:00-12:30").Value(&v.Breaks).Validate(validateBreakList),
			huh.NewInput().Title("Control points").Description("comma separated times").
				Placeholder("10:00, 12:00, 14:00").Value(&v.ControlPoints).Validate(validateTimeList),
		),
		huh.NewGroup(
			huh.NewInput().Title("Expected orders").Value(&v.ExpectedOrders).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Picking speed (units/h per worker)").Value(&v.PickingSpeed).Validate(validateNonNegativeFloat),
			huh.NewInput().Title("Packing speed (units/h per worker)").Value(&v.PackingSpeed).Validate(validateNonNegativeFloat),
			huh.NewInput().Title("Staff for the last hour").Value(&v.LastHourStaff).Validate(validateNonNegativeInt),
		),
	).WithTheme(shiftpaceHuhTheme()).WithShowHelp(false)
}

// actualsFormValues holds the running totals entered by the supervisor.
type actualsFormValues struct {
	Picked string
	Packed string
}

func actualsFormFrom(a *domain.ActualsState) *actualsFormValues {
	if a == nil {
		return &actualsFormValues{}
	}
	return &actualsFormValues{
		Picked: strconv.Itoa(a.PickedActual),
		Packed: strconv.Itoa(a.PackedActual),
	}
}

func (v *actualsFormValues) totals() (picked, packed int, err error) {
	if picked, err = atoiOrZero(v.Picked); err != nil {
		return 0, 0, fmt.Errorf("picked: %w", err)
	}
	if packed, err = atoiOrZero(v.Packed); err != nil {
		return 0, 0, fmt.Errorf("packed: %w", err)
	}
	return picked, packed, nil
}

// newActualsForm creates the huh form for updating running totals.
func newActualsForm(v *actualsFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Picked so far").Value(&v.Picked).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Packed so far").Value(&v.Packed).Validate(validateNonNegativeInt),
		),
	).WithTheme(shiftpaceHuhTheme()).WithShowHelp(false)
}
