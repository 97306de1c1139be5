package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/gookit/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/udevtools/udever/udever"
)

// OutputDevices renders ranked devices in the requested format.
func OutputDevices(matches []udever.Match, format string) error {
	switch format {
	case "json":
		devices := make([]udever.Device, 0, len(matches))
		for _, m := range matches {
			devices = append(devices, m.Device)
		}
		return outputJSON(devices)
	case "table":
		outputDeviceTable(matches)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// OutputRules renders the managed rule set in the requested format.
func OutputRules(rules udever.ManagedRuleSet, format string) error {
	switch format {
	case "json":
		return outputJSON(rules)
	case "table":
		outputRuleTable(rules)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputDeviceTable(matches []udever.Match) {
	t := newTable()
	t.AppendHeader(table.Row{"VID:PID", "MANUFACTURER", "PRODUCT", "BUS"})

	for _, m := range matches {
		d := m.Device
		t.AppendRow(table.Row{d.ID(), orPlaceholder(d.Manufacturer), orPlaceholder(d.Product), d.BusPath})
	}

	t.Render()
}

func outputRuleTable(rules udever.ManagedRuleSet) {
	if len(rules) == 0 {
		fmt.Println("No rule files found.")
		return
	}

	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	t := newTable()
	t.AppendHeader(table.Row{"FILE", "VID:PID", "POLICY", "SYMLINK"})

	for _, name := range names {
		rule := rules[name]
		if rule.Spec == nil {
			t.AppendRow(table.Row{name, color.Gray.Sprint("(unmanaged)"), "", ""})
			continue
		}
		t.AppendRow(table.Row{
			name,
			rule.Spec.VendorID + ":" + rule.Spec.ProductID,
			string(rule.Spec.Policy),
			orPlaceholder(rule.Spec.Symlink),
		})
	}

	t.Render()
}

// newTable creates a borderless table writer (grype/syft style).
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	t.Style().Options.SeparateHeader = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateFooter = false
	t.Style().Options.SeparateRows = false

	return t
}

func orPlaceholder(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
