// Package interactive provides the command loop for powertag-shell.
package interactive

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/powertag-link/powertag-go/pkg/gateway"
	"github.com/powertag-link/powertag-go/pkg/powertag"
)

// Shell handles interactive mode for powertag-shell.
type Shell struct {
	client *gateway.Client
	rl     *readline.Instance
}

// New creates a new interactive shell over an established gateway client.
func New(client *gateway.Client) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "powertag> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		client: client,
		rl:     rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop. It returns when the user exits.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "info", "i":
			s.cmdInfo()

		case "tags", "t":
			s.cmdTags()

		case "read", "r":
			s.cmdRead(args)

		case "attrs", "a":
			s.cmdAttrs()

		case "name", "n":
			s.cmdName(args)

		case "circuit":
			s.cmdCircuit(args)

		case "reset-demand", "rd":
			s.cmdResetDemand(args)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
PowerTag Shell Commands:
  Inspection:
    info                 - Show gateway identification and status
    tags                 - List configured tags from the node table
    read <unit> <attr>   - Read a tag attribute (see 'attrs')
    attrs                - List readable attribute names

  Configuration:
    name <unit> <value>    - Set a tag's name
    circuit <unit> <value> - Set a tag's circuit identifier
    reset-demand <unit>    - Clear a tag's recorded peak demands

  General:
    help                 - Show this help
    quit                 - Exit the shell`)
}

// cmdInfo shows gateway identification and status.
func (s *Shell) cmdInfo() {
	w := s.rl.Stdout()
	fmt.Fprintln(w, "\nGateway")
	fmt.Fprintln(w, "-------------------------------------------")
	fmt.Fprintf(w, "  Synthesis unit: %d\n", s.client.SynthesisUnit())

	if v, err := s.client.SynthesisManufacturer(); err == nil && v != nil {
		fmt.Fprintf(w, "  Manufacturer:   %s\n", *v)
	}
	if v, err := s.client.SynthesisProductModel(); err == nil && v != nil {
		fmt.Fprintf(w, "  Model:          %s\n", *v)
	}
	if v, err := s.client.SerialNumber(); err == nil && v != nil {
		fmt.Fprintf(w, "  Serial:         %s\n", *v)
	}
	if v, err := s.client.HardwareVersion(); err == nil && v != nil {
		fmt.Fprintf(w, "  Hardware:       %s\n", *v)
	}
	if v, err := s.client.FirmwareVersion(); err == nil && v != nil {
		fmt.Fprintf(w, "  Firmware:       %s\n", *v)
	}
	if status, err := s.client.Status(); err == nil {
		fmt.Fprintf(w, "  Status:         %s\n", status)
	} else {
		fmt.Fprintf(w, "  Status:         error: %v\n", err)
	}
	if v, err := s.client.DateTime(); err == nil && v != nil {
		fmt.Fprintf(w, "  Time:           %s\n", v.Format(time.RFC3339))
	}
	fmt.Fprintln(w)
}

// cmdTags lists the configured tags from the node table.
func (s *Shell) cmdTags() {
	w := s.rl.Stdout()

	units, err := s.client.ConfiguredTagUnits()
	if err != nil {
		fmt.Fprintf(w, "Node table scan failed: %v\n", err)
		return
	}
	if len(units) == 0 {
		fmt.Fprintln(w, "No tags configured")
		return
	}

	fmt.Fprintf(w, "\nConfigured Tags (%d):\n", len(units))
	fmt.Fprintln(w, "-------------------------------------------")
	for _, unit := range units {
		line := fmt.Sprintf("  unit %-4d", unit)
		if name, err := s.client.TagName(unit); err == nil && name != nil {
			line += fmt.Sprintf(" %-20s", *name)
		}
		if pt, err := s.client.TagProductType(unit); err == nil && pt != nil {
			line += " " + pt.Label
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

// cmdRead reads one attribute of one tag.
func (s *Shell) cmdRead(args []string) {
	w := s.rl.Stdout()
	if len(args) < 2 {
		fmt.Fprintln(w, "Usage: read <unit> <attr>")
		fmt.Fprintln(w, "  Example: read 5 active_power_total")
		return
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		fmt.Fprintf(w, "Invalid unit: %v\n", err)
		return
	}

	attr := strings.ToLower(args[1])
	read, ok := attributeReaders[attr]
	if !ok {
		fmt.Fprintf(w, "Unknown attribute: %s (use 'attrs' to list)\n", attr)
		return
	}

	value, err := read(s.client, unit)
	if err != nil {
		fmt.Fprintf(w, "Read failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "%s = %s\n", attr, value)
}

// cmdAttrs lists the readable attribute names.
func (s *Shell) cmdAttrs() {
	w := s.rl.Stdout()
	names := make([]string, 0, len(attributeReaders))
	for name := range attributeReaders {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "\nReadable attributes:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
}

// cmdName sets a tag's name.
func (s *Shell) cmdName(args []string) {
	w := s.rl.Stdout()
	if len(args) < 2 {
		fmt.Fprintln(w, "Usage: name <unit> <value>")
		return
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		fmt.Fprintf(w, "Invalid unit: %v\n", err)
		return
	}

	name := strings.Trim(strings.Join(args[1:], " "), "\"'")
	if err := s.client.SetTagName(unit, name); err != nil {
		fmt.Fprintf(w, "Write failed: %v\n", err)
		return
	}
	fmt.Fprintln(w, "OK")
}

// cmdCircuit sets a tag's circuit identifier.
func (s *Shell) cmdCircuit(args []string) {
	w := s.rl.Stdout()
	if len(args) < 2 {
		fmt.Fprintln(w, "Usage: circuit <unit> <value>")
		return
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		fmt.Fprintf(w, "Invalid unit: %v\n", err)
		return
	}

	if err := s.client.SetTagCircuit(unit, args[1]); err != nil {
		fmt.Fprintf(w, "Write failed: %v\n", err)
		return
	}
	fmt.Fprintln(w, "OK")
}

// cmdResetDemand clears a tag's recorded peak demands.
func (s *Shell) cmdResetDemand(args []string) {
	w := s.rl.Stdout()
	if len(args) < 1 {
		fmt.Fprintln(w, "Usage: reset-demand <unit>")
		return
	}

	unit, err := parseUnit(args[0])
	if err != nil {
		fmt.Fprintf(w, "Invalid unit: %v\n", err)
		return
	}

	if err := s.client.ResetTagPeakDemands(unit); err != nil {
		fmt.Fprintf(w, "Write failed: %v\n", err)
		return
	}
	fmt.Fprintln(w, "Peak demands reset")
}

// parseUnit parses a tag unit identifier argument.
func parseUnit(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%s is not a unit id", s)
	}
	return uint8(v), nil
}

// attributeReader reads one named attribute and formats it for display.
type attributeReader func(c *gateway.Client, unit uint8) (string, error)

// attributeReaders maps attribute names to their read functions.
var attributeReaders = map[string]attributeReader{
	"name":    func(c *gateway.Client, u uint8) (string, error) { return fmtString(c.TagName(u)) },
	"circuit": func(c *gateway.Client, u uint8) (string, error) { return fmtString(c.TagCircuit(u)) },
	"usage": func(c *gateway.Client, u uint8) (string, error) {
		usage, err := c.TagUsage(u)
		if err != nil {
			return "", err
		}
		return usage.String(), nil
	},
	"phase_sequence": func(c *gateway.Client, u uint8) (string, error) {
		seq, err := c.TagPhaseSequence(u)
		if err != nil {
			return "", err
		}
		return seq.String(), nil
	},
	"position": func(c *gateway.Client, u uint8) (string, error) {
		pos, err := c.TagPosition(u)
		if err != nil {
			return "", err
		}
		return pos.String(), nil
	},
	"rated_current": func(c *gateway.Client, u uint8) (string, error) { return fmtUint16("A")(c.TagRatedCurrent(u)) },
	"rated_voltage": func(c *gateway.Client, u uint8) (string, error) { return fmtFloat32("V")(c.TagRatedVoltage(u)) },
	"product_type": func(c *gateway.Client, u uint8) (string, error) {
		pt, err := c.TagProductType(u)
		if err != nil {
			return "", err
		}
		if pt == nil {
			return "n/a", nil
		}
		return fmt.Sprintf("%s (%s)", pt.Reference, pt.Label), nil
	},
	"serial_number":     func(c *gateway.Client, u uint8) (string, error) { return fmtString(c.TagSerialNumber(u)) },
	"firmware_revision": func(c *gateway.Client, u uint8) (string, error) { return fmtString(c.TagFirmwareRevision(u)) },

	"current_a": currentReader(powertag.PhaseA),
	"current_b": currentReader(powertag.PhaseB),
	"current_c": currentReader(powertag.PhaseC),

	"voltage_an": voltageReader(powertag.LineVoltageAN),
	"voltage_bn": voltageReader(powertag.LineVoltageBN),
	"voltage_cn": voltageReader(powertag.LineVoltageCN),
	"voltage_ab": voltageReader(powertag.LineVoltageAB),
	"voltage_bc": voltageReader(powertag.LineVoltageBC),
	"voltage_ca": voltageReader(powertag.LineVoltageCA),

	"active_power_a": powerReader(powertag.PhaseA),
	"active_power_b": powerReader(powertag.PhaseB),
	"active_power_c": powerReader(powertag.PhaseC),
	"active_power_total": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("W")(c.TagActivePowerTotal(u))
	},
	"apparent_power_total": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("VA")(c.TagApparentPowerTotal(u))
	},
	"power_factor_total": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("")(c.TagPowerFactorTotal(u))
	},

	"active_energy_total": func(c *gateway.Client, u uint8) (string, error) {
		return fmtUint64("Wh")(c.TagActiveEnergyTotal(u))
	},
	"active_energy_partial": func(c *gateway.Client, u uint8) (string, error) {
		return fmtUint64("Wh")(c.TagActiveEnergyPartial(u))
	},
	"power_demand_total": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("W")(c.TagActivePowerDemandTotal(u))
	},
	"max_power_demand_total": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("W")(c.TagMaxActivePowerDemandTotal(u))
	},
	"max_power_demand_time": func(c *gateway.Client, u uint8) (string, error) {
		v, err := c.TagMaxActivePowerDemandTime(u)
		if err != nil {
			return "", err
		}
		if v == nil {
			return "n/a", nil
		}
		return v.Format(time.RFC3339), nil
	},

	"alarm": func(c *gateway.Client, u uint8) (string, error) {
		valid, err := c.TagAlarmValid(u)
		if err != nil {
			return "", err
		}
		if !valid {
			return "not valid", nil
		}
		alarm, err := c.TagAlarm(u)
		if err != nil {
			return "", err
		}
		if !alarm.HasAlarm {
			return "none", nil
		}
		return fmt.Sprintf("%+v", alarm), nil
	},

	"radio_rssi_gateway": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("dBm")(c.TagRadioRSSIGateway(u))
	},
	"radio_rssi_tag": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("dBm")(c.TagRadioRSSITag(u))
	},
	"radio_lqi_gateway": func(c *gateway.Client, u uint8) (string, error) {
		return fmtUint16("")(c.TagRadioLQIGateway(u))
	},
	"radio_per_gateway": func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("")(c.TagRadioPERGateway(u))
	},
}

func currentReader(phase powertag.Phase) attributeReader {
	return func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("A")(c.TagCurrent(u, phase))
	}
}

func voltageReader(lv powertag.LineVoltage) attributeReader {
	return func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("V")(c.TagVoltage(u, lv))
	}
}

func powerReader(phase powertag.Phase) attributeReader {
	return func(c *gateway.Client, u uint8) (string, error) {
		return fmtFloat32("W")(c.TagActivePower(u, phase))
	}
}

func fmtString(v *string, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if v == nil {
		return "n/a", nil
	}
	return *v, nil
}

func fmtFloat32(unit string) func(*float32, error) (string, error) {
	return func(v *float32, err error) (string, error) {
		if err != nil {
			return "", err
		}
		if v == nil {
			return "n/a", nil
		}
		if unit == "" {
			return fmt.Sprintf("%.3f", *v), nil
		}
		return fmt.Sprintf("%.3f %s", *v, unit), nil
	}
}

func fmtUint16(unit string) func(*uint16, error) (string, error) {
	return func(v *uint16, err error) (string, error) {
		if err != nil {
			return "", err
		}
		if v == nil {
			return "n/a", nil
		}
		if unit == "" {
			return fmt.Sprintf("%d", *v), nil
		}
		return fmt.Sprintf("%d %s", *v, unit), nil
	}
}

func fmtUint64(unit string) func(*uint64, error) (string, error) {
	return func(v *uint64, err error) (string, error) {
		if err != nil {
			return "", err
		}
		if v == nil {
			return "n/a", nil
		}
		if unit == "" {
			return fmt.Sprintf("%d", *v), nil
		}
		return fmt.Sprintf("%d %s", *v, unit), nil
	}
}
