// Command powertag-read dumps the registers of a PowerTag energy gateway and
// its wireless sensors.
//
// The gateway address can be given directly, loaded from a YAML configuration
// file, or discovered on the local network via mDNS.
//
// Usage:
//
//	powertag-read [flags]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-address string       Gateway address (host:port)
//	-discover             Discover the gateway via mDNS instead of -address
//	-unit value           Tag unit identifier to dump (repeatable; default: node table scan)
//	-interval duration    Polling interval (0 = read once and exit)
//	-timeout duration     Modbus request timeout (default 5s)
//	-synthesis-unit int   Pin the synthesis table unit id and skip probing
//	-protocol-log string  Write a protocol capture file (view with powertag-log)
//
// Examples:
//
//	# One-shot dump of the gateway and all configured tags
//	powertag-read -address 192.168.1.20:502
//
//	# Poll two tags every 10 seconds
//	powertag-read -address 192.168.1.20:502 -unit 5 -unit 9 -interval 10s
//
//	# Discover the gateway and capture the exchange
//	powertag-read -discover -protocol-log gateway.plog
//
// Configuration file:
//
//	address: 192.168.1.20:502
//	units: [5, 9]
//	interval: 10s
//	protocol_log: gateway.plog
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/powertag-link/powertag-go/pkg/discovery"
	"github.com/powertag-link/powertag-go/pkg/gateway"
	"github.com/powertag-link/powertag-go/pkg/log"
	"github.com/powertag-link/powertag-go/pkg/powertag"
	"github.com/powertag-link/powertag-go/pkg/transport"
	"github.com/powertag-link/powertag-go/pkg/version"
)

// Config holds the reader configuration. Flags override file values.
type Config struct {
	Address       string        `yaml:"address"`
	Discover      bool          `yaml:"discover"`
	Units         []uint8       `yaml:"units"`
	Interval      time.Duration `yaml:"interval"`
	Timeout       time.Duration `yaml:"timeout"`
	SynthesisUnit uint8         `yaml:"synthesis_unit"`
	ProtocolLog   string        `yaml:"protocol_log"`
}

// unitList collects repeated -unit flags.
type unitList []uint8

func (u *unitList) String() string {
	return fmt.Sprintf("%v", []uint8(*u))
}

func (u *unitList) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return fmt.Errorf("invalid unit: %s", s)
	}
	*u = append(*u, uint8(v))
	return nil
}

func main() {
	var (
		configFile string
		units      unitList
	)

	config := Config{Timeout: transport.DefaultTimeout}

	flag.StringVar(&configFile, "config", "", "Configuration file path (YAML)")
	address := flag.String("address", "", "Gateway address (host:port)")
	discover := flag.Bool("discover", false, "Discover the gateway via mDNS")
	flag.Var(&units, "unit", "Tag unit identifier to dump (repeatable)")
	interval := flag.Duration("interval", 0, "Polling interval (0 = read once and exit)")
	timeout := flag.Duration("timeout", 0, "Modbus request timeout")
	synthesisUnit := flag.Int("synthesis-unit", 0, "Pin the synthesis table unit id and skip probing")
	protocolLog := flag.String("protocol-log", "", "Write a protocol capture file")
	flag.Parse()

	if configFile != "" {
		if err := loadConfig(configFile, &config); err != nil {
			stdlog.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags override file values
	if *address != "" {
		config.Address = *address
	}
	if *discover {
		config.Discover = true
	}
	if len(units) > 0 {
		config.Units = units
	}
	if *interval != 0 {
		config.Interval = *interval
	}
	if *timeout != 0 {
		config.Timeout = *timeout
	}
	if *synthesisUnit != 0 {
		config.SynthesisUnit = uint8(*synthesisUnit)
	}
	if *protocolLog != "" {
		config.ProtocolLog = *protocolLog
	}

	if err := run(config); err != nil {
		stdlog.Fatalf("Error: %v", err)
	}
}

// loadConfig reads the YAML configuration file into config.
func loadConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func run(config Config) error {
	if config.Address == "" && !config.Discover {
		return fmt.Errorf("no gateway address: pass -address, -discover, or a config file")
	}

	if config.Discover {
		addr, err := discoverGateway()
		if err != nil {
			return err
		}
		config.Address = addr
	}

	// Protocol capture
	var logger log.Logger = log.NoopLogger{}
	if config.ProtocolLog != "" {
		fileLogger, err := log.NewFileLogger(config.ProtocolLog)
		if err != nil {
			return fmt.Errorf("creating protocol log: %w", err)
		}
		defer fileLogger.Close()
		logger = fileLogger
		stdlog.Printf("Protocol capture: %s", config.ProtocolLog)
	}

	stdlog.Printf("Connecting to %s", config.Address)
	tcp, err := transport.NewTCP(transport.TCPConfig{
		Address: config.Address,
		Timeout: config.Timeout,
	})
	if err != nil {
		return err
	}

	client, err := gateway.NewClient(gateway.Config{
		Transport:     tcp,
		Logger:        logger,
		RemoteAddr:    config.Address,
		SynthesisUnit: config.SynthesisUnit,
	})
	if err != nil {
		tcp.Close()
		return err
	}
	defer client.Close()

	stdlog.Printf("Synthesis table at unit %d", client.SynthesisUnit())

	units := config.Units
	if len(units) == 0 {
		units, err = client.ConfiguredTagUnits()
		if err != nil {
			return fmt.Errorf("scanning node table: %w", err)
		}
		stdlog.Printf("Node table lists %d tag(s)", len(units))
	}

	if config.Interval <= 0 {
		return dump(client, units)
	}

	// Polling mode: dump on a ticker until interrupted.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		stdlog.Println("Shutting down...")
		cancel()
	}()

	ticker := time.NewTicker(config.Interval)
	defer ticker.Stop()

	if err := dump(client, units); err != nil {
		stdlog.Printf("Dump failed: %v", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := dump(client, units); err != nil {
				stdlog.Printf("Dump failed: %v", err)
			}
		}
	}
}

// discoverGateway browses mDNS for the first Modbus gateway on the LAN.
func discoverGateway() (string, error) {
	stdlog.Println("Discovering gateway via mDNS...")
	browser := discovery.NewGatewayBrowser(discovery.BrowserConfig{})

	ctx, cancel := context.WithTimeout(context.Background(), discovery.BrowseTimeout)
	defer cancel()

	gw, err := browser.FindFirst(ctx)
	if err != nil {
		return "", err
	}
	if len(gw.Addresses) == 0 {
		return "", fmt.Errorf("gateway %s has no addresses", gw.InstanceName)
	}

	addr := fmt.Sprintf("%s:%d", gw.Addresses[0], gw.Port)
	stdlog.Printf("Found %s at %s", gw.InstanceName, addr)
	return addr, nil
}

// dump prints the gateway identification and a measurement summary per tag.
func dump(client *gateway.Client, units []uint8) error {
	fmt.Printf("\n=== Gateway (%s) ===\n", time.Now().Format(time.RFC3339))

	if v, err := client.SynthesisProductModel(); err == nil && v != nil {
		fmt.Printf("  Model:     %s\n", *v)
	}
	if v, err := client.SerialNumber(); err == nil && v != nil {
		fmt.Printf("  Serial:    %s\n", *v)
	}
	if v, err := client.FirmwareVersion(); err == nil && v != nil {
		fw := *v
		// Devices pad components with leading zeros; normalize for display.
		if rev, err := version.Parse(fw); err == nil {
			fw = rev.String()
		}
		fmt.Printf("  Firmware:  %s\n", fw)
	}
	if status, err := client.Status(); err == nil {
		fmt.Printf("  Status:    %s\n", status)
	}
	if v, err := client.DateTime(); err == nil && v != nil {
		fmt.Printf("  Time:      %s\n", v.Format(time.RFC3339))
	}

	for _, unit := range units {
		if err := dumpTag(client, unit); err != nil {
			fmt.Printf("\n--- Tag unit %d: %v\n", unit, err)
		}
	}
	return nil
}

// dumpTag prints one tag's configuration and measurements.
func dumpTag(client *gateway.Client, unit uint8) error {
	fmt.Printf("\n--- Tag unit %d ---\n", unit)

	name, err := client.TagName(unit)
	if err != nil {
		return err
	}
	if name != nil {
		fmt.Printf("  Name:          %s\n", *name)
	}
	if v, _ := client.TagCircuit(unit); v != nil {
		fmt.Printf("  Circuit:       %s\n", *v)
	}
	if pt, _ := client.TagProductType(unit); pt != nil {
		fmt.Printf("  Product:       %s (%s)\n", pt.Reference, pt.Label)
	}
	if usage, err := client.TagUsage(unit); err == nil {
		fmt.Printf("  Usage:         %s\n", usage)
	}

	for _, phase := range []powertag.Phase{powertag.PhaseA, powertag.PhaseB, powertag.PhaseC} {
		if v, _ := client.TagCurrent(unit, phase); v != nil {
			fmt.Printf("  Current %s:     %.2f A\n", phase, *v)
		}
	}
	if v, _ := client.TagActivePowerTotal(unit); v != nil {
		fmt.Printf("  Active Power:  %.1f W\n", *v)
	}
	if v, _ := client.TagPowerFactorTotal(unit); v != nil {
		fmt.Printf("  Power Factor:  %.3f\n", *v)
	}
	if v, _ := client.TagActiveEnergyTotal(unit); v != nil {
		fmt.Printf("  Energy:        %d Wh\n", *v)
	}

	if valid, _ := client.TagAlarmValid(unit); valid {
		alarm, err := client.TagAlarm(unit)
		if err == nil && alarm.HasAlarm {
			fmt.Printf("  Alarms:        %s\n", alarmSummary(alarm))
		}
	}
	return nil
}

// alarmSummary renders the set alarm flags as a comma-separated list.
func alarmSummary(a powertag.AlarmStatus) string {
	var names []string
	if a.VoltageLoss {
		names = append(names, "voltage loss")
	}
	if a.CurrentOverload {
		names = append(names, "current overload")
	}
	if a.Overload45Percent {
		names = append(names, "overload 45%")
	}
	if a.LoadCurrentLoss {
		names = append(names, "load current loss")
	}
	if a.Overvoltage {
		names = append(names, "overvoltage")
	}
	if a.Undervoltage {
		names = append(names, "undervoltage")
	}
	if a.HeatTagAlarm {
		names = append(names, "heattag alarm")
	}
	if a.HeatTagMaintenance {
		names = append(names, "heattag maintenance")
	}
	if a.HeatTagReplacement {
		names = append(names, "heattag replacement")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
