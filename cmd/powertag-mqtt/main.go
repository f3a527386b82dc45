// Command powertag-mqtt bridges a PowerTag energy gateway to an MQTT broker.
//
// It polls the configured tags and publishes one JSON measurement document
// per tag to <topic-prefix>/<unit>/measurement.
//
// Usage:
//
//	powertag-mqtt [flags]
//
// Flags:
//
//	-address string       Gateway address (host:port)
//	-broker string        MQTT broker URL (default "tcp://localhost:1883")
//	-client-id string     MQTT client identifier (default "powertag-mqtt")
//	-username string      MQTT username
//	-password string      MQTT password
//	-topic-prefix string  Topic prefix (default "powertag")
//	-qos int              MQTT QoS level 0-2 (default 0)
//	-retain               Publish with the retain flag
//	-unit value           Tag unit identifier to poll (repeatable; default: node table scan)
//	-interval duration    Polling interval (default 30s)
//	-timeout duration     Modbus request timeout (default 5s)
//	-synthesis-unit int   Pin the synthesis table unit id and skip probing
//	-protocol-log string  Write a protocol capture file (view with powertag-log)
//
// Examples:
//
//	# Publish all configured tags every 30 seconds
//	powertag-mqtt -address 192.168.1.20:502 -broker tcp://broker.local:1883
//
//	# Publish two tags every 10 seconds, retained
//	powertag-mqtt -address 192.168.1.20:502 -unit 5 -unit 9 -interval 10s -retain
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/powertag-link/powertag-go/pkg/gateway"
	"github.com/powertag-link/powertag-go/pkg/log"
	"github.com/powertag-link/powertag-go/pkg/powertag"
	"github.com/powertag-link/powertag-go/pkg/transport"
)

// Measurement is the JSON document published per tag.
type Measurement struct {
	Unit      uint8     `json:"unit"`
	Timestamp time.Time `json:"timestamp"`

	Name    *string `json:"name,omitempty"`
	Circuit *string `json:"circuit,omitempty"`
	Product string  `json:"product,omitempty"`

	CurrentA *float32 `json:"current_a,omitempty"`
	CurrentB *float32 `json:"current_b,omitempty"`
	CurrentC *float32 `json:"current_c,omitempty"`

	ActivePowerTotal   *float32 `json:"active_power_total,omitempty"`
	ApparentPowerTotal *float32 `json:"apparent_power_total,omitempty"`
	PowerFactorTotal   *float32 `json:"power_factor_total,omitempty"`

	ActiveEnergyTotal *uint64 `json:"active_energy_total,omitempty"`

	PowerDemandTotal    *float32 `json:"power_demand_total,omitempty"`
	MaxPowerDemandTotal *float32 `json:"max_power_demand_total,omitempty"`

	AlarmValid bool     `json:"alarm_valid"`
	Alarms     []string `json:"alarms,omitempty"`

	RadioRSSIGateway *float32 `json:"radio_rssi_gateway,omitempty"`
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
	var units unitList

	address := flag.String("address", "", "Gateway address (host:port)")
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	clientID := flag.String("client-id", "powertag-mqtt", "MQTT client identifier")
	username := flag.String("username", "", "MQTT username")
	password := flag.String("password", "", "MQTT password")
	topicPrefix := flag.String("topic-prefix", "powertag", "Topic prefix")
	qos := flag.Int("qos", 0, "MQTT QoS level 0-2")
	retain := flag.Bool("retain", false, "Publish with the retain flag")
	flag.Var(&units, "unit", "Tag unit identifier to poll (repeatable)")
	interval := flag.Duration("interval", 30*time.Second, "Polling interval")
	timeout := flag.Duration("timeout", transport.DefaultTimeout, "Modbus request timeout")
	synthesisUnit := flag.Int("synthesis-unit", 0, "Pin the synthesis table unit id and skip probing")
	protocolLog := flag.String("protocol-log", "", "Write a protocol capture file")
	flag.Parse()

	if *address == "" {
		stdlog.Fatal("Error: -address required")
	}
	if *qos < 0 || *qos > 2 {
		stdlog.Fatal("Error: -qos must be 0, 1 or 2")
	}

	bridge := &bridge{
		broker:      *broker,
		clientID:    *clientID,
		username:    *username,
		password:    *password,
		topicPrefix: *topicPrefix,
		qos:         byte(*qos),
		retain:      *retain,
	}

	if err := run(bridge, *address, units, *interval, *timeout, uint8(*synthesisUnit), *protocolLog); err != nil {
		stdlog.Fatalf("Error: %v", err)
	}
}

// bridge holds the MQTT side of the poll-and-publish loop.
type bridge struct {
	broker      string
	clientID    string
	username    string
	password    string
	topicPrefix string
	qos         byte
	retain      bool

	mqtt mqtt.Client
}

// connect establishes the broker session.
func (b *bridge) connect() error {
	opts := mqtt.NewClientOptions().
		AddBroker(b.broker).
		SetClientID(b.clientID).
		SetKeepAlive(30 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOrderMatters(false)

	if b.username != "" {
		opts.SetUsername(b.username)
		opts.SetPassword(b.password)
	}

	client := mqtt.NewClient(opts)
	t := client.Connect()
	if ok := t.WaitTimeout(10 * time.Second); !ok {
		return fmt.Errorf("connecting to broker %s: timeout", b.broker)
	}
	if err := t.Error(); err != nil {
		return fmt.Errorf("connecting to broker %s: %w", b.broker, err)
	}
	b.mqtt = client
	return nil
}

// publish sends one measurement document.
func (b *bridge) publish(m Measurement) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding measurement: %w", err)
	}

	topic := fmt.Sprintf("%s/%d/measurement", b.topicPrefix, m.Unit)
	t := b.mqtt.Publish(topic, b.qos, b.retain, payload)
	t.Wait()
	return t.Error()
}

func (b *bridge) close() {
	if b.mqtt != nil && b.mqtt.IsConnectionOpen() {
		b.mqtt.Disconnect(250)
	}
}

func run(bridge *bridge, address string, units []uint8, interval, timeout time.Duration, synthesisUnit uint8, protocolLog string) error {
	var logger log.Logger = log.NoopLogger{}
	if protocolLog != "" {
		fileLogger, err := log.NewFileLogger(protocolLog)
		if err != nil {
			return fmt.Errorf("creating protocol log: %w", err)
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	stdlog.Printf("Connecting to gateway %s", address)
	tcp, err := transport.NewTCP(transport.TCPConfig{
		Address: address,
		Timeout: timeout,
	})
	if err != nil {
		return err
	}

	client, err := gateway.NewClient(gateway.Config{
		Transport:     tcp,
		Logger:        logger,
		RemoteAddr:    address,
		SynthesisUnit: synthesisUnit,
	})
	if err != nil {
		tcp.Close()
		return err
	}
	defer client.Close()

	if len(units) == 0 {
		units, err = client.ConfiguredTagUnits()
		if err != nil {
			return fmt.Errorf("scanning node table: %w", err)
		}
	}
	if len(units) == 0 {
		return fmt.Errorf("no tags to poll")
	}
	stdlog.Printf("Polling %d tag(s) every %s", len(units), interval)

	stdlog.Printf("Connecting to broker %s", bridge.broker)
	if err := bridge.connect(); err != nil {
		return err
	}
	defer bridge.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		stdlog.Println("Shutting down...")
		cancel()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	poll(client, bridge, units)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			poll(client, bridge, units)
		}
	}
}

// poll reads and publishes one measurement per tag. Per-tag failures are
// logged and do not stop the cycle.
func poll(client *gateway.Client, bridge *bridge, units []uint8) {
	for _, unit := range units {
		m, err := collect(client, unit)
		if err != nil {
			stdlog.Printf("unit %d: read failed: %v", unit, err)
			continue
		}
		if err := bridge.publish(m); err != nil {
			stdlog.Printf("unit %d: publish failed: %v", unit, err)
		}
	}
}

// collect reads one tag's measurement set. The identification reads must
// succeed; individual measurements may be absent.
func collect(client *gateway.Client, unit uint8) (Measurement, error) {
	m := Measurement{
		Unit:      unit,
		Timestamp: time.Now().UTC(),
	}

	name, err := client.TagName(unit)
	if err != nil {
		return m, err
	}
	m.Name = name

	m.Circuit, _ = client.TagCircuit(unit)
	if pt, err := client.TagProductType(unit); err == nil && pt != nil {
		m.Product = pt.Reference
	}

	m.CurrentA, _ = client.TagCurrent(unit, powertag.PhaseA)
	m.CurrentB, _ = client.TagCurrent(unit, powertag.PhaseB)
	m.CurrentC, _ = client.TagCurrent(unit, powertag.PhaseC)

	m.ActivePowerTotal, _ = client.TagActivePowerTotal(unit)
	m.ApparentPowerTotal, _ = client.TagApparentPowerTotal(unit)
	m.PowerFactorTotal, _ = client.TagPowerFactorTotal(unit)
	m.ActiveEnergyTotal, _ = client.TagActiveEnergyTotal(unit)
	m.PowerDemandTotal, _ = client.TagActivePowerDemandTotal(unit)
	m.MaxPowerDemandTotal, _ = client.TagMaxActivePowerDemandTotal(unit)

	m.AlarmValid, _ = client.TagAlarmValid(unit)
	if m.AlarmValid {
		if alarm, err := client.TagAlarm(unit); err == nil {
			m.Alarms = alarmNames(alarm)
		}
	}

	m.RadioRSSIGateway, _ = client.TagRadioRSSIGateway(unit)

	return m, nil
}

// alarmNames lists the set alarm flags.
func alarmNames(a powertag.AlarmStatus) []string {
	var names []string
	if a.VoltageLoss {
		names = append(names, "voltage_loss")
	}
	if a.CurrentOverload {
		names = append(names, "current_overload")
	}
	if a.Overload45Percent {
		names = append(names, "overload_45_percent")
	}
	if a.LoadCurrentLoss {
		names = append(names, "load_current_loss")
	}
	if a.Overvoltage {
		names = append(names, "overvoltage")
	}
	if a.Undervoltage {
		names = append(names, "undervoltage")
	}
	if a.HeatTagAlarm {
		names = append(names, "heattag_alarm")
	}
	if a.HeatTagMaintenance {
		names = append(names, "heattag_maintenance")
	}
	if a.HeatTagReplacement {
		names = append(names, "heattag_replacement")
	}
	return names
}
