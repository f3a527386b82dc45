// Command powertag-shell is an interactive inspection shell for a PowerTag
// energy gateway.
//
// Usage:
//
//	powertag-shell [flags]
//
// Flags:
//
//	-address string       Gateway address (host:port)
//	-discover             Discover the gateway via mDNS instead of -address
//	-timeout duration     Modbus request timeout (default 5s)
//	-synthesis-unit int   Pin the synthesis table unit id and skip probing
//	-protocol-log string  Write a protocol capture file (view with powertag-log)
//
// Examples:
//
//	# Open a shell against a known gateway
//	powertag-shell -address 192.168.1.20:502
//
//	# Discover the gateway and capture the session
//	powertag-shell -discover -protocol-log session.plog
//
// Interactive Commands:
//
//	info                 - Show gateway identification and status
//	tags                 - List configured tags from the node table
//	read <unit> <attr>   - Read a tag attribute
//	attrs                - List readable attribute names
//	name <unit> <value>  - Set a tag's name
//	circuit <unit> <value> - Set a tag's circuit identifier
//	reset-demand <unit>  - Clear a tag's recorded peak demands
//	quit                 - Exit the shell
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/powertag-link/powertag-go/cmd/powertag-shell/interactive"
	"github.com/powertag-link/powertag-go/pkg/discovery"
	"github.com/powertag-link/powertag-go/pkg/gateway"
	"github.com/powertag-link/powertag-go/pkg/log"
	"github.com/powertag-link/powertag-go/pkg/transport"
)

func main() {
	address := flag.String("address", "", "Gateway address (host:port)")
	discover := flag.Bool("discover", false, "Discover the gateway via mDNS")
	timeout := flag.Duration("timeout", transport.DefaultTimeout, "Modbus request timeout")
	synthesisUnit := flag.Int("synthesis-unit", 0, "Pin the synthesis table unit id and skip probing")
	protocolLog := flag.String("protocol-log", "", "Write a protocol capture file")
	flag.Parse()

	if err := run(*address, *discover, *timeout, uint8(*synthesisUnit), *protocolLog); err != nil {
		stdlog.Fatalf("Error: %v", err)
	}
}

func run(address string, discover bool, timeout time.Duration, synthesisUnit uint8, protocolLog string) error {
	if address == "" && !discover {
		return fmt.Errorf("no gateway address: pass -address or -discover")
	}

	if discover {
		stdlog.Println("Discovering gateway via mDNS...")
		browser := discovery.NewGatewayBrowser(discovery.BrowserConfig{})

		ctx, cancel := context.WithTimeout(context.Background(), discovery.BrowseTimeout)
		defer cancel()

		gw, err := browser.FindFirst(ctx)
		if err != nil {
			return err
		}
		if len(gw.Addresses) == 0 {
			return fmt.Errorf("gateway %s has no addresses", gw.InstanceName)
		}
		address = fmt.Sprintf("%s:%d", gw.Addresses[0], gw.Port)
		stdlog.Printf("Found %s at %s", gw.InstanceName, address)
	}

	var logger log.Logger = log.NoopLogger{}
	if protocolLog != "" {
		fileLogger, err := log.NewFileLogger(protocolLog)
		if err != nil {
			return fmt.Errorf("creating protocol log: %w", err)
		}
		defer fileLogger.Close()
		logger = fileLogger
	}

	stdlog.Printf("Connecting to %s", address)
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

	shell, err := interactive.New(client)
	if err != nil {
		return err
	}

	// Route log output through readline so it does not garble the prompt.
	stdlog.SetOutput(shell.Stdout())
	defer stdlog.SetOutput(os.Stderr)

	shell.Run()
	return nil
}
