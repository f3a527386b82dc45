package discovery

import (
	"context"
	"net"
	"time"

	"github.com/enbility/zeroconf/v3"
)

const (
	// ServiceTypeModbus is the mDNS service type PowerTag Link gateways
	// advertise their Modbus TCP endpoint under.
	ServiceTypeModbus = "_modbus._tcp"

	// Domain is the mDNS domain used for browsing.
	Domain = "local"

	// BrowseTimeout is the default timeout for browse operations.
	BrowseTimeout = 10 * time.Second
)

// GatewayService describes one gateway found on the local network.
type GatewayService struct {
	// InstanceName is the advertised mDNS instance name.
	InstanceName string

	// Host is the advertised hostname.
	Host string

	// Port is the Modbus TCP port, normally 502.
	Port uint16

	// Addresses holds the IPv4 and IPv6 addresses the gateway resolved to,
	// aggregated across interfaces.
	Addresses []string
}

// GatewayBrowser finds gateways on the local network via mDNS.
type GatewayBrowser struct {
	config BrowserConfig
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// NewGatewayBrowser creates a new mDNS gateway browser.
func NewGatewayBrowser(config BrowserConfig) *GatewayBrowser {
	return &GatewayBrowser{config: config}
}

// Browse searches for gateways until the context is cancelled. Services are
// aggregated by instance name - addresses from multiple interfaces are
// combined into a single entry, and each instance is emitted once. The
// returned channel is closed when browsing ends.
func (b *GatewayBrowser) Browse(ctx context.Context) (<-chan *GatewayService, error) {
	out := make(chan *GatewayService)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	opts := b.browserOptions()

	go func() {
		defer close(out)

		// Track services by instance name, aggregating addresses
		services := make(map[string]*GatewayService)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				svc := entryToGateway(entry)

				existing, found := services[svc.InstanceName]
				if found {
					existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
				} else {
					services[svc.InstanceName] = svc
					select {
					case out <- svc:
					case <-ctx.Done():
						return
					}
				}

			case entry, ok := <-removed:
				if !ok {
					continue
				}
				if existing, found := services[entry.Instance]; found {
					existing.Addresses = removeAddresses(existing.Addresses, entry)
					if len(existing.Addresses) == 0 {
						delete(services, entry.Instance)
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeModbus, Domain, entries, removed, opts...)
	}()

	return out, nil
}

// FindFirst returns the first gateway discovered, or ErrGatewayNotFound if
// none appears before the context expires.
func (b *GatewayBrowser) FindFirst(ctx context.Context) (*GatewayService, error) {
	ctx, cancel := context.WithTimeout(ctx, BrowseTimeout)
	defer cancel()

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}

	select {
	case svc, ok := <-results:
		if !ok {
			return nil, ErrGatewayNotFound
		}
		return svc, nil
	case <-ctx.Done():
		return nil, ErrGatewayNotFound
	}
}

// browserOptions returns zeroconf client options based on config.
func (b *GatewayBrowser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption

	if b.config.Interface != "" {
		iface, err := net.InterfaceByName(b.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}

	return opts
}

// entryToGateway converts a zeroconf entry to a GatewayService.
func entryToGateway(entry *zeroconf.ServiceEntry) *GatewayService {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	return &GatewayService{
		InstanceName: entry.Instance,
		Host:         entry.HostName,
		Port:         uint16(entry.Port),
		Addresses:    addrs,
	}
}

// mergeAddresses adds new addresses to the existing list, avoiding duplicates.
func mergeAddresses(existing, found []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}

	for _, addr := range found {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses removes the addresses of a disappeared entry from the list.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	toRemove := make(map[string]bool)
	for _, ip := range entry.AddrIPv4 {
		toRemove[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		toRemove[ip.String()] = true
	}

	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}
