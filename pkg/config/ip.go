package config

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
)

var ErrNoLocalAddress = errors.New("could not find local IP address")

// AdvertisedURLs lists the signal urls clients can use to reach the server.
// An unspecified bind address is expanded to every local IPv4 address.
func (conf *Config) AdvertisedURLs() ([]string, error) {
	hosts := []string{conf.Server.BindAddress}
	if ip := net.ParseIP(conf.Server.BindAddress); conf.Server.BindAddress == "" || (ip != nil && ip.IsUnspecified()) {
		addresses, err := GetLocalIPAddresses(true)
		if err != nil {
			return nil, err
		}
		hosts = addresses
	}

	urls := make([]string, 0, len(hosts))
	for _, host := range hosts {
		urls = append(urls, fmt.Sprintf("ws://%s", net.JoinHostPort(host, fmt.Sprint(conf.Server.Port))))
	}
	return urls, nil
}

func GetLocalIPAddresses(includeLoopback bool) ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	loopBacks := make([]string, 0)
	addresses := make([]string, 0)
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch typedAddr := addr.(type) {
			case *net.IPNet:
				ip = typedAddr.IP.To4()
			case *net.IPAddr:
				ip = typedAddr.IP.To4()
			default:
				continue
			}
			if ip == nil {
				continue
			}
			if ip.IsLoopback() {
				loopBacks = append(loopBacks, ip.String())
			} else {
				addresses = append(addresses, ip.String())
			}
		}
	}

	if includeLoopback {
		addresses = append(addresses, loopBacks...)
	}

	if len(addresses) > 0 {
		return addresses, nil
	}
	if len(loopBacks) > 0 {
		return loopBacks, nil
	}
	return nil, ErrNoLocalAddress
}
