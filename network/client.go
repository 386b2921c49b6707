// Package network provides the pre-configured HTTP client shared by every outbound request.
package network

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pikbatch/pikbatch/key"
	"github.com/spf13/viper"
	"golang.org/x/net/proxy"
)

// NewClient builds an HTTP client from the network.* configuration keys.
func NewClient() (*http.Client, error) {
	transport, err := newTransport(viper.GetString(key.NetworkProxy))
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Timeout:   time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		Transport: transport,
	}, nil
}

func newTransport(proxyURL string) (*http.Transport, error) {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second

	if proxyURL == "" {
		return t, nil
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		t.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks5 proxy: %w", err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("socks5 proxy: dialer does not support contexts")
		}
		t.Proxy = nil
		t.DialContext = contextDialer.DialContext
	default:
		return nil, fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
	}

	return t, nil
}
