package httpclient

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/proxy"
	"h12.io/socks"
)

// NewTransport builds a transport routed through proxyURI. Unsupported or
// malformed proxies are logged and the transport connects directly; the
// returned flag reports whether a proxy was applied.
func NewTransport(proxyURI string, log *zap.Logger) (*http.Transport, bool) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	proxyURI = strings.TrimSpace(proxyURI)
	if proxyURI == "" {
		return transport, false
	}

	parsed, err := url.Parse(proxyURI)
	if err != nil || parsed.Host == "" {
		log.Warn("invalid proxy, connecting directly", zap.String("proxy", redactProxy(proxyURI)))
		return transport, false
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		transport.Proxy = http.ProxyURL(parsed)
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(parsed, proxy.Direct)
		if err != nil {
			log.Warn("invalid socks5 proxy, connecting directly", zap.String("proxy", redactProxy(proxyURI)), zap.Error(err))
			return transport, false
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer(dialer)
	case "socks4", "socks4a":
		transport.Proxy = nil
		transport.DialContext = cancelableDial(socks.Dial(proxyURI))
	default:
		log.Warn("unsupported proxy", zap.String("proxy", redactProxy(proxyURI)))
		return transport, false
	}

	return transport, true
}

func contextDialer(dialer proxy.Dialer) func(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		return cd.DialContext
	}
	return func(_ context.Context, network, addr string) (net.Conn, error) {
		return dialer.Dial(network, addr)
	}
}

func redactProxy(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}
	return parsed.Redacted()
}

type dialResult struct {
	conn net.Conn
	err  error
}

// cancelableDial bounds a context-unaware dial by ctx. A connection that
// arrives after ctx is done is closed.
func cancelableDial(dial func(network, addr string) (net.Conn, error)) func(ctx context.Context, network, addr string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		done := make(chan dialResult, 1)
		go func() {
			conn, err := dial(network, addr)
			done <- dialResult{conn: conn, err: err}
		}()

		select {
		case res := <-done:
			return res.conn, res.err
		case <-ctx.Done():
			go func() {
				if res := <-done; res.conn != nil {
					_ = res.conn.Close()
				}
			}()
			return nil, ctx.Err()
		}
	}
}
