package capitoltrades

import (
	"crypto/tls"
	"net/http/cookiejar"
	"net/url"
	"time"

	"government-trades/lib/restyutil"
	"government-trades/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://www.capitoltrades.com"

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// disables TLS certificate verification, for mirrors with broken certs
	SkipTlsVerify bool
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	if opts.SkipTlsVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	// the transcript-dumping middleware traces requests itself, only
	// attach one of the two
	if restyInstrumentOutput != nil {
		restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)
	} else {
		telemetry.InstrumentResty(client, "scrapers/capitoltrades/http")
	}

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}
