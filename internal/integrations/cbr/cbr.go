package cbr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/fintrack/internal/cache"
	"github.com/Dan9191/fintrack/internal/config"
	"github.com/Dan9191/fintrack/internal/models"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

const (
	// BankMargin is added on top of the key rate to approximate a deposit rate
	BankMargin = 5.0

	cacheKey = "cbr:key-rate"
	cacheTTL = 6 * time.Hour
)

// CBRClient fetches the Central Bank key rate, used as a reference rate for
// stable-asset assumptions
type CBRClient struct {
	url    string
	client *http.Client
	cache  cache.Cache
	log    *logrus.Logger
	now    func() time.Time
}

// NewCBRClient initializes a new CBR client
func NewCBRClient(cfg *config.Config, c cache.Cache, log *logrus.Logger) *CBRClient {
	return &CBRClient{
		url: cfg.CBRURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: c,
		log:   log,
		now:   time.Now,
	}
}

// buildSOAPRequest creates a SOAP request for the last 30 days of key rates
func (c *CBRClient) buildSOAPRequest() string {
	fromDate := c.now().AddDate(0, 0, -30).Format("2006-01-02")
	toDate := c.now().Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<KeyRate xmlns="http://web.cbr.ru/">
					<fromDate>%s</fromDate>
					<ToDate>%s</ToDate>
				</KeyRate>
			</soap12:Body>
		</soap12:Envelope>`, fromDate, toDate)
}

// sendRequest sends SOAP request to CBR
func (c *CBRClient) sendRequest(ctx context.Context, soapRequest string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBufferString(soapRequest))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://web.cbr.ru/KeyRate")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("CBR XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse extracts the latest key rate from the response
func parseXMLResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %w", err)
	}

	krElements := doc.FindElements("//diffgram/KeyRate/KR")
	if len(krElements) == 0 {
		return 0, fmt.Errorf("no key rate data found in XML")
	}

	// CBR lists the most recent date first
	rateElement := krElements[0].FindElement("./Rate")
	if rateElement == nil {
		return 0, fmt.Errorf("rate element not found in XML")
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(rateElement.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate: %w", err)
	}

	return rate, nil
}

// GetReferenceRate returns the current key rate plus BankMargin. Results are
// cached for six hours.
func (c *CBRClient) GetReferenceRate(ctx context.Context) (*models.ReferenceRate, error) {
	if cached, ok := c.cache.Get(ctx, cacheKey); ok {
		if keyRate, err := strconv.ParseFloat(cached, 64); err == nil {
			return newReferenceRate(keyRate, true), nil
		}
		c.log.Warnf("Ignoring malformed cached key rate %q", cached)
	}

	body, err := c.sendRequest(ctx, c.buildSOAPRequest())
	if err != nil {
		return nil, err
	}

	keyRate, err := parseXMLResponse(body)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, cacheKey, strconv.FormatFloat(keyRate, 'f', -1, 64), cacheTTL); err != nil {
		c.log.Warnf("Failed to cache key rate: %v", err)
	}

	ref := newReferenceRate(keyRate, false)
	c.log.Infof("Retrieved key rate: %.2f%% (including %.2f%% bank margin)", ref.Rate, BankMargin)
	return ref, nil
}

func newReferenceRate(keyRate float64, cached bool) *models.ReferenceRate {
	return &models.ReferenceRate{
		KeyRate: keyRate,
		Margin:  BankMargin,
		Rate:    keyRate + BankMargin,
		Cached:  cached,
	}
}
