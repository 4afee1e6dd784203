// Package oem fetches the ISS Orbit Ephemeris Message published by NASA and
// decodes it into state vectors
package oem

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/randytsao24/iss-tracker/internal/models"
)

// DefaultFeedURL is NASA's public ISS trajectory feed (J2000 frame)
const DefaultFeedURL = "https://nasa-public-data.s3.amazonaws.com/iss-coords/current/ISS_OEM/ISS.OEM_J2K_EPH.xml"

// document mirrors the parts of the CCSDS NDM/OEM XML layout we read
type document struct {
	XMLName      xml.Name             `xml:"ndm"`
	Header       models.Header        `xml:"oem>header"`
	Metadata     models.Metadata      `xml:"oem>body>segment>metadata"`
	Comments     []string             `xml:"oem>body>segment>data>COMMENT"`
	StateVectors []models.StateVector `xml:"oem>body>segment>data>stateVector"`
}

// Client fetches the ephemeris feed
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a feed client for url
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultFeedURL
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the feed address
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads and decodes the current ephemeris
func (c *Client) Fetch(ctx context.Context) (*models.Ephemeris, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	return Decode(resp.Body)
}

// Decode parses an OEM XML document
func Decode(r io.Reader) (*models.Ephemeris, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing OEM XML: %w", err)
	}

	comments := doc.Comments
	if comments == nil {
		comments = []string{}
	}
	vectors := doc.StateVectors
	if vectors == nil {
		vectors = []models.StateVector{}
	}

	return &models.Ephemeris{
		Header:       doc.Header,
		Metadata:     doc.Metadata,
		Comments:     comments,
		StateVectors: vectors,
	}, nil
}
