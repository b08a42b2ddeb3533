package models

import (
	"time"

	"github.com/google/uuid"
)

// BrowserType identifies a browser vendor.
type BrowserType string

const (
	BrowserChrome   BrowserType = "chrome"
	BrowserChromium BrowserType = "chromium"
	BrowserBrave    BrowserType = "brave"
	BrowserEdge     BrowserType = "edge"
	BrowserVivaldi  BrowserType = "vivaldi"
	BrowserOpera    BrowserType = "opera"
	BrowserOther    BrowserType = "other"
)

// Browser is a sidebar entry for a connected browser profile. Browsers are
// client-only and in-memory: they are created when the user completes the
// "add browser" flow and are not persisted across runs.
type Browser struct {
	ID            string
	Name          string
	Type          BrowserType
	ProfileName   string
	IsConnected   bool
	BookmarkCount int
	LastSync      time.Time
}

// NewBrowser creates a Browser entry with a generated id.
func NewBrowser(name string, typ BrowserType, profileName string) *Browser {
	return &Browser{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        typ,
		ProfileName: profileName,
	}
}
