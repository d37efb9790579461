package templates

import (
	"context"
	"strings"
	"time"

	"github.com/oksasatya/go-auth-signup/config"
)

// Option pattern
type Option func(*EmailData)

func WithIP(ip string) Option        { return func(d *EmailData) { d.IP = ip } }
func WithUserAgent(ua string) Option { return func(d *EmailData) { d.UserAgent = ua } }
func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithGeoFromIP(ctx context.Context, r GeoResolver, ip string) Option {
	return func(d *EmailData) {
		if r == nil || strings.TrimSpace(ip) == "" {
			return
		}
		if g, err := r.Lookup(ctx, ip); err == nil {
			if s := strings.TrimSpace(FormatGeo(g)); s != "" {
				d.Location = s
			}
		}
	}
}

// NewBaseEmailData fills the common fields from cfg, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, name, username, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Username:       username,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,

		CompanyName: cfg.CompanyName,
		AppName:     cfg.AppName,
		SupportURL:  cfg.SupportURL,
		LoginURL:    cfg.LoginURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, username, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, Welcome, name, username, email, opts...))
}

func NewLoginNotificationData(cfg *config.Config, name, username, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, LoginNotification, name, username, email, opts...))
}
