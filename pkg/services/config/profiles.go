package config

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const (
	defaultPort    = 5432
	defaultSSLMode = "disable"
)

// Registry reads PostgreSQL connection profiles from an ini file, one section per profile:
//
//	[reporting]
//	host     = db.internal
//	port     = 5432
//	user     = dashboard
//	password = secret
//	dbname   = pos
//	sslmode  = require
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetConfig(ctx context.Context, profile string) (*domain.DatabaseProfile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load database profiles: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(_ context.Context, profile string) (*domain.DatabaseProfile, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	host := section.Key("host").String()
	if host == "" {
		return nil, fmt.Errorf("profile %s: host is required", profile)
	}

	port := section.Key("port").MustInt(defaultPort)
	return &domain.DatabaseProfile{
		Name:     profile,
		Host:     host,
		Port:     port,
		User:     section.Key("user").String(),
		Password: section.Key("password").String(),
		DBName:   section.Key("dbname").String(),
		SSLMode:  section.Key("sslmode").MustString(defaultSSLMode),
	}, nil
}

// DSN renders the profile as a lib/pq connection URL.
func DSN(p *domain.DatabaseProfile) string {
	u := url.URL{
		Scheme: "postgres",
		Host:   p.Host + ":" + strconv.Itoa(p.Port),
		Path:   "/" + p.DBName,
	}
	if p.User != "" {
		u.User = url.UserPassword(p.User, p.Password)
	}
	q := url.Values{}
	q.Set("sslmode", p.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
