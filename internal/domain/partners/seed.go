package partners

import (
	"context"
	"fmt"
	"os"

	"pet-care-service/internal/platform/httpclient"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Partners []Partner `yaml:"partners"`
}

// LoadSeedFile lee el catálogo desde YAML:
//
//	partners:
//	  - site_name: Vet Central
//	    site_url: https://vetcentral.example
//	    partner_type: vet
//	    rating: 4.5
func LoadSeedFile(path string) ([]Partner, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read partners seed: %w", err)
	}
	return parseSeed(path, b)
}

// LoadSeed acepta un path local o una URL http(s). JSON también sirve
// porque es YAML válido.
func LoadSeed(ctx context.Context, src string, hc *httpclient.Client) ([]Partner, error) {
	if !httpclient.IsURL(src) {
		return LoadSeedFile(src)
	}
	if hc == nil {
		hc = httpclient.New(0)
	}
	b, err := hc.Get(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("fetch partners seed: %w", err)
	}
	return parseSeed(src, b)
}

func parseSeed(src string, b []byte) ([]Partner, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse partners seed %s: %w", src, err)
	}
	return f.Partners, nil
}
