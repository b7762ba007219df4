package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/whistler-mcp/internal/adapters/driven/catalog/memory"
	"github.com/custodia-labs/whistler-mcp/internal/core/services"
)

func builtinPorts() *Ports {
	catalog := memory.Builtin()
	return &Ports{
		Search:   services.NewSearchService(catalog),
		Property: services.NewPropertyService(catalog),
		Catalog:  services.NewCatalogService(catalog),
	}
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(p *Ports)
		wantErr []error
	}{
		{name: "complete", modify: func(*Ports) {}},
		{
			name:    "missing search",
			modify:  func(p *Ports) { p.Search = nil },
			wantErr: []error{ErrMissingSearchService},
		},
		{
			name:    "missing property",
			modify:  func(p *Ports) { p.Property = nil },
			wantErr: []error{ErrMissingPropertyService},
		},
		{
			name: "all missing",
			modify: func(p *Ports) {
				*p = Ports{}
			},
			wantErr: []error{ErrMissingSearchService, ErrMissingPropertyService, ErrMissingCatalogService},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := builtinPorts()
			tt.modify(p)

			err := p.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
