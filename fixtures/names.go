package fixtures

import (
	"fmt"

	"github.com/cbroglie/mustache"
	"github.com/snowfork/snowbridge/lightclient-harness/config"
)

// Names are the rendered file names of a fixture set, relative to its directory.
type Names struct {
	ExecutionHeaders     string
	LightClientUpdates   string
	CurrentSyncCommittee string
	NextSyncCommittee    string
}

func RenderNames(cfg config.FixtureConfig) (Names, error) {
	context := map[string]interface{}{
		"network": cfg.Network,
		"start":   cfg.StartBlock,
		"end":     cfg.EndBlock,
	}

	headers, err := render(cfg.ExecutionHeadersTemplate, context)
	if err != nil {
		return Names{}, err
	}
	updates, err := render(cfg.LightClientUpdateTemplate, context)
	if err != nil {
		return Names{}, err
	}
	current, err := render(cfg.SyncCommitteeTemplate, map[string]interface{}{"network": cfg.Network, "period": cfg.CurrentPeriod})
	if err != nil {
		return Names{}, err
	}
	next, err := render(cfg.SyncCommitteeTemplate, map[string]interface{}{"network": cfg.Network, "period": cfg.NextPeriod})
	if err != nil {
		return Names{}, err
	}

	return Names{
		ExecutionHeaders:     headers,
		LightClientUpdates:   updates,
		CurrentSyncCommittee: current,
		NextSyncCommittee:    next,
	}, nil
}

func render(template string, context map[string]interface{}) (string, error) {
	if template == "" {
		return "", fmt.Errorf("render fixture name: empty template")
	}

	name, err := mustache.Render(template, context)
	if err != nil {
		return "", fmt.Errorf("render fixture name %q: %w", template, err)
	}

	return name, nil
}
